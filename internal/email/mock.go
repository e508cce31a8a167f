package email

import "context"

// MockSender is a test implementation of Sender that records sent emails.
type MockSender struct {
	Sent    []*Email
	SendErr error
}

// Send records the email and returns a fixed message ID.
func (m *MockSender) Send(ctx context.Context, email *Email) (string, error) {
	if m.SendErr != nil {
		return "", m.SendErr
	}
	m.Sent = append(m.Sent, email)
	return "mock-message-id", nil
}

// MockSubscriber is a test implementation of Subscriber.
type MockSubscriber struct {
	Addresses    []string
	SubscribeErr error
}

// Subscribe records the address.
func (m *MockSubscriber) Subscribe(ctx context.Context, address string) error {
	if m.SubscribeErr != nil {
		return m.SubscribeErr
	}
	m.Addresses = append(m.Addresses, address)
	return nil
}
