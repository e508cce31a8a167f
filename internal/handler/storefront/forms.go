package storefront

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/tessvale/embla/internal/domain"
	"github.com/tessvale/embla/internal/email"
	"github.com/tessvale/embla/internal/handler"
	"github.com/tessvale/embla/internal/middleware"
	"github.com/tessvale/embla/internal/telemetry"
)

const maxMessageLength = 5000

// FormsHandler handles the contact and newsletter endpoints
type FormsHandler struct {
	sender     email.Sender
	subscriber email.Subscriber
	from       string
	recipient  string
}

// NewFormsHandler creates a new forms handler
func NewFormsHandler(sender email.Sender, subscriber email.Subscriber, from, recipient string) *FormsHandler {
	return &FormsHandler{
		sender:     sender,
		subscriber: subscriber,
		from:       from,
		recipient:  recipient,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type newsletterRequest struct {
	Email string `json:"email"`
}

// Contact handles POST /api/contact
func (h *FormsHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("forms.contact", "Invalid request body"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	var verr error
	if req.Name == "" {
		verr = domain.AddFieldError(verr, "name", "name is required")
	}
	if req.Email == "" {
		verr = domain.AddFieldError(verr, "email", "email is required")
	} else if !validEmail(req.Email) {
		verr = domain.AddFieldError(verr, "email", "email is not valid")
	}
	if req.Message == "" {
		verr = domain.AddFieldError(verr, "message", "message is required")
	} else if len(req.Message) > maxMessageLength {
		verr = domain.AddFieldError(verr, "message", "message is too long")
	}
	if verr != nil {
		handler.ValidationErrorResponse(w, r, verr)
		return
	}

	msg := &email.Email{
		To:      []string{h.recipient},
		From:    h.from,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Contact form: %s", req.Name),
		TextBody: fmt.Sprintf("From: %s <%s>\n\n%s",
			req.Name, req.Email, req.Message),
	}

	if _, err := h.sender.Send(r.Context(), msg); err != nil {
		logger := middleware.GetLogger(r.Context())
		logger.Error("failed to send contact message", "error", err)
		handler.ErrorResponse(w, r, domain.Unavailable(err, "forms.contact", "Unable to send message right now"))
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.ContactMessages.Inc()
	}

	handler.JSONResponse(w, http.StatusOK, map[string]bool{"sent": true})
}

// Newsletter handles POST /api/newsletter
func (h *FormsHandler) Newsletter(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.ErrorResponse(w, r, domain.Invalid("forms.newsletter", "Invalid request body"))
		return
	}

	address := strings.TrimSpace(req.Email)
	if address == "" {
		handler.ValidationErrorResponse(w, r, domain.NewValidationError("forms.newsletter", "email", "email is required"))
		return
	}
	if !validEmail(address) {
		handler.ValidationErrorResponse(w, r, domain.NewValidationError("forms.newsletter", "email", "email is not valid"))
		return
	}

	if err := h.subscriber.Subscribe(r.Context(), address); err != nil {
		logger := middleware.GetLogger(r.Context())
		logger.Error("failed to record newsletter signup", "error", err)
		handler.ErrorResponse(w, r, domain.Unavailable(err, "forms.newsletter", "Unable to subscribe right now"))
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.NewsletterSignups.Inc()
	}

	handler.JSONResponse(w, http.StatusOK, map[string]bool{"subscribed": true})
}

func validEmail(address string) bool {
	addr, err := mail.ParseAddress(address)
	return err == nil && addr.Address == address
}
