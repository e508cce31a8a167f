package printful

import "errors"

// Sentinel errors returned by the Printful client.
var (
	// ErrMissingAPIKey indicates the client was constructed without credentials.
	ErrMissingAPIKey = errors.New("printful: API key is required")

	// ErrProductNotFound indicates the provider has no product with the given id.
	ErrProductNotFound = errors.New("printful: product not found")

	// ErrMalformedResponse indicates none of the known response shapes matched.
	ErrMalformedResponse = errors.New("printful: unrecognized response shape")

	// ErrMissingRecipient indicates an order was submitted without the
	// required shipping fields (address line 1, city, country).
	ErrMissingRecipient = errors.New("printful: missing required shipping information")
)
