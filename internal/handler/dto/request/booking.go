package request

// CreateBookingRequest carries the same rental parameters as a quote request.
// The server re-quotes them; any price fields a client might send are ignored
// by construction.
type CreateBookingRequest struct {
	QuoteRequest
}
