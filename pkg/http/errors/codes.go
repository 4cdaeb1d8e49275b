package errors

// Human-readable messages carried in error envelopes. Clients match on the
// numeric status; the message is informational.
const (
	MsgUnauthorized        = "unauthorized"
	MsgForbidden           = "forbidden"
	MsgNotFound            = "resource not found"
	MsgMethodNotAllowed    = "method not allowed"
	MsgUnprocessable       = "unprocessable"
	MsgInternalError       = "internal server error"
	MsgUpstreamUnavailable = "upstream unavailable"
)
