package response

// Business codes follow HTTP semantics; the transport status is always 200.
const (
	CodeOK          = 0
	CodeBadRequest  = 400
	CodeNotFound    = 404
	CodeConflict    = 409
	CodeTooMany     = 429
	CodeServerError = 500
	CodeUnavailable = 503
	CodeTimeout     = 504
)

var CodeMsgMap = map[int]string{
	CodeOK:          "OK",
	CodeBadRequest:  "Bad Request",
	CodeNotFound:    "Not Found",
	CodeConflict:    "Conflict",
	CodeTooMany:     "Too Many Requests",
	CodeServerError: "Internal Server Error",
	CodeUnavailable: "Service Unavailable",
	CodeTimeout:     "Gateway Timeout",
}
