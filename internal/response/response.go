package response

// Response codes used across every endpoint. Failure is reported through
// Code, never through the HTTP status.
const (
	CodeSuccess = 0
	CodeFailure = -1
)

// Fixed response messages.
const (
	MsgInvalidToken           = "invalid token"
	MsgInvalidName            = "invalid name"
	MsgInvalidEmail           = "invalid email"
	MsgInvalidImage           = "invalid image"
	MsgInvalidDescription     = "invalid description"
	MsgInvalidWebsite         = "invalid website"
	MsgVendorAdded            = "vendor added"
	MsgEmailAlreadyRegistered = "email already registered"
	MsgUnableToProcess        = "unable to process"
)

// Envelope is the uniform body returned by every handler.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success builds a success envelope with a message.
func Success(message string) Envelope {
	return Envelope{Code: CodeSuccess, Message: message}
}

// Failure builds a failure envelope with a message.
func Failure(message string) Envelope {
	return Envelope{Code: CodeFailure, Message: message}
}

// Data builds a success envelope carrying a payload.
func Data(data interface{}) Envelope {
	return Envelope{Code: CodeSuccess, Data: data}
}
