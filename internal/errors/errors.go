package errors

import (
	"errors"

	"vendorhub/internal/response"
)

var (
	// ErrInvalidName is returned when the vendor name fails validation.
	ErrInvalidName = errors.New(response.MsgInvalidName)
	// ErrInvalidEmail is returned when the vendor email fails validation.
	ErrInvalidEmail = errors.New(response.MsgInvalidEmail)
	// ErrInvalidImage is returned when the image payload is empty.
	ErrInvalidImage = errors.New(response.MsgInvalidImage)
	// ErrInvalidDescription is returned when the description is present but empty.
	ErrInvalidDescription = errors.New(response.MsgInvalidDescription)
	// ErrInvalidWebsite is returned when the website is present but empty.
	ErrInvalidWebsite = errors.New(response.MsgInvalidWebsite)
	// ErrEmailAlreadyRegistered is returned when an add hits an existing vendor.
	ErrEmailAlreadyRegistered = errors.New(response.MsgEmailAlreadyRegistered)
	// ErrUpdateFailed is returned when the store rejects an update.
	ErrUpdateFailed = errors.New(response.MsgUnableToProcess)
)

// ToEnvelope maps a domain error to the response envelope. A failed update
// keeps code 0, distinguishable only by its message; every other error is a
// plain failure.
func ToEnvelope(err error) response.Envelope {
	switch {
	case errors.Is(err, ErrUpdateFailed):
		return response.Envelope{Code: response.CodeSuccess, Message: response.MsgUnableToProcess}
	case errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidImage),
		errors.Is(err, ErrInvalidDescription),
		errors.Is(err, ErrInvalidWebsite),
		errors.Is(err, ErrEmailAlreadyRegistered):
		return response.Failure(err.Error())
	default:
		return response.Failure(response.MsgUnableToProcess)
	}
}
