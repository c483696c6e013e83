package errors

import (
	stderrors "errors"

	"starchain/jsonx"
)

// RegistryErrorCode represents standardized error codes for registry operations
type RegistryErrorCode string

const (
	// General errors
	ErrCodeInternal RegistryErrorCode = "internal_error"

	// Ownership gate errors
	ErrCodeExpiredChallenge RegistryErrorCode = "expired_challenge"
	ErrCodeInvalidSignature RegistryErrorCode = "invalid_signature"
	ErrCodeInvalidIdentity  RegistryErrorCode = "invalid_identity"

	// Chain errors
	ErrCodeAppendFailure RegistryErrorCode = "append_failure"
	ErrCodeBlockNotFound RegistryErrorCode = "block_not_found"
)

// RegistryError represents a standardized registry error
type RegistryError struct {
	Code    RegistryErrorCode `json:"code"`
	Message string            `json:"message"`
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	err, _ := jsonx.Marshal(RegistryError{
		Code:    e.Code,
		Message: e.Message,
	})
	return string(err)
}

// Error message constants - user-friendly and concise
const (
	ErrMsgExpiredChallenge = "Challenge is older than the allowed window, request a new one"
	ErrMsgInvalidChallenge = "Challenge string is malformed"
	ErrMsgInvalidSignature = "Signature does not verify against the challenge"
	ErrMsgInvalidIdentity  = "Identity is not a valid base58 public key"
	ErrMsgAppendFailure    = "Block could not be sealed and appended"
	ErrMsgBlockNotFound    = "Block could not be found"
	ErrMsgInternal         = "Internal error, please try again"
)

// NewError creates a new RegistryError and returns it as error interface
func NewError(code RegistryErrorCode, message string) error {
	return &RegistryError{
		Code:    code,
		Message: message,
	}
}

// CodeOf extracts the registry error code from err, or ErrCodeInternal
// when err is not a RegistryError.
func CodeOf(err error) RegistryErrorCode {
	var regErr *RegistryError
	if stderrors.As(err, &regErr) {
		return regErr.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err is a RegistryError carrying the given code.
func IsCode(err error, code RegistryErrorCode) bool {
	var regErr *RegistryError
	return stderrors.As(err, &regErr) && regErr.Code == code
}
