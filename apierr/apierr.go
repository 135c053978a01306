package apierr

import "net/http"

// Error is the error type surfaced to the console user. It carries a stable
// machine-readable code, a message suitable for display, and an optional
// wrapped cause that is only ever logged, never shown.
type Error struct {
	errorCode string
	msgToUser string // public
	causeErr  error  // private, for debugging

	httpStatus int // status the backend answered with, if any
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) Unwrap() error {
	return e.causeErr
}

func (e *Error) SetCause(err error) *Error {
	e.causeErr = err
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}

const (
	// the backend answered with an explicit failure envelope
	ErrCodeRequestFailed = "request_failed"
	// adding a problem that is already part of the selection
	ErrCodeSelectionConflict = "selection_conflict"
	// session token missing or expired
	ErrCodeUnauthorized = "unauthorized"

	ErrCodeInternalServerError = "internal_server_error"
)

const genericFailureMsg = "pieprasījums neizdevās"

// ErrRequestFailed wraps the message a backend failure envelope carried.
// An empty message falls back to a generic one so the user never sees "".
func ErrRequestFailed(backendMsg string) *Error {
	if backendMsg == "" {
		backendMsg = genericFailureMsg
	}
	return New(ErrCodeRequestFailed, backendMsg).
		SetHttpStatusCode(http.StatusBadGateway)
}

func ErrSelectionConflict(msgToUser string) *Error {
	return New(ErrCodeSelectionConflict, msgToUser).
		SetHttpStatusCode(http.StatusConflict)
}

func ErrUnauthorized() *Error {
	return New(
		ErrCodeUnauthorized,
		"sesija ir beigusies, lūdzu pieslēdzieties vēlreiz",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"iekšēja servera kļūda",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
