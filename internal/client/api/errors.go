package api

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an API failure.
type Kind int

const (
	// KindRejected: the server answered with a non-2xx status.
	KindRejected Kind = iota + 1
	// KindDuplicate: registration rejected because the account already exists.
	KindDuplicate
	// KindMissingToken: the server accepted the request but sent no token.
	KindMissingToken
	// KindTransport: connection failure, cancelled request or unreadable body.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindRejected:
		return "rejected"
	case KindDuplicate:
		return "duplicate"
	case KindMissingToken:
		return "missing_token"
	case KindTransport:
		return "transport"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	ErrRejected     = errors.New("request rejected")
	ErrDuplicate    = errors.New("account already exists")
	ErrMissingToken = errors.New("authentication token missing")
	ErrTransport    = errors.New("server unavailable")
)

// Messages used when the server does not supply one.
const (
	msgLoginFailed    = "Error en el inicio de sesión"
	msgRegisterFailed = "Error en el registro"
	msgMissingToken   = "No se recibió el token de autenticación"
	msgConnection     = "Error de conexión con el servidor"
)

// DuplicateCode is the structured error code the backend sends for an
// already registered email.
const DuplicateCode = "EMAIL_EXISTS"

// duplicateMarkers are phrases of backend messages announcing a duplicate
// account. Used only when neither the code nor the status says so.
var duplicateMarkers = []string{"ya existe", "ya está registrado", "already exists", "already registered"}

// Error is the single error type returned by Client implementations.
type Error struct {
	Kind    Kind
	Message string // server-supplied or default message, not meant for end users
	Status  int    // HTTP status, 0 when no response was received
	Err     error  // underlying transport/decoding error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("api ")
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrRejected:
		return e.Kind == KindRejected || e.Kind == KindDuplicate
	case ErrDuplicate:
		return e.Kind == KindDuplicate
	case ErrMissingToken:
		return e.Kind == KindMissingToken
	case ErrTransport:
		return e.Kind == KindTransport
	}
	return false
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

func isDuplicateMessage(msg string) bool {
	msg = strings.ToLower(msg)
	for _, m := range duplicateMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
