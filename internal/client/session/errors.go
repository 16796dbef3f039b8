package session

import "errors"

var (
	ErrAuthentication = errors.New("authentication failed")
	ErrRegistration   = errors.New("registration failed")
	ErrStorage        = errors.New("storage failure")
)

// User-facing messages.
const (
	MsgBadCredentials  = "Email o contraseña incorrectos"
	MsgConnection      = "Error de conexión con el servidor"
	MsgUnexpected      = "Ha ocurrido un error inesperado"
	MsgEmailRegistered = "El email ya está registrado"
	MsgRegisterLater   = "No se pudo completar el registro. Inténtalo más tarde"
	MsgLogoutFailed    = "No se pudo cerrar la sesión"
	MsgAvatarFailed    = "No se pudo actualizar el avatar"
)

// AuthenticationError is returned by Login.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string        { return e.Message }
func (e *AuthenticationError) Unwrap() error        { return e.Err }
func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }

// RegistrationError is returned by Register.
type RegistrationError struct {
	Message string
	Err     error
}

func (e *RegistrationError) Error() string        { return e.Message }
func (e *RegistrationError) Unwrap() error        { return e.Err }
func (e *RegistrationError) Is(target error) bool { return target == ErrRegistration }

// StorageError is returned by Logout and UpdateAvatar when the store could
// not be updated. The in-memory state is left as it was.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string        { return e.Message }
func (e *StorageError) Unwrap() error        { return e.Err }
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// UserMessage returns the end-user text carried by a session error, or
// MsgUnexpected for anything else.
func UserMessage(err error) string {
	var (
		authErr *AuthenticationError
		regErr  *RegistrationError
		stErr   *StorageError
	)
	switch {
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.As(err, &regErr):
		return regErr.Message
	case errors.As(err, &stErr):
		return stErr.Message
	default:
		return MsgUnexpected
	}
}
