// Package api is the HTTP client for the UltraUpload backend.
//
// # Overview
//
// The backend contract is two JSON endpoints:
//
//	POST {API_URL}/login     {email, password}                         -> {token, user?} | {message}
//	POST {API_URL}/register  {email, password, nombre, apellido,
//	                          nombreUsuario, fechaNacimiento, DNI}      -> {token, user?} | {message}
//
// Client is the transport-agnostic contract; HTTPClient implements it over
// net/http. Each call makes exactly one network attempt.
//
// # Error Handling
//
// Every failure is returned as *Error, tagged with a Kind so callers switch
// on the kind instead of the message text. The sentinels ErrRejected,
// ErrDuplicate, ErrMissingToken and ErrTransport match the kinds through
// errors.Is.
//
// Duplicate-account detection prefers the structured "code" field of the
// response body, then HTTP 409, and only then falls back to looking for a
// marker phrase in the server message. The last rule depends on the wording
// of the backend and breaks silently if that wording changes.
package api
