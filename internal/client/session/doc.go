// Package session owns the client-side authentication state: who is logged
// in, whether an auth operation is in flight, and the language preference.
//
// A Manager is created once per process with an api.Client and a
// kvstore.Store, restored from the store with Restore, and then driven by
// the UI layer through Login, Register, Logout, UpdateAvatar and
// SetLanguage. Observers registered with Subscribe receive a Snapshot after
// every change.
//
// The in-memory state always mirrors the store: a change is applied in
// memory only after the corresponding write succeeded. Operations are not
// serialized against each other; if two run at once, the one that finishes
// last determines the state.
//
// Failures reach callers as *AuthenticationError, *RegistrationError or
// *StorageError, whose Message is safe to show to the user. Transport and
// storage detail stays in the wrapped error and the log.
package session
