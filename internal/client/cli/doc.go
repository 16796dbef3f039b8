// Package cli provides the interactive UltraUpload command-line client.
//
// It restores the persisted session on start, then runs a REPL that drives
// the session manager (login, register, logout, avatar, language) and the
// profile manager (bio, website, social links).
//
// Errors coming from the session manager are shown using only their
// user-facing message; details go to the log.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
