// Package cli provides the interactive derivepass command-line client.
//
// The REPL plays the role of a form: the user sets the passphrase,
// application, increment, length and alphabet one field at a time and the
// password is re-derived after every change. The derived password is never
// printed unless asked for (show) and only reaches the clipboard on copy;
// wipe overwrites the clipboard with an empty string.
//
// A stored verification record (created with setup, removed with clear)
// catches a mistyped passphrase: on mismatch no password is produced.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
