package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	revealed() bool
	SetPassphrase(ctx context.Context) error
	SetApplication(ctx context.Context, arg string) error
	SetIncrement(ctx context.Context, arg string) error
	SetLength(ctx context.Context, arg string) error
	SetAlphabet(ctx context.Context, arg string) error
	Show(ctx context.Context) error
	Copy(ctx context.Context) error
	Wipe(ctx context.Context) error
	Status(ctx context.Context) error
	Setup(ctx context.Context) error
	Clear(ctx context.Context) error
}

const helpText = `Available commands:
  passphrase | p     set the master passphrase (hidden input)
  app | a [name]     set the application identifier
  inc | i [n]        set the increment (rotation counter)
  len | l [n]        set the password length
  chars | c [chars]  set the characters to draw from
  show               print the password
  copy               copy the password to the clipboard
  wipe               overwrite the clipboard
  status             show the form (without secrets)
  setup              store a hash of a new master passphrase
  clear              delete the stored hash
  exit | quit        leave the program`

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from reader, splits off the first token as the command
// and passes the rest of the line, unmodified, as the argument. The loop
// exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "derivepass%s> ", statusFn())

		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}

		cmd, arg, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText)

		case "p", "passphrase":
			_ = a.SetPassphrase(ctx)

		case "a", "app":
			_ = a.SetApplication(ctx, arg)

		case "i", "inc":
			_ = a.SetIncrement(ctx, arg)

		case "l", "len":
			_ = a.SetLength(ctx, arg)

		case "c", "chars":
			_ = a.SetAlphabet(ctx, arg)

		case "show":
			_ = a.Show(ctx)

		case "copy":
			_ = a.Copy(ctx)

		case "wipe":
			_ = a.Wipe(ctx)

		case "status":
			_ = a.Status(ctx)

		case "setup":
			_ = a.Setup(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "exit", "quit":
			if a.revealed() {
				fmt.Fprintln(w, "Warning: the password is still on the clipboard (use 'wipe' to clear it)")
			}
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
