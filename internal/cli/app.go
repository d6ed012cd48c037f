package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/derivepass/internal/clipboard"
	"github.com/dmitrijs2005/derivepass/internal/config"
	"github.com/dmitrijs2005/derivepass/internal/derive"
	"github.com/dmitrijs2005/derivepass/internal/filex"
	"github.com/dmitrijs2005/derivepass/internal/logging"
	"github.com/dmitrijs2005/derivepass/internal/repositories/metadata"
	"github.com/dmitrijs2005/derivepass/internal/services"
	"github.com/dmitrijs2005/derivepass/internal/storage"
	"github.com/dmitrijs2005/derivepass/internal/verify"
)

type App struct {
	config  *config.Config
	service services.PasswordService
	clip    *clipboard.Session
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	closer  io.Closer

	// form holds the current field values; password is derived from it
	// after every change.
	form     derive.Request
	password string
	formErr  error
}

// NewApp opens the local database named in c and wires the verification
// store, password service and system clipboard into an App reading stdin.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(c.DBPath); err != nil {
		log.Error(ctx, "error creating database directory", "path", c.DBPath, "error", err)
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	store := verify.NewStore(metadata.NewSQLiteRepository(db), log)
	svc := services.NewPasswordService(store, log)

	a := newApp(c, svc, clipboard.SystemClipboard{}, os.Stdin, os.Stdout, log)
	a.closer = db
	return a, nil
}

func newApp(c *config.Config, svc services.PasswordService, sink clipboard.Writer, in io.Reader, out io.Writer, log logging.Logger) *App {
	a := &App{
		config:  c,
		service: svc,
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
		form: derive.Request{
			Length:   c.Length,
			Alphabet: c.Alphabet,
		},
	}
	a.clip = clipboard.NewSession(sink, func(e clipboard.Event) {
		fmt.Fprintln(a.out, e.Message())
	})
	return a
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "derivepass (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

// Close releases the local database.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

func (a *App) getStatus() string {
	if a.password != "" {
		return " (ready)"
	}
	return ""
}

// refresh re-derives the password from the current form, mirroring a form
// that recomputes on every keystroke.
func (a *App) refresh(ctx context.Context) {
	a.password, a.formErr = a.service.Generate(ctx, a.form)
	if a.formErr == nil {
		return
	}
	if services.IsUserError(a.formErr) {
		fmt.Fprintln(a.out, "error:", a.formErr)
		return
	}
	a.log.Error(ctx, "derivation failed", "error", a.formErr)
	fmt.Fprintln(a.out, "error: derivation failed, see log")
}
