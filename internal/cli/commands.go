package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/derivepass/internal/clipboard"
	"github.com/dmitrijs2005/derivepass/internal/common"
)

// getSecret and getLine are indirections used to facilitate testing.
var (
	getSecret = GetSecret
	getLine   = GetLine
)

var errNotANumber = errors.New("value must be a whole number")

// SetPassphrase prompts for the master passphrase without echo.
func (a *App) SetPassphrase(ctx context.Context) error {
	pw, err := getSecret(a.reader, "Passphrase", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	a.form.Passphrase = string(pw)
	a.refresh(ctx)
	return nil
}

// SetApplication sets the application identifier, prompting when arg is empty.
func (a *App) SetApplication(ctx context.Context, arg string) error {
	if arg == "" {
		v, err := getLine(a.reader, "Application (a unique identifier for this password, e.g. application name)", a.out)
		if err != nil {
			return err
		}
		arg = v
	}
	a.form.Application = arg
	a.refresh(ctx)
	return nil
}

// SetIncrement sets how many times this password has been rotated.
func (a *App) SetIncrement(ctx context.Context, arg string) error {
	n, err := a.number(arg, "Increment (number of times you've rotated this password)")
	if err != nil {
		return err
	}
	a.form.Increment = uint64(n)
	a.refresh(ctx)
	return nil
}

// SetLength sets the password length.
func (a *App) SetLength(ctx context.Context, arg string) error {
	n, err := a.number(arg, "Length (longer is better)")
	if err != nil {
		return err
	}
	if n > common.MaxLength {
		err := fmt.Errorf("%w: at most %d characters", common.ErrInvalidLength, common.MaxLength)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	a.form.Length = int(n)
	a.refresh(ctx)
	return nil
}

// SetAlphabet sets the characters passwords are drawn from.
func (a *App) SetAlphabet(ctx context.Context, arg string) error {
	if arg == "" {
		v, err := getLine(a.reader, "Characters to use in this password (more is better)", a.out)
		if err != nil {
			return err
		}
		arg = v
	}
	a.form.Alphabet = arg
	a.refresh(ctx)
	return nil
}

// number parses a non-negative integer, prompting when arg is empty.
// Negative input clamps to 0.
func (a *App) number(arg, prompt string) (int64, error) {
	if strings.TrimSpace(arg) == "" {
		v, err := getLine(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
		arg = v
	}
	n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "error:", errNotANumber)
		return 0, errNotANumber
	}
	return max(0, n), nil
}

// Show prints the derived password.
func (a *App) Show(ctx context.Context) error {
	if a.password == "" {
		fmt.Fprintln(a.out, "No password (set passphrase and application)")
		return nil
	}
	fmt.Fprintln(a.out, a.password)
	return nil
}

// Copy reveals the derived password on the clipboard.
func (a *App) Copy(ctx context.Context) error {
	if err := a.clip.Reveal(a.password); err != nil {
		if !errors.Is(err, common.ErrNothingToReveal) {
			a.log.Error(ctx, "clipboard write failed", "error", err)
		}
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	a.log.Debug(ctx, "clipboard", "state", a.clip.State())
	return nil
}

// Wipe overwrites the clipboard if it holds the password.
func (a *App) Wipe(ctx context.Context) error {
	wiped, err := a.clip.Dismiss()
	if err != nil {
		a.log.Error(ctx, "clipboard wipe failed", "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	if !wiped {
		fmt.Fprintln(a.out, "Nothing to wipe")
	}
	return nil
}

// Status prints the form without revealing secrets.
func (a *App) Status(ctx context.Context) error {
	hasRecord, err := a.service.HasRecord(ctx)
	if err != nil {
		a.log.Error(ctx, "record lookup failed", "error", err)
	}

	fmt.Fprintf(a.out, "passphrase:  %s\n", setOrEmpty(a.form.Passphrase))
	fmt.Fprintf(a.out, "application: %s\n", setOrEmpty(a.form.Application))
	fmt.Fprintf(a.out, "increment:   %d\n", a.form.Increment)
	fmt.Fprintf(a.out, "length:      %d\n", a.form.Length)
	fmt.Fprintf(a.out, "characters:  %s\n", a.form.Alphabet)
	switch {
	case a.formErr != nil:
		fmt.Fprintf(a.out, "password:    unavailable (%v)\n", a.formErr)
	case a.password != "":
		fmt.Fprintf(a.out, "password:    ready\n")
	default:
		fmt.Fprintf(a.out, "password:    empty\n")
	}
	fmt.Fprintf(a.out, "stored hash: %t\n", hasRecord)
	fmt.Fprintf(a.out, "clipboard:   %s\n", a.clip.State())
	return nil
}

func setOrEmpty(s string) string {
	if s == "" {
		return "empty"
	}
	return "set"
}

// Setup prompts for a new master passphrase twice and stores its
// verification record, replacing any previous one.
func (a *App) Setup(ctx context.Context) error {
	pw, err := getSecret(a.reader, "New passphrase (long and memorable)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	confirm, err := getSecret(a.reader, "Confirm passphrase", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.service.Setup(ctx, pw, confirm); err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	fmt.Fprintln(a.out, "Passphrase hash stored")
	a.refresh(ctx)
	return nil
}

// Clear deletes the stored verification record.
func (a *App) Clear(ctx context.Context) error {
	if err := a.service.ClearRecord(ctx); err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	fmt.Fprintln(a.out, "Stored hash cleared")
	a.refresh(ctx)
	return nil
}

// revealed reports whether the clipboard still holds the password.
func (a *App) revealed() bool {
	return a.clip.State() == clipboard.Revealed
}
