// Package services contains the application services used by the CLI.
// This file wires the derivation core to the verification store: derive a
// password (gated by the stored record), run the setup flow, and clear the
// record.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/derivepass/internal/common"
	"github.com/dmitrijs2005/derivepass/internal/derive"
	"github.com/dmitrijs2005/derivepass/internal/logging"
	"github.com/dmitrijs2005/derivepass/internal/verify"
)

// PasswordService defines the operations the CLI form calls into.
//
// Contract:
//   - Generate: derive the password for req. When a verification record
//     exists and the passphrase does not match it, returns "" and
//     common.ErrPassphraseMismatch instead of a wrong password.
//   - Setup: persist a new verification record for passphrase, replacing
//     any previous one. passphrase and confirm must be non-empty and equal.
//   - ClearRecord: delete the verification record.
//   - HasRecord: report whether a usable record is stored.
type PasswordService interface {
	Generate(ctx context.Context, req derive.Request) (string, error)
	Setup(ctx context.Context, passphrase, confirm []byte) error
	ClearRecord(ctx context.Context) error
	HasRecord(ctx context.Context) (bool, error)
}

// VerificationStore is the subset of *verify.Store used here.
type VerificationStore interface {
	Check(ctx context.Context, passphrase string) (verify.Outcome, error)
	Create(ctx context.Context, passphrase string) (verify.Record, error)
	Clear(ctx context.Context) error
	Exists(ctx context.Context) (bool, error)
}

type passwordService struct {
	store VerificationStore
	log   logging.Logger
}

// NewPasswordService constructs a PasswordService over store.
func NewPasswordService(store VerificationStore, log logging.Logger) PasswordService {
	return &passwordService{store: store, log: log}
}

func (s *passwordService) Generate(ctx context.Context, req derive.Request) (string, error) {
	if !req.Seed().Complete() {
		return "", nil
	}

	outcome, err := s.store.Check(ctx, req.Passphrase)
	if err != nil {
		return "", err
	}
	s.log.Debug(ctx, "passphrase checked", "outcome", outcome)

	if outcome == verify.Mismatch {
		return "", common.ErrPassphraseMismatch
	}

	password, err := derive.Generate(req)
	if err != nil {
		return "", err
	}
	s.log.Debug(ctx, "password derived", "length", req.Length, "increment", req.Increment)
	return password, nil
}

func (s *passwordService) Setup(ctx context.Context, passphrase, confirm []byte) error {
	if len(passphrase) == 0 {
		return common.ErrPassphraseRequired
	}
	if string(passphrase) != string(confirm) {
		return common.ErrPassphraseConfirm
	}

	if _, err := s.store.Create(ctx, string(passphrase)); err != nil {
		s.log.Error(ctx, "setup failed", "error", err)
		return err
	}
	return nil
}

func (s *passwordService) ClearRecord(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error(ctx, "clear failed", "error", err)
		return err
	}
	return nil
}

func (s *passwordService) HasRecord(ctx context.Context) (bool, error) {
	return s.store.Exists(ctx)
}

// IsUserError reports whether err is a validation problem to show the user
// rather than a failure to log.
func IsUserError(err error) bool {
	return errors.Is(err, common.ErrPassphraseMismatch) ||
		errors.Is(err, common.ErrInvalidAlphabet) ||
		errors.Is(err, common.ErrInvalidLength) ||
		errors.Is(err, common.ErrPassphraseRequired) ||
		errors.Is(err, common.ErrPassphraseConfirm) ||
		errors.Is(err, common.ErrNothingToReveal)
}
