package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/derivepass/internal/common"
	"github.com/dmitrijs2005/derivepass/internal/derive"
	"github.com/dmitrijs2005/derivepass/internal/logging"
	"github.com/dmitrijs2005/derivepass/internal/repositories/metadata"
	"github.com/dmitrijs2005/derivepass/internal/storage"
	"github.com/dmitrijs2005/derivepass/internal/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func newService(t *testing.T) (PasswordService, *verify.Store) {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.New(io.Discard, "debug")
	store := verify.NewStore(metadata.NewSQLiteRepository(db), log)
	return NewPasswordService(store, log), store
}

func request(passphrase string) derive.Request {
	return derive.Request{
		Passphrase:  passphrase,
		Application: "github",
		Increment:   0,
		Length:      40,
		Alphabet:    common.DefaultAlphabet,
	}
}

// ---- fake store ----

type fakeStore struct {
	CheckRet  verify.Outcome
	CheckErr  error
	CreateErr error
	ClearErr  error

	created []string
}

func (f *fakeStore) Check(context.Context, string) (verify.Outcome, error) {
	return f.CheckRet, f.CheckErr
}

func (f *fakeStore) Create(_ context.Context, p string) (verify.Record, error) {
	f.created = append(f.created, p)
	return verify.Record{}, f.CreateErr
}

func (f *fakeStore) Clear(context.Context) error { return f.ClearErr }

func (f *fakeStore) Exists(context.Context) (bool, error) { return len(f.created) > 0, nil }

// ---- Generate ----

func TestGenerate_NoRecordDerivesUnconditionally(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.Generate(context.Background(), request("correct horse battery staple"))
	require.NoError(t, err)
	assert.Equal(t, "7YubCgK1W7Rdx6Pa^WDeW!FwlUmX1pH14aRfiUT5", got)
}

func TestGenerate_GatedByRecord(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Setup(ctx, []byte("correct horse battery staple"), []byte("correct horse battery staple")))

	got, err := svc.Generate(ctx, request("correct horse battery staple"))
	require.NoError(t, err)
	assert.Equal(t, "7YubCgK1W7Rdx6Pa^WDeW!FwlUmX1pH14aRfiUT5", got)

	got, err = svc.Generate(ctx, request("correct horse battery stapel"))
	require.ErrorIs(t, err, common.ErrPassphraseMismatch)
	assert.Equal(t, "", got, "a mismatch must never produce a password")
}

func TestGenerate_VerificationUsesPassphraseAsTyped(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Setup(ctx, []byte("pass phrase"), []byte("pass phrase")))

	// Same derived password, but the record was made with the space.
	_, err := svc.Generate(ctx, request("passphrase"))
	require.ErrorIs(t, err, common.ErrPassphraseMismatch)
}

func TestGenerate_IncompleteIdentitySkipsCheck(t *testing.T) {
	fs := &fakeStore{CheckErr: errors.New("must not be called")}
	svc := NewPasswordService(fs, logging.New(io.Discard, "info"))

	got, err := svc.Generate(context.Background(), request(""))
	require.NoError(t, err)
	assert.Equal(t, "", got)

	req := request("pass")
	req.Application = ""
	got, err = svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestGenerate_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("db locked")
	svc := NewPasswordService(&fakeStore{CheckErr: boom}, logging.New(io.Discard, "info"))

	got, err := svc.Generate(context.Background(), request("pass"))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "", got)
}

func TestGenerate_InvalidAlphabet(t *testing.T) {
	svc := NewPasswordService(&fakeStore{CheckRet: verify.NoRecord}, logging.New(io.Discard, "info"))

	req := request("pass")
	req.Alphabet = ""
	_, err := svc.Generate(context.Background(), req)
	require.ErrorIs(t, err, common.ErrInvalidAlphabet)
	assert.True(t, IsUserError(err))
}

// ---- Setup / Clear ----

func TestSetup_Validation(t *testing.T) {
	fs := &fakeStore{}
	svc := NewPasswordService(fs, logging.New(io.Discard, "info"))
	ctx := context.Background()

	require.ErrorIs(t, svc.Setup(ctx, nil, nil), common.ErrPassphraseRequired)
	require.ErrorIs(t, svc.Setup(ctx, []byte("a"), []byte("b")), common.ErrPassphraseConfirm)
	require.ErrorIs(t, svc.Setup(ctx, []byte("a"), nil), common.ErrPassphraseConfirm)
	assert.Empty(t, fs.created)

	require.NoError(t, svc.Setup(ctx, []byte("ok"), []byte("ok")))
	assert.Equal(t, []string{"ok"}, fs.created)
}

func TestSetup_StoreError(t *testing.T) {
	boom := errors.New("read-only")
	svc := NewPasswordService(&fakeStore{CreateErr: boom}, logging.New(io.Discard, "info"))

	err := svc.Setup(context.Background(), []byte("x"), []byte("x"))
	require.ErrorIs(t, err, boom)
	assert.False(t, IsUserError(err))
}

func TestClearRecord_RemovesGate(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Setup(ctx, []byte("right"), []byte("right")))
	ok, err := svc.HasRecord(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.Generate(ctx, request("wrong"))
	require.ErrorIs(t, err, common.ErrPassphraseMismatch)

	require.NoError(t, svc.ClearRecord(ctx))

	ok, err = svc.HasRecord(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := svc.Generate(ctx, request("wrong"))
	require.NoError(t, err)
	assert.Len(t, got, 40)
}

func TestClearRecord_Error(t *testing.T) {
	boom := errors.New("nope")
	svc := NewPasswordService(&fakeStore{ClearErr: boom}, logging.New(io.Discard, "info"))
	require.ErrorIs(t, svc.ClearRecord(context.Background()), boom)
}
