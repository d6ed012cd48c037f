package verify

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/derivepass/internal/common"
	"github.com/dmitrijs2005/derivepass/internal/logging"
	"github.com/dmitrijs2005/derivepass/internal/repositories/metadata"
)

// Store persists a single Record under common.VerificationRecordKey.
type Store struct {
	repo metadata.Repository
	log  logging.Logger
}

// NewStore returns a Store backed by repo.
func NewStore(repo metadata.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Load returns the persisted record, or nil when there is none. A corrupt
// record is logged and treated as absent; only storage failures are errors.
func (s *Store) Load(ctx context.Context) (*Record, error) {
	data, err := s.repo.Get(ctx, common.VerificationRecordKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	rec, err := ParseRecord(data)
	if err != nil {
		if errors.Is(err, common.ErrCorruptRecord) {
			s.log.Warn(ctx, "ignoring verification record", "key", common.VerificationRecordKey, "error", err)
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// Save overwrites the persisted record with rec.
func (s *Store) Save(ctx context.Context, rec Record) error {
	data, err := rec.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode verification record: %w", err)
	}
	return s.repo.Set(ctx, common.VerificationRecordKey, data)
}

// Create builds a new record for passphrase and persists it, replacing any
// previous one.
func (s *Store) Create(ctx context.Context, passphrase string) (Record, error) {
	rec, err := NewRecord(passphrase)
	if err != nil {
		return Record{}, err
	}
	if err := s.Save(ctx, rec); err != nil {
		return Record{}, err
	}
	s.log.Info(ctx, "verification record created", "key", common.VerificationRecordKey)
	return rec, nil
}

// Check loads the persisted record and checks passphrase against it.
func (s *Store) Check(ctx context.Context, passphrase string) (Outcome, error) {
	rec, err := s.Load(ctx)
	if err != nil {
		return NoRecord, err
	}
	return Check(passphrase, rec), nil
}

// Exists reports whether a usable record is persisted.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	rec, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

// Clear deletes the persisted record. Subsequent checks return NoRecord.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.VerificationRecordKey); err != nil {
		return err
	}
	s.log.Info(ctx, "verification record cleared", "key", common.VerificationRecordKey)
	return nil
}
