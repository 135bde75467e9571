// Package save persists game sessions as versioned JSON records with a
// backup slot. Writes validate and size-check before touching storage, and
// loads fall back to the backup when the primary record is corrupt.
package save

import (
	"encoding/json"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

// Storage keys. The backup slot always holds the previous good record.
const (
	keyPrimary  = "save"
	keyBackup   = "save_backup"
	keySettings = "settings"
)

// Defaults for Options fields left at their zero value
const (
	DefaultMaxBytes      = 1 << 20 // 1 MiB
	DefaultMinInterval   = 10 * time.Second
	DefaultPlayTimeDelta = 30 * time.Second

	// maxBackoffShift caps the autosave retry interval at
	// MinInterval << maxBackoffShift.
	maxBackoffShift = 4
)

// Options enumerates every recognized store option and its default
type Options struct {
	// Version written into new records and required on load.
	// Empty means CurrentVersion.
	Version string

	// MaxBytes caps the serialized record size; zero means DefaultMaxBytes.
	MaxBytes int

	// MinInterval throttles autosaves; zero means DefaultMinInterval.
	MinInterval time.Duration

	// PlayTimeDelta is how much accumulated play time on its own counts as
	// a significant change. Zero means DefaultPlayTimeDelta.
	PlayTimeDelta time.Duration

	// Now is the clock, injectable for tests. Nil means time.Now.
	Now func() time.Time
}

func (o *Options) fillDefaults() {
	if o.Version == "" {
		o.Version = CurrentVersion
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.MinInterval <= 0 {
		o.MinInterval = DefaultMinInterval
	}
	if o.PlayTimeDelta <= 0 {
		o.PlayTimeDelta = DefaultPlayTimeDelta
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Store coordinates validated, versioned writes through a Storage backend.
// Not safe for concurrent use; the game loop owns it.
type Store struct {
	storage Storage
	opts    Options

	lastWrite    time.Time
	lastSaved    *GameState
	failures     int
	backoffShift uint
}

// NewStore creates a store over the given backend, filling option defaults
func NewStore(storage Storage, opts Options) *Store {
	opts.fillDefaults()
	return &Store{storage: storage, opts: opts}
}

// Save validates and writes the state immediately. The previous record, if
// any, is copied into the backup slot first; a failed backup copy aborts the
// save so a good prior record is never lost.
func (s *Store) Save(state *GameState) error {
	if err := Validate(state); err != nil {
		return err
	}

	rec := SaveRecord{
		Version:   s.opts.Version,
		Timestamp: s.opts.Now().Unix(),
		Payload:   *state,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if len(data) > s.opts.MaxBytes {
		log.WithFields(log.Fields{
			"size":  len(data),
			"limit": s.opts.MaxBytes,
		}).Error("save record over size limit, refusing to write")
		return ErrOversized
	}

	prev, readErr := s.storage.Read(keyPrimary)
	if readErr == nil && len(prev) > 0 {
		if err := s.storage.Write(keyBackup, prev); err != nil {
			return err
		}
	}

	if err := s.storage.Write(keyPrimary, data); err != nil {
		return err
	}

	saved := *state
	s.lastSaved = &saved
	s.lastWrite = s.opts.Now()
	s.failures = 0
	s.backoffShift = 0
	return nil
}

// Load reads and verifies the stored record. It returns (nil, nil) when no
// save exists, ErrVersionMismatch when the record is from another format
// version, and otherwise falls back to the backup slot on corruption.
func (s *Store) Load() (*GameState, error) {
	data, err := s.storage.Read(keyPrimary)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state, decodeErr := s.decode(data)
	if decodeErr == nil {
		return state, nil
	}
	if errors.Is(decodeErr, ErrVersionMismatch) {
		return nil, decodeErr
	}

	log.WithFields(log.Fields{
		"error": decodeErr,
	}).Warn("primary save unreadable, trying backup")

	backup, berr := s.storage.Read(keyBackup)
	if berr == nil && len(backup) > 0 {
		if state, err := s.decode(backup); err == nil {
			log.Info("recovered session from backup save")
			return state, nil
		}
	}
	return nil, decodeErr
}

func (s *Store) decode(data []byte) (*GameState, error) {
	var rec SaveRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	if rec.Version != s.opts.Version {
		return nil, ErrVersionMismatch
	}
	if err := Validate(&rec.Payload); err != nil {
		return nil, err
	}
	rec.Payload.normalize()
	return &rec.Payload, nil
}

// Clear removes the save, its backup, and the persisted settings
func (s *Store) Clear() error {
	var firstErr error
	for _, key := range []string{keyPrimary, keyBackup, keySettings} {
		if err := s.storage.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.lastSaved = nil
	s.lastWrite = time.Time{}
	return firstErr
}

// AutoSave writes the state if enough time has passed since the last write
// and the state changed in a way worth persisting. force skips both checks,
// for level transitions and quit. Returns whether a write happened.
//
// Failed writes back off exponentially so a broken backend does not get
// hammered every move.
func (s *Store) AutoSave(state *GameState, force bool) (bool, error) {
	if !force {
		interval := s.opts.MinInterval << s.backoffShift
		if s.opts.Now().Sub(s.lastWrite) < interval {
			return false, nil
		}
		if s.lastSaved != nil && !s.significantChange(state) {
			return false, nil
		}
	}

	if err := s.Save(state); err != nil {
		s.failures++
		if s.backoffShift < maxBackoffShift {
			s.backoffShift++
		}
		s.lastWrite = s.opts.Now()
		log.WithFields(log.Fields{
			"failures": s.failures,
			"error":    err,
		}).Error("autosave failed")
		return false, err
	}
	return true, nil
}

// ConsecutiveFailures reports how many autosaves in a row have failed
func (s *Store) ConsecutiveFailures() int {
	return s.failures
}

// significantChange reports whether the state moved enough from the last
// written snapshot to justify a write.
func (s *Store) significantChange(state *GameState) bool {
	last := s.lastSaved
	if state.CurrentLevel != last.CurrentLevel {
		return true
	}
	if state.PlayerPosition != last.PlayerPosition {
		return true
	}
	if state.ObjectivesCompleted != last.ObjectivesCompleted {
		return true
	}
	if state.GameStats.DeathCount != last.GameStats.DeathCount {
		return true
	}
	delta := state.GameStats.PlayTime - last.GameStats.PlayTime
	return delta >= int64(s.opts.PlayTimeDelta/time.Second)
}

// SaveSettings persists session settings separately from the save record so
// changing them does not rewrite, or depend on, the full save.
func (s *Store) SaveSettings(settings *Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.storage.Write(keySettings, data)
}

// LoadSettings reads persisted settings, returning (nil, nil) when absent
func (s *Store) LoadSettings() (*Settings, error) {
	data, err := s.storage.Read(keySettings)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
