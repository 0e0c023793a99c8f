// SPDX-License-Identifier: EPL-2.0

// Package store persists recordings in a LevelDB database.
//
// Each recording occupies two keys: meta/<id> holds a small JSON document
// (duration, trim points, finalized flag, creation time) and audio/<id>
// holds the raw memo bytes exactly as pcm.Buffer.Encode produced them.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/ik5/voicememo/recording"
)

// ErrNotFound is returned when no recording exists for an ID.
var ErrNotFound = errors.New("recording not found")

const (
	metaPrefix  = "meta/"
	audioPrefix = "audio/"
)

type meta struct {
	Duration  float64   `json:"duration"`
	TrimStart float64   `json:"trim_start"`
	TrimEnd   float64   `json:"trim_end"`
	Finalized bool      `json:"finalized"`
	Created   time.Time `json:"created"`
	AudioSize int       `json:"audio_size"`
}

// Store is a recording database.
type Store struct {
	db *leveldb.DB
}

// Open opens or creates the database in dir.
func Open(dir string) (*Store, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("opening recording store: %w", err)
	}
	log.Debugf("Opened recording store at %s", dir)

	return &Store{db: db}, nil
}

// OpenMemory opens a store that lives only in memory.
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("opening memory store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func metaKey(id uuid.UUID) []byte  { return []byte(metaPrefix + id.String()) }
func audioKey(id uuid.UUID) []byte { return []byte(audioPrefix + id.String()) }

// Put writes r, replacing any previous version.
func (s *Store) Put(r *recording.Recording) error {
	start, end := r.Trim()
	m, err := json.Marshal(meta{
		Duration:  r.FullDuration(),
		TrimStart: start,
		TrimEnd:   end,
		Finalized: r.IsFinalized(),
		Created:   r.Created,
		AudioSize: len(r.Data()),
	})
	if err != nil {
		return fmt.Errorf("encoding recording %s: %w", r.ID, err)
	}

	batch := new(leveldb.Batch)
	batch.Put(metaKey(r.ID), m)
	batch.Put(audioKey(r.ID), r.Data())
	if err := s.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("writing recording %s: %w", r.ID, err)
	}
	log.Debugf("Stored recording %s (%d bytes)", r.ID, len(r.Data()))

	return nil
}

// Get loads the recording with the given ID.
func (s *Store) Get(id uuid.UUID) (*recording.Recording, error) {
	m, err := s.meta(id)
	if err != nil {
		return nil, err
	}

	data, err := s.db.Get(audioKey(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, fmt.Errorf("audio for %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading audio for %s: %w", id, err)
	}
	if len(data) != m.AudioSize {
		log.Warnf("Recording %s has %d audio bytes, metadata says %d", id, len(data), m.AudioSize)
	}

	return recording.Restore(id, m.Created, data, m.Duration, m.TrimStart, m.TrimEnd, m.Finalized), nil
}

func (s *Store) meta(id uuid.UUID) (meta, error) {
	var m meta

	raw, err := s.db.Get(metaKey(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return m, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return m, fmt.Errorf("reading recording %s: %w", id, err)
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("decoding recording %s: %w", id, err)
	}

	return m, nil
}

// Delete removes a recording. Deleting a missing recording returns ErrNotFound.
func (s *Store) Delete(id uuid.UUID) error {
	if _, err := s.meta(id); err != nil {
		return err
	}

	batch := new(leveldb.Batch)
	batch.Delete(metaKey(id))
	batch.Delete(audioKey(id))
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("deleting recording %s: %w", id, err)
	}
	log.Debugf("Deleted recording %s", id)

	return nil
}

// Summary describes a stored recording without its audio.
type Summary struct {
	ID        uuid.UUID
	Created   time.Time
	Duration  float64
	Finalized bool
}

// List returns every stored recording, oldest first.
func (s *Store) List() ([]Summary, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(metaPrefix)), nil)
	defer iter.Release()

	var res []Summary
	for iter.Next() {
		id, err := uuid.Parse(string(iter.Key()[len(metaPrefix):]))
		if err != nil {
			log.Warnf("Skipping malformed key %q", iter.Key())
			continue
		}

		var m meta
		if err := json.Unmarshal(iter.Value(), &m); err != nil {
			log.Warnf("Skipping undecodable recording %s: %v", id, err)
			continue
		}

		r := recording.Restore(id, m.Created, nil, m.Duration, m.TrimStart, m.TrimEnd, m.Finalized)
		res = append(res, Summary{
			ID:        id,
			Created:   m.Created,
			Duration:  r.Duration(),
			Finalized: m.Finalized,
		})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("listing recordings: %w", err)
	}

	sort.Slice(res, func(i, j int) bool { return res[i].Created.Before(res[j].Created) })

	return res, nil
}
