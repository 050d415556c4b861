package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/dgraph-io/badger/v4"
)

const (
	sequenceKey       = "seq:append"
	sequenceBandwidth = 256

	// DefaultConflictTimeout is how long an Update keeps replaying after write conflicts.
	DefaultConflictTimeout = 30 * time.Second
)

// IStore runs a unit of work inside a single badger transaction.
// Returning an error from fn discards every write made through the Tx.
type IStore interface {
	Update(fn func(tx *Tx) error) error
	View(fn func(tx *Tx) error) error
}

type Store struct {
	db              *badger.DB
	log             *slog.Logger
	sequence        *badger.Sequence
	conflictTimeout time.Duration
}

// NewStore wraps an opened badger database. conflictTimeout bounds how long an
// Update is replayed after badger reports a write conflict; zero or less means
// DefaultConflictTimeout.
func NewStore(db *badger.DB, log *slog.Logger, conflictTimeout time.Duration) (*Store, error) {
	sequence, err := db.GetSequence([]byte(sequenceKey), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("append sequence: %w", err)
	}
	if conflictTimeout <= 0 {
		conflictTimeout = DefaultConflictTimeout
	}
	return &Store{
		db:              db,
		log:             log,
		sequence:        sequence,
		conflictTimeout: conflictTimeout,
	}, nil
}

// Close releases the leased sequence range. The database itself is owned by the caller.
func (s *Store) Close() error {
	return s.sequence.Release()
}

// Update runs fn in a read-write transaction. Badger aborts a commit when a
// key read by fn was written by a concurrent transaction; the whole closure
// is then replayed so it observes the winner's rows. Every replay follows a
// commit by some other writer, so replaying makes progress; only a conflict
// lasting past conflictTimeout reaches the caller.
func (s *Store) Update(fn func(tx *Tx) error) error {
	attempt := 0
	_, err := backoff.Retry(context.Background(), func() (struct{}, error) {
		attempt++
		err := s.db.Update(func(txn *badger.Txn) error {
			return fn(&Tx{txn: txn, sequence: s.sequence})
		})
		if err != nil && !errors.Is(err, badger.ErrConflict) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(conflictBackOff()),
		backoff.WithMaxElapsedTime(s.conflictTimeout),
		backoff.WithNotify(func(_ error, wait time.Duration) {
			s.log.Debug("Transaction conflict, replaying", "attempt", attempt, "wait", wait)
		}),
	)
	return err
}

// conflictBackOff spreads replays of colliding writers with jitter so they
// do not wake up in lockstep and collide again.
func conflictBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Millisecond
	b.RandomizationFactor = 0.5
	b.Multiplier = 2
	b.MaxInterval = 50 * time.Millisecond
	return b
}

func (s *Store) View(fn func(tx *Tx) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		return fn(&Tx{txn: txn, sequence: s.sequence})
	})
}

// Tx exposes the typed repositories bound to one badger transaction.
type Tx struct {
	txn      *badger.Txn
	sequence *badger.Sequence
}

func (tx *Tx) exists(key string) (bool, error) {
	_, err := tx.txn.Get([]byte(key))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// load decodes the value under key into v. It returns false when the key is absent.
func (tx *Tx) load(key string, v any) (bool, error) {
	item, err := tx.txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
	if err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (tx *Tx) store(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return tx.txn.Set([]byte(key), data)
}

// scan copies every value whose key starts with prefix, in key order.
// Values are copied so they outlive the iterator.
func (tx *Tx) scan(prefix string) ([][]byte, error) {
	var values [][]byte
	options := badger.DefaultIteratorOptions
	options.Prefix = []byte(prefix)
	it := tx.txn.NewIterator(options)
	defer it.Close()

	for it.Seek(options.Prefix); it.ValidForPrefix(options.Prefix); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
	}
	return values, nil
}

// scanKeys returns the key suffixes found under prefix, in key order.
func (tx *Tx) scanKeys(prefix string) ([]string, error) {
	var suffixes []string
	options := badger.DefaultIteratorOptions
	options.Prefix = []byte(prefix)
	options.PrefetchValues = false
	it := tx.txn.NewIterator(options)
	defer it.Close()

	for it.Seek(options.Prefix); it.ValidForPrefix(options.Prefix); it.Next() {
		suffixes = append(suffixes, string(it.Item().Key()[len(prefix):]))
	}
	return suffixes, nil
}

func decodeAll[T any](values [][]byte) ([]T, error) {
	out := make([]T, 0, len(values))
	for _, val := range values {
		var v T
		if err := json.Unmarshal(val, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// nextSequence returns a process-wide strictly increasing number used to
// keep append-only collections in insertion order.
func (tx *Tx) nextSequence() (uint64, error) {
	return tx.sequence.Next()
}

// CountAll returns the number of keys stored under each namespace.
func (tx *Tx) CountAll() (map[string]int, error) {
	counts := make(map[string]int, len(Prefixes))
	for _, prefix := range Prefixes {
		keys, err := tx.scanKeys(prefix)
		if err != nil {
			return nil, err
		}
		counts[prefix] = len(keys)
	}
	return counts, nil
}
