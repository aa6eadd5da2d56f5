package boltdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"plan2cal/schedule"
	"plan2cal/storage"
)

type LoggerFn func(string, ...interface{})

type repo struct {
	d    *bolt.DB
	root []byte
	path string
	log  LoggerFn
	err  LoggerFn
}

const rootBucket = "plan"

// Config
type Config struct {
	Path  string
	LogFn LoggerFn
	ErrFn LoggerFn
}

// New returns a new session archive backed by a boltdb file.
func New(c Config) *repo {
	b := repo{
		root: []byte(rootBucket),
		path: c.Path,
		log:  func(string, ...interface{}) {},
		err:  func(string, ...interface{}) {},
	}
	if c.ErrFn != nil {
		b.err = c.ErrFn
	}
	if c.LogFn != nil {
		b.log = c.LogFn
	}

	return &b
}

func (r *repo) open() error {
	var err error
	r.d, err = bolt.Open(r.path, 0600, nil)
	if err != nil {
		return fmt.Errorf("could not open db %s %w", r.path, err)
	}
	err = r.d.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(r.root)
		if err != nil {
			return fmt.Errorf("unable to create root bucket %s: %w", r.root, err)
		}
		if !root.Writable() {
			return fmt.Errorf("non writeable root bucket %s", r.root)
		}
		return nil
	})
	return err
}

func (r *repo) close() error {
	if r.d == nil {
		return nil
	}
	return r.d.Close()
}

// sessionKey orders the archive chronologically: the date and start time
// prefix the key, the remaining fields disambiguate parallel sessions so a
// re-fetch overwrites instead of duplicating.
func sessionKey(ses schedule.ClassSession) []byte {
	return []byte(fmt.Sprintf("%s/%s/%s/%s",
		ses.Date, ses.Time.Start.Format("15:04"), ses.Room, ses.Subject))
}

func dayKey(t time.Time) []byte {
	return []byte(t.Format("2006-01-02"))
}

func keyDate(k []byte) []byte {
	if len(k) > 10 {
		return k[:10]
	}
	return k
}

// SaveSessions archives every session; a bad one is logged and skipped
// without failing the batch.
func (r *repo) SaveSessions(sessions schedule.Sessions) error {
	if err := r.open(); err != nil {
		return err
	}
	defer r.close()

	return r.d.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		for _, ses := range sessions {
			raw, err := json.Marshal(ses)
			if err != nil {
				r.err("could not marshal session %s: %s", ses, err)
				continue
			}
			if err = root.Put(sessionKey(ses), raw); err != nil {
				r.err("could not store session %s: %s", ses, err)
				continue
			}
			r.log("archived %s", ses)
		}
		return nil
	})
}

// LoadSessions returns the archived sessions whose date falls inside the
// cursor window, in key order, which is chronological order.
func (r *repo) LoadSessions(cursor storage.DateCursor) (schedule.Sessions, error) {
	if err := r.open(); err != nil {
		return nil, err
	}
	defer r.close()

	sessions := make(schedule.Sessions, 0)
	minKey := dayKey(cursor.Min())
	maxKey := dayKey(cursor.Max())

	err := r.d.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		c := root.Cursor()
		for k, raw := c.Seek(minKey); k != nil && bytes.Compare(keyDate(k), maxKey) < 0; k, raw = c.Next() {
			ses := schedule.ClassSession{}
			if err := json.Unmarshal(raw, &ses); err != nil {
				r.err("could not unmarshal session at %s: %s", k, err)
				continue
			}
			if ses.IsValid() {
				sessions = append(sessions, ses)
			}
		}
		return nil
	})
	return sessions, err
}
