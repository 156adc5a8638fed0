package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketLayouts = []byte("layouts")
)

// ErrLayoutNotFound indicates no layout is saved under the requested name
var ErrLayoutNotFound = errors.New("layout not found")

// Layout is a saved arrangement of panes. Sizes are the splitter's pane
// percentages in pane order.
type Layout struct {
	Name      string    `json:"name"`
	Direction string    `json:"direction"`
	Sizes     []float64 `json:"sizes"`
	SavedAt   time.Time `json:"saved_at"`
}

// LayoutStore keeps named layouts in BoltDB with an in-memory read cache.
type LayoutStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	cache map[string][]byte
}

// NewLayoutStore opens (or creates) layouts.db in dir. An empty dir keeps
// layouts in memory only.
func NewLayoutStore(dir string) (*LayoutStore, error) {
	if dir == "" {
		return &LayoutStore{cache: make(map[string][]byte)}, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "layouts.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketLayouts)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &LayoutStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *LayoutStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the layout saved under name.
func (s *LayoutStore) Get(name string) (Layout, error) {
	var l Layout
	data, ok := s.get(name)
	if !ok {
		return l, fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
	}
	if err := json.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("failed to decode layout %q: %w", name, err)
	}
	return l, nil
}

// Save stores l under l.Name, stamping SavedAt when unset.
func (s *LayoutStore) Save(l Layout) error {
	if l.Name == "" {
		return errors.New("layout name is empty")
	}
	if l.SavedAt.IsZero() {
		l.SavedAt = time.Now()
	}
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[l.Name] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLayouts).Put([]byte(l.Name), data)
	})
}

// Delete removes the layout saved under name, if any.
func (s *LayoutStore) Delete(name string) error {
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLayouts).Delete([]byte(name))
	})
}

// Names lists saved layouts in name order.
func (s *LayoutStore) Names() ([]string, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		names := make([]string, 0, len(s.cache))
		for k := range s.cache {
			names = append(names, k)
		}
		sort.Strings(names)
		return names, nil
	}

	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLayouts).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

func (s *LayoutStore) get(name string) ([]byte, bool) {
	s.mu.RLock()
	if data, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return data, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketLayouts).Get([]byte(name)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return nil, false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[name] = data
	s.mu.Unlock()
	return data, true
}
