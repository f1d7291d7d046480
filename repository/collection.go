// Package repository implements the generic record repository: typed CRUD
// collections persisted as JSON arrays in a key-value store.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/store"
)

// ErrBadPatch marks a patch whose value types do not match the record
// shape. Callers map it to a client error, not a server one.
var ErrBadPatch = errors.New("patch does not match record shape")

// Record is satisfied by a pointer to any entity embedding entity.Base.
type Record interface {
	RecordID() string
	SetRecordID(id string)
}

// Collection is a typed view over one named collection. Callers always
// receive decoded copies, never aliases into the stored data; mutations go
// through Update/Replace.
//
// Writes are read-modify-write cycles serialized by a per-collection
// mutex. That covers every consumer inside one process; a second process
// on the same database file is an unguarded last-write-wins race.
type Collection[T any, P interface {
	*T
	Record
}] struct {
	store store.Store
	name  string
	seed  []T

	mu sync.Mutex
}

func NewCollection[T any, P interface {
	*T
	Record
}](s store.Store, name string, seed []T) *Collection[T, P] {
	return &Collection[T, P]{store: s, name: name, seed: seed}
}

func (c *Collection[T, P]) Name() string { return c.name }

// load reads and decodes the collection. A missing key triggers lazy
// seeding; seeding never overwrites existing data. Malformed stored JSON
// is treated as a cold start, not an error.
func (c *Collection[T, P]) load() ([]T, error) {
	raw, ok, err := c.store.Get(c.name)
	if err != nil {
		return nil, err
	}
	if !ok {
		items := make([]T, len(c.seed))
		copy(items, c.seed)
		for i := range items {
			if P(&items[i]).RecordID() == "" {
				P(&items[i]).SetRecordID(uuid.NewString())
			}
		}
		if err := c.save(items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, nil
	}
	return items, nil
}

func (c *Collection[T, P]) save(items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Set(c.name, raw)
}

func (c *Collection[T, P]) GetAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Collection[T, P]) GetByID(id string) (*T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return nil, false, err
	}
	for i := range items {
		if P(&items[i]).RecordID() == id {
			item := items[i]
			return &item, true, nil
		}
	}
	return nil, false, nil
}

// Create assigns a fresh id, appends and persists. The input's id field is
// ignored.
func (c *Collection[T, P]) Create(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		var zero T
		return zero, err
	}
	P(&item).SetRecordID(uuid.NewString())
	items = append(items, item)
	if err := c.save(items); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// Update shallow-merges patch into the stored record, field names matching
// the JSON tags. The id field cannot be patched. Returns false without
// writing when the id is absent.
func (c *Collection[T, P]) Update(id string, patch map[string]any) (*T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return nil, false, err
	}
	for i := range items {
		if P(&items[i]).RecordID() != id {
			continue
		}
		merged, err := Merge(items[i], patch)
		if err != nil {
			return nil, false, err
		}
		P(&merged).SetRecordID(id)
		items[i] = merged
		if err := c.save(items); err != nil {
			return nil, false, err
		}
		out := merged
		return &out, true, nil
	}
	return nil, false, nil
}

// Replace swaps the whole record, keeping its id. Used where the caller
// already holds the full desired state (e.g. cart rewrites).
func (c *Collection[T, P]) Replace(id string, item T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return false, err
	}
	for i := range items {
		if P(&items[i]).RecordID() == id {
			P(&item).SetRecordID(id)
			items[i] = item
			return true, c.save(items)
		}
	}
	return false, nil
}

// ReplaceAll persists the given slice as the whole collection in one
// write. Multi-record invariants (one default address per user) rely on
// this being a single atomic Set.
func (c *Collection[T, P]) ReplaceAll(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(items)
}

// Mutate runs fn over the decoded collection and persists its result in
// one write, all under the collection lock. An error from fn aborts
// without writing. This is the primitive for multi-record invariants that
// must never be observed half-applied.
func (c *Collection[T, P]) Mutate(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return err
	}
	out, err := fn(items)
	if err != nil {
		return err
	}
	return c.save(out)
}

// NewID returns a fresh record id for callers that assemble records
// themselves before a Mutate write.
func NewID() string { return uuid.NewString() }

func (c *Collection[T, P]) Remove(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return false, err
	}
	for i := range items {
		if P(&items[i]).RecordID() == id {
			items = append(items[:i], items[i+1:]...)
			return true, c.save(items)
		}
	}
	return false, nil
}

// Merge applies patch over the record through its JSON form, the same
// semantics as spreading a partial object over the stored one. A patch
// value of the wrong type comes back as ErrBadPatch.
func Merge[T any](existing T, patch map[string]any) (T, error) {
	var zero T
	raw, err := json.Marshal(existing)
	if err != nil {
		return zero, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return zero, err
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		m[k] = v
	}
	mergedRaw, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrBadPatch, err)
	}
	var merged T
	if err := json.Unmarshal(mergedRaw, &merged); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrBadPatch, err)
	}
	return merged, nil
}
