package FlagStore

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	"gitlab.com/devpro_studio/Paranoia/paranoia/service"
)

// Store keeps the current flag set in memory. Writers serialise on mu and
// publish a fresh Snapshot; readers load the pointer and never lock.
type Store struct {
	service.Mock
	logger interfaces.ILogger

	mu      sync.Mutex
	gen     uint64
	current atomic.Pointer[Snapshot]
}

func New(name string) *Store {
	s := &Store{
		Mock: service.Mock{
			NamePkg: name,
		},
	}
	s.current.Store(emptySnapshot)
	return s
}

func NewForTest(logger interfaces.ILogger) *Store {
	s := &Store{logger: logger}
	s.current.Store(emptySnapshot)
	return s
}

func (t *Store) Init(app interfaces.IEngine, _ map[string]interface{}) error {
	t.logger = app.GetLogger()

	return nil
}

func (t *Store) Snapshot() *Snapshot {
	if s := t.current.Load(); s != nil {
		return s
	}
	return emptySnapshot
}

func (t *Store) Upsert(record dto.FlagRecord) error {
	rec := record.Clone()
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	flags := t.Snapshot().cloneMap(1)
	flags[rec.ID] = &rec
	t.current.Store(newSnapshot(flags))
	t.gen++

	return nil
}

func (t *Store) Get(id string) (dto.FlagRecord, error) {
	rec, ok := t.Snapshot().Lookup(id)
	if !ok {
		return dto.FlagRecord{}, &dto.NotFoundError{ID: id}
	}
	return rec.Clone(), nil
}

func (t *Store) List() []dto.FlagRecord {
	snap := t.Snapshot()
	out := make([]dto.FlagRecord, 0, snap.Len())
	snap.Each(func(rec dto.FlagRecord) {
		out = append(out, rec.Clone())
	})
	return out
}

func (t *Store) Remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := t.Snapshot()
	if _, ok := snap.flags[id]; !ok {
		return &dto.NotFoundError{ID: id}
	}

	flags := snap.cloneMap(0)
	delete(flags, id)
	t.current.Store(newSnapshot(flags))
	t.gen++

	return nil
}

func (t *Store) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen
}

// Replace swaps the whole flag set, used after a reload from storage. Records
// failing validation are dropped so they evaluate as missing. Nothing is
// installed and false is returned when the store was written after since was
// read.
func (t *Store) Replace(c context.Context, records []dto.FlagRecord, since uint64) (int, bool) {
	flags := make(map[string]*dto.FlagRecord, len(records))
	for _, r := range records {
		rec := r.Clone()
		rec.Normalize()
		if err := rec.Validate(); err != nil {
			t.logger.Error(c, fmt.Errorf("skip flag %q on reload: %w", rec.ID, err))
			continue
		}
		flags[rec.ID] = &rec
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.gen != since {
		return 0, false
	}
	t.current.Store(newSnapshot(flags))
	t.gen++

	return len(flags), true
}
