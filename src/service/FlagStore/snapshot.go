package FlagStore

import (
	"sort"

	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
)

// Snapshot is an immutable point-in-time view of the flag set. A write to the
// store publishes a new Snapshot and never touches one already handed out.
type Snapshot struct {
	flags map[string]*dto.FlagRecord
	ids   []string
}

var emptySnapshot = &Snapshot{flags: map[string]*dto.FlagRecord{}}

func newSnapshot(flags map[string]*dto.FlagRecord) *Snapshot {
	ids := make([]string, 0, len(flags))
	for id := range flags {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &Snapshot{flags: flags, ids: ids}
}

// Lookup returns a shallow copy of the record. Date pointers are shared with
// the snapshot and must be treated as read-only.
func (s *Snapshot) Lookup(id string) (dto.FlagRecord, bool) {
	rec, ok := s.flags[id]
	if !ok {
		return dto.FlagRecord{}, false
	}
	return *rec, true
}

func (s *Snapshot) Len() int {
	return len(s.ids)
}

// Each visits records in id order.
func (s *Snapshot) Each(fn func(rec dto.FlagRecord)) {
	for _, id := range s.ids {
		fn(*s.flags[id])
	}
}

// cloneMap copies the index for a writer. Record pointers are shared: records
// are never mutated once installed.
func (s *Snapshot) cloneMap(extra int) map[string]*dto.FlagRecord {
	out := make(map[string]*dto.FlagRecord, len(s.flags)+extra)
	for k, v := range s.flags {
		out[k] = v
	}
	return out
}
