package FlagStore

import (
	"context"

	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
)

type Interface interface {
	Upsert(record dto.FlagRecord) error
	Get(id string) (dto.FlagRecord, error)
	List() []dto.FlagRecord
	Remove(id string) error
	// Generation changes on every write; pass it to Replace to detect
	// writes that happened while a reload was reading storage.
	Generation() uint64
	Replace(c context.Context, records []dto.FlagRecord, since uint64) (int, bool)
	Snapshot() *Snapshot
}
