package AdminService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/FlagGate/src/model/db"
	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
	"gitlab.com/devpro_studio/FlagGate/src/repository/FlagHistoryRepository"
	"gitlab.com/devpro_studio/FlagGate/src/repository/FlagRepository"
	"gitlab.com/devpro_studio/FlagGate/src/repository/VersionRepository"
	"gitlab.com/devpro_studio/FlagGate/src/service/FlagStore"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	"gitlab.com/devpro_studio/Paranoia/paranoia/service"
)

// Service applies admin writes: durable storage first, then the in-memory
// store, then the shared version so other instances reload.
type Service struct {
	service.Mock
	flags    FlagRepository.Interface
	history  FlagHistoryRepository.Interface
	versions VersionRepository.Interface
	store    FlagStore.Interface
	logger   interfaces.ILogger
	now      func() time.Time
}

func New(name string) *Service {
	return &Service{Mock: service.Mock{NamePkg: name}, now: time.Now}
}

func NewForTest(
	flags FlagRepository.Interface,
	history FlagHistoryRepository.Interface,
	versions VersionRepository.Interface,
	store FlagStore.Interface,
	logger interfaces.ILogger,
) *Service {
	return &Service{
		flags:    flags,
		history:  history,
		versions: versions,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

func (t *Service) Init(app interfaces.IEngine, _ map[string]interface{}) error {
	t.logger = app.GetLogger()
	t.flags = app.GetModule(interfaces.ModuleRepository, names.FlagRepository).(FlagRepository.Interface)
	t.history = app.GetModule(interfaces.ModuleRepository, names.FlagHistoryRepository).(FlagHistoryRepository.Interface)
	t.versions = app.GetModule(interfaces.ModuleRepository, names.VersionRepository).(VersionRepository.Interface)
	t.store = app.GetModule(interfaces.ModuleService, names.FlagStore).(FlagStore.Interface)
	return nil
}

func (t *Service) CreateOrUpdateFlag(ctx context.Context, record dto.FlagRecord) (dto.FlagRecord, error) {
	rec := record.Clone()
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return dto.FlagRecord{}, err
	}

	if cur, err := t.store.Get(rec.ID); err == nil && cur.SameDefinition(rec) {
		return cur, nil
	}

	v, err := t.flags.UpsertFlag(ctx, rec.ToDB())
	if err != nil {
		return dto.FlagRecord{}, fmt.Errorf("save flag %q: %w", rec.ID, err)
	}
	rec.Version = v
	rec.UpdatedAt = t.now().UTC()

	if err := t.store.Upsert(rec); err != nil {
		return dto.FlagRecord{}, err
	}
	t.bumpVersion(ctx)

	return rec, nil
}

func (t *Service) GetFlag(_ context.Context, id string) (dto.FlagRecord, error) {
	return t.store.Get(id)
}

func (t *Service) ListFlags(_ context.Context) []dto.FlagRecord {
	return t.store.List()
}

func (t *Service) DeleteFlag(ctx context.Context, id string) error {
	err := t.flags.DeleteFlag(ctx, id)
	if errors.Is(err, FlagRepository.ErrFlagNotFound) {
		// storage is the source of truth; drop any stale in-memory copy
		if t.store.Remove(id) == nil {
			t.bumpVersion(ctx)
		}
		return &dto.NotFoundError{ID: id}
	}
	if err != nil {
		return fmt.Errorf("delete flag %q: %w", id, err)
	}

	_ = t.store.Remove(id)
	t.bumpVersion(ctx)

	return nil
}

func (t *Service) FlagHistory(ctx context.Context, id string, limit int) ([]*db.FlagHistory, error) {
	return t.history.ListHistory(ctx, id, limit)
}

func (t *Service) bumpVersion(ctx context.Context) {
	if _, err := t.versions.Bump(ctx); err != nil {
		t.logger.Error(ctx, fmt.Errorf("bump flag version: %w", err))
	}
}
