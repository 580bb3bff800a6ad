package SyncService

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v5"
	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/FlagGate/src/model/db"
	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
	"gitlab.com/devpro_studio/FlagGate/src/repository/FlagRepository"
	"gitlab.com/devpro_studio/FlagGate/src/repository/VersionRepository"
	"gitlab.com/devpro_studio/FlagGate/src/service/FlagStore"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	"gitlab.com/devpro_studio/Paranoia/paranoia/service"
	"gitlab.com/devpro_studio/go_utils/decode"
)

type Config struct {
	// Interval between version checks, in seconds.
	Interval int `yaml:"interval"`
	// MaxTries bounds the reload retries of one sync round.
	MaxTries uint `yaml:"max_tries"`
}

// Service keeps the local FlagStore in line with storage. It polls the shared
// version counter and reloads the full flag set when it moves.
type Service struct {
	service.Mock
	flags    FlagRepository.Interface
	versions VersionRepository.Interface
	store    FlagStore.Interface
	logger   interfaces.ILogger

	config      Config
	loaded      bool
	lastVersion int64
}

func New(name string) *Service {
	return &Service{
		Mock: service.Mock{
			NamePkg: name,
		},
	}
}

func NewForTest(flags FlagRepository.Interface, versions VersionRepository.Interface, store FlagStore.Interface, logger interfaces.ILogger) *Service {
	t := &Service{
		flags:    flags,
		versions: versions,
		store:    store,
		logger:   logger,
	}
	t.config.setDefaults()
	return t
}

func (t *Service) Init(app interfaces.IEngine, cfg map[string]interface{}) error {
	t.logger = app.GetLogger()
	t.flags = app.GetModule(interfaces.ModuleRepository, names.FlagRepository).(FlagRepository.Interface)
	t.versions = app.GetModule(interfaces.ModuleRepository, names.VersionRepository).(VersionRepository.Interface)
	t.store = app.GetModule(interfaces.ModuleService, names.FlagStore).(FlagStore.Interface)

	err := decode.Decode(cfg, &t.config, "yaml", decode.DecoderStrongFoundDst)
	if err != nil {
		return err
	}
	t.config.setDefaults()

	return nil
}

func (c *Config) setDefaults() {
	if c.Interval <= 0 {
		c.Interval = 1
	}
	if c.MaxTries == 0 {
		c.MaxTries = 5
	}
}

// Reload replaces the store with what storage holds now. A reload that
// overlapped a local write is dropped and retried on the next tick.
func (t *Service) Reload(c context.Context) error {
	version := t.versions.Current(c)
	since := t.store.Generation()

	rows, err := backoff.Retry(c, func() ([]*db.Flag, error) {
		return t.flags.ListFlags(c)
	},
		backoff.WithBackOff(t.backOff()),
		backoff.WithMaxTries(t.config.MaxTries),
	)
	if err != nil {
		return fmt.Errorf("reload flags: %w", err)
	}

	records := make([]dto.FlagRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, dto.FromDB(row))
	}
	n, ok := t.store.Replace(c, records, since)
	if !ok {
		t.loaded = false
		t.logger.Info(c, "flag reload superseded by a local write")
		return nil
	}
	t.lastVersion = version
	t.loaded = true
	t.logger.Info(c, fmt.Sprintf("loaded %d flags at version %d", n, version))

	return nil
}

// Run blocks until c is cancelled.
func (t *Service) Run(c context.Context) {
	ticker := time.NewTicker(time.Duration(t.config.Interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.Done():
			return

		case <-ticker.C:
			t.syncOnce(c)
		}
	}
}

func (t *Service) syncOnce(c context.Context) {
	if t.loaded && t.versions.Current(c) == t.lastVersion {
		return
	}
	if err := t.Reload(c); err != nil {
		t.logger.Error(c, err)
	}
}

func (t *Service) backOff() *backoff.ExponentialBackOff {
	op := backoff.NewExponentialBackOff()
	op.InitialInterval = 200 * time.Millisecond
	op.MaxInterval = 5 * time.Second
	return op
}
