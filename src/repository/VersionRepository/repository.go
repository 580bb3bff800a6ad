package VersionRepository

import (
	"context"
	"strconv"
	"time"

	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	"gitlab.com/devpro_studio/Paranoia/paranoia/repository"
	"gitlab.com/devpro_studio/Paranoia/pkg/cache/redis"
)

const (
	versionKey = "flag_version"
	versionTTL = 30 * 24 * time.Hour
)

// Repository keeps a global counter of flag writes in Redis so every
// instance can tell when its in-memory flag set is stale.
type Repository struct {
	repository.Mock
	cache  redis.IRedis
	logger interfaces.ILogger
}

func New(name string) *Repository {
	return &Repository{
		Mock: repository.Mock{
			NamePkg: name,
		},
	}
}

func NewForTest(cache redis.IRedis, logger interfaces.ILogger) *Repository {
	return &Repository{cache: cache, logger: logger}
}

func (t *Repository) Init(app interfaces.IEngine, _ map[string]interface{}) error {
	t.logger = app.GetLogger()
	t.cache = app.GetPkg(interfaces.PkgCache, names.CacheRedis).(redis.IRedis)

	return nil
}

// Current returns 0 when the counter is missing or unreadable.
func (t *Repository) Current(c context.Context) int64 {
	vStr, err := t.cache.Get(c, versionKey)
	if err != nil || vStr == "" {
		return 0
	}
	v, err := strconv.ParseInt(vStr, 10, 64)
	if err != nil {
		t.logger.Error(c, err)
		return 0
	}
	return v
}

func (t *Repository) Bump(c context.Context) (int64, error) {
	next := t.Current(c) + 1
	if err := t.cache.Set(c, versionKey, next, versionTTL); err != nil {
		t.logger.Error(c, err)
		return 0, err
	}
	return next, nil
}
