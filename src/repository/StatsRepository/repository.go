package StatsRepository

import (
	"context"
	"time"

	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	"gitlab.com/devpro_studio/Paranoia/paranoia/repository"
	"gitlab.com/devpro_studio/Paranoia/pkg/cache/redis"
)

const usedTTL = 30 * time.Minute

type Repository struct {
	repository.Mock
	cache redis.IRedis
}

func New(name string) *Repository {
	return &Repository{
		Mock: repository.Mock{
			NamePkg: name,
		},
	}
}

func NewForTest(cache redis.IRedis) *Repository {
	return &Repository{cache: cache}
}

func (t *Repository) Init(app interfaces.IEngine, _ map[string]interface{}) error {
	t.cache = app.GetPkg(interfaces.PkgCache, names.CacheRedis).(redis.IRedis)

	return nil
}

func (t *Repository) SetStat(c context.Context, flagId string) {
	_ = t.cache.Set(c, "stat_used:"+flagId, 1, usedTTL)
}

func (t *Repository) IsUsed(c context.Context, flagId string) bool {
	return t.cache.Has(c, "stat_used:"+flagId)
}
