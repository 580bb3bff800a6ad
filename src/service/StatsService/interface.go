package StatsService

import "context"

type Interface interface {
	SetStat(c context.Context, flagId string)
	IsUsed(c context.Context, flagId string) bool
}
