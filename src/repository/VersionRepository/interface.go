package VersionRepository

import "context"

type Interface interface {
	Current(c context.Context) int64
	Bump(c context.Context) (int64, error)
}
