package FlagRepository

import (
	"context"
	"errors"

	"gitlab.com/devpro_studio/FlagGate/src/model/db"
)

var ErrFlagNotFound = errors.New("flag not found")

type Interface interface {
	ListFlags(c context.Context) ([]*db.Flag, error)

	UpsertFlag(c context.Context, flag *db.Flag) (int64, error)
	DeleteFlag(c context.Context, id string) error
}
