package FlagHistoryRepository

import (
	"context"

	"gitlab.com/devpro_studio/FlagGate/src/model/db"
	"gitlab.com/devpro_studio/Paranoia/pkg/database/postgres"
)

// DbRunner is the part of an open transaction history writes use.
type DbRunner interface {
	Exec(c context.Context, query string, args ...interface{}) error
	QueryRow(c context.Context, query string, args ...interface{}) (postgres.SQLRow, error)
}

type Interface interface {
	InsertHistory(c context.Context, tx DbRunner, flag *db.Flag, deleted bool) (int64, error)
	ListHistory(c context.Context, flagId string, limit int) ([]*db.FlagHistory, error)
}
