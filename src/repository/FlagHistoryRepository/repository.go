package FlagHistoryRepository

import (
	"context"

	"github.com/google/uuid"
	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/FlagGate/src/model/db"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	"gitlab.com/devpro_studio/Paranoia/paranoia/repository"
	"gitlab.com/devpro_studio/Paranoia/pkg/database/postgres"
)

const defaultLimit = 50

type Repository struct {
	repository.Mock
	db     postgres.IPostgres
	logger interfaces.ILogger
}

func New(name string) *Repository {
	return &Repository{Mock: repository.Mock{NamePkg: name}}
}

func NewForTest(db postgres.IPostgres, logger interfaces.ILogger) *Repository {
	return &Repository{db: db, logger: logger}
}

func (t *Repository) Init(app interfaces.IEngine, _ map[string]interface{}) error {
	t.logger = app.GetLogger()
	t.db = app.GetPkg(interfaces.PkgDatabase, names.DatabasePrimary).(postgres.IPostgres)
	return nil
}

// InsertHistory appends one row for a write to flag inside tx and returns the
// per-flag version assigned to it.
func (t *Repository) InsertHistory(c context.Context, tx DbRunner, flag *db.Flag, deleted bool) (int64, error) {
	row, err := tx.QueryRow(c, `SELECT COALESCE(MAX(v), 0) FROM flag_history WHERE flag_id = $1`, flag.Id)
	if err != nil {
		return 0, err
	}
	var last int64
	if err := row.Scan(&last); err != nil {
		return 0, err
	}
	v := last + 1

	deletedAt := "NULL"
	if deleted {
		deletedAt = "NOW()"
	}
	err = tx.Exec(c, `INSERT INTO flag_history (id, flag_id, enabled, rollout_percentage, target_audience, v, created_at, deleted_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), `+deletedAt+`)`,
		uuid.New(), flag.Id, flag.Enabled, flag.RolloutPercentage, flag.TargetAudience, v)
	if err != nil {
		return 0, err
	}

	return v, nil
}

func (t *Repository) ListHistory(c context.Context, flagId string, limit int) ([]*db.FlagHistory, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := t.db.Query(c, `
SELECT
    h.id,
    h.flag_id,
    h.enabled,
    h.rollout_percentage,
    h.target_audience,
    h.v,
    h.created_at,
    h.deleted_at
FROM flag_history AS h
WHERE h.flag_id = $1
ORDER BY h.v DESC
LIMIT $2
`, flagId, limit)
	if err != nil {
		t.logger.Error(c, err)
		return nil, err
	}
	defer rows.Close()
	res := make([]*db.FlagHistory, 0)

	for rows.Next() {
		var item db.FlagHistory
		if err := rows.Scan(&item.Id, &item.FlagId, &item.Enabled, &item.RolloutPercentage, &item.TargetAudience, &item.V, &item.CreatedAt, &item.DeletedAt); err != nil {
			t.logger.Error(c, err)
			continue
		}
		res = append(res, &item)
	}

	return res, nil
}
