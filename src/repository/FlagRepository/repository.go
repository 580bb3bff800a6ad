package FlagRepository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/FlagGate/src/model/db"
	"gitlab.com/devpro_studio/FlagGate/src/repository/FlagHistoryRepository"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	"gitlab.com/devpro_studio/Paranoia/paranoia/repository"
	"gitlab.com/devpro_studio/Paranoia/pkg/database/postgres"
)

const selectFlags = `
SELECT
    f.id,
    f.name,
    f.description,
    f.enabled,
    f.rollout_percentage,
    f.target_audience,
    f.start_date,
    f.end_date,
    f.variant,
    f.version,
    f.updated_at
FROM flags AS f
`

type Repository struct {
	repository.Mock
	db      postgres.IPostgres
	logger  interfaces.ILogger
	history FlagHistoryRepository.Interface
	beginTx func(c context.Context) (sqlTx, error)
}

type sqlTx interface {
	FlagHistoryRepository.DbRunner
	Commit(c context.Context) error
	Rollback(c context.Context)
}

type pgTx struct{ tx postgres.SQLTx }

func (t pgTx) Exec(c context.Context, query string, args ...interface{}) error {
	return t.tx.Exec(c, query, args...)
}
func (t pgTx) QueryRow(c context.Context, query string, args ...interface{}) (postgres.SQLRow, error) {
	return t.tx.QueryRow(c, query, args...)
}
func (t pgTx) Commit(c context.Context) error { return t.tx.Commit(c) }
func (t pgTx) Rollback(c context.Context)     { t.tx.Rollback(c) }

func New(name string) *Repository {
	return &Repository{
		Mock: repository.Mock{
			NamePkg: name,
		},
	}
}

func NewForTest(db postgres.IPostgres, history FlagHistoryRepository.Interface, logger interfaces.ILogger) *Repository {
	t := &Repository{
		db:      db,
		history: history,
		logger:  logger,
	}
	t.beginTx = t.begin
	return t
}

func (t *Repository) Init(app interfaces.IEngine, _ map[string]interface{}) error {
	t.logger = app.GetLogger()
	t.db = app.GetPkg(interfaces.PkgDatabase, names.DatabasePrimary).(postgres.IPostgres)
	t.history = app.GetModule(interfaces.ModuleRepository, names.FlagHistoryRepository).(FlagHistoryRepository.Interface)
	t.beginTx = t.begin

	return nil
}

func (t *Repository) begin(c context.Context) (sqlTx, error) {
	tx, err := t.db.BeginTx(c)
	if err != nil {
		return nil, err
	}
	return pgTx{tx: tx}, nil
}

func (t *Repository) ListFlags(c context.Context) ([]*db.Flag, error) {
	rows, err := t.db.Query(c, selectFlags+`ORDER BY f.id`)
	if err != nil {
		t.logger.Error(c, err)
		return nil, err
	}
	defer rows.Close()
	res := make([]*db.Flag, 0)

	for rows.Next() {
		var item db.Flag
		if err := scanFlag(rows, &item); err != nil {
			t.logger.Error(c, err)
			continue
		}
		res = append(res, &item)
	}

	return res, nil
}

// UpsertFlag writes the flag and its history row in one transaction and
// returns the new per-flag version.
func (t *Repository) UpsertFlag(c context.Context, flag *db.Flag) (int64, error) {
	tx, err := t.beginTx(c)
	if err != nil {
		t.logger.Error(c, err)
		return 0, err
	}

	defer tx.Rollback(c)

	v, err := t.history.InsertHistory(c, tx, flag, false)
	if err != nil {
		t.logger.Error(c, err)
		return 0, err
	}

	err = tx.Exec(c, `
INSERT INTO flags (id, name, description, enabled, rollout_percentage, target_audience, start_date, end_date, variant, version, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
ON CONFLICT (id) DO UPDATE
SET name               = EXCLUDED.name,
    description        = EXCLUDED.description,
    enabled            = EXCLUDED.enabled,
    rollout_percentage = EXCLUDED.rollout_percentage,
    target_audience    = EXCLUDED.target_audience,
    start_date         = EXCLUDED.start_date,
    end_date           = EXCLUDED.end_date,
    variant            = EXCLUDED.variant,
    version            = EXCLUDED.version,
    updated_at         = NOW()
`, flag.Id, flag.Name, flag.Description, flag.Enabled, flag.RolloutPercentage, flag.TargetAudience,
		flag.StartDate, flag.EndDate, flag.Variant, v)
	if err != nil {
		t.logger.Error(c, err)
		return 0, err
	}

	if err := tx.Commit(c); err != nil {
		t.logger.Error(c, err)
		return 0, err
	}

	return v, nil
}

func (t *Repository) DeleteFlag(c context.Context, id string) error {
	tx, err := t.beginTx(c)
	if err != nil {
		t.logger.Error(c, err)
		return err
	}

	defer tx.Rollback(c)

	row, err := tx.QueryRow(c, `DELETE FROM flags WHERE id = $1 RETURNING id`, id)
	if err != nil {
		t.logger.Error(c, err)
		return err
	}

	var deleted string
	if err := row.Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrFlagNotFound
		}
		t.logger.Error(c, err)
		return err
	}

	if _, err := t.history.InsertHistory(c, tx, &db.Flag{Id: id}, true); err != nil {
		t.logger.Error(c, err)
		return err
	}

	if err := tx.Commit(c); err != nil {
		t.logger.Error(c, err)
		return err
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFlag(row scanner, item *db.Flag) error {
	return row.Scan(
		&item.Id,
		&item.Name,
		&item.Description,
		&item.Enabled,
		&item.RolloutPercentage,
		&item.TargetAudience,
		&item.StartDate,
		&item.EndDate,
		&item.Variant,
		&item.Version,
		&item.UpdatedAt,
	)
}
