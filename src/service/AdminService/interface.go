package AdminService

import (
	"context"

	"gitlab.com/devpro_studio/FlagGate/src/model/db"
	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
)

type Interface interface {
	CreateOrUpdateFlag(ctx context.Context, record dto.FlagRecord) (dto.FlagRecord, error)
	GetFlag(ctx context.Context, id string) (dto.FlagRecord, error)
	ListFlags(ctx context.Context) []dto.FlagRecord
	DeleteFlag(ctx context.Context, id string) error

	FlagHistory(ctx context.Context, id string, limit int) ([]*db.FlagHistory, error)
}
