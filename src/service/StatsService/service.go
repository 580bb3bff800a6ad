package StatsService

import (
	"context"

	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/FlagGate/src/repository/StatsRepository"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	"gitlab.com/devpro_studio/Paranoia/paranoia/service"
)

// Service records which flags are being evaluated. It is only called from
// the transport layer so evaluation itself stays side-effect free.
type Service struct {
	service.Mock
	statsRepository StatsRepository.Interface
}

func New(name string) *Service {
	return &Service{
		Mock: service.Mock{
			NamePkg: name,
		},
	}
}

func NewForTest(statsRepository StatsRepository.Interface) *Service {
	return &Service{statsRepository: statsRepository}
}

func (t *Service) Init(app interfaces.IEngine, cfg map[string]interface{}) error {
	t.statsRepository = app.GetModule(interfaces.ModuleRepository, names.StatsRepository).(StatsRepository.Interface)
	return nil
}

func (t *Service) SetStat(c context.Context, flagId string) {
	if flagId == "" {
		return
	}
	t.statsRepository.SetStat(c, flagId)
}

func (t *Service) IsUsed(c context.Context, flagId string) bool {
	return t.statsRepository.IsUsed(c, flagId)
}
