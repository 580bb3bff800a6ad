package EvaluatorService

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
	"gitlab.com/devpro_studio/FlagGate/src/rollout"
	"gitlab.com/devpro_studio/FlagGate/src/service/FlagStore"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	"gitlab.com/devpro_studio/Paranoia/paranoia/service"
)

// Service answers flag questions from the current store snapshot. It never
// returns an error: anything unexpected resolves to "off".
type Service struct {
	service.Mock
	store  FlagStore.Interface
	logger interfaces.ILogger
	now    func() time.Time
}

func New(name string) *Service {
	return &Service{
		Mock: service.Mock{
			NamePkg: name,
		},
		now: time.Now,
	}
}

func NewForTest(store FlagStore.Interface, logger interfaces.ILogger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:  store,
		logger: logger,
		now:    now,
	}
}

func (t *Service) Init(app interfaces.IEngine, _ map[string]interface{}) error {
	t.logger = app.GetLogger()
	t.store = app.GetModule(interfaces.ModuleService, names.FlagStore).(FlagStore.Interface)

	return nil
}

func (t *Service) IsEnabled(flagId string, subject dto.Subject) bool {
	return t.Evaluate(flagId, subject).Enabled
}

// GetVariant returns nil when the subject is not included in the flag.
func (t *Service) GetVariant(flagId string, subject dto.Subject) *dto.Variant {
	return t.Evaluate(flagId, subject).Variant
}

func (t *Service) Evaluate(flagId string, subject dto.Subject) dto.Assignment {
	return t.EvaluateAt(flagId, subject, t.now())
}

func (t *Service) EvaluateAt(flagId string, subject dto.Subject, now time.Time) (res dto.Assignment) {
	defer t.recoverInto(flagId, &res)

	rec, ok := t.store.Snapshot().Lookup(flagId)
	if !ok {
		return dto.Assignment{FlagID: flagId, Reason: dto.ReasonNotFound}
	}
	return evaluate(rec, subject, now)
}

// EvaluateAll evaluates every flag against one snapshot, in flag id order.
func (t *Service) EvaluateAll(subject dto.Subject) []dto.Assignment {
	now := t.now()
	snap := t.store.Snapshot()
	out := make([]dto.Assignment, 0, snap.Len())
	snap.Each(func(rec dto.FlagRecord) {
		out = append(out, t.safeEvaluate(rec, subject, now))
	})
	return out
}

func (t *Service) safeEvaluate(rec dto.FlagRecord, subject dto.Subject, now time.Time) (res dto.Assignment) {
	defer t.recoverInto(rec.ID, &res)
	return evaluate(rec, subject, now)
}

func (t *Service) recoverInto(flagId string, res *dto.Assignment) {
	if r := recover(); r != nil {
		if t.logger != nil {
			t.logger.Error(context.Background(), fmt.Errorf("evaluate flag %q: %v", flagId, r))
		}
		*res = dto.Assignment{FlagID: flagId, Reason: dto.ReasonError}
	}
}

func evaluate(rec dto.FlagRecord, subject dto.Subject, now time.Time) dto.Assignment {
	res := dto.Assignment{FlagID: rec.ID}

	switch {
	case !rec.Enabled:
		res.Reason = dto.ReasonDisabled
	case !rollout.InWindow(rec.StartDate, rec.EndDate, now):
		res.Reason = dto.ReasonOutsideWindow
	case !rollout.MatchAudience(rec.TargetAudience, subject.Role):
		res.Reason = dto.ReasonAudienceMismatch
	case !rollout.Hit(subject.ID, rec.ID, rec.RolloutPercentage):
		res.Reason = dto.ReasonRolloutExcluded
	default:
		v := rollout.AssignVariant(subject.ID, rec.ID)
		res.Enabled = true
		res.Variant = &v
		res.Reason = dto.ReasonIncluded
	}

	return res
}
