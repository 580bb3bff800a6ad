package EvaluatorService

import (
	"time"

	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
)

type Interface interface {
	IsEnabled(flagId string, subject dto.Subject) bool
	GetVariant(flagId string, subject dto.Subject) *dto.Variant

	Evaluate(flagId string, subject dto.Subject) dto.Assignment
	EvaluateAt(flagId string, subject dto.Subject, now time.Time) dto.Assignment
	EvaluateAll(subject dto.Subject) []dto.Assignment
}
