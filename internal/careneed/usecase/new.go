package usecase

import (
	"time"

	"care-coordination/internal/careneed/repository"
	pkgLog "care-coordination/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	horizonDays int
	now         func() time.Time
}

// New creates a care-need UseCase. horizonDays bounds the budget-year
// span of open-ended items; now is injectable for tests and defaults to
// time.Now.
func New(l pkgLog.Logger, repo repository.Repository, horizonDays int, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		horizonDays: horizonDays,
		now:         now,
	}
}
