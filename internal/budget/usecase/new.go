package usecase

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"care-coordination/internal/budget"
	"care-coordination/internal/budget/repository"
	careneedRepo "care-coordination/internal/careneed/repository"
	pkgLog "care-coordination/pkg/log"
)

const cacheSize = 512

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	itemRepo careneedRepo.Repository
	cache    *expirable.LRU[string, budget.Report]
	now      func() time.Time
}

// New creates a budget UseCase. Reports are cached per
// (organization, person, year) for cacheTTL; a zero TTL disables
// caching. now is injectable for tests and defaults to time.Now.
func New(l pkgLog.Logger, repo repository.Repository, itemRepo careneedRepo.Repository,
	cacheTTL time.Duration, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	uc := &implUseCase{
		l:        l,
		repo:     repo,
		itemRepo: itemRepo,
		now:      now,
	}
	if cacheTTL > 0 {
		uc.cache = expirable.NewLRU[string, budget.Report](cacheSize, nil, cacheTTL)
	}
	return uc
}

func cacheKey(orgID, personID string, year int) string {
	return fmt.Sprintf("%s:%s:%d", orgID, personID, year)
}
