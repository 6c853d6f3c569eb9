package usecase

import (
	"context"
	"slices"
	"time"

	careneedRepo "care-coordination/internal/careneed/repository"
	"care-coordination/internal/model"
	"care-coordination/internal/schedule"
	"care-coordination/internal/schedule/repository"
	pkgLog "care-coordination/pkg/log"
)

// Config tunes the scheduling windows. Zero fields fall back to the
// defaults below.
type Config struct {
	// DefaultWindowYears bounds generation when the rule has no end date
	// and the caller gives no window.
	DefaultWindowYears int
	// ExtendHorizonMonths is the default per-item extension horizon.
	ExtendHorizonMonths int
	// HorizonDays is the rolling horizon EnsureHorizon tops items up to.
	HorizonDays int
}

func (c Config) withDefaults() Config {
	if c.DefaultWindowYears <= 0 {
		c.DefaultWindowYears = 2
	}
	if c.ExtendHorizonMonths <= 0 {
		c.ExtendHorizonMonths = 6
	}
	if c.HorizonDays <= 0 {
		c.HorizonDays = 730
	}
	return c
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	itemRepo careneedRepo.Repository
	exporter schedule.CalendarExporter
	cfg      Config
	now      func() time.Time
}

// New creates a schedule UseCase. exporter may be nil when calendar
// export is not configured; now is injectable for tests and defaults to
// time.Now.
func New(l pkgLog.Logger, repo repository.Repository, itemRepo careneedRepo.Repository,
	exporter schedule.CalendarExporter, cfg Config, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		itemRepo: itemRepo,
		exporter: exporter,
		cfg:      cfg.withDefaults(),
		now:      now,
	}
}

// visibleItem loads an item and enforces the caller's scope; an item
// outside the scope is indistinguishable from a missing one.
func (uc *implUseCase) visibleItem(ctx context.Context, sc model.Scope, id string) (model.CareNeedItem, error) {
	if id == "" {
		return model.CareNeedItem{}, schedule.ErrItemNotFound
	}
	item, err := uc.itemRepo.GetOneItem(ctx, careneedRepo.GetOneItemOptions{ID: id, OrganizationID: sc.OrganizationID})
	if err != nil {
		return model.CareNeedItem{}, err
	}
	if item.ID == "" {
		return model.CareNeedItem{}, schedule.ErrItemNotFound
	}
	if persons := sc.VisiblePersons(); persons != nil && !slices.Contains(persons, item.PersonID) {
		return model.CareNeedItem{}, schedule.ErrItemNotFound
	}
	return item, nil
}
