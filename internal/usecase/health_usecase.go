package usecase

import (
	"context"
	"time"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusFail     = "fail"
)

type HealthUsecase interface {
	Check(ctx context.Context) HealthReport
}

// HealthReport is degraded when only Redis is unreachable (rate limiting
// falls back to memory) and fail when Postgres is.
type HealthReport struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthUsecase struct {
	db    Pinger
	redis func(ctx context.Context) error
}

// NewHealthUsecase checks db and, when non-nil, redis. A nil redis check is
// reported as not configured.
func NewHealthUsecase(db Pinger, redis func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{db: db, redis: redis}
}

func (u *healthUsecase) Check(ctx context.Context) HealthReport {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	report := HealthReport{Status: StatusOK, Database: StatusOK, Redis: StatusOK}

	if u.db == nil || u.db.Ping(ctx) != nil {
		report.Database = StatusFail
		report.Status = StatusFail
	}

	switch {
	case u.redis == nil:
		report.Redis = "not_configured"
	case u.redis(ctx) != nil:
		report.Redis = StatusFail
	default:
		return report
	}
	if report.Status == StatusOK {
		report.Status = StatusDegraded
	}
	return report
}
