package usecase

import (
	"context"
	"time"

	"go-visa-diagnosis-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db *pgxpool.Pool
}

func NewHealthUsecase(db *pgxpool.Pool) HealthUsecase {
	return &healthUsecase{db: db}
}

// Check pings the backing stores. The service reports "ok" even when
// Redis is down since rate limiting degrades to the in-memory fallback.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "disabled",
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if u.db == nil {
		status["database"] = "not configured"
		status["status"] = "degraded"
	} else if err := u.db.Ping(ctx); err != nil {
		status["database"] = "unavailable"
		status["status"] = "degraded"
	}

	if rc := redis.Client(); rc != nil {
		status["redis"] = "ok"
		if err := rc.Ping(ctx).Err(); err != nil {
			status["redis"] = "unavailable"
		}
	}

	return status
}
