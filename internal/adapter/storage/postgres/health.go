package postgres

import (
	"context"
	"errors"
	"fmt"
)

// HealthCheck reports PostgreSQL as healthy once it answers and the
// credit_cards table exists.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.pool.Ping(ctx); err != nil {
		return err
	}

	var ready bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('credit_cards') IS NOT NULL`).Scan(&ready); err != nil {
		return fmt.Errorf("checking schema: %w", err)
	}
	if !ready {
		return errors.New("credit_cards table missing, migrations not applied")
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
