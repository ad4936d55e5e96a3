package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/gulfhr/payroll-backend-go/internal/domain/indemnity"
)

// RegisterIndemnityRecalc schedules the periodic indemnity recalculation.
// The accrual grows with tenure, so amounts drift stale without it.
func RegisterIndemnityRecalc(s *Scheduler, svc indemnity.IndemnityService, interval string) error {
	d, err := time.ParseDuration(interval)
	if err != nil {
		return fmt.Errorf("invalid indemnity recalc interval %q: %w", interval, err)
	}

	s.AddJob("indemnity-recalc", d, func(ctx context.Context) error {
		_, err := svc.Recalculate(ctx)
		return err
	})

	return nil
}
