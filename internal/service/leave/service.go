package leave

import (
	"context"

	"github.com/gulfhr/payroll-backend-go/internal/domain/leave"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{leaveRepo: leaveRepo}
}

func (s *LeaveServiceImpl) ListByMonth(ctx context.Context, month string) ([]leave.LeaveResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, leave.ErrInvalidMonth
	}

	leaves, err := s.leaveRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	result := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		result = append(result, leave.ToResponse(l))
	}
	return result, nil
}
