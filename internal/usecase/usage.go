package usecase

import (
	"context"
	"time"

	"minutes-recharge/internal/domain/usage"
)

type UsageUseCase interface {
	// ConsumptionSeries takes inclusive YYYY-MM-DD bounds.
	ConsumptionSeries(ctx context.Context, workspaceID, start, end string) (*usage.Series, error)
	CallHistory(ctx context.Context, workspaceID string, page, pageSize int) (*usage.CallHistory, error)
}

type usageUseCaseImpl struct {
	calls    CallRecordRepository
	location *time.Location
}

func NewUsageUseCase(calls CallRecordRepository, loc *time.Location) UsageUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &usageUseCaseImpl{calls: calls, location: loc}
}

func (uc *usageUseCaseImpl) ConsumptionSeries(ctx context.Context, workspaceID, start, end string) (*usage.Series, error) {
	r, err := usage.ParseDateRange(start, end, uc.location)
	if err != nil {
		return nil, err
	}

	daily, err := uc.calls.DailyUsage(ctx, workspaceID, r)
	if err != nil {
		return nil, err
	}

	series := usage.BuildSeries(r, daily)
	return &series, nil
}

func (uc *usageUseCaseImpl) CallHistory(ctx context.Context, workspaceID string, page, pageSize int) (*usage.CallHistory, error) {
	p := usage.NewPage(page, pageSize)

	items, total, err := uc.calls.List(ctx, workspaceID, p)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []usage.CallRecord{}
	}

	return &usage.CallHistory{
		Items:      items,
		Total:      total,
		Page:       p.Number(),
		PageSize:   p.Size(),
		TotalPages: p.TotalPages(total),
	}, nil
}
