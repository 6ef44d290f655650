package response

import (
	"time"

	"minutes-recharge/internal/domain/usage"

	"github.com/google/uuid"
)

type UsagePoint struct {
	Date    string `json:"date"`
	Minutes int64  `json:"minutes"`
}

type ConsumptionResponse struct {
	Points       []UsagePoint `json:"points"`
	TotalMinutes int64        `json:"totalMinutes"`
}

func FromSeries(s *usage.Series) ConsumptionResponse {
	points := make([]UsagePoint, 0, len(s.Points))
	for _, p := range s.Points {
		points = append(points, UsagePoint{Date: p.Date, Minutes: p.Minutes})
	}
	return ConsumptionResponse{Points: points, TotalMinutes: s.TotalMinutes}
}

type CallResponse struct {
	ID              uuid.UUID `json:"id"`
	ContactName     string    `json:"contactName"`
	ContactEmail    string    `json:"contactEmail"`
	PhoneNumber     string    `json:"phoneNumber"`
	Duration        string    `json:"duration"`
	DurationSeconds int64     `json:"durationSeconds"`
	StartedAt       time.Time `json:"startedAt"`
}

type CallHistoryResponse struct {
	Items      []CallResponse `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

func FromCallHistory(h *usage.CallHistory) CallHistoryResponse {
	items := make([]CallResponse, 0, len(h.Items))
	for _, c := range h.Items {
		items = append(items, CallResponse{
			ID:              c.ID,
			ContactName:     c.ContactName,
			ContactEmail:    c.ContactEmail,
			PhoneNumber:     c.PhoneNumber,
			Duration:        c.Duration(),
			DurationSeconds: c.DurationSeconds,
			StartedAt:       c.StartedAt,
		})
	}
	return CallHistoryResponse{
		Items:      items,
		Total:      h.Total,
		Page:       h.Page,
		PageSize:   h.PageSize,
		TotalPages: h.TotalPages,
	}
}
