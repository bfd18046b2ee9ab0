//go:build unit || e2e

package builder

import (
	reqdto "staycal/internal/handler/dto/request"
	"staycal/internal/usecase/queries"

	"github.com/google/uuid"
)

type CalendarEntryBuilder struct {
	ID         uuid.UUID
	StartDate  string
	EndDate    string
	Reason     string
	PriceCents int64
	Note       string
}

func NewCalendarEntryBuilder() *CalendarEntryBuilder {
	return &CalendarEntryBuilder{
		ID:         uuid.New(),
		StartDate:  "2026-07-10",
		EndDate:    "2026-07-14",
		Reason:     "maintenance",
		PriceCents: 18000,
		Note:       "summer peak",
	}
}

// Build methods
func (b *CalendarEntryBuilder) BuildBlockedRangeRequestDTO() reqdto.AddBlockedRangeRequest {
	return reqdto.AddBlockedRangeRequest{
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Reason:    b.Reason,
	}
}

func (b *CalendarEntryBuilder) BuildPriceOverrideRequestDTO() reqdto.AddPriceOverrideRequest {
	return reqdto.AddPriceOverrideRequest{
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		PriceCents: b.PriceCents,
		Note:       b.Note,
	}
}

func (b *CalendarEntryBuilder) BuildBlockedRangeView() queries.BlockedRangeView {
	return queries.BlockedRangeView{
		ID:        b.ID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Reason:    b.Reason,
	}
}

func (b *CalendarEntryBuilder) BuildPriceOverrideView() queries.PriceOverrideView {
	return queries.PriceOverrideView{
		ID:         b.ID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		PriceCents: b.PriceCents,
		Note:       b.Note,
	}
}

// Fluent builder methods
func (b *CalendarEntryBuilder) WithID(id uuid.UUID) *CalendarEntryBuilder {
	b.ID = id
	return b
}

func (b *CalendarEntryBuilder) WithDates(start, end string) *CalendarEntryBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *CalendarEntryBuilder) WithReason(reason string) *CalendarEntryBuilder {
	b.Reason = reason
	return b
}

func (b *CalendarEntryBuilder) WithPriceCents(cents int64) *CalendarEntryBuilder {
	b.PriceCents = cents
	return b
}

func (b *CalendarEntryBuilder) WithNote(note string) *CalendarEntryBuilder {
	b.Note = note
	return b
}
