package request

import (
	"staycal/internal/usecase/commands"
)

type AddBlockedRangeRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"max=500"`
}

func (r *AddBlockedRangeRequest) ToCommand() commands.AddBlockedRangeRequest {
	return commands.AddBlockedRangeRequest{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Reason:    r.Reason,
	}
}

type AddPriceOverrideRequest struct {
	StartDate  string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
	PriceCents int64  `json:"price_cents" binding:"required,gt=0"`
	Note       string `json:"note" binding:"max=500"`
}

func (r *AddPriceOverrideRequest) ToCommand() commands.AddPriceOverrideRequest {
	return commands.AddPriceOverrideRequest{
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		PriceCents: r.PriceCents,
		Note:       r.Note,
	}
}
