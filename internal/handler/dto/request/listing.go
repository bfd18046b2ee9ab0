package request

import (
	"staycal/internal/usecase/commands"
)

type CreateListingRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	BasePriceCents int64  `json:"base_price_cents" binding:"required,gt=0"`
	Currency       string `json:"currency" binding:"required,len=3"`
}

func (r *CreateListingRequest) ToCommand() commands.CreateListingRequest {
	return commands.CreateListingRequest{
		Name:           r.Name,
		BasePriceCents: r.BasePriceCents,
		Currency:       r.Currency,
	}
}

type UpdateListingRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	BasePriceCents int64  `json:"base_price_cents" binding:"required,gt=0"`
}

func (r *UpdateListingRequest) ToCommand() commands.UpdateListingRequest {
	return commands.UpdateListingRequest{
		Name:           r.Name,
		BasePriceCents: r.BasePriceCents,
	}
}
