package response

import (
	"royalbike/internal/usecase/commands"
)

type CreditResponse struct {
	Balance      string `json:"balance"`
	IsNewProfile bool   `json:"isNewProfile"`
}

func FromCreditResult(r *commands.CreditResult) *CreditResponse {
	return &CreditResponse{
		Balance:      r.Balance.StringFixed(2),
		IsNewProfile: r.IsNewProfile,
	}
}
