package response

import (
	"royalbike/internal/usecase/commands"
)

type CheckoutResponse struct {
	SalesCreated    int    `json:"salesCreated"`
	TotalCharged    string `json:"totalCharged"`
	RemainingCredit string `json:"remainingCredit"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		SalesCreated:    r.SalesCreated,
		TotalCharged:    r.TotalCharged.StringFixed(2),
		RemainingCredit: r.RemainingCredit.StringFixed(2),
	}
}
