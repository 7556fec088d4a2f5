package internal

import (
	"github.com/shopspring/decimal"
)

// Settlement is the split of an order total into the fee retained by the
// platform and the remainder owed to the selling distributor.
type Settlement struct {
	PlatformFeeAmount decimal.Decimal `json:"platformFeeAmount"`
	DistributorPayout decimal.Decimal `json:"distributorPayout"`
}

// SettlementCalculator computes the fee/payout split. It is pure arithmetic:
// whether the payout is actually transferable is the caller's concern (it
// depends on the distributor's Stripe Connect account, which the calculator
// never sees).
type SettlementCalculator struct {
	feeRate decimal.Decimal
}

func NewSettlementCalculator(feeRate decimal.Decimal) *SettlementCalculator {
	return &SettlementCalculator{feeRate: feeRate}
}

// ComputeSettlement returns the platform fee (rounded half-up to the
// smallest currency unit) and the distributor payout for the given total.
func (s *SettlementCalculator) ComputeSettlement(totalAmount decimal.Decimal) (Settlement, error) {
	if totalAmount.IsNegative() {
		return Settlement{}, ErrValidation
	}

	fee := totalAmount.Mul(s.feeRate).Round(2)
	return Settlement{
		PlatformFeeAmount: fee,
		DistributorPayout: totalAmount.Sub(fee),
	}, nil
}
