package recharge

import (
	"math"

	"minutes-recharge/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	hundred     = decimal.NewFromInt(100)
	maxMinorInt = decimal.NewFromInt(math.MaxInt64)
)

// ToMinorUnits rounds half away from zero: 0.005 -> 1, -0.005 -> -1.
// Values outside int64 wrap; use ChargeableMinorUnits for amounts from clients.
func ToMinorUnits(amountMajor decimal.Decimal) int64 {
	return amountMajor.Mul(hundred).Round(0).IntPart()
}

// ChargeableMinorUnits returns the rounded cents of a positive charge that
// fits in int64.
func ChargeableMinorUnits(amountMajor decimal.Decimal) (int64, error) {
	cents := amountMajor.Mul(hundred).Round(0)
	if !cents.IsPositive() {
		return 0, errs.Wrap(ErrInvalidArgument, "amount rounds to zero cents")
	}
	if cents.GreaterThan(maxMinorInt) {
		return 0, errs.Wrap(ErrInvalidArgument, "amount is too large")
	}
	return cents.IntPart(), nil
}

func MinorUnitsFromFloat(amountMajor float64) int64 {
	return ToMinorUnits(decimal.NewFromFloat(amountMajor))
}

func FromMinorUnits(amountInCents int64) decimal.Decimal {
	return decimal.NewFromInt(amountInCents).Div(hundred)
}
