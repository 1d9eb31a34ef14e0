package money

import "github.com/shopspring/decimal"

// Amounts stay decimal through every computation; callers convert to float64
// only when shaping a JSON response.

func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func ToFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// PercentUsed returns used/allocated*100 rounded to one decimal place, or
// nil when the allocation is zero so callers never divide by zero.
func PercentUsed(used, allocated decimal.Decimal) *float64 {
	if allocated.IsZero() {
		return nil
	}
	pct, _ := used.Div(allocated).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	return &pct
}
