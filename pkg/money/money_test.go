package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloatRoundsToCents(t *testing.T) {
	d := decimal.NewFromFloat(10.005)
	assert.Equal(t, 10.01, ToFloat(d))
}

func TestSum(t *testing.T) {
	total := Sum([]decimal.Decimal{
		decimal.NewFromFloat(0.1),
		decimal.NewFromFloat(0.2),
		decimal.NewFromFloat(0.3),
	})
	assert.True(t, total.Equal(decimal.NewFromFloat(0.6)), "decimal sums carry no float drift, got %s", total)

	assert.True(t, Sum(nil).IsZero())
}

func TestPercentUsed(t *testing.T) {
	pct := PercentUsed(decimal.NewFromInt(300), decimal.NewFromInt(1000))
	require.NotNil(t, pct)
	assert.Equal(t, 30.0, *pct)

	pct = PercentUsed(decimal.NewFromInt(1), decimal.NewFromInt(3))
	require.NotNil(t, pct)
	assert.Equal(t, 33.3, *pct)

	assert.Nil(t, PercentUsed(decimal.NewFromInt(10), decimal.Zero),
		"zero allocation yields nil, never a division")
}
