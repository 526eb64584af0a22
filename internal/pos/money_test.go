package pos_test

import (
	"testing"

	"github.com/aaravmahajanofficial/pos-admin/internal/pos"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.005, 1.01},
		{2.675, 2.68},
		{0.125, 0.13},
		{-0.125, -0.13},
		{72.00000000000001, 72},
		{19.999, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pos.Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", pos.FormatAmount(0))
	assert.Equal(t, "952.00", pos.FormatAmount(952))
	assert.Equal(t, "-3.20", pos.FormatAmount(-3.2))
	assert.Equal(t, "0.30", pos.FormatAmount(0.1+0.2))
}

func TestTotalsDisplay(t *testing.T) {
	state := apply(
		pos.AddItem{Product: oil},
		pos.UpdateItem{ID: "2", Patch: pos.LinePatch{Quantity: intPtr(3), Discount: floatPtr(5)}},
	)

	display := pos.Calculate(state, pos.Inputs{CashIn: 600}).Display()

	assert.Equal(t, "540.00", display.Subtotal)
	assert.Equal(t, "27.00", display.TotalItemDiscount)
	assert.Equal(t, "41.04", display.Tax)
	assert.Equal(t, "554.04", display.GrandTotal)
	assert.Equal(t, "554.04", display.NetTotal)
	assert.Equal(t, "45.96", display.Balance)
	if assert.Len(t, display.Lines, 1) {
		assert.Equal(t, "513.00", display.Lines[0].Net)
	}
}
