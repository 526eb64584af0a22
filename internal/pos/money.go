package pos

import "github.com/shopspring/decimal"

// Round2 rounds an amount to cents, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatAmount renders an amount with exactly two decimals.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

type DisplayLine struct {
	ID       string `json:"id"`
	Gross    string `json:"gross"`
	Discount string `json:"discount"`
	Net      string `json:"net"`
}

// DisplayTotals is Totals formatted for a receipt or a screen.
type DisplayTotals struct {
	Lines                   []DisplayLine `json:"lines"`
	Subtotal                string        `json:"subtotal"`
	TotalItemDiscount       string        `json:"total_item_discount"`
	WholesaleDiscountAmount string        `json:"wholesale_discount_amount"`
	TotalDiscount           string        `json:"total_discount"`
	Tax                     string        `json:"tax"`
	GrandTotal              string        `json:"grand_total"`
	Adjustment              string        `json:"adjustment"`
	NetTotal                string        `json:"net_total"`
	CashIn                  string        `json:"cash_in"`
	Balance                 string        `json:"balance"`
}

func (t Totals) Display() DisplayTotals {
	lines := make([]DisplayLine, 0, len(t.Lines))
	for _, l := range t.Lines {
		lines = append(lines, DisplayLine{
			ID:       l.ID,
			Gross:    FormatAmount(l.Gross),
			Discount: FormatAmount(l.Discount),
			Net:      FormatAmount(l.Net),
		})
	}

	return DisplayTotals{
		Lines:                   lines,
		Subtotal:                FormatAmount(t.Subtotal),
		TotalItemDiscount:       FormatAmount(t.TotalItemDiscount),
		WholesaleDiscountAmount: FormatAmount(t.WholesaleDiscountAmount),
		TotalDiscount:           FormatAmount(t.TotalDiscount),
		Tax:                     FormatAmount(t.Tax),
		GrandTotal:              FormatAmount(t.GrandTotal),
		Adjustment:              FormatAmount(t.Adjustment),
		NetTotal:                FormatAmount(t.NetTotal),
		CashIn:                  FormatAmount(t.CashIn),
		Balance:                 FormatAmount(t.Balance),
	}
}
