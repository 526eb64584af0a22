package pos

// TaxRate is the flat sales tax applied after all discounts.
const TaxRate = 0.08

// Inputs are the scalars the cashier enters next to the cart.
type Inputs struct {
	// Adjustment is a flat amount added to the grand total; negative values
	// are manual markdowns.
	Adjustment float64 `json:"adjustment"`
	// WholesaleDiscount is a percentage of the subtotal, only applied in
	// wholesale mode.
	WholesaleDiscount float64 `json:"wholesale_discount"`
	CashIn            float64 `json:"cash_in"`
}

type LineTotal struct {
	ID       string  `json:"id"`
	Gross    float64 `json:"gross"`
	Discount float64 `json:"discount"`
	Net      float64 `json:"net"`
}

// Totals are unrounded; round with Display or Round2 at the edge.
type Totals struct {
	Lines                   []LineTotal `json:"lines"`
	Subtotal                float64     `json:"subtotal"`
	TotalItemDiscount       float64     `json:"total_item_discount"`
	WholesaleDiscountAmount float64     `json:"wholesale_discount_amount"`
	TotalDiscount           float64     `json:"total_discount"`
	SubtotalAfterDiscounts  float64     `json:"subtotal_after_discounts"`
	Tax                     float64     `json:"tax"`
	GrandTotal              float64     `json:"grand_total"`
	Adjustment              float64     `json:"adjustment"`
	NetTotal                float64     `json:"net_total"`
	CashIn                  float64     `json:"cash_in"`
	Balance                 float64     `json:"balance"`
}

// Calculate derives the monetary totals for a cart. It has no error cases.
// When discounts exceed the subtotal the tax follows the sign of
// SubtotalAfterDiscounts and is negative.
func Calculate(state CartState, in Inputs) Totals {
	t := Totals{
		Lines:      make([]LineTotal, 0, len(state.Cart)),
		Adjustment: in.Adjustment,
		CashIn:     in.CashIn,
	}

	for _, line := range state.Cart {
		gross := line.Price * float64(line.Quantity)
		discount := gross * (line.Discount / 100)
		t.Lines = append(t.Lines, LineTotal{
			ID:       line.ID,
			Gross:    gross,
			Discount: discount,
			Net:      gross - discount,
		})
		t.Subtotal += gross
		t.TotalItemDiscount += discount
	}

	if state.IsWholesale {
		t.WholesaleDiscountAmount = t.Subtotal * (in.WholesaleDiscount / 100)
	}

	t.TotalDiscount = t.TotalItemDiscount + t.WholesaleDiscountAmount
	t.SubtotalAfterDiscounts = t.Subtotal - t.TotalDiscount
	t.Tax = t.SubtotalAfterDiscounts * TaxRate
	t.GrandTotal = t.SubtotalAfterDiscounts + t.Tax
	t.NetTotal = t.GrandTotal + in.Adjustment

	if in.CashIn > 0 {
		t.Balance = in.CashIn - t.NetTotal
	}

	return t
}
