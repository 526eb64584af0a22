// Package pos holds the point-of-sale cart engine: a pure reducer over CartState
// and the pricing calculator that derives totals from it.
package pos

// Product is the catalog's view of a sellable item. The cart copies fields from
// it when a line is created and never mutates it.
type Product struct {
	ID             string  `json:"id"`
	Barcode        string  `json:"barcode"`
	Name           string  `json:"name"`
	Size           string  `json:"size"`
	RetailPrice    float64 `json:"retail_price"`
	WholesalePrice float64 `json:"wholesale_price"`
	ImageURL       string  `json:"image_url,omitempty"`
}

// PriceFor returns the unit price matching the cart's pricing mode.
func (p Product) PriceFor(wholesale bool) float64 {
	if wholesale {
		return p.WholesalePrice
	}
	return p.RetailPrice
}

// Customer is a reference to the buyer selected for the sale.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// LineItem is one row of the cart, keyed by product id.
type LineItem struct {
	ID       string  `json:"id"`
	Barcode  string  `json:"barcode"`
	Name     string  `json:"name"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
}

type CartState struct {
	Cart        []LineItem `json:"cart"`
	Customer    *Customer  `json:"customer"`
	IsWholesale bool       `json:"is_wholesale"`
}

// NewCartState returns the empty state a terminal starts with and returns to
// after a clear or a checkout.
func NewCartState() CartState {
	return CartState{Cart: []LineItem{}}
}

func (s CartState) indexOf(id string) int {
	for i := range s.Cart {
		if s.Cart[i].ID == id {
			return i
		}
	}
	return -1
}

func (s CartState) Has(id string) bool {
	return s.indexOf(id) >= 0
}

func (s CartState) Line(id string) (LineItem, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.Cart[i], true
	}
	return LineItem{}, false
}

func (s CartState) IsEmpty() bool {
	return len(s.Cart) == 0
}

// ItemCount is the number of units in the cart, not the number of lines.
func (s CartState) ItemCount() int {
	n := 0
	for _, line := range s.Cart {
		n += line.Quantity
	}
	return n
}

// ProductIDs lists the line ids in cart order.
func (s CartState) ProductIDs() []string {
	ids := make([]string, 0, len(s.Cart))
	for _, line := range s.Cart {
		ids = append(ids, line.ID)
	}
	return ids
}

func (s CartState) clone() CartState {
	next := CartState{
		Cart:        make([]LineItem, len(s.Cart)),
		IsWholesale: s.IsWholesale,
	}
	copy(next.Cart, s.Cart)
	if s.Customer != nil {
		c := *s.Customer
		next.Customer = &c
	}
	return next
}
