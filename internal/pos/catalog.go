package pos

// Catalog resolves product ids to the prices the cart should use. Reduce only
// needs it for wholesale re-pricing.
type Catalog interface {
	Lookup(id string) (Product, bool)
}

type snapshot map[string]Product

// NewCatalog freezes the given products into a read-only Catalog. Later
// duplicates of an id win.
func NewCatalog(products []Product) Catalog {
	s := make(snapshot, len(products))
	for _, p := range products {
		s[p.ID] = p
	}
	return s
}

func (s snapshot) Lookup(id string) (Product, bool) {
	p, ok := s[id]
	return p, ok
}

// EmptyCatalog resolves nothing.
var EmptyCatalog Catalog = snapshot{}
