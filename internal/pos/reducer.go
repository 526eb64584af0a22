package pos

import (
	"fmt"
	"math"
)

// Reduce applies one action to state and returns the next state. The input
// state is never modified. Actions that address a line id not present in the
// cart leave the state unchanged, as does a nil action.
func Reduce(state CartState, action Action, catalog Catalog) CartState {
	if action == nil {
		return state.clone()
	}
	if catalog == nil {
		catalog = EmptyCatalog
	}

	switch a := action.(type) {
	case AddItem:
		return addItem(state, a.Product)
	case RemoveItem:
		return removeItem(state, a.ID)
	case UpdateItem:
		return updateItem(state, a.ID, a.Patch)
	case SetCustomer:
		next := state.clone()
		next.Customer = nil
		if a.Customer != nil {
			c := *a.Customer
			next.Customer = &c
		}
		return next
	case ToggleWholesale:
		return toggleWholesale(state, a.IsWholesale, catalog)
	case ClearCart:
		return NewCartState()
	default:
		panic(fmt.Sprintf("pos: unhandled action %T", action))
	}
}

func addItem(state CartState, p Product) CartState {
	next := state.clone()

	// A repeat add keeps the line's current price and discount.
	if i := next.indexOf(p.ID); i >= 0 {
		next.Cart[i].Quantity++
		return next
	}

	next.Cart = append(next.Cart, LineItem{
		ID:       p.ID,
		Barcode:  p.Barcode,
		Name:     p.Name,
		Size:     p.Size,
		Quantity: 1,
		Price:    p.PriceFor(next.IsWholesale),
		Discount: 0,
	})
	return next
}

func removeItem(state CartState, id string) CartState {
	next := state.clone()
	i := next.indexOf(id)
	if i < 0 {
		return next
	}
	next.Cart = append(next.Cart[:i], next.Cart[i+1:]...)
	return next
}

func updateItem(state CartState, id string, patch LinePatch) CartState {
	i := state.indexOf(id)
	if i < 0 {
		return state.clone()
	}

	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return removeItem(state, id)
	}

	next := state.clone()
	line := &next.Cart[i]
	if patch.Quantity != nil {
		line.Quantity = *patch.Quantity
	}
	if patch.Discount != nil {
		line.Discount = ClampDiscount(*patch.Discount)
	}
	return next
}

func toggleWholesale(state CartState, wholesale bool, catalog Catalog) CartState {
	next := state.clone()
	next.IsWholesale = wholesale
	for i := range next.Cart {
		p, ok := catalog.Lookup(next.Cart[i].ID)
		if !ok {
			continue
		}
		next.Cart[i].Price = p.PriceFor(wholesale)
	}
	return next
}

// ClampDiscount bounds a line discount percentage to [0, 100].
func ClampDiscount(pct float64) float64 {
	switch {
	case math.IsNaN(pct), pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}
