package pos

// Action is the closed set of cart transitions. Only the types in this file
// implement it.
type Action interface {
	Kind() string
	action()
}

const (
	KindAddItem         = "ADD_ITEM"
	KindRemoveItem      = "REMOVE_ITEM"
	KindUpdateItem      = "UPDATE_ITEM"
	KindSetCustomer     = "SET_CUSTOMER"
	KindToggleWholesale = "TOGGLE_WHOLESALE"
	KindClearCart       = "CLEAR_CART"
)

type AddItem struct {
	Product Product
}

type RemoveItem struct {
	ID string
}

// LinePatch carries the fields an UpdateItem may change. Nil fields are left
// untouched.
type LinePatch struct {
	Quantity *int     `json:"quantity,omitempty"`
	Discount *float64 `json:"discount,omitempty"`
}

type UpdateItem struct {
	ID    string
	Patch LinePatch
}

// SetCustomer replaces the selected customer; a nil Customer clears it.
type SetCustomer struct {
	Customer *Customer
}

type ToggleWholesale struct {
	IsWholesale bool
}

type ClearCart struct{}

func (AddItem) Kind() string         { return KindAddItem }
func (RemoveItem) Kind() string      { return KindRemoveItem }
func (UpdateItem) Kind() string      { return KindUpdateItem }
func (SetCustomer) Kind() string     { return KindSetCustomer }
func (ToggleWholesale) Kind() string { return KindToggleWholesale }
func (ClearCart) Kind() string       { return KindClearCart }

func (AddItem) action()         {}
func (RemoveItem) action()      {}
func (UpdateItem) action()      {}
func (SetCustomer) action()     {}
func (ToggleWholesale) action() {}
func (ClearCart) action()       {}

// TargetID returns the line id an action addresses, if any.
func TargetID(a Action) (string, bool) {
	switch a := a.(type) {
	case RemoveItem:
		return a.ID, true
	case UpdateItem:
		return a.ID, true
	default:
		return "", false
	}
}
