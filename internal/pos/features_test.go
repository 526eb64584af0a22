package pos_test

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/aaravmahajanofficial/pos-admin/internal/pos"
	"github.com/cucumber/godog"
)

type cartTestContext struct {
	products map[string]pos.Product
	state    pos.CartState
	inputs   pos.Inputs
}

func (c *cartTestContext) reset() {
	c.products = map[string]pos.Product{}
	c.state = pos.NewCartState()
	c.inputs = pos.Inputs{}
}

func (c *cartTestContext) snapshot() pos.Catalog {
	list := make([]pos.Product, 0, len(c.products))
	for _, p := range c.products {
		list = append(list, p)
	}
	return pos.NewCatalog(list)
}

func (c *cartTestContext) dispatch(a pos.Action) {
	c.state = pos.Reduce(c.state, a, c.snapshot())
}

func (c *cartTestContext) theCatalogContains(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		retail, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return err
		}
		wholesale, err := strconv.ParseFloat(row.Cells[3].Value, 64)
		if err != nil {
			return err
		}
		id := row.Cells[0].Value
		c.products[id] = pos.Product{ID: id, Name: row.Cells[1].Value, RetailPrice: retail, WholesalePrice: wholesale}
	}
	return nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.state = pos.NewCartState()
	return nil
}

func (c *cartTestContext) iAddProduct(id string) error {
	p, ok := c.products[id]
	if !ok {
		return fmt.Errorf("product %q is not in the catalog", id)
	}
	c.dispatch(pos.AddItem{Product: p})
	return nil
}

func (c *cartTestContext) iRemoveProduct(id string) error {
	c.dispatch(pos.RemoveItem{ID: id})
	return nil
}

func (c *cartTestContext) iSetTheQuantityOf(id string, qty int) error {
	c.dispatch(pos.UpdateItem{ID: id, Patch: pos.LinePatch{Quantity: &qty}})
	return nil
}

func (c *cartTestContext) iSetTheDiscountOf(id string, pct float64) error {
	c.dispatch(pos.UpdateItem{ID: id, Patch: pos.LinePatch{Discount: &pct}})
	return nil
}

func (c *cartTestContext) iSelectCustomer(id string) error {
	c.dispatch(pos.SetCustomer{Customer: &pos.Customer{ID: id}})
	return nil
}

func (c *cartTestContext) iSwitchPricing(mode string) error {
	c.dispatch(pos.ToggleWholesale{IsWholesale: mode == "wholesale"})
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.dispatch(pos.ClearCart{})
	return nil
}

func (c *cartTestContext) theAdjustmentIs(v float64) error {
	c.inputs.Adjustment = v
	return nil
}

func (c *cartTestContext) theCustomerPaysInCash(v float64) error {
	c.inputs.CashIn = v
	return nil
}

func (c *cartTestContext) theCartHasLines(n int) error {
	if got := len(c.state.Cart); got != n {
		return fmt.Errorf("expected %d lines, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theCartIsEmpty() error {
	if !c.state.IsEmpty() {
		return fmt.Errorf("expected an empty cart, got %d lines", len(c.state.Cart))
	}
	return nil
}

func (c *cartTestContext) noCustomerIsSelected() error {
	if c.state.Customer != nil {
		return fmt.Errorf("expected no customer, got %q", c.state.Customer.ID)
	}
	return nil
}

func (c *cartTestContext) theCartIsInRetailMode() error {
	if c.state.IsWholesale {
		return fmt.Errorf("expected retail mode")
	}
	return nil
}

func (c *cartTestContext) lineHasQuantityAndPrice(id string, qty int, price float64) error {
	line, ok := c.state.Line(id)
	if !ok {
		return fmt.Errorf("line %q not in cart", id)
	}
	if line.Quantity != qty || line.Price != price {
		return fmt.Errorf("line %q: expected %d x %v, got %d x %v", id, qty, price, line.Quantity, line.Price)
	}
	return nil
}

func (c *cartTestContext) lineHasGrossTotal(id string, want float64) error {
	for _, lt := range pos.Calculate(c.state, c.inputs).Lines {
		if lt.ID == id {
			if pos.Round2(lt.Gross) != want {
				return fmt.Errorf("line %q: expected gross %v, got %v", id, want, lt.Gross)
			}
			return nil
		}
	}
	return fmt.Errorf("line %q not in totals", id)
}

func (c *cartTestContext) totalIs(field string) func(string) error {
	return func(want string) error {
		d := pos.Calculate(c.state, c.inputs).Display()
		got := map[string]string{
			"subtotal":    d.Subtotal,
			"tax":         d.Tax,
			"grand total": d.GrandTotal,
			"net total":   d.NetTotal,
			"balance":     d.Balance,
		}[field]
		if got != want {
			return fmt.Errorf("expected %s %s, got %s", field, want, got)
		}
		return nil
	}
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the catalog contains:$`, tc.theCatalogContains)
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	ctx.Step(`^I add product "([^"]*)"$`, tc.iAddProduct)
	ctx.Step(`^I remove product "([^"]*)"$`, tc.iRemoveProduct)
	ctx.Step(`^I set the quantity of "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantityOf)
	ctx.Step(`^I set the discount of "([^"]*)" to (-?\d+(?:\.\d+)?) percent$`, tc.iSetTheDiscountOf)
	ctx.Step(`^I select customer "([^"]*)"$`, tc.iSelectCustomer)
	ctx.Step(`^I switch to (wholesale|retail) pricing$`, tc.iSwitchPricing)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)
	ctx.Step(`^the adjustment is (-?\d+(?:\.\d+)?)$`, tc.theAdjustmentIs)
	ctx.Step(`^the customer pays (-?\d+(?:\.\d+)?) in cash$`, tc.theCustomerPaysInCash)

	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^no customer is selected$`, tc.noCustomerIsSelected)
	ctx.Step(`^the cart is in retail mode$`, tc.theCartIsInRetailMode)
	ctx.Step(`^line "([^"]*)" has quantity (\d+) and price (\d+(?:\.\d+)?)$`, tc.lineHasQuantityAndPrice)
	ctx.Step(`^line "([^"]*)" has a gross total of (\d+(?:\.\d+)?)$`, tc.lineHasGrossTotal)
	for _, field := range []string{"subtotal", "tax", "grand total", "net total", "balance"} {
		ctx.Step(`^the `+field+` is (-?\d+\.\d{2})$`, tc.totalIs(field))
	}
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "cart",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
