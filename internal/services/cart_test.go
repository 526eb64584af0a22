package service_test

import (
	"sync"
	"testing"

	"github.com/aaravmahajanofficial/pos-admin/internal/cache"
	"github.com/aaravmahajanofficial/pos-admin/internal/config"
	appErrors "github.com/aaravmahajanofficial/pos-admin/internal/errors"
	eventMocks "github.com/aaravmahajanofficial/pos-admin/internal/events/mocks"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/pos-admin/internal/services"
	svcMocks "github.com/aaravmahajanofficial/pos-admin/internal/services/mocks"
	stripeMocks "github.com/aaravmahajanofficial/pos-admin/pkg/stripe/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartDeps struct {
	cache     *memCache
	products  *svcMocks.ProductService
	parties   *svcMocks.PartyService
	sales     *mocks.SaleRepository
	payments  *stripeMocks.Client
	notifier  *svcMocks.NotificationService
	publisher *eventMocks.Publisher
}

func setupCartServiceTest(t *testing.T) (service.CartService, *cartDeps) {
	t.Helper()

	deps := &cartDeps{
		cache:     newMemCache(),
		products:  svcMocks.NewProductService(t),
		parties:   svcMocks.NewPartyService(t),
		sales:     mocks.NewSaleRepository(t),
		payments:  stripeMocks.NewClient(t),
		notifier:  svcMocks.NewNotificationService(t),
		publisher: eventMocks.NewPublisher(t),
	}

	svc := service.NewCartService(
		deps.cache,
		testCacheConfig,
		config.Store{Name: "Corner Store", MaxHeldCarts: 2},
		deps.products,
		deps.parties,
		deps.sales,
		deps.payments,
		deps.notifier,
		deps.publisher,
	)
	return svc, deps
}

// addToCart puts product into the terminal's cart through the service.
func addToCart(t *testing.T, svc service.CartService, deps *cartDeps, terminal string, product *models.Product) *models.CartView {
	t.Helper()
	deps.products.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()
	view, err := svc.AddItem(t.Context(), terminal, product.ID)
	require.NoError(t, err)
	return view
}

func TestCartAddItem(t *testing.T) {
	t.Run("Success - repeat add bumps quantity", func(t *testing.T) {
		// Arrange
		svc, deps := setupCartServiceTest(t)
		terminal := uuid.NewString()
		product := sampleProduct()

		// Act
		addToCart(t, svc, deps, terminal, product)
		view := addToCart(t, svc, deps, terminal, product)

		// Assert
		require.Len(t, view.Session.State.Cart, 1)
		assert.Equal(t, 2, view.Session.State.Cart[0].Quantity)
		assert.Equal(t, "1100.00", view.Display.Subtotal)
		assert.Equal(t, "88.00", view.Display.Tax)
		assert.Equal(t, "1188.00", view.Display.NetTotal)
		assert.Equal(t, testCacheConfig.SessionTTL, deps.cache.ttls[cache.Key(cache.CartKeyPrefix, terminal)])
	})

	t.Run("Failure - inactive product", func(t *testing.T) {
		svc, deps := setupCartServiceTest(t)
		product := sampleProduct()
		product.Active = false
		deps.products.On("GetProductByID", mock.Anything, product.ID).Return(product, nil).Once()

		view, err := svc.AddItem(t.Context(), uuid.NewString(), product.ID)

		assert.Nil(t, view)
		requireAppError(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Failure - unknown product", func(t *testing.T) {
		svc, deps := setupCartServiceTest(t)
		id := uuid.New()
		deps.products.On("GetProductByID", mock.Anything, id).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		_, err := svc.AddItem(t.Context(), uuid.NewString(), id)

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestCartScanBarcode(t *testing.T) {
	svc, deps := setupCartServiceTest(t)
	product := sampleProduct()
	deps.products.On("GetProductByBarcode", mock.Anything, product.Barcode).Return(product, nil).Once()

	view, err := svc.ScanBarcode(t.Context(), uuid.NewString(), product.Barcode)

	require.NoError(t, err)
	require.Len(t, view.Session.State.Cart, 1)
	assert.Equal(t, product.ID.String(), view.Session.State.Cart[0].ID)
}

func TestCartUpdateAndRemove(t *testing.T) {
	svc, deps := setupCartServiceTest(t)
	terminal := uuid.NewString()
	product := sampleProduct()
	addToCart(t, svc, deps, terminal, product)
	lineID := product.ID.String()

	t.Run("Success - discount is clamped", func(t *testing.T) {
		qty, discount := 3, 150.0

		view, err := svc.UpdateItem(t.Context(), terminal, lineID, &models.UpdateCartItemRequest{Quantity: &qty, Discount: &discount})

		require.NoError(t, err)
		line, ok := view.Session.State.Line(lineID)
		require.True(t, ok)
		assert.Equal(t, 3, line.Quantity)
		assert.Equal(t, 100.0, line.Discount)
	})

	t.Run("Success - missing line is a no-op", func(t *testing.T) {
		qty := 5

		view, err := svc.UpdateItem(t.Context(), terminal, uuid.NewString(), &models.UpdateCartItemRequest{Quantity: &qty})

		require.NoError(t, err)
		line, _ := view.Session.State.Line(lineID)
		assert.Equal(t, 3, line.Quantity)
	})

	t.Run("Failure - empty patch", func(t *testing.T) {
		_, err := svc.UpdateItem(t.Context(), terminal, lineID, &models.UpdateCartItemRequest{})

		requireAppError(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Success - zero quantity removes the line", func(t *testing.T) {
		qty := 0

		view, err := svc.UpdateItem(t.Context(), terminal, lineID, &models.UpdateCartItemRequest{Quantity: &qty})

		require.NoError(t, err)
		assert.True(t, view.Session.State.IsEmpty())
	})

	t.Run("Success - remove", func(t *testing.T) {
		addToCart(t, svc, deps, terminal, product)

		view, err := svc.RemoveItem(t.Context(), terminal, lineID)

		require.NoError(t, err)
		assert.True(t, view.Session.State.IsEmpty())
	})
}

func TestCartSetCustomer(t *testing.T) {
	svc, deps := setupCartServiceTest(t)
	terminal := uuid.NewString()
	customer := &models.Party{ID: uuid.New(), Kind: models.PartyCustomer, Name: "Ravi", Email: "ravi@example.com", Active: true}

	t.Run("Success - attach", func(t *testing.T) {
		deps.parties.On("GetParty", mock.Anything, models.PartyCustomer, customer.ID).Return(customer, nil).Once()

		view, err := svc.SetCustomer(t.Context(), terminal, &customer.ID)

		require.NoError(t, err)
		require.NotNil(t, view.Session.State.Customer)
		assert.Equal(t, "Ravi", view.Session.State.Customer.Name)
		assert.Equal(t, "ravi@example.com", view.Session.State.Customer.Email)
	})

	t.Run("Success - detach", func(t *testing.T) {
		view, err := svc.SetCustomer(t.Context(), terminal, nil)

		require.NoError(t, err)
		assert.Nil(t, view.Session.State.Customer)
	})

	t.Run("Failure - inactive customer", func(t *testing.T) {
		inactive := &models.Party{ID: uuid.New(), Kind: models.PartyCustomer, Name: "Old", Active: false}
		deps.parties.On("GetParty", mock.Anything, models.PartyCustomer, inactive.ID).Return(inactive, nil).Once()

		_, err := svc.SetCustomer(t.Context(), terminal, &inactive.ID)

		requireAppError(t, err, appErrors.ErrCodeBadRequest)
	})
}

func TestCartToggleWholesale(t *testing.T) {
	// Arrange
	svc, deps := setupCartServiceTest(t)
	terminal := uuid.NewString()
	product := sampleProduct()
	addToCart(t, svc, deps, terminal, product)

	repriced := *product
	repriced.WholesalePrice = 480
	deps.products.On("GetProductsByIDs", mock.Anything, []uuid.UUID{product.ID}).Return([]*models.Product{&repriced}, nil).Once()

	// Act
	view, err := svc.ToggleWholesale(t.Context(), terminal, true)

	// Assert
	require.NoError(t, err)
	assert.True(t, view.Session.State.IsWholesale)
	assert.Equal(t, 480.0, view.Session.State.Cart[0].Price)
}

func TestCartToggleWholesaleEmptyCart(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	view, err := svc.ToggleWholesale(t.Context(), uuid.NewString(), true)

	require.NoError(t, err)
	assert.True(t, view.Session.State.IsWholesale)
}

func TestCartSetInputsAndClear(t *testing.T) {
	svc, deps := setupCartServiceTest(t)
	terminal := uuid.NewString()
	addToCart(t, svc, deps, terminal, sampleProduct())

	view, err := svc.SetInputs(t.Context(), terminal, &models.SetCartInputsRequest{Adjustment: -8, WholesaleDiscount: 250, CashIn: 600})
	require.NoError(t, err)
	assert.Equal(t, 100.0, view.Session.Inputs.WholesaleDiscount)
	assert.Equal(t, "586.00", view.Display.NetTotal)
	assert.Equal(t, "14.00", view.Display.Balance)

	view, err = svc.ClearCart(t.Context(), terminal)
	require.NoError(t, err)
	assert.True(t, view.Session.State.IsEmpty())
	assert.Zero(t, view.Session.Inputs.CashIn)
}

func TestCartGetCartStartsEmpty(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	terminal := uuid.NewString()

	view, err := svc.GetCart(t.Context(), terminal)

	require.NoError(t, err)
	assert.Equal(t, terminal, view.Session.TerminalID)
	assert.True(t, view.Session.State.IsEmpty())
	assert.Equal(t, "0.00", view.Display.NetTotal)
}

func TestHeldCarts(t *testing.T) {
	svc, deps := setupCartServiceTest(t)
	terminal := uuid.NewString()
	product := sampleProduct()

	t.Run("Failure - empty cart cannot be held", func(t *testing.T) {
		_, err := svc.HoldCart(t.Context(), terminal, "")

		requireAppError(t, err, appErrors.ErrCodeBadRequest)
	})

	var first *models.HeldCartSummary

	t.Run("Success - hold clears the live cart", func(t *testing.T) {
		addToCart(t, svc, deps, terminal, product)

		summary, err := svc.HoldCart(t.Context(), terminal, "table 4")

		require.NoError(t, err)
		first = summary
		assert.Equal(t, "table 4", summary.Note)
		assert.Equal(t, 1, summary.Lines)
		assert.Equal(t, "594.00", summary.NetTotal)

		view, err := svc.GetCart(t.Context(), terminal)
		require.NoError(t, err)
		assert.True(t, view.Session.State.IsEmpty())
		assert.Equal(t, testCacheConfig.HeldTTL, deps.cache.ttls[cache.Key(cache.HeldKeyPrefix, terminal)])
	})

	t.Run("Failure - cap reached", func(t *testing.T) {
		addToCart(t, svc, deps, terminal, product)
		_, err := svc.HoldCart(t.Context(), terminal, "second")
		require.NoError(t, err)

		addToCart(t, svc, deps, terminal, product)
		_, err = svc.HoldCart(t.Context(), terminal, "third")

		requireAppError(t, err, appErrors.ErrCodeConflict)
	})

	t.Run("Success - list oldest first", func(t *testing.T) {
		held, err := svc.ListHeld(t.Context(), terminal)

		require.NoError(t, err)
		require.Len(t, held, 2)
		assert.Equal(t, first.ID, held[0].ID)
	})

	t.Run("Failure - resume onto a non-empty cart", func(t *testing.T) {
		_, err := svc.ResumeHeld(t.Context(), terminal, first.ID)

		requireAppError(t, err, appErrors.ErrCodeConflict)
	})

	t.Run("Success - resume restores the parked cart", func(t *testing.T) {
		_, err := svc.ClearCart(t.Context(), terminal)
		require.NoError(t, err)

		view, err := svc.ResumeHeld(t.Context(), terminal, first.ID)

		require.NoError(t, err)
		require.Len(t, view.Session.State.Cart, 1)
		held, err := svc.ListHeld(t.Context(), terminal)
		require.NoError(t, err)
		assert.Len(t, held, 1)
	})

	t.Run("Failure - resume unknown hold", func(t *testing.T) {
		_, err := svc.ClearCart(t.Context(), terminal)
		require.NoError(t, err)

		_, err = svc.ResumeHeld(t.Context(), terminal, uuid.New())

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Success - discard the last hold drops the key", func(t *testing.T) {
		held, err := svc.ListHeld(t.Context(), terminal)
		require.NoError(t, err)
		require.Len(t, held, 1)

		require.NoError(t, svc.DiscardHeld(t.Context(), terminal, held[0].ID))

		assert.False(t, deps.cache.has(cache.Key(cache.HeldKeyPrefix, terminal)))
		requireAppError(t, svc.DiscardHeld(t.Context(), terminal, held[0].ID), appErrors.ErrCodeNotFound)
	})
}

func TestHeldCartsLiveSaveFailure(t *testing.T) {
	cartPrefix := cache.CartKeyPrefix + ":"

	t.Run("Failure - hold keeps the live cart and drops the parked copy", func(t *testing.T) {
		// Arrange
		svc, deps := setupCartServiceTest(t)
		terminal := uuid.NewString()
		addToCart(t, svc, deps, terminal, sampleProduct())
		deps.cache.failSetsWithPrefix(cartPrefix)

		// Act
		_, err := svc.HoldCart(t.Context(), terminal, "table 9")

		// Assert
		requireAppError(t, err, appErrors.ErrCodeInternal)
		deps.cache.restoreSets()

		view, err := svc.GetCart(t.Context(), terminal)
		require.NoError(t, err)
		assert.Len(t, view.Session.State.Cart, 1)

		held, err := svc.ListHeld(t.Context(), terminal)
		require.NoError(t, err)
		assert.Empty(t, held)
		assert.False(t, deps.cache.has(cache.Key(cache.HeldKeyPrefix, terminal)))
	})

	t.Run("Failure - resume leaves the hold in place", func(t *testing.T) {
		// Arrange
		svc, deps := setupCartServiceTest(t)
		terminal := uuid.NewString()
		addToCart(t, svc, deps, terminal, sampleProduct())
		summary, err := svc.HoldCart(t.Context(), terminal, "")
		require.NoError(t, err)
		deps.cache.failSetsWithPrefix(cartPrefix)

		// Act
		_, err = svc.ResumeHeld(t.Context(), terminal, summary.ID)

		// Assert
		requireAppError(t, err, appErrors.ErrCodeInternal)
		deps.cache.restoreSets()

		view, err := svc.GetCart(t.Context(), terminal)
		require.NoError(t, err)
		assert.True(t, view.Session.State.IsEmpty())

		held, err := svc.ListHeld(t.Context(), terminal)
		require.NoError(t, err)
		require.Len(t, held, 1)
		assert.Equal(t, summary.ID, held[0].ID)
	})
}

func TestCartConcurrentAddsOnOneTerminal(t *testing.T) {
	// Arrange
	svc, deps := setupCartServiceTest(t)
	terminal := uuid.NewString()
	product := sampleProduct()
	deps.products.On("GetProductByID", mock.Anything, product.ID).Return(product, nil)

	const adds = 25
	var wg sync.WaitGroup

	// Act
	for range adds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(t.Context(), terminal, product.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Assert
	view, err := svc.GetCart(t.Context(), terminal)
	require.NoError(t, err)
	require.Len(t, view.Session.State.Cart, 1)
	assert.Equal(t, adds, view.Session.State.Cart[0].Quantity)
}
