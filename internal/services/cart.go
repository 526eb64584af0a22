package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/cache"
	"github.com/aaravmahajanofficial/pos-admin/internal/config"
	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/events"
	"github.com/aaravmahajanofficial/pos-admin/internal/metrics"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/pos"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/aaravmahajanofficial/pos-admin/pkg/stripe"
	"github.com/google/uuid"
	"github.com/moby/locker"
)

// CartService drives the live cart of each terminal. A terminal is identified
// by the id of the cashier signed in on it.
type CartService interface {
	GetCart(ctx context.Context, terminalID string) (*models.CartView, error)
	AddItem(ctx context.Context, terminalID string, productID uuid.UUID) (*models.CartView, error)
	ScanBarcode(ctx context.Context, terminalID, barcode string) (*models.CartView, error)
	UpdateItem(ctx context.Context, terminalID, lineID string, req *models.UpdateCartItemRequest) (*models.CartView, error)
	RemoveItem(ctx context.Context, terminalID, lineID string) (*models.CartView, error)
	SetCustomer(ctx context.Context, terminalID string, customerID *uuid.UUID) (*models.CartView, error)
	ToggleWholesale(ctx context.Context, terminalID string, wholesale bool) (*models.CartView, error)
	SetInputs(ctx context.Context, terminalID string, req *models.SetCartInputsRequest) (*models.CartView, error)
	ClearCart(ctx context.Context, terminalID string) (*models.CartView, error)

	HoldCart(ctx context.Context, terminalID, note string) (*models.HeldCartSummary, error)
	ListHeld(ctx context.Context, terminalID string) ([]*models.HeldCartSummary, error)
	ResumeHeld(ctx context.Context, terminalID string, holdID uuid.UUID) (*models.CartView, error)
	DiscardHeld(ctx context.Context, terminalID string, holdID uuid.UUID) error

	Checkout(ctx context.Context, cashier *models.Claims, req *models.CheckoutRequest) (*models.Sale, error)
}

type cartService struct {
	cache     cache.Cache
	cacheCfg  config.CacheConfig
	storeCfg  config.Store
	products  ProductService
	parties   PartyService
	sales     repository.SaleRepository
	payments  stripe.Client
	notifier  NotificationService
	publisher events.Publisher
	locks     *locker.Locker
	now       func() time.Time
}

func NewCartService(
	cache cache.Cache,
	cacheCfg config.CacheConfig,
	storeCfg config.Store,
	products ProductService,
	parties PartyService,
	sales repository.SaleRepository,
	payments stripe.Client,
	notifier NotificationService,
	publisher events.Publisher,
) CartService {
	return &cartService{
		cache:     cache,
		cacheCfg:  cacheCfg,
		storeCfg:  storeCfg,
		products:  products,
		parties:   parties,
		sales:     sales,
		payments:  payments,
		notifier:  notifier,
		publisher: publisher,
		locks:     locker.New(),
		now:       time.Now,
	}
}

// lock serializes cart changes per terminal within this process.
func (s *cartService) lock(terminalID string) func() {
	s.locks.Lock(terminalID)
	return func() { _ = s.locks.Unlock(terminalID) }
}

func cartKey(terminalID string) string {
	return cache.Key(cache.CartKeyPrefix, terminalID)
}

func heldKey(terminalID string) string {
	return cache.Key(cache.HeldKeyPrefix, terminalID)
}

func newCartView(session *models.CartSession) *models.CartView {
	totals := pos.Calculate(session.State, session.Inputs)
	return &models.CartView{
		Session: session,
		Totals:  totals,
		Display: totals.Display(),
	}
}

// loadSession returns the stored session or a fresh one. Callers hold the
// terminal lock.
func (s *cartService) loadSession(ctx context.Context, terminalID string) (*models.CartSession, error) {
	session := &models.CartSession{}
	found, err := s.cache.Get(ctx, cartKey(terminalID), session)
	if err != nil {
		return nil, errors.InternalError("Failed to load cart").WithError(err)
	}
	if !found {
		return models.NewCartSession(terminalID), nil
	}
	if session.State.Cart == nil {
		session.State.Cart = []pos.LineItem{}
	}
	return session, nil
}

func (s *cartService) saveSession(ctx context.Context, session *models.CartSession) error {
	session.UpdatedAt = s.now().UTC()
	if err := s.cache.Set(ctx, cartKey(session.TerminalID), session, s.cacheCfg.SessionTTL); err != nil {
		return errors.InternalError("Failed to save cart").WithError(err)
	}
	return nil
}

// mutate runs one load-change-save cycle under the terminal lock.
func (s *cartService) mutate(ctx context.Context, terminalID string, change func(session *models.CartSession) error) (*models.CartView, error) {
	unlock := s.lock(terminalID)
	defer unlock()

	session, err := s.loadSession(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	if err := change(session); err != nil {
		return nil, err
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return newCartView(session), nil
}

// dispatch applies a reducer action and warns when it addresses a line the
// cart does not have. Such actions leave the state unchanged.
func (s *cartService) dispatch(ctx context.Context, session *models.CartSession, action pos.Action, catalog pos.Catalog) {
	if id, ok := pos.TargetID(action); ok && !session.State.Has(id) {
		middleware.LoggerFromContext(ctx).Warn("Cart action targets a missing line",
			slog.String("action", action.Kind()),
			slog.String("lineId", id),
			slog.String("terminalId", session.TerminalID))
	}

	session.State = pos.Reduce(session.State, action, catalog)
	metrics.RecordCartAction(action.Kind())
}

func (s *cartService) GetCart(ctx context.Context, terminalID string) (*models.CartView, error) {
	unlock := s.lock(terminalID)
	defer unlock()

	session, err := s.loadSession(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	return newCartView(session), nil
}

func (s *cartService) AddItem(ctx context.Context, terminalID string, productID uuid.UUID) (*models.CartView, error) {
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.addProduct(ctx, terminalID, product)
}

func (s *cartService) ScanBarcode(ctx context.Context, terminalID, barcode string) (*models.CartView, error) {
	product, err := s.products.GetProductByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	return s.addProduct(ctx, terminalID, product)
}

func (s *cartService) addProduct(ctx context.Context, terminalID string, product *models.Product) (*models.CartView, error) {
	if !product.Active {
		return nil, errors.BadRequestError("Product is not available for sale")
	}

	item := product.ToPOS()
	return s.mutate(ctx, terminalID, func(session *models.CartSession) error {
		s.dispatch(ctx, session, pos.AddItem{Product: item}, pos.NewCatalog([]pos.Product{item}))
		return nil
	})
}

func (s *cartService) UpdateItem(ctx context.Context, terminalID, lineID string, req *models.UpdateCartItemRequest) (*models.CartView, error) {
	if req.Quantity == nil && req.Discount == nil {
		return nil, errors.BadRequestError("Nothing to update")
	}

	return s.mutate(ctx, terminalID, func(session *models.CartSession) error {
		action := pos.UpdateItem{ID: lineID, Patch: pos.LinePatch{Quantity: req.Quantity, Discount: req.Discount}}
		s.dispatch(ctx, session, action, pos.EmptyCatalog)
		return nil
	})
}

func (s *cartService) RemoveItem(ctx context.Context, terminalID, lineID string) (*models.CartView, error) {
	return s.mutate(ctx, terminalID, func(session *models.CartSession) error {
		s.dispatch(ctx, session, pos.RemoveItem{ID: lineID}, pos.EmptyCatalog)
		return nil
	})
}

// SetCustomer attaches an active customer to the cart, or detaches the current
// one when customerID is nil.
func (s *cartService) SetCustomer(ctx context.Context, terminalID string, customerID *uuid.UUID) (*models.CartView, error) {
	var customer *pos.Customer

	if customerID != nil {
		party, err := s.parties.GetParty(ctx, models.PartyCustomer, *customerID)
		if err != nil {
			return nil, err
		}
		if !party.Active {
			return nil, errors.BadRequestError("Customer is inactive")
		}
		customer = &pos.Customer{
			ID:    party.ID.String(),
			Name:  party.Name,
			Phone: party.Phone,
			Email: party.Email,
		}
	}

	return s.mutate(ctx, terminalID, func(session *models.CartSession) error {
		s.dispatch(ctx, session, pos.SetCustomer{Customer: customer}, pos.EmptyCatalog)
		return nil
	})
}

// ToggleWholesale reprices every line from the current catalog. Lines whose
// product has since disappeared keep their old price.
func (s *cartService) ToggleWholesale(ctx context.Context, terminalID string, wholesale bool) (*models.CartView, error) {
	return s.mutate(ctx, terminalID, func(session *models.CartSession) error {
		catalog, err := s.catalogFor(ctx, session.State)
		if err != nil {
			return err
		}
		s.dispatch(ctx, session, pos.ToggleWholesale{IsWholesale: wholesale}, catalog)
		return nil
	})
}

func (s *cartService) catalogFor(ctx context.Context, state pos.CartState) (pos.Catalog, error) {
	lineIDs := state.ProductIDs()
	if len(lineIDs) == 0 {
		return pos.EmptyCatalog, nil
	}

	ids := make([]uuid.UUID, 0, len(lineIDs))
	for _, raw := range lineIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	products, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]pos.Product, 0, len(products))
	for _, p := range products {
		items = append(items, p.ToPOS())
	}
	return pos.NewCatalog(items), nil
}

func (s *cartService) SetInputs(ctx context.Context, terminalID string, req *models.SetCartInputsRequest) (*models.CartView, error) {
	return s.mutate(ctx, terminalID, func(session *models.CartSession) error {
		session.Inputs = pos.Inputs{
			Adjustment:        req.Adjustment,
			WholesaleDiscount: pos.ClampDiscount(req.WholesaleDiscount),
			CashIn:            req.CashIn,
		}
		return nil
	})
}

// ClearCart empties the lines, detaches the customer and resets the inputs.
func (s *cartService) ClearCart(ctx context.Context, terminalID string) (*models.CartView, error) {
	return s.mutate(ctx, terminalID, func(session *models.CartSession) error {
		s.dispatch(ctx, session, pos.ClearCart{}, pos.EmptyCatalog)
		session.Inputs = pos.Inputs{}
		return nil
	})
}

func (s *cartService) loadHeld(ctx context.Context, terminalID string) (map[string]models.HeldCart, error) {
	held := map[string]models.HeldCart{}
	if _, err := s.cache.Get(ctx, heldKey(terminalID), &held); err != nil {
		return nil, errors.InternalError("Failed to load held carts").WithError(err)
	}
	if held == nil {
		held = map[string]models.HeldCart{}
	}
	return held, nil
}

func (s *cartService) saveHeld(ctx context.Context, terminalID string, held map[string]models.HeldCart) error {
	var err error
	if len(held) == 0 {
		err = s.cache.Delete(ctx, heldKey(terminalID))
	} else {
		err = s.cache.Set(ctx, heldKey(terminalID), held, s.cacheCfg.HeldTTL)
	}
	if err != nil {
		return errors.InternalError("Failed to save held carts").WithError(err)
	}
	return nil
}

func summarizeHeld(h models.HeldCart) *models.HeldCartSummary {
	summary := &models.HeldCartSummary{
		ID:        h.ID,
		Note:      h.Note,
		Lines:     len(h.Session.State.Cart),
		Items:     h.Session.State.ItemCount(),
		NetTotal:  pos.FormatAmount(pos.Calculate(h.Session.State, h.Session.Inputs).NetTotal),
		HeldAt:    h.HeldAt,
		Wholesale: h.Session.State.IsWholesale,
	}
	if h.Session.State.Customer != nil {
		summary.Customer = h.Session.State.Customer.Name
	}
	return summary
}

// HoldCart parks the live cart and leaves the terminal with an empty one.
func (s *cartService) HoldCart(ctx context.Context, terminalID, note string) (*models.HeldCartSummary, error) {
	unlock := s.lock(terminalID)
	defer unlock()

	session, err := s.loadSession(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	if session.State.IsEmpty() {
		return nil, errors.BadRequestError("Cannot hold an empty cart")
	}

	held, err := s.loadHeld(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	if s.storeCfg.MaxHeldCarts > 0 && len(held) >= s.storeCfg.MaxHeldCarts {
		return nil, errors.ConflictError("Too many held carts").
			WithDetail("Resume or discard a held cart first")
	}

	parked := models.HeldCart{
		ID:      uuid.New(),
		Note:    utils.Sanitize(note),
		Session: *session,
		HeldAt:  s.now().UTC(),
	}
	held[parked.ID.String()] = parked

	if err := s.saveHeld(ctx, terminalID, held); err != nil {
		return nil, err
	}

	// The parked copy must not outlive a live cart that failed to clear.
	if err := s.saveSession(ctx, models.NewCartSession(terminalID)); err != nil {
		delete(held, parked.ID.String())
		s.restoreHeld(ctx, terminalID, held, parked.ID)
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Cart held",
		slog.String("holdId", parked.ID.String()),
		slog.Int("lines", len(session.State.Cart)))

	return summarizeHeld(parked), nil
}

// ListHeld returns the parked carts, oldest first.
func (s *cartService) ListHeld(ctx context.Context, terminalID string) ([]*models.HeldCartSummary, error) {
	unlock := s.lock(terminalID)
	defer unlock()

	held, err := s.loadHeld(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.HeldCartSummary, 0, len(held))
	for _, h := range held {
		summaries = append(summaries, summarizeHeld(h))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].HeldAt.Before(summaries[j].HeldAt)
	})

	return summaries, nil
}

func (s *cartService) ResumeHeld(ctx context.Context, terminalID string, holdID uuid.UUID) (*models.CartView, error) {
	unlock := s.lock(terminalID)
	defer unlock()

	session, err := s.loadSession(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	if !session.State.IsEmpty() {
		return nil, errors.ConflictError("The current cart is not empty").
			WithDetail("Hold or clear the current cart before resuming another")
	}

	held, err := s.loadHeld(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	parked, ok := held[holdID.String()]
	if !ok {
		return nil, errors.NotFoundError("Held cart not found")
	}
	delete(held, holdID.String())

	resumed := parked.Session
	resumed.TerminalID = terminalID
	if resumed.State.Cart == nil {
		resumed.State.Cart = []pos.LineItem{}
	}

	if err := s.saveHeld(ctx, terminalID, held); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, &resumed); err != nil {
		held[holdID.String()] = parked
		s.restoreHeld(ctx, terminalID, held, holdID)
		return nil, err
	}

	return newCartView(&resumed), nil
}

// restoreHeld writes back the held map after the live cart could not be
// saved. A failure here is logged; the original error is what the caller sees.
func (s *cartService) restoreHeld(ctx context.Context, terminalID string, held map[string]models.HeldCart, holdID uuid.UUID) {
	if err := s.saveHeld(ctx, terminalID, held); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to roll back held carts",
			slog.String("holdId", holdID.String()),
			slog.String("error", err.Error()))
	}
}

func (s *cartService) DiscardHeld(ctx context.Context, terminalID string, holdID uuid.UUID) error {
	unlock := s.lock(terminalID)
	defer unlock()

	held, err := s.loadHeld(ctx, terminalID)
	if err != nil {
		return err
	}

	if _, ok := held[holdID.String()]; !ok {
		return errors.NotFoundError("Held cart not found")
	}
	delete(held, holdID.String())

	return s.saveHeld(ctx, terminalID, held)
}
