package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/events"
	"github.com/aaravmahajanofficial/pos-admin/internal/metrics"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/pos"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/google/uuid"
	stripeAPI "github.com/stripe/stripe-go/v81"
)

func (s *cartService) saleNumber() string {
	return fmt.Sprintf("S-%s-%s", s.now().UTC().Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}

// buildSale snapshots the cart into a sale with every amount rounded to cents.
func buildSale(session *models.CartSession, inputs pos.Inputs, totals pos.Totals) (*models.Sale, error) {
	sale := &models.Sale{
		IsWholesale:       session.State.IsWholesale,
		Lines:             make([]models.SaleLine, 0, len(session.State.Cart)),
		Subtotal:          pos.Round2(totals.Subtotal),
		ItemDiscount:      pos.Round2(totals.TotalItemDiscount),
		WholesaleDiscount: pos.Round2(totals.WholesaleDiscountAmount),
		TotalDiscount:     pos.Round2(totals.TotalDiscount),
		Tax:               pos.Round2(totals.Tax),
		GrandTotal:        pos.Round2(totals.GrandTotal),
		Adjustment:        pos.Round2(inputs.Adjustment),
		NetTotal:          pos.Round2(totals.NetTotal),
		CashIn:            pos.Round2(totals.CashIn),
		Balance:           pos.Round2(totals.Balance),
	}

	if c := session.State.Customer; c != nil {
		id, err := uuid.Parse(c.ID)
		if err != nil {
			return nil, fmt.Errorf("customer id %q: %w", c.ID, err)
		}
		sale.CustomerID = &id
		sale.CustomerName = c.Name
		sale.CustomerEmail = c.Email
	}

	for i, line := range session.State.Cart {
		productID, err := uuid.Parse(line.ID)
		if err != nil {
			return nil, fmt.Errorf("line id %q: %w", line.ID, err)
		}
		lt := totals.Lines[i]
		sale.Lines = append(sale.Lines, models.SaleLine{
			ProductID: productID,
			Barcode:   line.Barcode,
			Name:      line.Name,
			Size:      line.Size,
			Quantity:  line.Quantity,
			UnitPrice: pos.Round2(line.Price),
			Discount:  line.Discount,
			Gross:     pos.Round2(lt.Gross),
			Net:       pos.Round2(lt.Net),
		})
	}

	return sale, nil
}

// Checkout turns the terminal's cart into a persisted sale. Card tender is
// authorized before the sale is written, released if the write fails and
// captured after it succeeds. Failures after the write are logged only.
func (s *cartService) Checkout(ctx context.Context, cashier *models.Claims, req *models.CheckoutRequest) (*models.Sale, error) {
	logger := middleware.LoggerFromContext(ctx)
	terminalID := cashier.UserID.String()

	unlock := s.lock(terminalID)
	defer unlock()

	session, err := s.loadSession(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	if session.State.IsEmpty() {
		return nil, errors.BadRequestError("Cart is empty")
	}

	inputs := session.Inputs
	if req.CashIn != nil {
		inputs.CashIn = *req.CashIn
	}

	totals := pos.Calculate(session.State, inputs)
	netTotal := pos.Round2(totals.NetTotal)
	if netTotal < 0 {
		return nil, errors.BadRequestError("Net total cannot be negative").
			WithDetail(fmt.Sprintf("net total is %s", pos.FormatAmount(netTotal)))
	}

	switch req.PaymentMethod {
	case models.PaymentCash:
		if pos.Round2(inputs.CashIn) < netTotal {
			return nil, errors.BadRequestError("Cash tendered does not cover the net total").
				WithDetail(fmt.Sprintf("net total is %s, cash in is %s", pos.FormatAmount(netTotal), pos.FormatAmount(inputs.CashIn)))
		}
	case models.PaymentCard:
		if req.PaymentMethodID == "" {
			return nil, errors.AddValidationError("payment_method_id", "is required for card payments")
		}
		if netTotal == 0 {
			return nil, errors.BadRequestError("Nothing to charge to a card").
				WithDetail("settle a zero net total as cash")
		}
		inputs.CashIn = netTotal
		totals = pos.Calculate(session.State, inputs)
	default:
		return nil, errors.AddValidationError("payment_method", "must be cash or card")
	}

	sale, err := buildSale(session, inputs, totals)
	if err != nil {
		return nil, errors.InternalError("Cart holds an invalid reference").WithError(err)
	}
	sale.Number = s.saleNumber()
	sale.CashierID = cashier.UserID
	sale.BranchID = cashier.BranchID
	sale.PaymentMethod = req.PaymentMethod

	var intentID string
	if req.PaymentMethod == models.PaymentCard {
		intentID, err = s.authorizeCard(ctx, sale, req.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		sale.PaymentReference = intentID
	}

	if err := s.sales.CreateSale(ctx, sale); err != nil {
		if intentID != "" {
			s.cancelCharge(ctx, intentID)
		}

		var stockErr *repository.StockError
		if stdErrors.As(err, &stockErr) {
			return nil, errors.ConflictError("Insufficient stock").
				WithDetail(fmt.Sprintf("product %s does not have enough stock", stockErr.ProductID)).
				WithError(err)
		}
		return nil, repoError(err, "Sale", "record sale")
	}

	if intentID != "" {
		s.captureCharge(ctx, sale)
	}

	logger.Info("Sale completed",
		slog.String("saleId", sale.ID.String()),
		slog.String("number", sale.Number),
		slog.String("paymentMethod", string(sale.PaymentMethod)),
		slog.Float64("netTotal", sale.NetTotal))

	metrics.RecordSale(string(sale.PaymentMethod), sale.NetTotal)

	productIDs := make([]uuid.UUID, 0, len(sale.Lines))
	for _, line := range sale.Lines {
		productIDs = append(productIDs, line.ProductID)
	}
	s.products.Invalidate(ctx, productIDs...)

	if err := s.publisher.Publish(ctx, events.SaleCompleted, sale); err != nil {
		logger.Warn("Failed to publish sale event", slog.String("saleId", sale.ID.String()), slog.String("error", err.Error()))
	}

	if sale.CustomerEmail != "" {
		if _, err := s.notifier.SendReceipt(ctx, sale, ""); err != nil {
			logger.Warn("Failed to send receipt", slog.String("saleId", sale.ID.String()), slog.String("error", err.Error()))
		}
	}

	if err := s.saveSession(ctx, models.NewCartSession(terminalID)); err != nil {
		logger.Error("Failed to clear cart after checkout",
			slog.String("saleId", sale.ID.String()),
			slog.String("error", err.Error()))
	}

	return sale, nil
}

func (s *cartService) authorizeCard(ctx context.Context, sale *models.Sale, paymentMethodID string) (string, error) {
	extCtx, cancel := utils.WithExternalTimeout(ctx)
	defer cancel()

	metadata := map[string]string{
		"sale_number": sale.Number,
		"cashier_id":  sale.CashierID.String(),
	}

	intent, err := s.payments.AuthorizeCard(extCtx, sale.NetTotal, paymentMethodID, "POS sale "+sale.Number, metadata)
	if err != nil {
		return "", errors.ThirdPartyError("Card payment failed").WithError(err)
	}

	if intent.Status != stripeAPI.PaymentIntentStatusRequiresCapture {
		s.cancelCharge(ctx, intent.ID)
		return "", errors.BadRequestError("Card payment was not completed").
			WithDetail(fmt.Sprintf("payment status is %s", intent.Status))
	}

	return intent.ID, nil
}

// captureCharge settles the authorization of a recorded sale. A failed
// capture leaves the authorization open for manual capture in Stripe.
func (s *cartService) captureCharge(ctx context.Context, sale *models.Sale) {
	extCtx, cancel := utils.WithExternalTimeout(ctx)
	defer cancel()

	if _, err := s.payments.CapturePaymentIntent(extCtx, sale.PaymentReference); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to capture payment intent",
			slog.String("saleId", sale.ID.String()),
			slog.String("paymentIntentId", sale.PaymentReference),
			slog.String("error", err.Error()))
	}
}

func (s *cartService) cancelCharge(ctx context.Context, intentID string) {
	extCtx, cancel := utils.WithExternalTimeout(ctx)
	defer cancel()

	if err := s.payments.CancelPaymentIntent(extCtx, intentID); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to cancel payment intent",
			slog.String("paymentIntentId", intentID),
			slog.String("error", err.Error()))
	}
}
