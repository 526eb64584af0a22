package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	service "github.com/aaravmahajanofficial/pos-admin/internal/services"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// CartHandler serves the caller's own terminal cart. The terminal is the
// authenticated cashier, so no cart id ever travels in the URL.
type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// cartCall runs fn for the caller's terminal and writes the resulting view.
func (h *CartHandler) cartCall(w http.ResponseWriter, r *http.Request, action string, fn func(terminalID string) (*models.CartView, error)) {
	claims, logger, ok := authenticated(w, r, action)
	if !ok {
		return
	}

	view, err := fn(claims.UserID.String())
	if err != nil {
		logger.Warn("Cart action failed", slog.String("action", action), slog.String("error", err.Error()))
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, view)
}

// GetCart godoc
//
//	@Summary	Current cart with totals
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	models.CartView
//	@Failure	401	{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.cartCall(w, r, "get cart", func(terminalID string) (*models.CartView, error) {
			return h.cartService.GetCart(r.Context(), terminalID)
		})
	}
}

// AddItem godoc
//
//	@Summary		Add a product to the cart
//	@Description	Adding a product already in the cart bumps its quantity by one.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddCartItemRequest	true	"Product"
//	@Success		200		{object}	models.CartView
//	@Failure		400		{object}	response.ErrorResponse	"Inactive product"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.cartCall(w, r, "add item", func(terminalID string) (*models.CartView, error) {
			return h.cartService.AddItem(r.Context(), terminalID, req.ProductID)
		})
	}
}

// ScanBarcode godoc
//
//	@Summary	Add a product by barcode
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		scan	body		models.ScanBarcodeRequest	true	"Barcode"
//	@Success	200		{object}	models.CartView
//	@Failure	404		{object}	response.ErrorResponse	"Unknown barcode"
//	@Security	BearerAuth
//	@Router		/cart/scan [post]
func (h *CartHandler) ScanBarcode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ScanBarcodeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.cartCall(w, r, "scan barcode", func(terminalID string) (*models.CartView, error) {
			return h.cartService.ScanBarcode(r.Context(), terminalID, req.Barcode)
		})
	}
}

// UpdateItem godoc
//
//	@Summary		Change a line's quantity or discount
//	@Description	A quantity of zero or less removes the line. Discounts are clamped to 0..100.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Line ID (the product ID)"
//	@Param			patch	body		models.UpdateCartItemRequest	true	"Fields to change"
//	@Success		200		{object}	models.CartView
//	@Security		BearerAuth
//	@Router			/cart/items/{id} [patch]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineID := r.PathValue("id")
		if lineID == "" {
			response.Error(w, errors.BadRequestError("Missing line id"))
			return
		}

		var req models.UpdateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.cartCall(w, r, "update item", func(terminalID string) (*models.CartView, error) {
			return h.cartService.UpdateItem(r.Context(), terminalID, lineID, &req)
		})
	}
}

// RemoveItem godoc
//
//	@Summary	Remove a line
//	@Tags		Cart
//	@Produce	json
//	@Param		id	path		string	true	"Line ID (the product ID)"
//	@Success	200	{object}	models.CartView
//	@Security	BearerAuth
//	@Router		/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lineID := r.PathValue("id")
		if lineID == "" {
			response.Error(w, errors.BadRequestError("Missing line id"))
			return
		}

		h.cartCall(w, r, "remove item", func(terminalID string) (*models.CartView, error) {
			return h.cartService.RemoveItem(r.Context(), terminalID, lineID)
		})
	}
}

// SetCustomer godoc
//
//	@Summary	Attach or clear the customer
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		customer	body		models.SetCustomerRequest	true	"Customer ID, or null to clear"
//	@Success	200			{object}	models.CartView
//	@Security	BearerAuth
//	@Router		/cart/customer [put]
func (h *CartHandler) SetCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SetCustomerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.cartCall(w, r, "set customer", func(terminalID string) (*models.CartView, error) {
			return h.cartService.SetCustomer(r.Context(), terminalID, req.CustomerID)
		})
	}
}

// ToggleWholesale godoc
//
//	@Summary		Switch between retail and wholesale pricing
//	@Description	Every line is re-priced from the catalog.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			mode	body		models.ToggleWholesaleRequest	true	"Pricing mode"
//	@Success		200		{object}	models.CartView
//	@Security		BearerAuth
//	@Router			/cart/wholesale [put]
func (h *CartHandler) ToggleWholesale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ToggleWholesaleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.cartCall(w, r, "toggle wholesale", func(terminalID string) (*models.CartView, error) {
			return h.cartService.ToggleWholesale(r.Context(), terminalID, req.IsWholesale)
		})
	}
}

// SetInputs godoc
//
//	@Summary	Set adjustment, wholesale discount and cash tendered
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		inputs	body		models.SetCartInputsRequest	true	"Inputs"
//	@Success	200		{object}	models.CartView
//	@Security	BearerAuth
//	@Router		/cart/inputs [put]
func (h *CartHandler) SetInputs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SetCartInputsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		h.cartCall(w, r, "set inputs", func(terminalID string) (*models.CartView, error) {
			return h.cartService.SetInputs(r.Context(), terminalID, &req)
		})
	}
}

// ClearCart godoc
//
//	@Summary	Empty the cart
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	models.CartView
//	@Security	BearerAuth
//	@Router		/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.cartCall(w, r, "clear cart", func(terminalID string) (*models.CartView, error) {
			return h.cartService.ClearCart(r.Context(), terminalID)
		})
	}
}

// HoldCart godoc
//
//	@Summary	Park the current cart
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		hold	body		models.HoldCartRequest	false	"Optional note"
//	@Success	201		{object}	models.HeldCartSummary
//	@Failure	400		{object}	response.ErrorResponse	"Empty cart"
//	@Failure	409		{object}	response.ErrorResponse	"Too many held carts"
//	@Security	BearerAuth
//	@Router		/cart/hold [post]
func (h *CartHandler) HoldCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := authenticated(w, r, "hold cart")
		if !ok {
			return
		}

		var req models.HoldCartRequest
		if r.ContentLength != 0 && !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		summary, err := h.cartService.HoldCart(r.Context(), claims.UserID.String(), req.Note)
		if err != nil {
			logger.Warn("Failed to hold cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart held", slog.String("holdId", summary.ID.String()))
		response.Success(w, http.StatusCreated, summary)
	}
}

// ListHeld godoc
//
//	@Summary	List parked carts, oldest first
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	models.ListResponse{data=[]models.HeldCartSummary}
//	@Security	BearerAuth
//	@Router		/cart/held [get]
func (h *CartHandler) ListHeld() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := authenticated(w, r, "list held carts")
		if !ok {
			return
		}

		held, err := h.cartService.ListHeld(r.Context(), claims.UserID.String())
		if err != nil {
			logger.Error("Failed to list held carts", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.ListResponse{Data: held})
	}
}

// ResumeHeld godoc
//
//	@Summary	Restore a parked cart
//	@Tags		Cart
//	@Produce	json
//	@Param		id	path		string	true	"Hold ID"	Format(uuid)
//	@Success	200	{object}	models.CartView
//	@Failure	404	{object}	response.ErrorResponse
//	@Failure	409	{object}	response.ErrorResponse	"Live cart is not empty"
//	@Security	BearerAuth
//	@Router		/cart/held/{id}/resume [post]
func (h *CartHandler) ResumeHeld() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holdID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		h.cartCall(w, r, "resume held cart", func(terminalID string) (*models.CartView, error) {
			return h.cartService.ResumeHeld(r.Context(), terminalID, holdID)
		})
	}
}

// DiscardHeld godoc
//
//	@Summary	Drop a parked cart
//	@Tags		Cart
//	@Param		id	path	string	true	"Hold ID"	Format(uuid)
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse
//	@Security	BearerAuth
//	@Router		/cart/held/{id} [delete]
func (h *CartHandler) DiscardHeld() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := authenticated(w, r, "discard held cart")
		if !ok {
			return
		}

		holdID, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.cartService.DiscardHeld(r.Context(), claims.UserID.String(), holdID); err != nil {
			logger.Warn("Failed to discard held cart", slog.String("holdId", holdID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Held cart discarded", slog.String("holdId", holdID.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// Checkout godoc
//
//	@Summary		Complete the sale
//	@Description	Records the cart as a sale, decrements stock and clears the cart. Card tender is charged through Stripe.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest	true	"Tender"
//	@Success		201			{object}	models.Sale
//	@Failure		400			{object}	response.ErrorResponse	"Empty cart or insufficient cash"
//	@Failure		409			{object}	response.ErrorResponse	"Insufficient stock"
//	@Failure		502			{object}	response.ErrorResponse	"Card payment failed"
//	@Security		BearerAuth
//	@Router			/cart/checkout [post]
func (h *CartHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := authenticated(w, r, "checkout")
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		sale, err := h.cartService.Checkout(r.Context(), claims, &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.String("paymentMethod", string(req.PaymentMethod)), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, sale)
	}
}
