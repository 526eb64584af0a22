package main

import (
	"net/http"
	"strings"

	_ "github.com/aaravmahajanofficial/pos-admin/docs"
	"github.com/aaravmahajanofficial/pos-admin/internal/api/handlers"
	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	service "github.com/aaravmahajanofficial/pos-admin/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
)

const apiPrefix = "/api/v1"

type Services struct {
	User         service.UserService
	Master       service.MasterService
	Party        service.PartyService
	Product      service.ProductService
	Purchase     service.PurchaseService
	Cart         service.CartService
	Sale         service.SaleService
	Label        service.LabelService
	Notification service.NotificationService
}

// router mounts handlers under apiPrefix behind authentication and a permission check.
type router struct {
	mux  *http.ServeMux
	auth *middleware.AuthMiddleware
}

func (rt router) public(pattern string, h http.HandlerFunc) {
	method, path := splitPattern(pattern)
	rt.mux.HandleFunc(method+" "+apiPrefix+path, h)
}

// authenticated only requires a valid token.
func (rt router) authenticated(pattern string, h http.HandlerFunc) {
	method, path := splitPattern(pattern)
	rt.mux.Handle(method+" "+apiPrefix+path, rt.auth.Authenticate(h))
}

func (rt router) protected(perm models.Permission, pattern string, h http.HandlerFunc) {
	method, path := splitPattern(pattern)
	rt.mux.Handle(method+" "+apiPrefix+path, rt.auth.Authenticate(middleware.RequirePermission(perm)(h)))
}

func splitPattern(pattern string) (string, string) {
	method, path, _ := strings.Cut(pattern, " ")
	return method, path
}

// resource is the handler set every catalog-style resource exposes.
type resource interface {
	Create() http.HandlerFunc
	Get() http.HandlerFunc
	Update() http.HandlerFunc
	SetActive(active bool) http.HandlerFunc
	List() http.HandlerFunc
	ListActive() http.HandlerFunc
}

func (rt router) resource(name string, read, write models.Permission, h resource) {
	base := "/" + name
	rt.protected(read, "GET "+base, h.List())
	rt.protected(read, "GET "+base+"/active/list", h.ListActive())
	rt.protected(read, "GET "+base+"/{id}", h.Get())
	rt.protected(write, "POST "+base, h.Create())
	rt.protected(write, "PUT "+base+"/{id}", h.Update())
	rt.protected(write, "PATCH "+base+"/{id}/activate", h.SetActive(true))
	rt.protected(write, "PATCH "+base+"/{id}/deactivate", h.SetActive(false))
}

func registerRoutes(mux *http.ServeMux, s Services, auth *middleware.AuthMiddleware) {
	rt := router{mux: mux, auth: auth}

	userHandler := handlers.NewUserHandler(s.User)
	rt.public("POST /users/login", userHandler.Login())
	rt.authenticated("GET /users/profile", userHandler.Profile())
	rt.protected(models.PermUsersManage, "POST /users", userHandler.CreateUser())
	rt.protected(models.PermUsersManage, "GET /users", userHandler.ListUsers())
	rt.protected(models.PermUsersManage, "PATCH /users/{id}/role", userHandler.UpdateRole())
	rt.protected(models.PermUsersManage, "PATCH /users/{id}/activate", userHandler.SetUserActive(true))
	rt.protected(models.PermUsersManage, "PATCH /users/{id}/deactivate", userHandler.SetUserActive(false))

	for _, kind := range models.MasterKinds {
		write := models.PermCatalogWrite
		if kind == models.MasterBranch {
			write = models.PermUsersManage
		}
		rt.resource(string(kind), models.PermCatalogRead, write, handlers.NewMasterHandler(s.Master, kind))
	}

	// Cashiers register walk-in customers at the till.
	rt.resource(string(models.PartyCustomer), models.PermCatalogRead, models.PermPOSSell, handlers.NewPartyHandler(s.Party, models.PartyCustomer))
	rt.resource(string(models.PartySupplier), models.PermCatalogRead, models.PermPurchasingWrite, handlers.NewPartyHandler(s.Party, models.PartySupplier))

	productHandler := handlers.NewProductHandler(s.Product)
	rt.protected(models.PermCatalogRead, "GET /products", productHandler.ListProducts())
	rt.protected(models.PermCatalogRead, "GET /products/active/list", productHandler.ListActiveProducts())
	rt.protected(models.PermCatalogRead, "GET /products/low-stock", productHandler.ListLowStock())
	rt.protected(models.PermCatalogRead, "GET /products/barcode/{barcode}", productHandler.GetProductByBarcode())
	rt.protected(models.PermCatalogRead, "GET /products/{id}", productHandler.GetProduct())
	rt.protected(models.PermCatalogWrite, "POST /products", productHandler.CreateProduct())
	rt.protected(models.PermCatalogWrite, "PUT /products/{id}", productHandler.UpdateProduct())
	rt.protected(models.PermCatalogWrite, "PATCH /products/{id}/activate", productHandler.SetProductActive(true))
	rt.protected(models.PermCatalogWrite, "PATCH /products/{id}/deactivate", productHandler.SetProductActive(false))

	purchaseHandler := handlers.NewPurchaseHandler(s.Purchase)
	rt.protected(models.PermCatalogRead, "GET /purchase-orders", purchaseHandler.ListPurchaseOrders())
	rt.protected(models.PermCatalogRead, "GET /purchase-orders/{id}", purchaseHandler.GetPurchaseOrder())
	rt.protected(models.PermCatalogRead, "GET /purchase-orders/{id}/grns", purchaseHandler.ListGoodsReceived())
	rt.protected(models.PermPurchasingWrite, "POST /purchase-orders", purchaseHandler.CreatePurchaseOrder())
	rt.protected(models.PermPurchasingWrite, "PUT /purchase-orders/{id}", purchaseHandler.UpdateDraft())
	rt.protected(models.PermPurchasingWrite, "POST /purchase-orders/{id}/submit", purchaseHandler.Submit())
	rt.protected(models.PermPurchasingWrite, "POST /purchase-orders/{id}/cancel", purchaseHandler.Cancel())
	rt.protected(models.PermPurchasingWrite, "POST /purchase-orders/{id}/receive", purchaseHandler.ReceiveGoods())

	cartHandler := handlers.NewCartHandler(s.Cart)
	rt.protected(models.PermPOSSell, "GET /cart", cartHandler.GetCart())
	rt.protected(models.PermPOSSell, "DELETE /cart", cartHandler.ClearCart())
	rt.protected(models.PermPOSSell, "POST /cart/items", cartHandler.AddItem())
	rt.protected(models.PermPOSSell, "POST /cart/scan", cartHandler.ScanBarcode())
	rt.protected(models.PermPOSSell, "PATCH /cart/items/{id}", cartHandler.UpdateItem())
	rt.protected(models.PermPOSSell, "DELETE /cart/items/{id}", cartHandler.RemoveItem())
	rt.protected(models.PermPOSSell, "PUT /cart/customer", cartHandler.SetCustomer())
	rt.protected(models.PermPOSSell, "PUT /cart/wholesale", cartHandler.ToggleWholesale())
	rt.protected(models.PermPOSSell, "PUT /cart/inputs", cartHandler.SetInputs())
	rt.protected(models.PermPOSSell, "POST /cart/hold", cartHandler.HoldCart())
	rt.protected(models.PermPOSSell, "GET /cart/held", cartHandler.ListHeld())
	rt.protected(models.PermPOSSell, "POST /cart/held/{id}/resume", cartHandler.ResumeHeld())
	rt.protected(models.PermPOSSell, "DELETE /cart/held/{id}", cartHandler.DiscardHeld())
	rt.protected(models.PermPOSSell, "POST /cart/checkout", cartHandler.Checkout())

	saleHandler := handlers.NewSaleHandler(s.Sale)
	rt.protected(models.PermReportsRead, "GET /sales", saleHandler.ListSales())
	rt.protected(models.PermReportsRead, "GET /sales/{id}", saleHandler.GetSale())
	rt.protected(models.PermPOSSell, "POST /sales/{id}/receipt", saleHandler.ResendReceipt())
	rt.protected(models.PermReportsRead, "GET /reports/sales", saleHandler.SalesReport())

	labelHandler := handlers.NewLabelHandler(s.Label)
	rt.protected(models.PermCatalogRead, "POST /labels/layout", labelHandler.Layout())

	notificationHandler := handlers.NewNotificationHandler(s.Notification)
	rt.protected(models.PermUsersManage, "POST /notifications/email", notificationHandler.SendEmail())
	rt.protected(models.PermReportsRead, "GET /notifications", notificationHandler.ListNotifications())
	rt.protected(models.PermReportsRead, "GET /notifications/{id}", notificationHandler.GetNotification())

	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
}
