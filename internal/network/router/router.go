package router

import (
	"github.com/boituva/beachclub/internal/config"
	"github.com/boituva/beachclub/internal/network/handlers"
	"github.com/boituva/beachclub/internal/network/middleware"
	"github.com/boituva/beachclub/internal/services"
	"github.com/boituva/beachclub/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	Identity services.IdentityService
	Invoice  services.InvoiceService
	Orders   services.OrdersService
	Catalog  services.CatalogService
	Clients  services.ClientsService
	Events   services.EventsService
	Loyalty  services.LoyaltyService
	Reports  services.ReportService
}

func NewRouter(config config.Config, storage storage.Storage) *Router {
	return &Router{
		Config:   config,
		Identity: services.NewIdentity(config, storage.Users),
		Invoice:  services.NewInvoice(storage.Orders),
		Orders:   services.NewOrders(storage.Orders, storage.Products),
		Catalog:  services.NewCatalog(storage.Products),
		Clients:  services.NewClients(storage.Clients),
		Events:   services.NewEvents(storage.Events),
		Loyalty:  services.NewLoyalty(storage.Loyaltys),
		Reports:  services.NewReport(storage.Reports),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandler(router.Identity))
		})
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", handlers.AddOrderHandler(router.Orders))
				r.Get("/{client}", handlers.GetOrdersHandler(router.Orders))
			})
			r.Route("/invoice", func(r chi.Router) {
				r.Get("/clients", handlers.OpenClientsHandler(router.Invoice))
				r.Get("/{client}", handlers.ComputeInvoiceHandler(router.Invoice))
				r.Post("/{client}/settle", handlers.SettleInvoiceHandler(router.Invoice))
			})
			r.Route("/products", func(r chi.Router) {
				r.Post("/", handlers.AddProductHandler(router.Catalog))
				r.Get("/", handlers.GetProductsHandler(router.Catalog))
				r.Put("/{name}/price", handlers.UpdatePriceHandler(router.Catalog))
				r.Delete("/{name}", handlers.DeleteProductHandler(router.Catalog))
			})
			r.Route("/stock", func(r chi.Router) {
				r.Post("/", handlers.AddStockMovementHandler(router.Catalog))
				r.Get("/{product}", handlers.GetStockLevelHandler(router.Catalog))
			})
			r.Route("/clients", func(r chi.Router) {
				r.Post("/", handlers.AddClientHandler(router.Clients))
				r.Get("/", handlers.GetClientsHandler(router.Clients))
				r.Delete("/{email}", handlers.DeleteClientHandler(router.Clients))
			})
			r.Route("/events", func(r chi.Router) {
				r.Post("/", handlers.ScheduleEventHandler(router.Events))
				r.Get("/", handlers.GetMonthEventsHandler(router.Events))
				r.Delete("/{id}", handlers.CancelEventHandler(router.Events))
			})
			r.Route("/loyalty", func(r chi.Router) {
				r.Get("/{client}/balance", handlers.GetLoyaltyBalanceHandler(router.Loyalty))
				r.Get("/{client}/history", handlers.GetLoyaltyHistoryHandler(router.Loyalty))
				r.Post("/{client}/points", handlers.AddLoyaltyPointsHandler(router.Loyalty))
				r.Post("/{client}/redeem", handlers.RedeemRewardHandler(router.Loyalty))
			})
			r.Route("/reports", func(r chi.Router) {
				r.Get("/revenue", handlers.GetDailyRevenueHandler(router.Reports))
				r.Get("/revenue/forecast", handlers.ForecastRevenueHandler(router.Reports))
			})
		})
	})
	return r
}
