package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/teamkits/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/teamkits/go-backend/internal/cfg"
	"github.com/teamkits/go-backend/internal/usecase"
	"github.com/teamkits/go-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
	cfg    *cfg.HTTPConfig
}

func NewRouter(router *chi.Mux, logger logger.Logger, cfg *cfg.HTTPConfig) *Router {
	return &Router{router: router, logger: logger, cfg: cfg}
}

func (r *Router) Init(orderUC usecase.OrderUC) {
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		orderHandler := NewOrderHandler(orderUC, r.logger)
		quoteHandler := NewQuoteHandler(r.logger)
		registerOrderRoutes(v1, orderHandler)
		registerQuoteRoutes(v1, quoteHandler)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Post("/", h.submitBatch)
		or.Get("/", h.getOrders)
		or.Get("/{reference}", h.getOrderSummary)
		or.Patch("/{reference}/review", h.reviewOrder)
	})

	router.Route("/order-items", func(oi chi.Router) {
		oi.Patch("/{id}/status", h.updateItemStatus)
	})
}

func registerQuoteRoutes(router chi.Router, h *QuoteHandler) {
	router.Post("/quotes", h.quoteBatch)
}
