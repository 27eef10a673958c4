package http

import (
	"net/http"

	_ "github.com/DRSN-tech/store-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// UseCases — набор сценариев, которые обслуживает HTTP API.
type UseCases struct {
	Products usecase.ProductUC
	Users    usecase.UserUC
	Orders   usecase.OrderUC
	Reviews  usecase.ReviewUC
}

func (r *Router) Init(uc UseCases, tokens TokenParser, allowedOrigins []string) {
	r.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		RequestLogger(r.logger),
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			MaxAge:         300,
		}),
	)

	r.router.Get("/", liveness)
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // ссылка на JSON
	))

	guard := NewGuard(tokens, uc.Users, r.logger)

	registerProductRoutes(r.router, NewProductHandler(uc.Products, r.logger), guard)
	registerUserRoutes(r.router, NewUserHandler(uc.Users, r.logger), guard)
	registerOrderRoutes(r.router, NewOrderHandler(uc.Orders, r.logger), guard)
	registerReviewRoutes(r.router, NewReviewHandler(uc.Reviews, r.logger))
}

func liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Backend Server IS Running"))
}

func registerProductRoutes(router chi.Router, h *ProductHandler, guard *Guard) {
	router.Get("/home-products", h.listHomeProducts)

	router.Route("/products", func(pr chi.Router) {
		pr.Get("/{id}", h.getProduct)
		pr.Put("/{id}", h.setQuantity)
		pr.Delete("/{id}", h.deleteProduct)

		pr.Group(func(auth chi.Router) {
			auth.Use(guard.RequireToken)
			auth.Get("/", h.listProducts)

			auth.With(guard.RequireAdmin).Post("/", h.createProduct)
			auth.With(guard.RequireAdmin).Put("/{id}/image", h.uploadProductImage)
		})
	})
}

func registerUserRoutes(router chi.Router, h *UserHandler, guard *Guard) {
	router.Get("/admin/{email}", h.checkAdmin)

	router.Route("/user", func(ur chi.Router) {
		ur.Put("/{email}", h.upsertUser)
		ur.Put("/update/{email}", h.updateProfile)

		ur.Group(func(auth chi.Router) {
			auth.Use(guard.RequireToken)
			auth.Get("/{email}", h.getUser)

			auth.With(guard.RequireAdmin).Get("/", h.listUsers)
			auth.With(guard.RequireAdmin).Put("/admin/{email}", h.promoteToAdmin)
		})
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler, guard *Guard) {
	router.Delete("/order/{id}", h.deleteOrder)

	router.Route("/orders", func(or chi.Router) {
		or.Post("/", h.createOrder)

		or.Group(func(auth chi.Router) {
			auth.Use(guard.RequireToken)
			auth.Get("/", h.listOrders)
			auth.Get("/{id}", h.getOrder)
			auth.Put("/{id}", h.payOrder)
			auth.Put("/status/{id}", h.setStatus)
		})
	})
}

func registerReviewRoutes(router chi.Router, h *ReviewHandler) {
	router.Route("/reviews", func(rr chi.Router) {
		rr.Get("/", h.listReviews)
		rr.Post("/", h.createReview)
	})
}
