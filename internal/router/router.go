package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/handlers"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(middleware.NewMiddleware(deps.Firebase).FirebaseAuth)

	ush := handlers.NewUserHandlers(deps)
	txh := handlers.NewTransactionHandlers(deps)
	cdh := handlers.NewCardHandlers(deps)
	wlh := handlers.NewWishlistHandlers(deps)
	rph := handlers.NewReportHandlers(deps)

	r.Mount("/users", ush.UserRoutes())
	r.Mount("/transactions", txh.TransactionRoutes())
	r.Mount("/cards", cdh.CardRoutes())
	r.Mount("/wishlist", wlh.WishlistRoutes())
	r.Mount("/reports", rph.ReportRoutes())
	return r
}
