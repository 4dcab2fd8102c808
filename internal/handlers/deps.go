package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client

	UserSvc        userService
	TransactionSvc transactionService
	CardSvc        cardService
	WishlistSvc    wishlistService
	ReportSvc      reportService
	InsightSvc     insightService
}
