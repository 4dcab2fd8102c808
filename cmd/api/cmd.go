package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/bootstrap"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/config"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/handlers"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/response"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/router"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/services"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)
	cstore := store.NewCardStore(bs.Firestore)
	wstore := store.NewWishlistStore(bs.Firestore)
	astore := store.NewAcquisitionStore(bs.Firestore)

	// services
	userv := services.NewUserService(ustore, tstore, cstore, wstore, astore)
	tserv := services.NewTransactionService(tstore)
	cserv := services.NewCardService(cstore, tstore, ustore)
	wserv := services.NewWishlistService(wstore, astore)
	rserv := services.NewReportService(tstore)
	iserv := services.NewInsightService(bs.Vertex, rserv)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.TransactionSvc = tserv
	deps.CardSvc = cserv
	deps.WishlistSvc = wserv
	deps.ReportSvc = rserv
	deps.InsightSvc = iserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
