package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vishwasvr/guhae-rental-property-app/controllers"
	"github.com/vishwasvr/guhae-rental-property-app/middleware"
	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// Services groups everything the router depends on. Constructed once at
// startup and passed by reference.
type Services struct {
	Identity   services.IdentityProvider
	Properties *services.PropertyService
	Finance    *services.FinanceService
	Loans      *services.LoanService
	Profiles   *services.ProfileService
	Objects    services.ObjectStore
	Dynamo     *services.DynamoService
	Logger     *zap.Logger
}

// NewRouter builds the full application router: resource routes, dashboard,
// health, JSON 404/405 envelopes and the recovery/logging middleware.
func NewRouter(deps *Services) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))

	authenticate := middleware.Authenticate(deps.Identity)

	RegisterAuthRoutes(r, deps.Identity)
	RegisterProfileRoutes(r, authenticate, deps.Profiles)
	RegisterPropertyRoutes(r, authenticate, deps.Properties, deps.Finance, deps.Loans, deps.Objects, deps.Logger)

	dashboardController := controllers.NewDashboardController(deps.Properties)
	dashboardRouter := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardRouter.Use(authenticate)
	dashboardRouter.HandleFunc("", dashboardController.GetStats).Methods("GET")

	healthController := controllers.NewHealthController(deps.Dynamo)
	r.HandleFunc("/api/health", healthController.GetHealth).Methods("GET")

	// Preflights are normally short-circuited by the CORS layer; this covers
	// any OPTIONS request that reaches the router, with no store work.
	r.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	notFound := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}`))
	})
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	return r
}
