package routes

import (
	"github.com/gorilla/mux"

	"github.com/vishwasvr/guhae-rental-property-app/controllers"
	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// RegisterAuthRoutes sets up the unauthenticated registration and login
// routes under /api/auth
func RegisterAuthRoutes(r *mux.Router, identity services.IdentityProvider) {
	controller := controllers.NewAuthController(identity)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/register", controller.Register).Methods("POST")
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
}
