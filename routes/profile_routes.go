package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vishwasvr/guhae-rental-property-app/controllers"
	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// RegisterProfileRoutes sets up routes for the caller's own profile
func RegisterProfileRoutes(r *mux.Router, authenticate func(http.Handler) http.Handler, profiles *services.ProfileService) {
	controller := controllers.NewProfileController(profiles)

	profileRouter := r.PathPrefix("/api/profile").Subrouter()
	profileRouter.Use(authenticate)

	profileRouter.HandleFunc("", controller.GetProfile).Methods("GET")
	profileRouter.HandleFunc("", controller.UpdateProfile).Methods("PUT")
}
