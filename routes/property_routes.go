package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vishwasvr/guhae-rental-property-app/controllers"
	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// RegisterPropertyRoutes sets up the authenticated property routes together
// with their finance, loan and image sub-resources. The finance/loan/image
// patterns are longer than the generic /{id} pattern, so mux matches them
// first even though they share a prefix.
func RegisterPropertyRoutes(
	r *mux.Router,
	authenticate func(http.Handler) http.Handler,
	properties *services.PropertyService,
	finance *services.FinanceService,
	loans *services.LoanService,
	objects services.ObjectStore,
	logger *zap.Logger,
) {
	propertyController := controllers.NewPropertyController(properties)
	financeController := controllers.NewFinanceController(finance)
	loanController := controllers.NewLoanController(loans)
	s3Controller := controllers.NewS3Controller(objects, properties, logger)

	propertyRouter := r.PathPrefix("/api/properties").Subrouter()
	propertyRouter.Use(authenticate)

	propertyRouter.HandleFunc("", propertyController.ListProperties).Methods("GET")
	propertyRouter.HandleFunc("", propertyController.CreateProperty).Methods("POST")

	propertyRouter.HandleFunc("/{id}/finance", financeController.GetFinance).Methods("GET")
	propertyRouter.HandleFunc("/{id}/finance", financeController.UpdateFinance).Methods("PUT")

	propertyRouter.HandleFunc("/{id}/loans", loanController.ListLoans).Methods("GET")
	propertyRouter.HandleFunc("/{id}/loans", loanController.CreateLoan).Methods("POST")
	propertyRouter.HandleFunc("/{id}/loans/{loanId}", loanController.UpdateLoan).Methods("PUT")
	propertyRouter.HandleFunc("/{id}/loans/{loanId}", loanController.DeleteLoan).Methods("DELETE")

	propertyRouter.HandleFunc("/{id}/images", s3Controller.GenerateUploadURL).Methods("POST")
	propertyRouter.HandleFunc("/{id}/images/read", s3Controller.GenerateReadURL).Methods("POST")

	propertyRouter.HandleFunc("/{id}", propertyController.GetProperty).Methods("GET")
	propertyRouter.HandleFunc("/{id}", propertyController.UpdateProperty).Methods("PUT")
	propertyRouter.HandleFunc("/{id}", propertyController.DeleteProperty).Methods("DELETE")
}
