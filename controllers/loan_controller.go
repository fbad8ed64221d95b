package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vishwasvr/guhae-rental-property-app/middleware"
	"github.com/vishwasvr/guhae-rental-property-app/models"
	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// LoanController handles loan sub-records of a property
type LoanController struct {
	Loans *services.LoanService
}

func NewLoanController(loans *services.LoanService) *LoanController {
	return &LoanController{Loans: loans}
}

// ListLoans handles GET /api/properties/{id}/loans
func (c *LoanController) ListLoans(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	loans, err := c.Loans.ListLoans(r.Context(), callerID, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"loans": loans})
}

// CreateLoan handles POST /api/properties/{id}/loans
func (c *LoanController) CreateLoan(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	var req models.LoanCreateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	loan, err := c.Loans.CreateLoan(r.Context(), callerID, mux.Vars(r)["id"], req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"loan": loan})
}

// UpdateLoan handles PUT /api/properties/{id}/loans/{loanId}
func (c *LoanController) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	var updates map[string]interface{}
	if err := decodeBody(r, &updates); err != nil {
		respondError(w, err)
		return
	}

	vars := mux.Vars(r)
	loan, err := c.Loans.UpdateLoan(r.Context(), callerID, vars["id"], vars["loanId"], updates)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"loan": loan})
}

// DeleteLoan handles DELETE /api/properties/{id}/loans/{loanId}
func (c *LoanController) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	vars := mux.Vars(r)
	if err := c.Loans.DeleteLoan(r.Context(), callerID, vars["id"], vars["loanId"]); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Loan deleted"})
}
