package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vishwasvr/guhae-rental-property-app/models"
)

// LoanService manages loan sub-records nested under a property partition.
// Every operation re-derives ownership from the parent property first.
type LoanService struct {
	Dynamo *DynamoService
	Guard  OwnershipGuard
	Logger *zap.Logger
}

// CreateLoan adds a loan under the property's partition key.
func (ls *LoanService) CreateLoan(ctx context.Context, callerID, propertyID string, req models.LoanCreateRequest) (*models.Loan, error) {
	if _, err := loadOwnedProperty(ctx, ls.Dynamo, ls.Guard, callerID, propertyID, ActionUpdate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Lender) == "" {
		return nil, NewInvalidInput("lender is required")
	}

	loanID := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	loan := models.Loan{
		PK:             models.PropertyPK(propertyID),
		SK:             models.LoanSK(loanID),
		ID:             loanID,
		PropertyID:     propertyID,
		Lender:         req.Lender,
		LoanType:       req.LoanType,
		OriginalAmount: req.OriginalAmount,
		CurrentAmount:  req.CurrentAmount,
		InterestRate:   req.InterestRate,
		TermYears:      req.TermYears,
		MonthlyPayment: req.MonthlyPayment,
		StartDate:      req.StartDate,
		MaturityDate:   req.MaturityDate,
		IsActive:       req.IsActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := ls.Dynamo.PutItem(ctx, loan); err != nil {
		return nil, err
	}

	ls.Logger.Info("loan created",
		zap.String("propertyId", propertyID),
		zap.String("loanId", loanID))

	loan.PK, loan.SK = "", ""
	return &loan, nil
}

// ListLoans returns all loans of a property via a partition query with the
// LOAN# sort-key prefix.
func (ls *LoanService) ListLoans(ctx context.Context, callerID, propertyID string) ([]models.Loan, error) {
	if _, err := loadOwnedProperty(ctx, ls.Dynamo, ls.Guard, callerID, propertyID, ActionRead); err != nil {
		return nil, err
	}

	items, err := ls.Dynamo.QueryByPartition(ctx, models.PropertyPK(propertyID), models.LoanKeyPrefix, 0)
	if err != nil {
		return nil, err
	}

	loans := make([]models.Loan, 0, len(items))
	for _, item := range items {
		loans = append(loans, models.FormatLoan(item))
	}
	return loans, nil
}

// UpdateLoan overwrites the fields present in the request on one loan.
func (ls *LoanService) UpdateLoan(ctx context.Context, callerID, propertyID, loanID string, wire map[string]interface{}) (*models.Loan, error) {
	if _, err := loadOwnedProperty(ctx, ls.Dynamo, ls.Guard, callerID, propertyID, ActionUpdate); err != nil {
		return nil, err
	}
	if err := ls.requireLoan(ctx, propertyID, loanID); err != nil {
		return nil, err
	}

	changes := models.LoanUpdateAttributes(wire)
	changes["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	updated, err := ls.Dynamo.UpdateItem(ctx, models.PropertyPK(propertyID), models.LoanSK(loanID), changes)
	if err != nil {
		return nil, err
	}
	formatted := models.FormatLoan(updated)
	return &formatted, nil
}

// DeleteLoan removes one loan record.
func (ls *LoanService) DeleteLoan(ctx context.Context, callerID, propertyID, loanID string) error {
	if _, err := loadOwnedProperty(ctx, ls.Dynamo, ls.Guard, callerID, propertyID, ActionDelete); err != nil {
		return err
	}
	if err := ls.requireLoan(ctx, propertyID, loanID); err != nil {
		return err
	}
	if err := ls.Dynamo.DeleteItem(ctx, models.PropertyPK(propertyID), models.LoanSK(loanID)); err != nil {
		return err
	}
	ls.Logger.Info("loan deleted",
		zap.String("propertyId", propertyID),
		zap.String("loanId", loanID))
	return nil
}

func (ls *LoanService) requireLoan(ctx context.Context, propertyID, loanID string) error {
	_, err := ls.Dynamo.GetItem(ctx, models.PropertyPK(propertyID), models.LoanSK(loanID))
	if err != nil {
		if KindOf(err) == KindNotFound {
			return NewNotFound("loan not found")
		}
		return err
	}
	return nil
}
