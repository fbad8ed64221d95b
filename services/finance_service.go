package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vishwasvr/guhae-rental-property-app/models"
)

// FinanceService manages the single finance sub-record nested under a
// property.
type FinanceService struct {
	Dynamo *DynamoService
	Guard  OwnershipGuard
	Logger *zap.Logger
}

// GetFinance returns the finance record of a property the caller owns.
func (fs *FinanceService) GetFinance(ctx context.Context, callerID, propertyID string) (*models.Finance, error) {
	if _, err := loadOwnedProperty(ctx, fs.Dynamo, fs.Guard, callerID, propertyID, ActionRead); err != nil {
		return nil, err
	}

	item, err := fs.Dynamo.GetItem(ctx, models.PropertyPK(propertyID), models.SortKeyFinance)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return nil, NewNotFound("finance record not found")
		}
		return nil, err
	}

	formatted := models.FormatFinance(item)
	return &formatted, nil
}

// UpsertFinance writes the finance record, creating it on first write. The
// API exposes no separate create route for finance, so PUT covers both.
func (fs *FinanceService) UpsertFinance(ctx context.Context, callerID, propertyID string, wire map[string]interface{}) (*models.Finance, error) {
	if _, err := loadOwnedProperty(ctx, fs.Dynamo, fs.Guard, callerID, propertyID, ActionUpdate); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	changes := models.FinanceUpdateAttributes(wire)
	changes["updated_at"] = now

	_, err := fs.Dynamo.GetItem(ctx, models.PropertyPK(propertyID), models.SortKeyFinance)
	if err != nil {
		if KindOf(err) != KindNotFound {
			return nil, err
		}
		// First write: build a complete item around the changes.
		item := map[string]interface{}{
			"pk":          models.PropertyPK(propertyID),
			"sk":          models.SortKeyFinance,
			"property_id": propertyID,
			"created_at":  now,
		}
		for attr, value := range changes {
			item[attr] = value
		}
		if err := fs.Dynamo.PutItem(ctx, item); err != nil {
			return nil, err
		}
		fs.Logger.Info("finance record created", zap.String("propertyId", propertyID))
		return fs.GetFinance(ctx, callerID, propertyID)
	}

	updated, err := fs.Dynamo.UpdateItem(ctx, models.PropertyPK(propertyID), models.SortKeyFinance, changes)
	if err != nil {
		return nil, err
	}
	formatted := models.FormatFinance(updated)
	return &formatted, nil
}
