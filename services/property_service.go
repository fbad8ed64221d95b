package services

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vishwasvr/guhae-rental-property-app/models"
	"github.com/vishwasvr/guhae-rental-property-app/utils"
)

// PropertyService implements CRUD over property records plus the owner-scoped
// listing and dashboard counts.
type PropertyService struct {
	Dynamo *DynamoService
	Guard  OwnershipGuard
	Logger *zap.Logger
}

// DashboardStats are the aggregate counts shown on the dashboard. Maintenance
// and rent figures are reserved for future aggregation and currently always
// zero.
type DashboardStats struct {
	TotalProperties        int     `json:"totalProperties"`
	ActiveProperties       int     `json:"activeProperties"`
	VacantProperties       int     `json:"vacantProperties"`
	MaintenanceRequests    int     `json:"maintenanceRequests"`
	RentCollectedThisMonth float64 `json:"rentCollectedThisMonth"`
}

// CreateProperty validates the payload, generates an id and writes the
// record. The owner is always the authenticated caller.
func (ps *PropertyService) CreateProperty(ctx context.Context, callerID string, req models.PropertyCreateRequest) (*models.Property, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewInvalidInput("title is required")
	}
	if req.Price < 0 {
		return nil, NewInvalidInput("price cannot be negative")
	}

	propertyID := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)

	status := req.Status
	if status == "" {
		status = models.PropertyStatusActive
	}
	propertyType := req.PropertyType
	if propertyType == "" {
		propertyType = models.DefaultPropertyType
	}

	property := models.Property{
		PK:           models.PropertyPK(propertyID),
		SK:           models.SortKeyMetadata,
		GSI1PK:       models.OwnerGSI1PK(callerID),
		ID:           propertyID,
		OwnerID:      callerID,
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: propertyType,
		Price:        req.Price,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		GarageType:   req.GarageType,
		GarageSpaces: req.GarageSpaces,
		Address:      req.Address,
		Status:       status,
		Images:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := ps.Dynamo.PutItem(ctx, property); err != nil {
		return nil, err
	}

	ps.Logger.Info("property created",
		zap.String("propertyId", propertyID),
		zap.String("ownerId", callerID))

	property.PK, property.SK, property.GSI1PK = "", "", ""
	return &property, nil
}

// GetProperty returns a single property. Existence is checked before
// ownership so a missing record reports not-found rather than forbidden.
func (ps *PropertyService) GetProperty(ctx context.Context, callerID, propertyID string) (*models.Property, error) {
	item, err := ps.loadOwned(ctx, callerID, propertyID, ActionRead)
	if err != nil {
		return nil, err
	}
	formatted := models.FormatProperty(item)
	return &formatted, nil
}

// UpdateProperty overwrites the fields present in the request. The owner,
// the id and the creation timestamp are immutable.
func (ps *PropertyService) UpdateProperty(ctx context.Context, callerID, propertyID string, wire map[string]interface{}) (*models.Property, error) {
	if _, err := ps.loadOwned(ctx, callerID, propertyID, ActionUpdate); err != nil {
		return nil, err
	}

	changes := models.PropertyUpdateAttributes(wire)
	changes["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	updated, err := ps.Dynamo.UpdateItem(ctx, models.PropertyPK(propertyID), models.SortKeyMetadata, changes)
	if err != nil {
		return nil, err
	}
	formatted := models.FormatProperty(updated)
	return &formatted, nil
}

// DeleteProperty removes the metadata record. Finance and loan children are
// left in place; there is no cascade.
func (ps *PropertyService) DeleteProperty(ctx context.Context, callerID, propertyID string) error {
	if _, err := ps.loadOwned(ctx, callerID, propertyID, ActionDelete); err != nil {
		return err
	}
	if err := ps.Dynamo.DeleteItem(ctx, models.PropertyPK(propertyID), models.SortKeyMetadata); err != nil {
		return err
	}
	ps.Logger.Info("property deleted", zap.String("propertyId", propertyID))
	return nil
}

// ListProperties returns the caller's properties via the owner index. When
// the index query fails the listing degrades to a filtered scan; the fallback
// is silent and only surfaces an error when both paths fail.
func (ps *PropertyService) ListProperties(ctx context.Context, callerID string) ([]models.Property, error) {
	items, err := ps.Dynamo.QueryByIndex(ctx, models.GSI1Name, models.OwnerGSI1PK(callerID), 0)
	if err != nil {
		ps.Logger.Warn("owner index query failed, falling back to scan", zap.Error(err))
		items, err = ps.scanOwnerProperties(ctx, callerID)
		if err != nil {
			return nil, err
		}
	}

	properties := make([]models.Property, 0, len(items))
	for _, item := range items {
		// The index only carries METADATA records, but the scan path
		// returns whole partitions; filter on the caller either way.
		if utils.ExtractString(item, "sk") != "" && utils.ExtractString(item, "sk") != models.SortKeyMetadata {
			continue
		}
		formatted := models.FormatProperty(item)
		if formatted.OwnerID != callerID {
			continue
		}
		properties = append(properties, formatted)
	}
	return properties, nil
}

// GetDashboardStats computes per-owner counts client-side; the store has no
// aggregate queries.
func (ps *PropertyService) GetDashboardStats(ctx context.Context, callerID string) (*DashboardStats, error) {
	properties, err := ps.ListProperties(ctx, callerID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalProperties: len(properties)}
	for _, p := range properties {
		switch p.Status {
		case models.PropertyStatusActive:
			stats.ActiveProperties++
		case models.PropertyStatusVacant:
			stats.VacantProperties++
		}
	}
	return stats, nil
}

func (ps *PropertyService) loadOwned(ctx context.Context, callerID, propertyID string, action Action) (map[string]types.AttributeValue, error) {
	return loadOwnedProperty(ctx, ps.Dynamo, ps.Guard, callerID, propertyID, action)
}

// loadOwnedProperty fetches a property's metadata item and authorizes the
// caller against its owner. Finance and loan operations re-derive ownership
// through this same path, never from the sub-record itself.
func loadOwnedProperty(ctx context.Context, dynamo *DynamoService, guard OwnershipGuard, callerID, propertyID string, action Action) (map[string]types.AttributeValue, error) {
	item, err := dynamo.GetItem(ctx, models.PropertyPK(propertyID), models.SortKeyMetadata)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return nil, NewNotFound("property not found")
		}
		return nil, err
	}
	if err := guard.Authorize(callerID, utils.ExtractString(item, "owner_id"), action); err != nil {
		return nil, err
	}
	return item, nil
}

func (ps *PropertyService) scanOwnerProperties(ctx context.Context, callerID string) ([]map[string]types.AttributeValue, error) {
	items, err := ps.Dynamo.ScanByKeyPrefix(ctx, models.PropertyKeyPrefix, 0)
	if err != nil {
		return nil, err
	}

	owned := make([]map[string]types.AttributeValue, 0, len(items))
	for _, item := range items {
		if !strings.HasPrefix(utils.ExtractString(item, "pk"), models.PropertyKeyPrefix) {
			continue
		}
		if utils.ExtractString(item, "sk") != models.SortKeyMetadata {
			continue
		}
		if utils.ExtractString(item, "owner_id") != callerID {
			continue
		}
		owned = append(owned, item)
	}
	return owned, nil
}
