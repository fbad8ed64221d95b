package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vishwasvr/guhae-rental-property-app/models"
)

// ProfileService manages the caller's own profile record. The key is derived
// from the token subject, so no separate ownership check applies.
type ProfileService struct {
	Dynamo *DynamoService
	Logger *zap.Logger
}

// GetProfile returns the caller's profile.
func (ps *ProfileService) GetProfile(ctx context.Context, callerID string) (*models.UserProfile, error) {
	item, err := ps.Dynamo.GetItem(ctx, models.UserPK(callerID), models.SortKeyProfile)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return nil, NewNotFound("profile not found")
		}
		return nil, err
	}
	formatted := models.FormatUserProfile(item)
	return &formatted, nil
}

// UpdateProfile overwrites the profile fields present in the request.
func (ps *ProfileService) UpdateProfile(ctx context.Context, callerID string, wire map[string]interface{}) (*models.UserProfile, error) {
	if _, err := ps.Dynamo.GetItem(ctx, models.UserPK(callerID), models.SortKeyProfile); err != nil {
		if KindOf(err) == KindNotFound {
			return nil, NewNotFound("profile not found")
		}
		return nil, err
	}

	changes := models.ProfileUpdateAttributes(wire)
	changes["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	updated, err := ps.Dynamo.UpdateItem(ctx, models.UserPK(callerID), models.SortKeyProfile, changes)
	if err != nil {
		return nil, err
	}

	ps.Logger.Info("profile updated", zap.String("userId", callerID))
	formatted := models.FormatUserProfile(updated)
	return &formatted, nil
}
