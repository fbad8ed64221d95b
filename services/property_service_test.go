package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vishwasvr/guhae-rental-property-app/models"
	"github.com/vishwasvr/guhae-rental-property-app/services/dynamock"
)

func newTestPropertyService(client *dynamock.MemClient) *PropertyService {
	return &PropertyService{
		Dynamo: newTestDynamo(client),
		Logger: zap.NewNop(),
	}
}

func TestCreatePropertySetsOwnerAndDefaults(t *testing.T) {
	client := dynamock.New()
	ps := newTestPropertyService(client)

	created, err := ps.CreateProperty(context.Background(), "user-1", models.PropertyCreateRequest{
		Title: "Unit A",
		Price: 1200,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.OwnerID)
	assert.Equal(t, models.PropertyStatusActive, created.Status)
	assert.Equal(t, models.DefaultPropertyType, created.PropertyType)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	fetched, err := ps.GetProperty(context.Background(), "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unit A", fetched.Title)
	assert.Equal(t, float64(1200), fetched.Price)
	assert.NotNil(t, fetched.Images)
}

func TestCreatePropertyValidation(t *testing.T) {
	client := dynamock.New()
	ps := newTestPropertyService(client)

	_, err := ps.CreateProperty(context.Background(), "user-1", models.PropertyCreateRequest{Price: 100})
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))

	_, err = ps.CreateProperty(context.Background(), "user-1", models.PropertyCreateRequest{Title: "Unit A", Price: -1})
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))

	// Invalid payloads must not reach the store.
	assert.Zero(t, client.Calls["PutItem"])
}

func TestGetPropertyNotFoundBeforeForbidden(t *testing.T) {
	client := dynamock.New()
	ps := newTestPropertyService(client)

	created, err := ps.CreateProperty(context.Background(), "user-1", models.PropertyCreateRequest{Title: "Unit A", Price: 1200})
	require.NoError(t, err)

	_, err = ps.GetProperty(context.Background(), "user-2", "no-such-id")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = ps.GetProperty(context.Background(), "user-2", created.ID)
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestUpdatePropertyIgnoresProtectedFields(t *testing.T) {
	client := dynamock.New()
	ps := newTestPropertyService(client)

	created, err := ps.CreateProperty(context.Background(), "user-1", models.PropertyCreateRequest{Title: "Unit A", Price: 1200})
	require.NoError(t, err)

	updated, err := ps.UpdateProperty(context.Background(), "user-1", created.ID, map[string]interface{}{
		"title":   "Unit A2",
		"status":  models.PropertyStatusVacant,
		"ownerId": "intruder",
		"id":      "forged",
	})
	require.NoError(t, err)
	assert.Equal(t, "Unit A2", updated.Title)
	assert.Equal(t, models.PropertyStatusVacant, updated.Status)
	assert.Equal(t, "user-1", updated.OwnerID)
	assert.Equal(t, created.ID, updated.ID)
}

func TestDeletePropertyIdempotence(t *testing.T) {
	client := dynamock.New()
	ps := newTestPropertyService(client)

	created, err := ps.CreateProperty(context.Background(), "user-1", models.PropertyCreateRequest{Title: "Unit A", Price: 1200})
	require.NoError(t, err)

	require.NoError(t, ps.DeleteProperty(context.Background(), "user-1", created.ID))

	err = ps.DeleteProperty(context.Background(), "user-1", created.ID)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestListPropertiesScopedToOwner(t *testing.T) {
	client := dynamock.New()
	ps := newTestPropertyService(client)

	_, err := ps.CreateProperty(context.Background(), "user-1", models.PropertyCreateRequest{Title: "Mine 1", Price: 100})
	require.NoError(t, err)
	_, err = ps.CreateProperty(context.Background(), "user-1", models.PropertyCreateRequest{Title: "Mine 2", Price: 200})
	require.NoError(t, err)
	_, err = ps.CreateProperty(context.Background(), "user-2", models.PropertyCreateRequest{Title: "Theirs", Price: 300})
	require.NoError(t, err)

	properties, err := ps.ListProperties(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, properties, 2)
	for _, p := range properties {
		assert.Equal(t, "user-1", p.OwnerID)
	}
}

func TestListPropertiesFallsBackToScan(t *testing.T) {
	client := dynamock.New()
	ps := newTestPropertyService(client)

	mine, err := ps.CreateProperty(context.Background(), "user-1", models.PropertyCreateRequest{Title: "Mine", Price: 100})
	require.NoError(t, err)
	_, err = ps.CreateProperty(context.Background(), "user-2", models.PropertyCreateRequest{Title: "Theirs", Price: 300})
	require.NoError(t, err)

	client.FailIndexQuery = errors.New("index unavailable")

	properties, err := ps.ListProperties(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, mine.ID, properties[0].ID)
	assert.Equal(t, 1, client.Calls["Scan"])
}

func TestListPropertiesErrorsWhenBothPathsFail(t *testing.T) {
	client := dynamock.New()
	client.FailIndexQuery = errors.New("index unavailable")
	client.FailScan = errors.New("table unavailable")
	ps := newTestPropertyService(client)

	_, err := ps.ListProperties(context.Background(), "user-1")
	require.Error(t, err)
	assert.Equal(t, KindUnavailable, KindOf(err))
}

func TestDashboardStats(t *testing.T) {
	client := dynamock.New()
	ps := newTestPropertyService(client)

	_, err := ps.CreateProperty(context.Background(), "user-1", models.PropertyCreateRequest{Title: "A", Price: 100})
	require.NoError(t, err)
	_, err = ps.CreateProperty(context.Background(), "user-1", models.PropertyCreateRequest{Title: "B", Price: 100, Status: models.PropertyStatusVacant})
	require.NoError(t, err)
	_, err = ps.CreateProperty(context.Background(), "user-2", models.PropertyCreateRequest{Title: "C", Price: 100})
	require.NoError(t, err)

	stats, err := ps.GetDashboardStats(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalProperties)
	assert.Equal(t, 1, stats.ActiveProperties)
	assert.Equal(t, 1, stats.VacantProperties)
	assert.Zero(t, stats.MaintenanceRequests)
	assert.Zero(t, stats.RentCollectedThisMonth)
}
