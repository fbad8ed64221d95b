package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vishwasvr/guhae-rental-property-app/services/dynamock"
)

func newTestIdentity(client *dynamock.MemClient) *JWTIdentityService {
	return &JWTIdentityService{
		Dynamo:   newTestDynamo(client),
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
		Logger:   zap.NewNop(),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	is := newTestIdentity(dynamock.New())
	ctx := context.Background()

	result, err := is.Register(ctx, RegisterRequest{
		Email:    "Owner@Example.com",
		Password: "hunter22",
		Profile:  RegisterProfileFields{FirstName: "Alex", LastName: "Kim"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.User.ID)
	assert.Equal(t, "owner@example.com", result.User.Email)
	assert.Empty(t, result.User.PasswordHash)
	assert.NotEmpty(t, result.AccessToken)

	// The token resolves back to the same subject.
	subject, err := is.Verify(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, subject)

	login, err := is.Login(ctx, "owner@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	is := newTestIdentity(dynamock.New())
	ctx := context.Background()

	_, err := is.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = is.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "other"})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	is := newTestIdentity(dynamock.New())
	ctx := context.Background()

	_, err := is.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = is.Login(ctx, "a@b.com", "wrong")
	assert.Equal(t, KindUnauthenticated, KindOf(err))

	_, err = is.Login(ctx, "nobody@b.com", "pw123456")
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestVerifyRejectsForgedTokens(t *testing.T) {
	is := newTestIdentity(dynamock.New())

	_, err := is.Verify("not-a-token")
	assert.Equal(t, KindUnauthenticated, KindOf(err))

	other := newTestIdentity(dynamock.New())
	other.Secret = []byte("different-secret")
	result, err := other.Register(context.Background(), RegisterRequest{Email: "a@b.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = is.Verify(result.AccessToken)
	assert.Equal(t, KindUnauthenticated, KindOf(err))
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	is := newTestIdentity(dynamock.New())

	_, err := is.Register(context.Background(), RegisterRequest{Email: "a@b.com"})
	assert.Equal(t, KindInvalidInput, KindOf(err))

	_, err = is.Register(context.Background(), RegisterRequest{Password: "pw123456"})
	assert.Equal(t, KindInvalidInput, KindOf(err))
}
