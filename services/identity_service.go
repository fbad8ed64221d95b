package services

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vishwasvr/guhae-rental-property-app/models"
)

const tokenIssuer = "guhae-api"

// IdentityProvider issues and validates bearer credentials and resolves them
// to a stable subject id.
type IdentityProvider interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Verify(token string) (string, error)
}

// RegisterRequest is the wire payload for user registration.
type RegisterRequest struct {
	Email    string                `json:"email"`
	Password string                `json:"password"`
	Profile  RegisterProfileFields `json:"profile"`
}

// RegisterProfileFields carries the optional profile attributes accepted at
// registration time.
type RegisterProfileFields struct {
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Phone       string         `json:"phone"`
	DateOfBirth string         `json:"dateOfBirth"`
	Address     models.Address `json:"address"`
	Company     string         `json:"company"`
}

// AuthResult is returned by registration and login: token plus minimal user
// info.
type AuthResult struct {
	User        models.UserProfile `json:"user"`
	AccessToken string             `json:"accessToken"`
	ExpiresIn   int64              `json:"expiresIn"`
}

// JWTIdentityService implements IdentityProvider with HS256 tokens and
// bcrypt-hashed credentials stored in the same table as the profiles they
// belong to (USER#{id}/PROFILE, EMAIL# on GSI1 for uniqueness and login).
type JWTIdentityService struct {
	Dynamo   *DynamoService
	Secret   []byte
	TokenTTL time.Duration
	Logger   *zap.Logger
}

// Register creates a new user. A duplicate email is a conflict.
func (is *JWTIdentityService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, NewInvalidInput("email and password are required")
	}

	existing, err := is.Dynamo.QueryByIndex(ctx, models.GSI1Name, models.EmailGSI1PK(email), 1)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, NewConflict("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewUnavailable("failed to hash password", err)
	}

	userID := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	profile := models.UserProfile{
		PK:           models.UserPK(userID),
		SK:           models.SortKeyProfile,
		GSI1PK:       models.EmailGSI1PK(email),
		ID:           userID,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.Profile.FirstName,
		LastName:     req.Profile.LastName,
		Phone:        req.Profile.Phone,
		DateOfBirth:  req.Profile.DateOfBirth,
		Address:      req.Profile.Address,
		Company:      req.Profile.Company,
		Status:       models.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := is.Dynamo.PutItem(ctx, profile); err != nil {
		return nil, err
	}

	is.Logger.Info("user registered", zap.String("userId", userID))
	return is.issueToken(profile)
}

// Login authenticates an email/password pair. Unknown emails and wrong
// passwords produce the same response.
func (is *JWTIdentityService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, NewInvalidInput("email and password are required")
	}

	items, err := is.Dynamo.QueryByIndex(ctx, models.GSI1Name, models.EmailGSI1PK(email), 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, NewUnauthenticated("invalid email or password")
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(items[0], &profile); err != nil {
		return nil, NewUnavailable("failed to read user record", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, NewUnauthenticated("invalid email or password")
	}

	is.Logger.Info("user logged in", zap.String("userId", profile.ID))
	return is.issueToken(profile)
}

// Verify validates a bearer token and returns the subject id.
func (is *JWTIdentityService) Verify(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return is.Secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", NewUnauthenticated("invalid or expired token")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", NewUnauthenticated("invalid or expired token")
	}
	return subject, nil
}

func (is *JWTIdentityService) issueToken(profile models.UserProfile) (*AuthResult, error) {
	ttl := is.TokenTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   profile.ID,
		"email": profile.Email,
		"iss":   tokenIssuer,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(is.Secret)
	if err != nil {
		return nil, NewUnavailable("failed to sign token", err)
	}

	profile.PK, profile.SK, profile.GSI1PK = "", "", ""
	profile.PasswordHash = ""
	return &AuthResult{
		User:        profile,
		AccessToken: signed,
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}
