package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"nextintern-api/internal/models"
	"nextintern-api/internal/storage"
	"nextintern-api/internal/transport/dto"
)

// AccessClaims are the JWT claims carried by access tokens. UserType and
// IsPremium are embedded so the visibility middleware can build a viewer
// without a database round trip.
type AccessClaims struct {
	UserType  models.UserType `json:"user_type"`
	IsPremium bool            `json:"is_premium"`
	jwt.RegisteredClaims
}

const refreshKeyPrefix = "refresh:"

type userService struct {
	db            *pgxpool.Pool
	userRepo      storage.UserRepository
	candidateRepo storage.CandidateRepository
	industryRepo  storage.IndustryRepository
	redis         *redis.Client

	jwtSecret         string
	jwtExpiration     time.Duration
	refreshExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	db *pgxpool.Pool,
	userRepo storage.UserRepository,
	candidateRepo storage.CandidateRepository,
	industryRepo storage.IndustryRepository,
	redisClient *redis.Client,
	jwtSecret string,
	jwtExpiration, refreshExpiration time.Duration,
) UserService {
	return &userService{
		db:                db,
		userRepo:          userRepo,
		candidateRepo:     candidateRepo,
		industryRepo:      industryRepo,
		redis:             redisClient,
		jwtSecret:         jwtSecret,
		jwtExpiration:     jwtExpiration,
		refreshExpiration: refreshExpiration,
	}
}

// Register creates the account and its profile row in one transaction, so a
// failed profile insert never leaves an orphaned account. Industry profiles
// get their permanent anonymous identifier here.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, string, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Register: Error beginning transaction: %v", err)
		return nil, "", "", fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txUserRepo := s.userRepo.WithTx(tx)

	user, err := txUserRepo.Create(ctx, &dto.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, "", "", fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, "", "", mapRepoError(err, "creating account")
	}

	switch user.UserType {
	case models.UserTypeCandidate:
		_, err = s.candidateRepo.WithTx(tx).Create(ctx, &dto.CreateCandidateRequest{
			UserID:    user.ID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
	case models.UserTypeIndustry:
		anonymousID, genErr := generateAnonymousID()
		if genErr != nil {
			return nil, "", "", fmt.Errorf("failed to generate anonymous identifier: %w", genErr)
		}
		_, err = s.industryRepo.WithTx(tx).Create(ctx, &dto.CreateIndustryRequest{
			UserID:      user.ID,
			CompanyName: req.CompanyName,
			Industry:    req.Industry,
		}, anonymousID)
	}
	if err != nil {
		return nil, "", "", mapRepoError(err, "creating profile")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Register: Error committing transaction: %v", err)
		return nil, "", "", fmt.Errorf("internal error committing registration: %w", err)
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, &dto.GetUserByEmailRequest{Email: req.Email})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, "", "", fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

// Refresh rotates the token pair: the presented refresh token is consumed
// and a new one stored, so a replayed token fails.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error) {
	key := refreshKeyPrefix + req.RefreshToken

	userIDStr, err := s.redis.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", "", ErrInvalidToken
		}
		log.Printf("Error looking up refresh token: %v", err)
		return "", "", fmt.Errorf("internal error during refresh: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		log.Printf("Corrupt refresh token mapping: %q", userIDStr)
		return "", "", ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, &dto.GetUserByIDRequest{ID: userID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", "", ErrInvalidToken
		}
		return "", "", mapRepoError(err, "fetching user for refresh")
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the refresh token. Access tokens expire on their own.
func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if err := s.redis.Del(ctx, refreshKeyPrefix+req.RefreshToken).Err(); err != nil {
		log.Printf("Error revoking refresh token: %v", err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// SetPremium flips the account's premium tier and reissues the token pair,
// so the tier carried in the access claims is never stale.
func (s *userService) SetPremium(ctx context.Context, userID uuid.UUID, premium bool) (*models.User, string, string, error) {
	user, err := s.userRepo.SetPremium(ctx, userID, premium)
	if err != nil {
		return nil, "", "", mapRepoError(err, fmt.Sprintf("updating premium tier for user %s", userID))
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *userService) issueTokens(ctx context.Context, user *models.User) (string, string, error) {
	now := time.Now()
	claims := &AccessClaims{
		UserType:  user.UserType,
		IsPremium: user.IsPremium,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.Email, err)
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := generateOpaqueToken()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	err = s.redis.Set(ctx, refreshKeyPrefix+refreshToken, user.ID.String(), s.refreshExpiration).Err()
	if err != nil {
		log.Printf("Error storing refresh token for user %s: %v", user.ID, err)
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func generateOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// generateAnonymousID produces the immutable identifier behind redacted
// company names. Only the trailing digits ever reach a client.
func generateAnonymousID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ANON-%03d", n.Int64()), nil
}
