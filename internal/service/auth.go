package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// AuthService issues and validates tokens and manages account credentials.
type AuthService struct {
	db              *gorm.DB
	jwtSecret       string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, jwtSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		db:              db,
		jwtSecret:       jwtSecret,
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}
}

// Register creates a user account. Email and username are stored lowercase
// and must be unique.
func (s *AuthService) Register(req types.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: an account with this email already exists", ErrConflict)
	}
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: this username is already taken", ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := models.RoleUser
	if req.Role == models.RoleAdmin {
		role = models.RoleAdmin
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Username:     username,
		Email:        email,
		Role:         role,
		PasswordHash: string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Login authenticates by username or email and returns an access/refresh
// token pair.
func (s *AuthService) Login(req types.LoginRequest) (*types.LoginResponse, error) {
	if req.Username == "" && req.Email == "" {
		return nil, fmt.Errorf("%w: username or email is required", ErrInvalidInput)
	}

	query := s.db
	if req.Email != "" {
		query = query.Where("email = ?", strings.ToLower(req.Email))
	} else {
		query = query.Where("username = ?", strings.ToLower(req.Username))
	}

	var user models.User
	if err := query.First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(&user, types.TokenTypeAccess, s.accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(&user, types.TokenTypeRefresh, s.refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User: types.AuthUser{
			ID:       user.ID.String(),
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}

// IsUsernameAvailable reports whether a username is free to register.
func (s *AuthService) IsUsernameAvailable(username string) (bool, error) {
	if username == "" {
		return false, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	var user models.User
	err := s.db.Where("username = ?", strings.ToLower(username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new access token.
// The user must still exist.
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}
	if claims.TokenType != types.TokenTypeRefresh {
		return "", fmt.Errorf("%w: not a refresh token", ErrInvalidToken)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return "", fmt.Errorf("%w: user no longer exists", ErrInvalidToken)
	}

	return s.generateToken(&user, types.TokenTypeAccess, s.accessTokenTTL)
}

// ValidateToken verifies an access token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType == types.TokenTypeRefresh {
		return nil, fmt.Errorf("%w: refresh token used as access token", ErrInvalidToken)
	}
	return claims, nil
}

func (s *AuthService) generateToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.ID.String(),
		},
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
