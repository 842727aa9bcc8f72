package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
)

const (
	otpTTL         = 10 * time.Minute
	otpKeyPrefix   = "pwreset:otp:"
	resetKeyPrefix = "pwreset:token:"
	minPasswordLen = 6
)

// PasswordResetService runs the forgot-password flow: a 6-digit OTP is
// mailed to the account address and held in Redis for ten minutes; a correct
// OTP is swapped for a single-use reset token authorising the actual
// password change.
type PasswordResetService struct {
	db    *gorm.DB
	redis *redis.Client
	email EmailSender
}

func NewPasswordResetService(db *gorm.DB, redisClient *redis.Client, email EmailSender) *PasswordResetService {
	return &PasswordResetService{db: db, redis: redisClient, email: email}
}

// RequestOTP generates and mails an OTP for the account, looked up by email
// or username. An unknown account is reported as not found; the handler
// decides whether to reveal that.
func (s *PasswordResetService) RequestOTP(ctx context.Context, identifier string) error {
	identifier = strings.ToLower(strings.TrimSpace(identifier))

	var user models.User
	if err := s.db.Where("email = ? OR username = ?", identifier, identifier).First(&user).Error; err != nil {
		return ErrNotFound
	}
	email := user.Email

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	if err := s.redis.Set(ctx, otpKeyPrefix+email, otp, otpTTL).Err(); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour Cookify password reset code is %s.\nIt expires in 10 minutes. If you did not request this, ignore this email.\n",
		user.Username, otp)
	return s.email.Send(email, "Cookify password reset code", body)
}

// VerifyOTP checks the code and, on a match, returns a single-use reset
// token valid for another ten minutes. A matching OTP is consumed.
func (s *PasswordResetService) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	stored, err := s.redis.Get(ctx, otpKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to read OTP: %w", err)
	}
	if stored != strings.TrimSpace(otp) {
		return "", ErrInvalidToken
	}

	token, err := generateResetToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	pipe := s.redis.TxPipeline()
	pipe.Del(ctx, otpKeyPrefix+email)
	pipe.Set(ctx, resetKeyPrefix+token, email, otpTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, nil
}

// ResetPassword consumes a reset token and sets the new password.
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}

	email, err := s.redis.Get(ctx, resetKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return ErrInvalidToken
	}
	if err != nil {
		return fmt.Errorf("failed to read reset token: %w", err)
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return ErrNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.db.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		return err
	}

	return s.redis.Del(ctx, resetKeyPrefix+token).Err()
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
