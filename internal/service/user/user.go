package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/amparasaude/ampara_backend/config"
	"github.com/amparasaude/ampara_backend/internal/repo"
	entuser "github.com/amparasaude/ampara_backend/internal/repo/user"
	"github.com/amparasaude/ampara_backend/pkg/email"
	"github.com/amparasaude/ampara_backend/pkg/util/otp"
)

const maxEmailOTPAttempts = 5

func redisKeyEmailOTP(userID uuid.UUID) string { return "email_otp:" + userID.String() }

func redisKeyEmailOTPAttempts(userID uuid.UUID) string {
	return "email_otp:attempts:" + userID.String()
}

type UpdateMeRequest struct {
	FirstName *string
	LastName  *string
	Timezone  *string
	Email     *string // changing the address resets email_verified
}

type Service interface {
	GetByID(ctx context.Context, id string) (*repo.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateMeRequest) (*repo.User, error)
	RequestEmailVerification(ctx context.Context, userID uuid.UUID) error
	VerifyEmail(ctx context.Context, userID uuid.UUID, code string) error
}

type UserService struct {
	client      *repo.Client
	rdb         *redis.Client
	emailClient *email.Client
	cfg         *config.Config
}

func New(client *repo.Client, rdb *redis.Client, emailClient *email.Client, cfg *config.Config) *UserService {
	return &UserService{
		client:      client,
		rdb:         rdb,
		emailClient: emailClient,
		cfg:         cfg,
	}
}

// GetByID retrieves a user by ID, excluding soft-deleted users
func (s *UserService) GetByID(ctx context.Context, id string) (*repo.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := s.client.User.Query().
		Where(
			entuser.ID(uid),
			entuser.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// UpdateMe updates the caller's own profile fields.
func (s *UserService) UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateMeRequest) (*repo.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	upd := s.client.User.UpdateOne(u)
	if req.FirstName != nil {
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, fmt.Errorf("invalid timezone %q", *req.Timezone)
		}
		upd = upd.SetTimezone(*req.Timezone)
	}
	if req.Email != nil {
		addr := strings.TrimSpace(strings.ToLower(*req.Email))
		taken, err := s.client.User.Query().
			Where(
				entuser.Email(addr),
				entuser.IDNEQ(userID),
				entuser.DeletedAtIsNil(),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
		upd = upd.SetEmail(addr).SetEmailVerified(false)
	}

	out, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return out, nil
}

// RequestEmailVerification sends a one-time code to the user's email address.
func (s *UserService) RequestEmailVerification(ctx context.Context, userID uuid.UUID) error {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	if u.Email == nil || *u.Email == "" {
		return ErrNoEmailOnFile
	}
	if u.EmailVerified {
		return ErrEmailAlreadyVerified
	}

	code, err := otp.GenerateDefault()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	ttlMinutes := s.cfg.Authentication.OTPTTLMinutes
	if ttlMinutes <= 0 {
		ttlMinutes = 5
	}
	ttl := time.Duration(ttlMinutes) * time.Minute

	if err := s.rdb.Set(ctx, redisKeyEmailOTP(userID), otp.Hash(code), ttl).Err(); err != nil {
		return fmt.Errorf("store code: %w", err)
	}
	s.rdb.Set(ctx, redisKeyEmailOTPAttempts(userID), "0", ttl+5*time.Minute)

	msg := email.BuildOTPEmail(*u.Email, code, "pt", ttlMinutes)
	if err := s.emailClient.Send(ctx, msg); err != nil {
		slog.Warn("failed to send verification email", "user_id", userID, "error", err)
		return ErrEmailSendFailed
	}
	return nil
}

// VerifyEmail checks the submitted code and marks the address verified.
func (s *UserService) VerifyEmail(ctx context.Context, userID uuid.UUID, code string) error {
	hash, err := s.rdb.Get(ctx, redisKeyEmailOTP(userID)).Result()
	if err == redis.Nil {
		return ErrCodeExpired
	}
	if err != nil {
		return fmt.Errorf("redis get code: %w", err)
	}

	attempts, _ := s.rdb.Get(ctx, redisKeyEmailOTPAttempts(userID)).Int()
	if attempts >= maxEmailOTPAttempts {
		return ErrCodeMaxAttempts
	}

	if err := otp.Verify(hash, strings.TrimSpace(code)); err != nil {
		s.rdb.Incr(ctx, redisKeyEmailOTPAttempts(userID))
		return ErrCodeInvalid
	}

	s.rdb.Del(ctx, redisKeyEmailOTP(userID), redisKeyEmailOTPAttempts(userID))

	err = s.client.User.UpdateOneID(userID).SetEmailVerified(true).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update email_verified: %w", err)
	}
	return nil
}
