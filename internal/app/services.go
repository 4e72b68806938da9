package app

import (
	"encoding/hex"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/amparasaude/ampara_backend/config"
	"github.com/amparasaude/ampara_backend/internal/repo"
	"github.com/amparasaude/ampara_backend/internal/service/auth"
	"github.com/amparasaude/ampara_backend/internal/service/clinic"
	"github.com/amparasaude/ampara_backend/internal/service/conflict"
	"github.com/amparasaude/ampara_backend/internal/service/diary"
	"github.com/amparasaude/ampara_backend/internal/service/gamification"
	"github.com/amparasaude/ampara_backend/internal/service/notification"
	"github.com/amparasaude/ampara_backend/internal/service/patient"
	"github.com/amparasaude/ampara_backend/internal/service/profile"
	"github.com/amparasaude/ampara_backend/internal/service/recurring"
	"github.com/amparasaude/ampara_backend/internal/service/session"
	"github.com/amparasaude/ampara_backend/internal/service/user"
	"github.com/amparasaude/ampara_backend/pkg/authorize"
	"github.com/amparasaude/ampara_backend/pkg/email"
	pasetotoken "github.com/amparasaude/ampara_backend/pkg/paseto"
	"github.com/amparasaude/ampara_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideClinicService,
		ProvidePatientService,
		ProvideConflictService,
		ProvideSessionService,
		ProvideRecurringService,
		ProvideDiaryService,
		ProvideProfileService,
		ProvideGamificationService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(client *repo.Client, rdb *redis.Client, emailClient *email.Client, cfg *config.Config) user.Service {
	return user.New(client, rdb, emailClient, cfg)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	smsCli *sms.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, smsCli, paseto, cfg)
}

func ProvideClinicService(db *repo.Client, authz authorize.IAuthorization) clinic.Service {
	return clinic.New(db, authz)
}

func ProvidePatientService(db *repo.Client, emailClient *email.Client, cfg *config.Config) (patient.Service, error) {
	encKey, err := hex.DecodeString(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}
	if len(encKey) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(encKey))
	}
	return patient.New(db, encKey, emailClient, cfg.Server.Domain), nil
}

func ProvideConflictService(db *repo.Client, cfg *config.Config) conflict.Service {
	return conflict.New(db, cfg.Scheduling)
}

func ProvideSessionService(db *repo.Client, conflictSvc conflict.Service, nc *nats.Conn) session.Service {
	return session.New(db, conflictSvc, nc)
}

func ProvideRecurringService(db *repo.Client, conflictSvc conflict.Service, cfg *config.Config) recurring.Service {
	return recurring.New(db, conflictSvc, cfg.Scheduling)
}

func ProvideDiaryService(db *repo.Client, nc *nats.Conn) diary.Service {
	return diary.New(db, nc)
}

func ProvideProfileService(db *repo.Client) profile.Service {
	return profile.New(db)
}

func ProvideGamificationService(db *repo.Client, cfg *config.Config) gamification.Service {
	return gamification.New(db, cfg.Gamification)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
