package router

import (
	"github.com/amparasaude/ampara_backend/config"
	"github.com/amparasaude/ampara_backend/internal/api/http/handler"
	"github.com/amparasaude/ampara_backend/internal/api/http/middleware"
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
	pasetotoken "github.com/amparasaude/ampara_backend/pkg/paseto"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	DB              *repo.Client
	UserSvc         user.Service
	AuthSvc         auth.Service
	ClinicSvc       clinic.Service
	PatientSvc      patient.Service
	SessionSvc      session.Service
	RecurringSvc    recurring.Service
	ConflictSvc     conflict.Service
	DiarySvc        diary.Service
	ProfileSvc      profile.Service
	GamificationSvc gamification.Service
	NotificationSvc notification.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	clinicCtx := middleware.ClinicContext(r.p.DB)
	clinicHeader := middleware.ClinicHeader(r.p.DB)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	clinicH := handler.NewClinicHandler(r.p.ClinicSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	sessionH := handler.NewSessionHandler(r.p.SessionSvc)
	recurringH := handler.NewRecurringHandler(r.p.RecurringSvc)
	conflictH := handler.NewConflictHandler(r.p.ConflictSvc)
	diaryH := handler.NewDiaryHandler(r.p.DiarySvc)
	profileH := handler.NewProfileHandler(r.p.ProfileSvc)
	gamificationH := handler.NewGamificationHandler(r.p.GamificationSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired)
	r.registerClinicRoutes(api, clinicH, authRequired, clinicCtx, requirePerm)
	r.registerPatientRoutes(api, patientH, authRequired, clinicHeader, requirePerm)
	r.registerSessionRoutes(api, sessionH, authRequired, clinicHeader, requirePerm)
	r.registerRecurringRoutes(api, recurringH, authRequired, clinicHeader, requirePerm)
	r.registerConflictRoutes(api, conflictH, authRequired, clinicHeader, requirePerm)
	r.registerDiaryRoutes(api, diaryH, authRequired, clinicHeader, requirePerm)
	r.registerProfileRoutes(api, profileH, authRequired, clinicHeader, requirePerm)
	r.registerGamificationRoutes(api, gamificationH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
