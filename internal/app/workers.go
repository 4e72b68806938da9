package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/amparasaude/ampara_backend/internal/repo"
	entdiary "github.com/amparasaude/ampara_backend/internal/repo/diaryentry"
	entsession "github.com/amparasaude/ampara_backend/internal/repo/session"
	"github.com/amparasaude/ampara_backend/internal/service/gamification"
	"github.com/amparasaude/ampara_backend/internal/service/notification"
	"github.com/amparasaude/ampara_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	GameSvc  gamification.Service
	Email    *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.DB, p.NotifSvc)
			startEmailWorker(p.NC, p.DB, p.Email)
			startGamificationWorker(p.NC, p.DB, p.GameSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// idFromPayload parses a UUID carried as the raw message body.
func idFromPayload(msg *nats.Msg) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
	return id, err == nil
}

// sessionPatientID extracts the patient behind a session. Blocked and
// internal sessions carry no patient and report false.
func sessionPatientID(sess *repo.Session) (uuid.UUID, bool) {
	if sess.PatientID == nil {
		return uuid.Nil, false
	}
	return *sess.PatientID, true
}

// patientUser resolves the user behind a session's patient record.
func patientUser(ctx context.Context, db *repo.Client, patientID uuid.UUID) (*repo.User, error) {
	p, err := db.Patient.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return db.User.Get(ctx, p.UserID)
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

func startNotificationWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	notifyPatient := func(eventType, title string, sess *repo.Session) {
		patientID, ok := sessionPatientID(sess)
		if !ok {
			return
		}
		ctx := context.Background()
		u, err := patientUser(ctx, db, patientID)
		if err != nil {
			slog.Warn("notification_worker: patient user lookup failed", "patient_id", patientID, "err", err)
			return
		}
		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: u.ID,
			Type:   eventType,
			Title:  title,
			Data:   map[string]any{"session_id": sess.ID.String()},
		})
		if err != nil {
			slog.Warn("notification_worker: create notification failed", "err", err)
		}
	}

	subscribeSession := func(subject, eventType, title string) {
		_, err := nc.Subscribe(subject, func(msg *nats.Msg) {
			sessID, valid := idFromPayload(msg)
			if !valid {
				return
			}
			sess, err := db.Session.Query().
				Where(entsession.ID(sessID)).
				Only(context.Background())
			if err != nil {
				slog.Warn("notification_worker: session not found", "id", sessID, "err", err)
				return
			}
			notifyPatient(eventType, title, sess)
		})
		if err != nil {
			slog.Error("notification_worker: subscribe failed", "subject", subject, "err", err)
		}
	}

	subscribeSession("ampara.session.created.*", "session_created", "Nova sessão agendada")
	subscribeSession("ampara.session.rescheduled.*", "session_rescheduled", "Sessão remarcada")
	subscribeSession("ampara.session.cancelled.*", "session_cancelled", "Sessão cancelada")

	slog.Info("notification_worker: started")
}

// ---------------------------------------------------------------------------
// email_worker
// ---------------------------------------------------------------------------

func startEmailWorker(nc *nats.Conn, db *repo.Client, emailCli *email.Client) {
	_, err := nc.Subscribe("ampara.session.created.*", func(msg *nats.Msg) {
		sessID, valid := idFromPayload(msg)
		if !valid {
			return
		}
		ctx := context.Background()

		sess, err := db.Session.Query().
			Where(entsession.ID(sessID)).
			Only(ctx)
		if err != nil {
			slog.Warn("email_worker: session not found", "id", sessID, "err", err)
			return
		}

		patientID, ok := sessionPatientID(sess)
		if !ok {
			return
		}
		u, err := patientUser(ctx, db, patientID)
		if err != nil || u.Email == nil {
			return
		}

		member, err := db.ClinicMember.Get(ctx, sess.PsychologistID)
		if err != nil {
			slog.Warn("email_worker: psychologist lookup failed", "id", sess.PsychologistID, "err", err)
			return
		}
		psyUser, err := db.User.Get(ctx, member.UserID)
		if err != nil {
			return
		}

		m := email.BuildSessionReminderEmail(email.SessionReminderData{
			Email:            *u.Email,
			FirstName:        strVal(u.FirstName),
			PsychologistName: strings.TrimSpace(strVal(psyUser.FirstName) + " " + strVal(psyUser.LastName)),
			ScheduledAt:      sess.ScheduledAt,
			Timezone:         sess.Timezone,
			DurationMinutes:  sess.DurationMinutes,
		})
		if err := emailCli.Send(ctx, m); err != nil {
			slog.Warn("email_worker: send failed", "session_id", sessID, "err", err)
		}
	})
	if err != nil {
		slog.Error("email_worker: subscribe session.created failed", "err", err)
	}

	slog.Info("email_worker: started")
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ---------------------------------------------------------------------------
// gamification_worker
// ---------------------------------------------------------------------------

func startGamificationWorker(nc *nats.Conn, db *repo.Client, gameSvc gamification.Service) {
	// Diary entries earn engagement points for the patient.
	_, err := nc.Subscribe("ampara.diary.created.*", func(msg *nats.Msg) {
		entryID, valid := idFromPayload(msg)
		if !valid {
			return
		}
		ctx := context.Background()

		entry, err := db.DiaryEntry.Query().
			Where(entdiary.ID(entryID)).
			Only(ctx)
		if err != nil {
			slog.Warn("gamification_worker: diary entry not found", "id", entryID, "err", err)
			return
		}

		u, err := patientUser(ctx, db, entry.PatientID)
		if err != nil {
			return
		}

		res, err := gameSvc.Award(ctx, u.ID, "diary_entry_created", map[string]any{
			"entry_id": entry.ID.String(),
		})
		if err != nil {
			slog.Warn("gamification_worker: diary award failed", "err", err)
			return
		}
		if res.LeveledUp {
			slog.Info("gamification_worker: level up", "user_id", u.ID, "level", res.Level)
		}
	})
	if err != nil {
		slog.Error("gamification_worker: subscribe diary.created failed", "err", err)
	}

	// Attending a completed session also earns points.
	_, err = nc.Subscribe("ampara.session.completed.*", func(msg *nats.Msg) {
		sessID, valid := idFromPayload(msg)
		if !valid {
			return
		}
		ctx := context.Background()

		sess, err := db.Session.Query().
			Where(entsession.ID(sessID)).
			Only(ctx)
		if err != nil {
			slog.Warn("gamification_worker: session not found", "id", sessID, "err", err)
			return
		}

		patientID, ok := sessionPatientID(sess)
		if !ok {
			return
		}
		u, err := patientUser(ctx, db, patientID)
		if err != nil {
			return
		}

		if _, err := gameSvc.Award(ctx, u.ID, "session_attended", map[string]any{
			"session_id": sess.ID.String(),
		}); err != nil {
			slog.Warn("gamification_worker: session award failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("gamification_worker: subscribe session.completed failed", "err", err)
	}

	slog.Info("gamification_worker: started")
}
