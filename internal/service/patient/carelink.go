package patient

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/repo"
	entlink "github.com/amparasaude/ampara_backend/internal/repo/carelink"
	"github.com/amparasaude/ampara_backend/pkg/email"
	"github.com/amparasaude/ampara_backend/pkg/util/codes"
)

func (s *patientService) InviteLink(ctx context.Context, clinicID uuid.UUID, req InviteLinkRequest) (*repo.CareLink, error) {
	p, err := s.GetByID(ctx, clinicID, req.PatientID)
	if err != nil {
		return nil, err
	}

	exists, err := s.db.CareLink.Query().
		Where(
			entlink.PsychologistID(req.PsychologistID),
			entlink.PatientID(req.PatientID),
			entlink.StatusIn(entlink.StatusPending, entlink.StatusActive),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check care link: %w", err)
	}
	if exists {
		return nil, ErrLinkAlreadyExists
	}

	code, err := codes.GenerateInviteCode()
	if err != nil {
		return nil, fmt.Errorf("generate invite code: %w", err)
	}

	link, err := s.db.CareLink.Create().
		SetClinicID(clinicID).
		SetPsychologistID(req.PsychologistID).
		SetPatientID(req.PatientID).
		SetInviteCode(code).
		SetShareDiary(req.ShareDiary).
		SetShareMood(req.ShareMood).
		SetInvitedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create care link: %w", err)
	}

	s.sendInviteEmail(ctx, link, p)

	return link, nil
}

// sendInviteEmail delivers the invite code to the patient's email, when one
// is on file. Delivery failure never fails the invite; the code is still
// visible to clinic staff.
func (s *patientService) sendInviteEmail(ctx context.Context, link *repo.CareLink, p *repo.Patient) {
	if s.email == nil {
		return
	}

	u, err := s.db.User.Get(ctx, p.UserID)
	if err != nil || u.Email == nil {
		return
	}

	member, err := s.db.ClinicMember.Get(ctx, link.PsychologistID)
	if err != nil {
		slog.Warn("care link invite: psychologist member lookup failed", "member_id", link.PsychologistID, "error", err)
		return
	}
	psyUser, err := s.db.User.Get(ctx, member.UserID)
	if err != nil {
		slog.Warn("care link invite: psychologist user lookup failed", "user_id", member.UserID, "error", err)
		return
	}

	msg := email.BuildCareLinkInviteEmail(email.CareLinkInviteData{
		Email:            *u.Email,
		PatientFirstName: strDeref(u.FirstName),
		PsychologistName: strings.TrimSpace(strDeref(psyUser.FirstName) + " " + strDeref(psyUser.LastName)),
		InviteCode:       link.InviteCode,
		AcceptURL:        "https://" + s.domain + "/links/accept?code=" + link.InviteCode,
		ShareDiaryAsked:  link.ShareDiary,
		ShareMoodAsked:   link.ShareMood,
	})
	if err := s.email.Send(ctx, msg); err != nil {
		slog.Warn("care link invite: email send failed", "link_id", link.ID, "error", err)
	}
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *patientService) AcceptLink(ctx context.Context, clinicID uuid.UUID, inviteCode string, req ConsentRequest) (*repo.CareLink, error) {
	link, err := s.db.CareLink.Query().
		Where(entlink.InviteCode(codes.ParseCode(inviteCode)), entlink.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInviteCodeInvalid
		}
		return nil, fmt.Errorf("get care link: %w", err)
	}
	if link.Status != entlink.StatusPending {
		return nil, ErrLinkNotPending
	}

	// Consent flags set at acceptance override the invite's proposal: the
	// patient decides what is shared.
	updated, err := s.db.CareLink.UpdateOne(link).
		SetStatus(entlink.StatusActive).
		SetShareDiary(req.ShareDiary).
		SetShareMood(req.ShareMood).
		SetConsentedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("accept care link: %w", err)
	}
	return updated, nil
}

func (s *patientService) UpdateConsent(ctx context.Context, clinicID, linkID uuid.UUID, req ConsentRequest) (*repo.CareLink, error) {
	link, err := s.getLink(ctx, clinicID, linkID)
	if err != nil {
		return nil, err
	}
	if link.Status != entlink.StatusActive {
		return nil, ErrLinkNotActive
	}

	updated, err := s.db.CareLink.UpdateOne(link).
		SetShareDiary(req.ShareDiary).
		SetShareMood(req.ShareMood).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update consent: %w", err)
	}
	return updated, nil
}

func (s *patientService) RevokeLink(ctx context.Context, clinicID, linkID uuid.UUID, reason *string) error {
	link, err := s.getLink(ctx, clinicID, linkID)
	if err != nil {
		return err
	}
	if link.Status == entlink.StatusRevoked {
		return nil
	}

	u := s.db.CareLink.UpdateOne(link).
		SetStatus(entlink.StatusRevoked).
		SetRevokedAt(time.Now())
	if reason != nil {
		u = u.SetNillableRevokeReason(reason)
	}
	if err := u.Exec(ctx); err != nil {
		return fmt.Errorf("revoke care link: %w", err)
	}
	return nil
}

func (s *patientService) ListLinks(ctx context.Context, clinicID, patientID uuid.UUID) ([]*repo.CareLink, error) {
	links, err := s.db.CareLink.Query().
		Where(entlink.ClinicID(clinicID), entlink.PatientID(patientID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list care links: %w", err)
	}
	return links, nil
}

func (s *patientService) getLink(ctx context.Context, clinicID, linkID uuid.UUID) (*repo.CareLink, error) {
	link, err := s.db.CareLink.Query().
		Where(entlink.ID(linkID), entlink.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("get care link: %w", err)
	}
	return link, nil
}
