package diary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/amparasaude/ampara_backend/internal/repo"
	entdiary "github.com/amparasaude/ampara_backend/internal/repo/diaryentry"
)

// ExportText renders the patient's complete diary history as a plain-text
// document, newest entry first, so patients can take their data with them.
func (s *diaryService) ExportText(ctx context.Context, patientID uuid.UUID) (string, error) {
	p, err := s.db.Patient.Get(ctx, patientID)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", ErrEntryNotFound
		}
		return "", fmt.Errorf("get patient: %w", err)
	}
	u, err := s.db.User.Get(ctx, p.UserID)
	if err != nil {
		return "", fmt.Errorf("get patient user: %w", err)
	}

	entries, err := s.db.DiaryEntry.Query().
		Where(entdiary.PatientID(patientID)).
		Order(entdiary.ByEntryDate(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("list entries: %w", err)
	}

	name := strings.TrimSpace(deref(u.FirstName) + " " + deref(u.LastName))
	return renderDiaryExport(name, entries, time.Now()), nil
}

// renderDiaryExport writes the pt-BR export document.
func renderDiaryExport(patientName string, entries []*repo.DiaryEntry, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Ampara - Diário de %s\n", patientName)
	fmt.Fprintf(&b, "Exportado em: %s\n", now.Format("02/01/2006 15:04"))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	if len(entries) == 0 {
		b.WriteString("Nenhuma entrada registrada.\n")
		return b.String()
	}

	for _, e := range entries {
		fmt.Fprintf(&b, "Data: %s\n", e.EntryDate.Format("02/01/2006"))
		fmt.Fprintf(&b, "Humor: %d/10\n", e.Mood)
		fmt.Fprintf(&b, "Energia: %d/10\n", e.Energy)
		if len(e.Emotions) > 0 {
			fmt.Fprintf(&b, "Emoções: %s\n", strings.Join(e.Emotions, ", "))
		}
		if e.Content != nil && *e.Content != "" {
			fmt.Fprintf(&b, "Reflexão:\n%s\n", *e.Content)
		}
		b.WriteString(strings.Repeat("-", 40) + "\n\n")
	}

	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
