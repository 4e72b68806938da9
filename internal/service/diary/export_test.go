package diary

import (
	"strings"
	"testing"
	"time"

	"github.com/amparasaude/ampara_backend/internal/repo"
)

func TestRenderDiaryExport(t *testing.T) {
	reflection := "Hoje foi um dia melhor."
	entries := []*repo.DiaryEntry{
		{
			EntryDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			Mood:      7,
			Energy:    6,
			Emotions:  []string{"calma", "gratidão"},
			Content:   &reflection,
		},
		{
			EntryDate: time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC),
			Mood:      4,
			Energy:    3,
		},
	}
	exportedAt := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	doc := renderDiaryExport("Ana Souza", entries, exportedAt)

	for _, want := range []string{
		"Ampara - Diário de Ana Souza",
		"Exportado em: 28/08/2026 14:30",
		"Data: 20/08/2026",
		"Humor: 7/10",
		"Energia: 6/10",
		"Emoções: calma, gratidão",
		"Reflexão:\nHoje foi um dia melhor.",
		"Data: 19/08/2026",
		"Humor: 4/10",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("export missing %q\n\n%s", want, doc)
		}
	}

	// The second entry has no reflection and no emotions; neither label may
	// appear after its date line.
	tail := doc[strings.Index(doc, "Data: 19/08/2026"):]
	if strings.Contains(tail, "Reflexão") || strings.Contains(tail, "Emoções") {
		t.Errorf("empty fields rendered for bare entry:\n%s", tail)
	}
}

func TestRenderDiaryExportEmpty(t *testing.T) {
	doc := renderDiaryExport("Ana Souza", nil, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))
	if !strings.Contains(doc, "Nenhuma entrada registrada.") {
		t.Errorf("empty export missing placeholder:\n%s", doc)
	}
}
