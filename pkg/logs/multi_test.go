package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandlerFanOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	slog.New(h).Info("session scheduled", "clinic", "vila-madalena")

	if !strings.Contains(a.String(), "session scheduled") {
		t.Errorf("text output missing record: %q", a.String())
	}
	if !strings.Contains(b.String(), `"session scheduled"`) {
		t.Errorf("json output missing record: %q", b.String())
	}
}

func TestMultiHandlerRespectsPerHandlerLevel(t *testing.T) {
	var quiet, chatty bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&chatty, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}}

	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("Enabled() = false, want true while any handler accepts the level")
	}

	slog.New(h).Debug("noisy detail")

	if quiet.Len() != 0 {
		t.Errorf("error-level handler received debug record: %q", quiet.String())
	}
	if !strings.Contains(chatty.String(), "noisy detail") {
		t.Errorf("debug-level handler missing record: %q", chatty.String())
	}
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	var out bytes.Buffer
	base := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	slog.New(base.WithAttrs([]slog.Attr{slog.String("service", "ampara")})).Info("up")

	if !strings.Contains(out.String(), "service=ampara") {
		t.Errorf("output missing carried attr: %q", out.String())
	}
}
