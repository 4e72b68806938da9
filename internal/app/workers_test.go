package app

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/amparasaude/ampara_backend/internal/repo"
)

func TestSessionPatientID(t *testing.T) {
	patientID := uuid.New()

	tests := []struct {
		name   string
		sess   *repo.Session
		wantID uuid.UUID
		wantOK bool
	}{
		{
			name:   "session with patient",
			sess:   &repo.Session{PatientID: &patientID},
			wantID: patientID,
			wantOK: true,
		},
		{
			name:   "blocked session without patient",
			sess:   &repo.Session{},
			wantID: uuid.Nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotOK := sessionPatientID(tt.sess)
			if gotOK != tt.wantOK {
				t.Errorf("sessionPatientID() ok = %v, want %v", gotOK, tt.wantOK)
			}
			if gotID != tt.wantID {
				t.Errorf("sessionPatientID() id = %v, want %v", gotID, tt.wantID)
			}
		})
	}
}

func TestIdFromPayload(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		payload string
		wantID  uuid.UUID
		wantOK  bool
	}{
		{name: "valid uuid", payload: id.String(), wantID: id, wantOK: true},
		{name: "uuid with whitespace", payload: "  " + id.String() + "\n", wantID: id, wantOK: true},
		{name: "garbage", payload: "not-a-uuid", wantOK: false},
		{name: "empty", payload: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotOK := idFromPayload(&nats.Msg{Data: []byte(tt.payload)})
			if gotOK != tt.wantOK {
				t.Errorf("idFromPayload() ok = %v, want %v", gotOK, tt.wantOK)
			}
			if tt.wantOK && gotID != tt.wantID {
				t.Errorf("idFromPayload() id = %v, want %v", gotID, tt.wantID)
			}
		})
	}
}

func TestStrVal(t *testing.T) {
	s := "ana"
	if got := strVal(&s); got != "ana" {
		t.Errorf("strVal() = %q, want %q", got, "ana")
	}
	if got := strVal(nil); got != "" {
		t.Errorf("strVal(nil) = %q, want empty", got)
	}
}
