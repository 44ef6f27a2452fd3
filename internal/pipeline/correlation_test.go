package pipeline

import (
	"testing"

	"github.com/google/uuid"
)

func TestCorrelationRoundTrip(t *testing.T) {
	jobID := uuid.New()
	id := EncodeCorrelationID(jobID, 3, 42, "42-1.png")
	cor, err := DecodeCorrelationID(id)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cor.JobID != jobID || cor.BatchIndex != 3 || cor.GlobalIndex != 42 || cor.Filename != "42-1.png" {
		t.Errorf("round trip = %+v", cor)
	}
}

func TestCorrelationFilenameWithColons(t *testing.T) {
	jobID := uuid.New()
	id := EncodeCorrelationID(jobID, 0, 7, "weird:name.png")
	cor, err := DecodeCorrelationID(id)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cor.Filename != "weird:name.png" {
		t.Errorf("filename = %q", cor.Filename)
	}
}

func TestDecodeCorrelationIDRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"not-a-uuid:0:1:x.png",
		uuid.New().String() + ":x:1:a.png",
		uuid.New().String() + ":0:y:a.png",
		uuid.New().String() + ":0:1:",
		uuid.New().String() + ":0:1",
	}
	for _, s := range bad {
		if _, err := DecodeCorrelationID(s); err == nil {
			t.Errorf("DecodeCorrelationID(%q) succeeded, want error", s)
		}
	}
}
