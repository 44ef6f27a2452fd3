package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Correlation is the identity carried on every batch request line and echoed
// on its response line: it is the only way an output maps back to a work item.
type Correlation struct {
	JobID       uuid.UUID
	BatchIndex  int
	GlobalIndex int
	Filename    string
}

// EncodeCorrelationID renders "jobID:batchIndex:globalIndex:filename".
// The filename goes last so it may contain any character.
func EncodeCorrelationID(jobID uuid.UUID, batchIndex, globalIndex int, filename string) string {
	return fmt.Sprintf("%s:%d:%d:%s", jobID, batchIndex, globalIndex, filename)
}

// DecodeCorrelationID parses a correlation id back into its parts.
func DecodeCorrelationID(s string) (Correlation, error) {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) != 4 {
		return Correlation{}, fmt.Errorf("malformed correlation id %q", s)
	}
	jobID, err := uuid.Parse(parts[0])
	if err != nil {
		return Correlation{}, fmt.Errorf("correlation id %q: bad job id: %w", s, err)
	}
	batchIndex, err := strconv.Atoi(parts[1])
	if err != nil {
		return Correlation{}, fmt.Errorf("correlation id %q: bad batch index: %w", s, err)
	}
	globalIndex, err := strconv.Atoi(parts[2])
	if err != nil {
		return Correlation{}, fmt.Errorf("correlation id %q: bad global index: %w", s, err)
	}
	if parts[3] == "" {
		return Correlation{}, fmt.Errorf("correlation id %q: empty filename", s)
	}
	return Correlation{
		JobID:       jobID,
		BatchIndex:  batchIndex,
		GlobalIndex: globalIndex,
		Filename:    parts[3],
	}, nil
}
