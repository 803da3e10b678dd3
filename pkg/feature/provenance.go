package feature

import (
	"fmt"
	"time"
)

// Accepted timestamp layouts. RFC 3339 covers the trailing-Z form; the
// others cover zone-less ISO 8601 strings.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Provenance records how a result was obtained: which analyzer produced
// it, at which version, with which parameters, and what fed into it.
// Dependencies name upstream analyzers only, so chains of provenance form
// a DAG by construction with no object links between features.
type Provenance struct {
	Analyzer     string         `json:"analyzer"`
	Version      string         `json:"version"`
	Parameters   map[string]any `json:"parameters,omitempty"`
	Timestamp    string         `json:"timestamp"`
	Dependencies []string       `json:"dependencies,omitempty"`
	References   []string       `json:"references,omitempty"`
}

// NewProvenance builds a Provenance, rejecting timestamps that do not
// parse as ISO 8601 / RFC 3339 (a trailing literal "Z" means UTC).
func NewProvenance(analyzer, version string, parameters map[string]any, timestamp string, dependencies, references []string) (Provenance, error) {

	if err := validateTimestamp(timestamp); err != nil {
		return Provenance{}, err
	}

	return Provenance{
		Analyzer:     analyzer,
		Version:      version,
		Parameters:   parameters,
		Timestamp:    timestamp,
		Dependencies: dependencies,
		References:   references,
	}, nil
}

// NewProvenanceNow builds a Provenance stamped with the current wall-clock
// time in UTC, formatted with a trailing "Z".
func NewProvenanceNow(analyzer, version string, parameters map[string]any, dependencies, references []string) Provenance {
	return Provenance{
		Analyzer:     analyzer,
		Version:      version,
		Parameters:   parameters,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Dependencies: dependencies,
		References:   references,
	}
}

func validateTimestamp(ts string) error {
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, ts); err == nil {
			return nil
		}
	}
	return fmt.Errorf("timestamp must be in ISO 8601 format, got: %q", ts)
}
