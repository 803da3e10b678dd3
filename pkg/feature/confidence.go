package feature

import "fmt"

// Confidence quantifies the uncertainty behind a prediction. Every score
// carries the method that produced it and the named evidence factors that
// back it up, so a downstream consumer can always see why a prediction is
// trusted, not just how much.
//
// A Confidence is an immutable value: new scores come from CombineWith,
// never from editing an existing one.
type Confidence struct {
	Score              float64        `json:"score"`
	Method             string         `json:"method"`
	Sources            []string       `json:"sources"`
	SupportingEvidence map[string]any `json:"supporting_evidence,omitempty"`
}

// NewConfidence builds a Confidence, rejecting scores outside [0.0, 1.0]
// and empty source lists.
func NewConfidence(score float64, method string, sources []string, evidence map[string]any) (Confidence, error) {

	if score < 0.0 || score > 1.0 {
		return Confidence{}, fmt.Errorf("confidence score must be between 0.0 and 1.0, got %v", score)
	}

	if len(sources) == 0 {
		return Confidence{}, fmt.Errorf("confidence must have at least one source")
	}

	return Confidence{
		Score:              score,
		Method:             method,
		Sources:            sources,
		SupportingEvidence: evidence,
	}, nil
}

// Level buckets the numeric score into a human-readable band.
func (c Confidence) Level() string {
	switch {
	case c.Score >= 0.8:
		return "Very high"
	case c.Score >= 0.6:
		return "High"
	case c.Score >= 0.4:
		return "Moderate"
	case c.Score >= 0.2:
		return "Low"
	default:
		return "Very low"
	}
}

// CombineWith merges two confidence values into a new one. The combined
// score is the weighted arithmetic mean with weightSelf on c and
// (1 - weightSelf) on other. Sources are unioned with duplicates collapsed,
// and evidence maps are merged key-wise with other winning collisions.
// Neither input is modified.
func (c Confidence) CombineWith(other Confidence, weightSelf float64) (Confidence, error) {

	if weightSelf < 0.0 || weightSelf > 1.0 {
		return Confidence{}, fmt.Errorf("weightSelf must be between 0.0 and 1.0, got %v", weightSelf)
	}

	weightOther := 1.0 - weightSelf
	combinedScore := c.Score*weightSelf + other.Score*weightOther

	seen := make(map[string]bool, len(c.Sources)+len(other.Sources))
	var combinedSources []string
	for _, s := range append(append([]string{}, c.Sources...), other.Sources...) {
		if !seen[s] {
			seen[s] = true
			combinedSources = append(combinedSources, s)
		}
	}

	combinedEvidence := make(map[string]any, len(c.SupportingEvidence)+len(other.SupportingEvidence))
	for k, v := range c.SupportingEvidence {
		combinedEvidence[k] = v
	}
	for k, v := range other.SupportingEvidence {
		combinedEvidence[k] = v
	}

	return Confidence{
		Score:              combinedScore,
		Method:             fmt.Sprintf("combined(%s, %s)", c.Method, other.Method),
		Sources:            combinedSources,
		SupportingEvidence: combinedEvidence,
	}, nil
}

func (c Confidence) String() string {
	return fmt.Sprintf("Confidence: %.3f (%s) via %s", c.Score, c.Level(), c.Method)
}
