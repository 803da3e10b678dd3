// Package analysis defines the pluggable contracts of the platform: the
// Analyzer that turns raw sequence into features, the ScaleBridge that
// aggregates features upward through the scale hierarchy, and the shared
// helpers both rely on (alphabet validation, confidence aggregation).
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yumyai/genomesim/pkg/feature"
)

// Version is the platform version, reported in provenance by analyzers
// that do not carry their own.
const Version = "0.1.0"

// Analyzer is the contract every concrete analyzer satisfies. Analyzers
// are stateless with respect to analysis: all tunables are fixed at
// construction time so Parameters is deterministic and reproducible.
// Every emitted feature must carry a Confidence and a Provenance whose
// analyzer/parameters match the producing analyzer, with coordinates
// valid within the input sequence.
type Analyzer interface {
	// Name is a stable unique identifier, used in provenance tracking.
	Name() string
	// AnalysisType is the category of question this analyzer answers.
	AnalysisType() feature.AnalysisType
	// InputScale is the scale of sequence the analyzer accepts.
	InputScale() feature.Scale
	// OutputScale is the scale of feature the analyzer emits.
	OutputScale() feature.Scale
	// Analyze runs the analysis over a raw sequence. sequenceID may be
	// empty. It fails on sequences outside the accepted alphabet or on
	// invalid parameters; it never silently degrades.
	Analyze(sequence, sequenceID string) ([]feature.GenomicFeature, error)
	// Parameters reports the exact configuration in use, for provenance.
	Parameters() map[string]any
}

const validBases = "ATGCUN"

// ValidateSequence checks that every character of the sequence belongs to
// the nucleotide alphabet {A,T,G,C,U,N}, case-insensitively. The error
// names the offending characters. Analyzers are expected to call this
// before analyzing.
func ValidateSequence(sequence string) error {

	var invalid []string
	seen := make(map[rune]bool)

	for _, r := range strings.ToUpper(sequence) {
		if !strings.ContainsRune(validBases, r) && !seen[r] {
			seen[r] = true
			invalid = append(invalid, string(r))
		}
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)
		return fmt.Errorf("sequence contains invalid characters: %s; valid characters are: A, T, G, C, U, N",
			strings.Join(invalid, ", "))
	}

	return nil
}

// DescribeAnalyzer renders a one-line human-readable summary of an
// analyzer's identity and scales.
func DescribeAnalyzer(a Analyzer) string {
	return fmt.Sprintf("%s (%s) [%s -> %s]", a.Name(), a.AnalysisType(), a.InputScale(), a.OutputScale())
}
