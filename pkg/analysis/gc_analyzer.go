package analysis

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yumyai/genomesim/pkg/feature"
)

// GCContentAnalyzer is the reference Analyzer implementation: it slides
// non-overlapping windows over a nucleotide sequence and reports each
// GC-rich window as a motif-scale feature. It is illustrative plumbing,
// not a serious compositional analysis.
type GCContentAnalyzer struct {
	windowSize  int
	gcThreshold float64
}

// NewGCContentAnalyzer builds the analyzer, rejecting non-positive window
// sizes and thresholds outside [0.0, 1.0].
func NewGCContentAnalyzer(windowSize int, gcThreshold float64) (*GCContentAnalyzer, error) {

	if windowSize <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", windowSize)
	}

	if gcThreshold < 0.0 || gcThreshold > 1.0 {
		return nil, fmt.Errorf("GC threshold must be between 0.0 and 1.0, got %v", gcThreshold)
	}

	return &GCContentAnalyzer{windowSize: windowSize, gcThreshold: gcThreshold}, nil
}

func (a *GCContentAnalyzer) Name() string { return "GCContentAnalyzer" }

func (a *GCContentAnalyzer) AnalysisType() feature.AnalysisType { return feature.AnalysisCompositional }

func (a *GCContentAnalyzer) InputScale() feature.Scale { return feature.ScaleNucleotide }

func (a *GCContentAnalyzer) OutputScale() feature.Scale { return feature.ScaleMotif }

func (a *GCContentAnalyzer) Parameters() map[string]any {
	return map[string]any{
		"window_size":  a.windowSize,
		"gc_threshold": a.gcThreshold,
	}
}

// Analyze validates the sequence alphabet, then emits one feature per
// non-overlapping window whose GC fraction reaches the threshold.
func (a *GCContentAnalyzer) Analyze(sequence, sequenceID string) ([]feature.GenomicFeature, error) {

	if err := ValidateSequence(sequence); err != nil {
		return nil, err
	}

	upper := strings.ToUpper(sequence)
	var results []feature.GenomicFeature

	for start := 0; start+a.windowSize <= len(upper); start += a.windowSize {

		window := upper[start : start+a.windowSize]
		gc := gcFraction(window)

		if gc < a.gcThreshold {
			continue
		}

		conf, err := feature.NewConfidence(
			a.scoreFor(gc),
			"windowed GC fraction",
			[]string{"gc_fraction", "window_size"},
			map[string]any{"gc_fraction": gc, "window_size": a.windowSize},
		)
		if err != nil {
			return nil, err
		}

		prov := feature.NewProvenanceNow(a.Name(), Version, a.Parameters(), nil, nil)

		f, err := feature.NewGenomicFeature(
			start, start+a.windowSize, "+", "gc_rich_motif",
			conf,
			map[string]any{
				"id":         "gc-" + uuid.New().String(),
				"gc_content": fmt.Sprintf("%.3f", gc),
			},
			prov, sequenceID,
		)
		if err != nil {
			return nil, err
		}

		results = append(results, f)
	}

	return results, nil
}

// scoreFor maps a window's GC fraction to a confidence score: right at
// the threshold scores 0.5, climbing linearly to 1.0 at pure GC.
func (a *GCContentAnalyzer) scoreFor(gc float64) float64 {
	if a.gcThreshold >= 1.0 {
		return 1.0
	}
	score := 0.5 + 0.5*(gc-a.gcThreshold)/(1.0-a.gcThreshold)
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func gcFraction(window string) float64 {
	if len(window) == 0 {
		return 0
	}
	count := 0
	for _, r := range window {
		if r == 'G' || r == 'C' {
			count++
		}
	}
	return float64(count) / float64(len(window))
}
