package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumyai/genomesim/pkg/feature"
)

func TestNewGCContentAnalyzerValidation(t *testing.T) {
	_, err := NewGCContentAnalyzer(0, 0.5)
	assert.Error(t, err)

	_, err = NewGCContentAnalyzer(-10, 0.5)
	assert.Error(t, err)

	_, err = NewGCContentAnalyzer(10, 1.5)
	assert.Error(t, err)

	_, err = NewGCContentAnalyzer(10, -0.1)
	assert.Error(t, err)
}

func TestGCContentAnalyzerFindsRichWindows(t *testing.T) {
	a, err := NewGCContentAnalyzer(10, 0.6)
	require.NoError(t, err)

	// Window GC fractions: 1.0, 0.0, 1.0 -> the middle window is dropped.
	sequence := "GCGCGCGCGC" + "ATATATATAT" + "GGGGGCCCCC"

	features, err := a.Analyze(sequence, "contig_1")
	require.NoError(t, err)
	require.Len(t, features, 2)

	first, second := features[0], features[1]

	assert.Equal(t, 0, first.Start)
	assert.Equal(t, 10, first.End)
	assert.Equal(t, 20, second.Start)
	assert.Equal(t, 30, second.End)

	for _, f := range features {
		assert.Equal(t, "contig_1", f.SequenceID)
		assert.Equal(t, "gc_rich_motif", f.FeatureType)
		assert.Equal(t, "+", f.Strand)

		// Coordinates stay within the input sequence.
		assert.GreaterOrEqual(t, f.Start, 0)
		assert.LessOrEqual(t, f.End, len(sequence))

		// Pure-GC windows score maximal confidence.
		assert.InDelta(t, 1.0, f.Confidence.Score, 1e-9)
		assert.NotEmpty(t, f.Confidence.Sources)

		// Provenance matches the producing analyzer.
		assert.Equal(t, a.Name(), f.Provenance.Analyzer)
		assert.Equal(t, a.Parameters(), f.Provenance.Parameters)
		assert.Equal(t, Version, f.Provenance.Version)

		id, ok := f.Attributes["id"].(string)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(id, "gc-"))
	}
}

func TestGCContentAnalyzerThresholdBoundary(t *testing.T) {
	a, err := NewGCContentAnalyzer(10, 0.5)
	require.NoError(t, err)

	// Exactly at the threshold: the window is kept with score 0.5.
	features, err := a.Analyze("GCGCGATATA", "")
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.InDelta(t, 0.5, features[0].Confidence.Score, 1e-9)
}

func TestGCContentAnalyzerLowercase(t *testing.T) {
	a, err := NewGCContentAnalyzer(4, 0.75)
	require.NoError(t, err)

	features, err := a.Analyze("gcgc", "")
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, 0, features[0].Start)
	assert.Equal(t, 4, features[0].End)
}

func TestGCContentAnalyzerRejectsBadAlphabet(t *testing.T) {
	a, err := NewGCContentAnalyzer(4, 0.5)
	require.NoError(t, err)

	features, err := a.Analyze("GCGCXXGC", "")
	require.Error(t, err)
	assert.Nil(t, features)
	assert.Contains(t, err.Error(), "X")
}

func TestGCContentAnalyzerIdentity(t *testing.T) {
	a, err := NewGCContentAnalyzer(100, 0.6)
	require.NoError(t, err)

	assert.Equal(t, "GCContentAnalyzer", a.Name())
	assert.Equal(t, feature.AnalysisCompositional, a.AnalysisType())
	assert.Equal(t, feature.ScaleNucleotide, a.InputScale())
	assert.Equal(t, feature.ScaleMotif, a.OutputScale())
	assert.Equal(t, map[string]any{"window_size": 100, "gc_threshold": 0.6}, a.Parameters())
}
