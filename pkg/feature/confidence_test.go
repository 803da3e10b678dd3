package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfidence(t *testing.T) Confidence {
	t.Helper()
	conf, err := NewConfidence(0.85, "test_method",
		[]string{"test_source_1", "test_source_2"},
		map[string]any{"test_source_1": 0.9, "test_source_2": 0.8})
	require.NoError(t, err)
	return conf
}

func TestNewConfidenceScoreRange(t *testing.T) {
	cases := []struct {
		score float64
		ok    bool
	}{
		{0.0, true},
		{0.5, true},
		{1.0, true},
		{-0.1, false},
		{1.1, false},
		{2.0, false},
	}

	for _, c := range cases {
		_, err := NewConfidence(c.score, "m", []string{"s"}, nil)
		if c.ok {
			assert.NoError(t, err, "score %v", c.score)
		} else {
			assert.Error(t, err, "score %v", c.score)
		}
	}
}

func TestNewConfidenceRequiresSources(t *testing.T) {
	_, err := NewConfidence(0.5, "m", nil, nil)
	assert.Error(t, err)

	_, err = NewConfidence(0.5, "m", []string{}, nil)
	assert.Error(t, err)
}

func TestConfidenceLevel(t *testing.T) {
	cases := []struct {
		score float64
		level string
	}{
		{0.9, "Very high"},
		{0.8, "Very high"},
		{0.7, "High"},
		{0.6, "High"},
		{0.5, "Moderate"},
		{0.3, "Low"},
		{0.1, "Very low"},
		{0.0, "Very low"},
	}

	for _, c := range cases {
		conf, err := NewConfidence(c.score, "m", []string{"s"}, nil)
		require.NoError(t, err)
		assert.Equal(t, c.level, conf.Level(), "score %v", c.score)
	}
}

func TestCombineWithScore(t *testing.T) {
	a, err := NewConfidence(0.8, "method_a", []string{"sa"}, nil)
	require.NoError(t, err)
	b, err := NewConfidence(0.6, "method_b", []string{"sb"}, nil)
	require.NoError(t, err)

	even, err := a.CombineWith(b, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, even.Score, 1e-9)

	skewed, err := a.CombineWith(b, 0.75)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, skewed.Score, 1e-9)

	assert.Equal(t, "combined(method_a, method_b)", even.Method)

	// Inputs untouched
	assert.Equal(t, 0.8, a.Score)
	assert.Equal(t, 0.6, b.Score)
}

func TestCombineWithMergesEvidence(t *testing.T) {
	a, err := NewConfidence(0.8, "ma",
		[]string{"shared", "only_a"},
		map[string]any{"shared": "from_a", "only_a": 1})
	require.NoError(t, err)

	b, err := NewConfidence(0.6, "mb",
		[]string{"shared", "only_b"},
		map[string]any{"shared": "from_b", "only_b": 2})
	require.NoError(t, err)

	combined, err := a.CombineWith(b, 0.5)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"shared", "only_a", "only_b"}, combined.Sources)

	// Other's value wins on key collision.
	assert.Equal(t, "from_b", combined.SupportingEvidence["shared"])
	assert.Equal(t, 1, combined.SupportingEvidence["only_a"])
	assert.Equal(t, 2, combined.SupportingEvidence["only_b"])
}

func TestCombineWithRejectsBadWeight(t *testing.T) {
	a := sampleConfidence(t)
	b := sampleConfidence(t)

	_, err := a.CombineWith(b, -0.1)
	assert.Error(t, err)

	_, err = a.CombineWith(b, 1.5)
	assert.Error(t, err)
}
