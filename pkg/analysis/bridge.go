package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/yumyai/genomesim/logger"
	"github.com/yumyai/genomesim/pkg/feature"
	"go.uber.org/zap"
)

// ScaleBridge is the contract for integrating many lower-scale features
// into fewer higher-scale ones. OutputScale must rank strictly above
// InputScale. Bridges aggregate input confidences with one of the
// documented aggregation methods, record the distinct analyzer names of
// all contributing inputs in the output's provenance dependencies, and
// tolerate an empty input list by returning an empty result.
type ScaleBridge interface {
	// Name is a stable unique identifier, used in provenance tracking.
	Name() string
	// InputScale is the lower scale the bridge accepts.
	InputScale() feature.Scale
	// OutputScale is the strictly higher scale the bridge produces.
	OutputScale() feature.Scale
	// Bridge integrates lower-scale features into higher-scale ones.
	Bridge(features []feature.GenomicFeature) ([]feature.GenomicFeature, error)
}

// AggregationMethod selects how a bridge collapses many confidence
// scores into one.
type AggregationMethod string

const (
	// WeightedAverage is Σ(score·weight) / Σ(weight); with no weights
	// supplied it degrades to the unweighted mean.
	WeightedAverage AggregationMethod = "weighted_average"
	// Minimum is conservative: one weak input caps the aggregate.
	Minimum AggregationMethod = "minimum"
	// GeometricMean penalizes near-zero scores heavily; a single zero
	// collapses the result to zero.
	GeometricMean AggregationMethod = "geometric_mean"
)

// AggregateConfidence collapses confidence scores into a single score.
// weights is only meaningful for WeightedAverage and may be nil there
// (all weights default to 1.0). An empty score list aggregates to 0.0
// for every method. Fails on a weights list of the wrong length or an
// unknown method.
func AggregateConfidence(scores []float64, method AggregationMethod, weights []float64) (float64, error) {

	if len(scores) == 0 {
		return 0.0, nil
	}

	switch method {
	case WeightedAverage:
		if weights == nil {
			weights = make([]float64, len(scores))
			for i := range weights {
				weights[i] = 1.0
			}
		}
		if len(weights) != len(scores) {
			return 0, fmt.Errorf("weights length (%d) must match scores length (%d)", len(weights), len(scores))
		}

		var totalWeight, weightedSum float64
		for i, s := range scores {
			totalWeight += weights[i]
			weightedSum += s * weights[i]
		}
		if totalWeight == 0 {
			return 0.0, nil
		}
		return weightedSum / totalWeight, nil

	case Minimum:
		min := scores[0]
		for _, s := range scores[1:] {
			if s < min {
				min = s
			}
		}
		return min, nil

	case GeometricMean:
		product := 1.0
		for _, s := range scores {
			product *= s
		}
		return math.Pow(product, 1.0/float64(len(scores))), nil

	default:
		return 0, fmt.Errorf("unknown aggregation method: %q, valid methods: %s, %s, %s",
			string(method), WeightedAverage, Minimum, GeometricMean)
	}
}

// CheckInputScale is an advisory check that each input feature's declared
// type superficially matches the bridge's input scale name. Feature types
// do not have to match scale names, so mismatches are logged and never
// rejected.
func CheckInputScale(b ScaleBridge, features []feature.GenomicFeature) {
	want := string(b.InputScale())
	for i, f := range features {
		if !strings.Contains(strings.ToLower(f.FeatureType), want) {
			logger.Debug("feature type does not mention bridge input scale",
				zap.String("bridge", b.Name()),
				zap.Int("index", i),
				zap.String("feature_type", f.FeatureType),
				zap.String("input_scale", want))
		}
	}
}

// DescribeBridge renders a one-line human-readable summary of a bridge's
// identity and scales.
func DescribeBridge(b ScaleBridge) string {
	return fmt.Sprintf("%s [%s -> %s]", b.Name(), b.InputScale(), b.OutputScale())
}
