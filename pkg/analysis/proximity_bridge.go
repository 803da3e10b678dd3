package analysis

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/yumyai/genomesim/pkg/feature"
)

// ProximityBridge is the reference ScaleBridge implementation: it clusters
// motif-scale features whose coordinate gap stays within MaxGap and emits
// one gene-scale feature spanning each cluster. Like GCContentAnalyzer it
// is illustrative, not real gene prediction.
type ProximityBridge struct {
	maxGap int
	method AggregationMethod
}

// NewProximityBridge builds the bridge, rejecting negative gaps and
// unknown aggregation methods.
func NewProximityBridge(maxGap int, method AggregationMethod) (*ProximityBridge, error) {

	if maxGap < 0 {
		return nil, fmt.Errorf("max gap must be non-negative, got %d", maxGap)
	}

	switch method {
	case WeightedAverage, Minimum, GeometricMean:
	default:
		return nil, fmt.Errorf("unknown aggregation method: %q, valid methods: %s, %s, %s",
			string(method), WeightedAverage, Minimum, GeometricMean)
	}

	return &ProximityBridge{maxGap: maxGap, method: method}, nil
}

func (b *ProximityBridge) Name() string { return "ProximityBridge" }

func (b *ProximityBridge) InputScale() feature.Scale { return feature.ScaleMotif }

func (b *ProximityBridge) OutputScale() feature.Scale { return feature.ScaleGene }

func (b *ProximityBridge) parameters() map[string]any {
	return map[string]any{
		"max_gap":            b.maxGap,
		"aggregation_method": string(b.method),
	}
}

// Bridge clusters the inputs per sequence and emits one spanning gene
// feature per cluster. An empty input list yields an empty result.
func (b *ProximityBridge) Bridge(features []feature.GenomicFeature) ([]feature.GenomicFeature, error) {

	if len(features) == 0 {
		return nil, nil
	}

	CheckInputScale(b, features)

	// Cluster within each sequence independently; cross-sequence gaps
	// have no meaning.
	groups := make(map[string][]feature.GenomicFeature)
	for _, f := range features {
		groups[f.SequenceID] = append(groups[f.SequenceID], f)
	}

	seqIDs := make([]string, 0, len(groups))
	for id := range groups {
		seqIDs = append(seqIDs, id)
	}
	sort.Strings(seqIDs)

	var results []feature.GenomicFeature

	for _, seqID := range seqIDs {

		group := groups[seqID]
		sort.Slice(group, func(i, j int) bool { return group[i].Start < group[j].Start })

		cluster := []feature.GenomicFeature{group[0]}
		clusterEnd := group[0].End

		flush := func() error {
			gene, err := b.clusterToGene(cluster, seqID)
			if err != nil {
				return err
			}
			results = append(results, gene)
			return nil
		}

		for _, f := range group[1:] {
			if f.Start-clusterEnd <= b.maxGap {
				cluster = append(cluster, f)
				if f.End > clusterEnd {
					clusterEnd = f.End
				}
				continue
			}
			if err := flush(); err != nil {
				return nil, err
			}
			cluster = []feature.GenomicFeature{f}
			clusterEnd = f.End
		}
		if err := flush(); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// clusterToGene collapses one cluster of member features into a spanning
// gene-scale feature, aggregating member confidences and recording the
// distinct upstream analyzer names as provenance dependencies.
func (b *ProximityBridge) clusterToGene(members []feature.GenomicFeature, seqID string) (feature.GenomicFeature, error) {

	start := members[0].Start
	end := members[0].End
	scores := make([]float64, 0, len(members))

	var deps []string
	seen := make(map[string]bool)

	for _, m := range members {
		if m.Start < start {
			start = m.Start
		}
		if m.End > end {
			end = m.End
		}
		scores = append(scores, m.Confidence.Score)
		if name := m.Provenance.Analyzer; name != "" && !seen[name] {
			seen[name] = true
			deps = append(deps, name)
		}
	}

	aggregated, err := AggregateConfidence(scores, b.method, nil)
	if err != nil {
		return feature.GenomicFeature{}, err
	}

	conf, err := feature.NewConfidence(
		aggregated,
		fmt.Sprintf("%s over %d member features", b.method, len(members)),
		[]string{"member_confidences"},
		map[string]any{"member_count": len(members)},
	)
	if err != nil {
		return feature.GenomicFeature{}, err
	}

	prov := feature.NewProvenanceNow(b.Name(), Version, b.parameters(), deps, nil)

	// Strand of the first member stands in for the cluster; mixed-strand
	// clusters keep no per-member strand information.
	return feature.NewGenomicFeature(
		start, end, members[0].Strand, "gene",
		conf,
		map[string]any{
			"id":           "gene-" + uuid.New().String(),
			"member_count": len(members),
		},
		prov, seqID,
	)
}
