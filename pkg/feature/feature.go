package feature

import "fmt"

// GenomicFeature is a coordinate-anchored prediction about a region of a
// genome: the primary output of every analyzer and bridge. Coordinates
// are 0-based and half-open ([Start, End)). A feature exclusively owns
// its Confidence and Provenance and is immutable once constructed.
type GenomicFeature struct {
	Start       int            `json:"start"`
	End         int            `json:"end"`
	Strand      string         `json:"strand"`
	FeatureType string         `json:"feature_type"`
	Confidence  Confidence     `json:"confidence"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	Provenance  Provenance     `json:"provenance"`
	SequenceID  string         `json:"sequence_id,omitempty"` // chromosome/contig identifier, "" = unspecified
}

// NewGenomicFeature builds a feature, rejecting negative starts,
// zero-length or inverted ranges, and strands other than "+"/"-".
func NewGenomicFeature(start, end int, strand, featureType string, conf Confidence, attributes map[string]any, prov Provenance, sequenceID string) (GenomicFeature, error) {

	if start < 0 {
		return GenomicFeature{}, fmt.Errorf("start position must be non-negative, got %d", start)
	}

	if end <= start {
		return GenomicFeature{}, fmt.Errorf("end position must be greater than start, got start=%d, end=%d", start, end)
	}

	if strand != "+" && strand != "-" {
		return GenomicFeature{}, fmt.Errorf("strand must be '+' or '-', got %q", strand)
	}

	return GenomicFeature{
		Start:       start,
		End:         end,
		Strand:      strand,
		FeatureType: featureType,
		Confidence:  conf,
		Attributes:  attributes,
		Provenance:  prov,
		SequenceID:  sequenceID,
	}, nil
}

// Length returns the feature length in base pairs.
func (f GenomicFeature) Length() int {
	return f.End - f.Start
}

// Overlaps reports whether the two half-open intervals intersect.
// Features on different, both-specified sequences never overlap.
func (f GenomicFeature) Overlaps(other GenomicFeature) bool {

	if f.SequenceID != "" && other.SequenceID != "" && f.SequenceID != other.SequenceID {
		return false
	}

	return !(f.End <= other.Start || other.End <= f.Start)
}

// DistanceTo returns the gap in base pairs between the nearer edges of
// two features: 0 when they overlap, and -1 as an explicit "not
// comparable" sentinel when both sequence IDs are specified but differ.
func (f GenomicFeature) DistanceTo(other GenomicFeature) int {

	if f.SequenceID != "" && other.SequenceID != "" && f.SequenceID != other.SequenceID {
		return -1
	}

	if f.Overlaps(other) {
		return 0
	}

	if f.End <= other.Start {
		return other.Start - f.End
	}
	return f.Start - other.End
}

func (f GenomicFeature) String() string {
	seqid := f.SequenceID
	if seqid == "" {
		seqid = "?"
	}
	return fmt.Sprintf("%s at %s:%d-%d (%s) [confidence: %.3f]",
		f.FeatureType, seqid, f.Start, f.End, f.Strand, f.Confidence.Score)
}
