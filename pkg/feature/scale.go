// Core enumerations shared by every analyzer and bridge.

package feature

import "fmt"

// Scale is a genomic granularity level, from single bases up to whole
// genomes. Scales are totally ordered; the ordering comes from an explicit
// rank table so that the declaration order is never load-bearing.
type Scale string

const (
	ScaleNucleotide Scale = "nucleotide" // individual bases
	ScaleMotif      Scale = "motif"      // short patterns (6-20 bp): TFBS, splice sites
	ScaleDomain     Scale = "domain"     // functional units: protein domains, RNA structures
	ScaleGene       Scale = "gene"       // complete genes with regulatory elements
	ScaleOperon     Scale = "operon"     // gene clusters, primarily prokaryotic
	ScaleChromosome Scale = "chromosome" // full chromosomes
	ScaleGenome     Scale = "genome"     // complete genomes
)

var scaleRank = map[Scale]int{
	ScaleNucleotide: 0,
	ScaleMotif:      1,
	ScaleDomain:     2,
	ScaleGene:       3,
	ScaleOperon:     4,
	ScaleChromosome: 5,
	ScaleGenome:     6,
}

// Scales returns all scales in ascending rank order.
func Scales() []Scale {
	return []Scale{
		ScaleNucleotide, ScaleMotif, ScaleDomain, ScaleGene,
		ScaleOperon, ScaleChromosome, ScaleGenome,
	}
}

// Valid reports whether s is one of the seven defined scales.
func (s Scale) Valid() bool {
	_, ok := scaleRank[s]
	return ok
}

// Compare returns -1, 0 or 1 for s ordered against other. Comparing a
// value outside the enumeration is rejected with an error.
func (s Scale) Compare(other Scale) (int, error) {
	rs, ok := scaleRank[s]
	if !ok {
		return 0, fmt.Errorf("unknown scale: %q", string(s))
	}
	ro, ok := scaleRank[other]
	if !ok {
		return 0, fmt.Errorf("unknown scale: %q", string(other))
	}
	switch {
	case rs < ro:
		return -1, nil
	case rs > ro:
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports whether s ranks strictly below other. If either value is
// outside the enumeration the two are not comparable and Less is false.
func (s Scale) Less(other Scale) bool {
	c, err := s.Compare(other)
	return err == nil && c < 0
}

func (s Scale) String() string {
	return string(s)
}

// AnalysisType is a purely categorical tag for what kind of question an
// analyzer answers. Unlike Scale there is no ordering between types.
type AnalysisType string

const (
	AnalysisStructural    AnalysisType = "structural"    // physical structure: ORFs, genes, exons
	AnalysisCompositional AnalysisType = "compositional" // sequence composition: GC content, repeats
	AnalysisFunctional    AnalysisType = "functional"    // biological function: protein activity, pathways
	AnalysisEvolutionary  AnalysisType = "evolutionary"  // evolutionary history: conservation, homology
	AnalysisRegulatory    AnalysisType = "regulatory"    // gene regulation: promoters, enhancers, TFBSs
)

// AnalysisTypes returns all defined analysis categories.
func AnalysisTypes() []AnalysisType {
	return []AnalysisType{
		AnalysisStructural, AnalysisCompositional, AnalysisFunctional,
		AnalysisEvolutionary, AnalysisRegulatory,
	}
}

// Valid reports whether t is one of the five defined categories.
func (t AnalysisType) Valid() bool {
	switch t {
	case AnalysisStructural, AnalysisCompositional, AnalysisFunctional,
		AnalysisEvolutionary, AnalysisRegulatory:
		return true
	}
	return false
}

func (t AnalysisType) String() string {
	return string(t)
}
