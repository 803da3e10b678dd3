package feature

import (
	"fmt"
	"sort"
	"strings"
)

// GFF3 renders the feature as a single tab-separated 9-column GFF3 line
// (no trailing newline). Coordinates are shifted to GFF3's 1-based
// inclusive convention, the provenance analyzer fills the source column,
// and the score column is the confidence score to 3 decimal places.
//
// The attribute column is deterministic: ID and Name first when present,
// then confidence and confidence_method, then every remaining attribute
// in sorted key order. Consumers parse this ordering, so it is part of
// the format contract.
func (f GenomicFeature) GFF3() string {

	seqid := f.SequenceID
	if seqid == "" {
		seqid = "."
	}

	score := fmt.Sprintf("%.3f", f.Confidence.Score)

	var attrParts []string
	if id, ok := f.Attributes["id"]; ok {
		attrParts = append(attrParts, fmt.Sprintf("ID=%v", id))
	}
	if name, ok := f.Attributes["name"]; ok {
		attrParts = append(attrParts, fmt.Sprintf("Name=%v", name))
	}

	attrParts = append(attrParts, "confidence="+score)
	attrParts = append(attrParts, "confidence_method="+f.Confidence.Method)

	// Remaining attributes in sorted key order to keep the line stable.
	keys := make([]string, 0, len(f.Attributes))
	for k := range f.Attributes {
		if k != "id" && k != "name" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrParts = append(attrParts, fmt.Sprintf("%s=%v", k, f.Attributes[k]))
	}

	return strings.Join([]string{
		seqid,
		f.Provenance.Analyzer,
		f.FeatureType,
		fmt.Sprintf("%d", f.Start+1), // GFF3 uses 1-based coordinates
		fmt.Sprintf("%d", f.End),
		score,
		f.Strand,
		".",
		strings.Join(attrParts, ";"),
	}, "\t")
}
