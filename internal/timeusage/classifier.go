package timeusage

import "strings"

// Activity code prefixes per bucket. The t18 prefix in the "other" list
// overlaps t1801/t1803; the primary-needs check runs first so those two
// stay out of "other".
var (
	primaryNeedsPrefixes = []string{"t01", "t03", "t11", "t1801", "t1803"}
	workPrefixes         = []string{"t05", "t1805"}
	otherPrefixes        = []string{
		"t02", "t04", "t06", "t07", "t08", "t09", "t10",
		"t12", "t13", "t14", "t15", "t16", "t18",
	}
)

// Classify partitions the column catalog into the three activity buckets.
// It is pure and deterministic; columns matching no rule (the identifier
// and control columns among them) are excluded from every bucket.
func Classify(columns []string) ColumnSets {
	var sets ColumnSets
	for _, name := range columns {
		primary := hasAnyPrefix(name, primaryNeedsPrefixes)
		switch {
		case primary:
			sets.PrimaryNeeds = append(sets.PrimaryNeeds, name)
		case hasAnyPrefix(name, workPrefixes):
			sets.Work = append(sets.Work, name)
		case hasAnyPrefix(name, otherPrefixes):
			sets.Other = append(sets.Other, name)
		}
	}
	return sets
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
