package gce

import (
	"fmt"
	"strings"
)

// Filter expression builders for list-with-filter calls. The grammar is a
// conjunction of (labels.K = V) / (labels.K != V) clauses, optionally
// combined with "OR -labels.K:*" to also match resources that are missing
// the label entirely.

// LabelEquals returns a clause matching resources whose label key equals value.
func LabelEquals(key, value string) string {
	return fmt.Sprintf("(labels.%s = %s)", key, value)
}

// AllOf joins clauses into a conjunction.
func AllOf(clauses ...string) string {
	return strings.Join(clauses, " AND ")
}

// LabelNotIn returns an expression matching resources whose label key is
// set to none of the given values, or is not set at all.
func LabelNotIn(key string, values []string) string {
	clauses := make([]string, len(values))
	for i, v := range values {
		clauses[i] = fmt.Sprintf("(labels.%s != %s)", key, v)
	}
	missing := fmt.Sprintf("-labels.%s:*", key)
	if len(clauses) == 0 {
		return missing
	}
	return fmt.Sprintf("%s OR %s", strings.Join(clauses, " AND "), missing)
}
