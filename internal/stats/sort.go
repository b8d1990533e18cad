package stats

import (
	"cmp"
	"fmt"
	"slices"
)

// SortKey selects the field results are ordered by.
type SortKey string

const (
	SortDate     SortKey = "date"
	SortScore    SortKey = "score"
	SortAccuracy SortKey = "accuracy"
)

// ParseSortKey maps a user-supplied name to a SortKey. The empty string
// means SortDate.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case "":
		return SortDate, nil
	case SortDate, SortScore, SortAccuracy:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want date, score or accuracy)", s)
}

// SortResults returns a new slice of results sorted descending by key.
// The sort is stable; unknown keys sort by date.
func SortResults(results []GameResult, key SortKey) []GameResult {
	out := slices.Clone(results)
	if out == nil {
		out = []GameResult{}
	}

	var field func(GameResult) int64
	switch key {
	case SortScore:
		field = func(r GameResult) int64 { return int64(r.Score) }
	case SortAccuracy:
		field = func(r GameResult) int64 { return int64(r.Accuracy) }
	default:
		field = func(r GameResult) int64 { return r.Timestamp }
	}

	slices.SortStableFunc(out, func(a, b GameResult) int {
		return cmp.Compare(field(b), field(a))
	})
	return out
}
