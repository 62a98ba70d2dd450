package registry

import "time"

// Op classifies the outcome of an upsert.
type Op int

const (
	// OpInsert means the candidate had no existing match and was appended.
	OpInsert Op = iota
	// OpUpdate means an existing entry was replaced in place.
	OpUpdate
)

// String returns a human-readable representation of the Op.
func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Upsert inserts or updates the candidate entry and returns the new
// registry value plus the classification. The classification and the
// mutation are one atomic decision: callers must use the returned Op for
// messaging rather than re-deriving it with a second lookup.
//
// Matching scans items in order and takes the first entry whose prd_path
// or product_name equals the candidate's. On update the candidate's
// non-zero fields win field-by-field, created_at is preserved, and
// updated_at is set to now. On insert both timestamps are set to now.
// The input registry is never mutated.
func Upsert(reg Registry, candidate Entry, now time.Time) (Registry, Op) {
	idx := match(reg, candidate)

	items := make([]Entry, len(reg.Items), len(reg.Items)+1)
	copy(items, reg.Items)

	if idx >= 0 {
		items[idx] = merge(items[idx], candidate, now)
		return Registry{Version: reg.Version, Items: items}, OpUpdate
	}

	candidate.CreatedAt = now
	candidate.UpdatedAt = now
	if candidate.Tags == nil {
		candidate.Tags = []string{}
	}
	items = append(items, candidate)
	return Registry{Version: reg.Version, Items: items}, OpInsert
}

// match returns the index of the first entry identified as the same
// product, or -1. Order is significant for reproducibility; ties are not
// expected given the uniqueness invariant.
func match(reg Registry, candidate Entry) int {
	for i, item := range reg.Items {
		if item.PRDPath == candidate.PRDPath || item.ProductName == candidate.ProductName {
			return i
		}
	}
	return -1
}

// merge overlays the candidate's non-zero fields on the old entry.
func merge(old, candidate Entry, now time.Time) Entry {
	merged := old
	if candidate.ProductName != "" {
		merged.ProductName = candidate.ProductName
	}
	if candidate.Domain != "" {
		merged.Domain = candidate.Domain
	}
	if candidate.OwnerTeam != "" {
		merged.OwnerTeam = candidate.OwnerTeam
	}
	if candidate.SourceRepo != "" {
		merged.SourceRepo = candidate.SourceRepo
	}
	if candidate.PRDPath != "" {
		merged.PRDPath = candidate.PRDPath
	}
	if len(candidate.Tags) > 0 {
		merged.Tags = candidate.Tags
	}
	merged.UpdatedAt = now
	return merged
}
