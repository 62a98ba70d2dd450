// Package registry implements the PRD registry index and its upsert
// decision logic. The package is pure data manipulation - fetching and
// persisting registry.json is the caller's concern.
package registry

import (
	"bytes"
	"encoding/json"
	"time"
)

// Version is the registry schema version written on initialization.
const Version = "1"

// Entry is one published PRD in the registry index.
type Entry struct {
	ProductName string    `json:"product_name"`
	Domain      string    `json:"domain"`
	OwnerTeam   string    `json:"owner_team"`
	SourceRepo  string    `json:"source_repo"`
	PRDPath     string    `json:"prd_path"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Registry is the versioned, ordered index of published PRDs.
// Within a registry no two entries share a prd_path, and product_name is
// de-facto unique across the whole registry: the match predicate treats an
// equal product_name as the same product even when the path differs, so a
// domain rename keeps the entry's identity.
type Registry struct {
	Version string  `json:"version"`
	Items   []Entry `json:"items"`
}

// New returns a fresh, empty registry.
func New() Registry {
	return Registry{Version: Version, Items: []Entry{}}
}

// Load parses raw registry.json content. Absent or unparseable content
// yields a fresh registry; recovered reports whether non-empty content had
// to be discarded, so callers can surface the data-loss warning. Corrupt
// content is deliberately not an error - the publish flow proceeds by
// reinitializing.
func Load(raw []byte) (reg Registry, recovered bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return New(), false
	}

	var parsed Registry
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return New(), true
	}
	if parsed.Version == "" {
		parsed.Version = Version
	}
	if parsed.Items == nil {
		parsed.Items = []Entry{}
	}
	return parsed, false
}

// Marshal renders the registry as pretty-printed JSON with a trailing
// newline, the persisted registry.json format.
func Marshal(reg Registry) ([]byte, error) {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
