package finbook

import (
	"encoding/json"
	"fmt"
	"io"
)

// The snapshot is persisted as a single JSON document holding the seven
// named collections. Dates are ISO-8601 strings and amounts are decimal
// strings, so the file stays human-readable and diff-friendly.

// EncodeSnapshot writes the snapshot as indented JSON.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot and checks its invariants. Any violation
// (malformed JSON, duplicate ids, negative magnitudes) is reported as an
// error so the caller can fail over to sample data.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &s, nil
}
