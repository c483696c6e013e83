package chain

import (
	"fmt"

	"starchain/logx"
	"starchain/monitoring"
)

type ViolationKind string

const (
	// HashMismatch: the block's recomputed content hash differs from the
	// stored one, meaning a field changed after seal.
	HashMismatch ViolationKind = "hash_mismatch"
	// BrokenLink: the block's previous-hash does not equal the stored
	// content hash of its predecessor in chain order.
	BrokenLink ViolationKind = "broken_link"
)

// Violation is one structural defect found by Validate. Violations are data,
// never errors.
type Violation struct {
	Kind      ViolationKind `json:"kind"`
	Position  uint64        `json:"position"`
	BlockHash string        `json:"block_hash"`
	Detail    string        `json:"detail"`
}

// Validate walks a point-in-time snapshot of the full sequence and reports
// every structural defect. An empty slice is the sole success signal; the
// walk never aborts early, so a caller sees the complete tamper report in
// one call.
func (c *Chain) Validate() []Violation {
	blocks := c.store.Snapshot()
	violations := make([]Violation, 0)

	for i, b := range blocks {
		if recomputed := b.ComputeHash(); recomputed != b.Hash {
			violations = append(violations, Violation{
				Kind:      HashMismatch,
				Position:  b.Position,
				BlockHash: b.HashString(),
				Detail:    fmt.Sprintf("stored hash does not match recomputed hash at position %d", b.Position),
			})
		}
		if i == 0 {
			continue
		}
		if b.PrevHash != blocks[i-1].Hash {
			violations = append(violations, Violation{
				Kind:      BrokenLink,
				Position:  b.Position,
				BlockHash: b.HashString(),
				Detail:    fmt.Sprintf("previous hash does not match block at position %d", blocks[i-1].Position),
			})
		}
	}

	monitoring.IncreaseValidationRunCount()
	if len(violations) > 0 {
		monitoring.RecordViolations(len(violations))
		logx.Warn("CHAIN", fmt.Sprintf("Validation found %d violations over %d blocks", len(violations), len(blocks)))
	}
	return violations
}
