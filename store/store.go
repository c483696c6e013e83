package store

import (
	"fmt"
	"sync"

	"starchain/block"
)

// ChainStore owns the ordered sequence of sealed blocks. Blocks are never
// mutated or removed after Push; readers either hit the lock-guarded
// accessors or take a Snapshot.
type ChainStore struct {
	mu     sync.RWMutex
	blocks []*block.Block
	byHash map[[32]byte]*block.Block
}

func NewChainStore() *ChainStore {
	return &ChainStore{
		blocks: make([]*block.Block, 0),
		byHash: make(map[[32]byte]*block.Block),
	}
}

// Height returns the position of the last block, -1 when the store is empty.
func (s *ChainStore) Height() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.blocks)) - 1
}

// Tip returns the last block, nil when the store is empty.
func (s *ChainStore) Tip() *block.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.blocks) == 0 {
		return nil
	}
	return s.blocks[len(s.blocks)-1]
}

// Push appends a sealed block. The block's position must be exactly the next
// free position; Push rejects anything else rather than papering over a
// bookkeeping defect upstream.
func (s *ChainStore) Push(b *block.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !b.Sealed() {
		return fmt.Errorf("refusing to store unsealed block at position %d", b.Position)
	}
	if b.Position != uint64(len(s.blocks)) {
		return fmt.Errorf("position %d does not extend chain of length %d", b.Position, len(s.blocks))
	}
	if _, exists := s.byHash[b.Hash]; exists {
		return fmt.Errorf("block %s already stored", b.HashString())
	}
	s.blocks = append(s.blocks, b)
	s.byHash[b.Hash] = b
	return nil
}

// GetByHash returns the block with the given stored content hash, nil when
// no block matches.
func (s *ChainStore) GetByHash(hash [32]byte) *block.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byHash[hash]
}

// GetByPosition returns the block at position, nil for positions beyond the
// height. Absence is a normal outcome, not an error.
func (s *ChainStore) GetByPosition(position uint64) *block.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if position >= uint64(len(s.blocks)) {
		return nil
	}
	return s.blocks[position]
}

// Snapshot returns a point-in-time copy of the sequence. The blocks
// themselves are shared; they are immutable once sealed.
func (s *ChainStore) Snapshot() []*block.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*block.Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}
