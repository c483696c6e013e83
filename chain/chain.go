package chain

import (
	"fmt"
	"sync"

	"starchain/block"
	"starchain/errors"
	"starchain/logx"
	"starchain/monitoring"
	"starchain/store"
	"starchain/utils"
)

// Chain is the append engine over a ChainStore. All writers go through
// Append, which runs the read-height, seal, push sequence as one atomic unit
// behind mu; readers go straight to the store.
type Chain struct {
	mu    sync.Mutex
	store *store.ChainStore
	now   func() int64
}

// New builds a chain holding only the sealed genesis block. The genesis
// payload is configurable; block.GenesisMarker is the default.
func New(genesisPayload []byte) (*Chain, error) {
	if len(genesisPayload) == 0 {
		genesisPayload = []byte(block.GenesisMarker)
	}
	c := &Chain{
		store: store.NewChainStore(),
		now:   utils.NowUnix,
	}
	genesis, err := c.Append(block.New(genesisPayload))
	if err != nil {
		return nil, err
	}
	logx.Info("CHAIN", "Initialized chain with genesis ", genesis.String())
	return c, nil
}

// Append seals the unsealed block against the current tip and pushes it.
// On success the block's position is exactly old height + 1 and the height
// advanced by exactly 1; on failure the store is untouched.
func (c *Chain) Append(b *block.Block) (*block.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b == nil || b.Sealed() {
		return nil, errors.NewError(errors.ErrCodeAppendFailure, errors.ErrMsgAppendFailure)
	}

	height := c.store.Height()
	var prevHash [32]byte
	if height >= 0 {
		// Link against the stored hash of the current tip.
		prevHash = c.store.Tip().Hash
	}

	b.Seal(uint64(height+1), prevHash, c.now())
	if !b.Sealed() {
		// Hash computation yielded no value; leave the store unchanged.
		return nil, errors.NewError(errors.ErrCodeAppendFailure, errors.ErrMsgAppendFailure)
	}
	if err := c.store.Push(b); err != nil {
		logx.Error("CHAIN", "Append rejected by store: ", err)
		return nil, errors.NewError(errors.ErrCodeAppendFailure, errors.ErrMsgAppendFailure)
	}

	monitoring.SetChainHeight(int64(b.Position))
	monitoring.IncreaseAppendedBlockCount()
	logx.Info("CHAIN", "Appended ", b.String())
	return b, nil
}

// Height returns the position of the last block.
func (c *Chain) Height() int64 {
	return c.store.Height()
}

// GetBlockByHash returns the block whose stored content hash equals hash.
func (c *Chain) GetBlockByHash(hash [32]byte) (*block.Block, error) {
	if b := c.store.GetByHash(hash); b != nil {
		return b, nil
	}
	return nil, errors.NewError(errors.ErrCodeBlockNotFound, errors.ErrMsgBlockNotFound)
}

// GetBlockByPosition returns the block at position, nil for positions beyond
// the height. Absence is a normal outcome, not an error.
func (c *Chain) GetBlockByPosition(position uint64) *block.Block {
	return c.store.GetByPosition(position)
}

// OwnedStar is a decoded star record with its place in the chain attached.
type OwnedStar struct {
	Position  uint64     `json:"position"`
	Timestamp int64      `json:"timestamp"`
	Star      block.Star `json:"star"`
	Owner     string     `json:"owner"`
}

// GetStarsByOwner decodes every non-genesis payload and collects the records
// owned by identity, in chain order. No match yields an empty slice.
func (c *Chain) GetStarsByOwner(identity string) []OwnedStar {
	stars := make([]OwnedStar, 0)
	for _, b := range c.store.Snapshot() {
		if b.Position == 0 {
			continue
		}
		record, err := b.DecodeStarRecord()
		if err != nil {
			logx.Warn("CHAIN", fmt.Sprintf("Undecodable payload at position %d: %v", b.Position, err))
			continue
		}
		if record.Owner != identity {
			continue
		}
		stars = append(stars, OwnedStar{
			Position:  b.Position,
			Timestamp: b.Timestamp,
			Star:      record.Star,
			Owner:     record.Owner,
		})
	}
	return stars
}

// Snapshot exposes a point-in-time copy of the sequence for validation and
// display.
func (c *Chain) Snapshot() []*block.Block {
	return c.store.Snapshot()
}
