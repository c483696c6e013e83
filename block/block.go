package block

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"starchain/common"
	"starchain/jsonx"
)

// GenesisMarker is the default payload of the block at position 0.
const GenesisMarker = "Genesis Block"

// Star is the registered celestial object. Coordinates stay strings so the
// payload round-trips exactly what the claimant submitted.
type Star struct {
	RA    string `json:"ra"`
	Dec   string `json:"dec"`
	Story string `json:"story"`
}

// StarRecord binds a star to the identity that proved ownership of it.
type StarRecord struct {
	Star  Star   `json:"star"`
	Owner string `json:"owner"`
}

// Block is one record of the chain. A block starts unsealed, carrying only
// its payload; Seal assigns the chain-linkage fields and the content hash.
// After sealing, no field changes again.
type Block struct {
	Position  uint64   // dense from 0, assigned at seal
	Payload   []byte   // genesis marker or encoded StarRecord
	Timestamp int64    // unix seconds, assigned at seal
	PrevHash  [32]byte // content hash of the predecessor, zero for genesis
	Hash      [32]byte // content hash over all other fields, set once at seal
}

// New returns an unsealed block holding payload.
func New(payload []byte) *Block {
	return &Block{Payload: payload}
}

// NewStarBlock returns an unsealed block whose payload encodes a StarRecord.
func NewStarBlock(star Star, owner string) (*Block, error) {
	payload, err := jsonx.Marshal(StarRecord{Star: star, Owner: owner})
	if err != nil {
		return nil, fmt.Errorf("failed to encode star record: %w", err)
	}
	return New(payload), nil
}

// Seal finalizes the chain-linkage fields and computes the content hash.
// The hash covers the fully-populated block, so it is computed last.
func (b *Block) Seal(position uint64, prevHash [32]byte, now int64) {
	b.Position = position
	b.PrevHash = prevHash
	b.Timestamp = now
	b.Hash = b.ComputeHash()
}

// Sealed reports whether the content hash has been assigned.
func (b *Block) Sealed() bool {
	return b.Hash != [32]byte{}
}

// ComputeHash digests the block's current field values, excluding Hash
// itself. The validator recomputes this against the stored hash to detect
// tampering.
func (b *Block) ComputeHash() [32]byte {
	h := sha256.New()
	buf := make([]byte, 8)
	// Position
	binary.BigEndian.PutUint64(buf, b.Position)
	h.Write(buf)
	// Timestamp
	binary.BigEndian.PutUint64(buf, uint64(b.Timestamp))
	h.Write(buf)
	// PrevHash
	h.Write(b.PrevHash[:])
	// Payload, length-framed
	binary.BigEndian.PutUint64(buf, uint64(len(b.Payload)))
	h.Write(buf)
	h.Write(b.Payload)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DecodeStarRecord decodes the payload as a StarRecord. The genesis payload
// is a plain marker and does not decode.
func (b *Block) DecodeStarRecord() (*StarRecord, error) {
	var record StarRecord
	if err := jsonx.Unmarshal(b.Payload, &record); err != nil {
		return nil, fmt.Errorf("failed to decode star record at position %d: %w", b.Position, err)
	}
	return &record, nil
}

// HashString returns the base58 display form of the content hash.
func (b *Block) HashString() string {
	return common.EncodeBytesToBase58(b.Hash[:])
}

func (b *Block) String() string {
	return fmt.Sprintf("block %s at position %d", common.ShortBase58(b.Hash[:]), b.Position)
}
