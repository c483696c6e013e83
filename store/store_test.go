package store

import (
	"testing"

	"starchain/block"
)

func sealedBlock(t *testing.T, position uint64, prev [32]byte) *block.Block {
	t.Helper()
	b := block.New([]byte{byte(position)})
	b.Seal(position, prev, 1700000000+int64(position))
	return b
}

func TestEmptyStoreHeight(t *testing.T) {
	s := NewChainStore()
	if h := s.Height(); h != -1 {
		t.Errorf("Height() = %d, want -1", h)
	}
	if tip := s.Tip(); tip != nil {
		t.Errorf("Tip() = %v, want nil", tip)
	}
}

func TestPushAndLookups(t *testing.T) {
	s := NewChainStore()
	b0 := sealedBlock(t, 0, [32]byte{})
	if err := s.Push(b0); err != nil {
		t.Fatalf("Push(genesis) error = %v", err)
	}
	b1 := sealedBlock(t, 1, b0.Hash)
	if err := s.Push(b1); err != nil {
		t.Fatalf("Push(b1) error = %v", err)
	}

	if h := s.Height(); h != 1 {
		t.Errorf("Height() = %d, want 1", h)
	}
	if got := s.GetByHash(b1.Hash); got != b1 {
		t.Error("GetByHash did not return the stored block")
	}
	if got := s.GetByPosition(0); got != b0 {
		t.Error("GetByPosition(0) did not return genesis")
	}
}

func TestAbsenceIsNormalOutcome(t *testing.T) {
	s := NewChainStore()
	if err := s.Push(sealedBlock(t, 0, [32]byte{})); err != nil {
		t.Fatalf("Push error = %v", err)
	}
	if got := s.GetByPosition(uint64(s.Height()) + 1); got != nil {
		t.Errorf("GetByPosition beyond height = %v, want nil", got)
	}
	var unknown [32]byte
	unknown[0] = 0xFF
	if got := s.GetByHash(unknown); got != nil {
		t.Errorf("GetByHash(unknown) = %v, want nil", got)
	}
}

func TestPushRejectsBadBlocks(t *testing.T) {
	s := NewChainStore()
	if err := s.Push(block.New([]byte("unsealed"))); err == nil {
		t.Error("Push should reject an unsealed block")
	}
	if err := s.Push(sealedBlock(t, 3, [32]byte{})); err == nil {
		t.Error("Push should reject a position that does not extend the chain")
	}
	b0 := sealedBlock(t, 0, [32]byte{})
	if err := s.Push(b0); err != nil {
		t.Fatalf("Push error = %v", err)
	}
	dup := *b0
	dup.Position = 1
	dup.Hash = b0.Hash
	if err := s.Push(&dup); err == nil {
		t.Error("Push should reject a duplicate hash")
	}
}

func TestSnapshotIsPointInTime(t *testing.T) {
	s := NewChainStore()
	b0 := sealedBlock(t, 0, [32]byte{})
	if err := s.Push(b0); err != nil {
		t.Fatalf("Push error = %v", err)
	}
	snap := s.Snapshot()
	if err := s.Push(sealedBlock(t, 1, b0.Hash)); err != nil {
		t.Fatalf("Push error = %v", err)
	}
	if len(snap) != 1 {
		t.Errorf("snapshot length = %d, want 1 after later push", len(snap))
	}
}
