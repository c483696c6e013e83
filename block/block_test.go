package block

import (
	"testing"
)

func TestSealAssignsLinkageFields(t *testing.T) {
	b := New([]byte("payload"))
	if b.Sealed() {
		t.Fatal("new block should be unsealed")
	}

	var prev [32]byte
	prev[0] = 0xAB
	b.Seal(7, prev, 1700000000)

	if !b.Sealed() {
		t.Fatal("sealed block should report sealed")
	}
	if b.Position != 7 {
		t.Errorf("Position = %d, want 7", b.Position)
	}
	if b.Timestamp != 1700000000 {
		t.Errorf("Timestamp = %d, want 1700000000", b.Timestamp)
	}
	if b.PrevHash != prev {
		t.Error("PrevHash not assigned at seal")
	}
	if b.Hash != b.ComputeHash() {
		t.Error("stored hash does not match recomputed hash after seal")
	}
}

func TestComputeHashCoversEveryField(t *testing.T) {
	base := New([]byte("payload"))
	base.Seal(1, [32]byte{}, 1700000000)

	tests := []struct {
		name   string
		mutate func(b *Block)
	}{
		{"position", func(b *Block) { b.Position = 2 }},
		{"timestamp", func(b *Block) { b.Timestamp = 1700000001 }},
		{"prev hash", func(b *Block) { b.PrevHash[0] = 0x01 }},
		{"payload", func(b *Block) { b.Payload = []byte("other") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copied := *base
			tt.mutate(&copied)
			if copied.ComputeHash() == base.Hash {
				t.Errorf("hash unchanged after mutating %s", tt.name)
			}
		})
	}
}

func TestStarRecordRoundTrip(t *testing.T) {
	star := Star{RA: "16h 29m 1.0s", Dec: "-26d 29m 24.9s", Story: "Antares"}
	b, err := NewStarBlock(star, "owner-identity")
	if err != nil {
		t.Fatalf("NewStarBlock() error = %v", err)
	}

	record, err := b.DecodeStarRecord()
	if err != nil {
		t.Fatalf("DecodeStarRecord() error = %v", err)
	}
	if record.Owner != "owner-identity" {
		t.Errorf("Owner = %q, want %q", record.Owner, "owner-identity")
	}
	if record.Star != star {
		t.Errorf("Star = %+v, want %+v", record.Star, star)
	}
}

func TestGenesisPayloadDoesNotDecode(t *testing.T) {
	b := New([]byte(GenesisMarker))
	b.Seal(0, [32]byte{}, 1700000000)
	if _, err := b.DecodeStarRecord(); err == nil {
		t.Error("genesis marker should not decode as a star record")
	}
}
