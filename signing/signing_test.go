package signing

import (
	"testing"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	signer, err := GenerateSigner()
	if err != nil {
		t.Fatalf("GenerateSigner() error = %v", err)
	}

	message := []byte("identity:1700000000:starRegistry")
	signature := signer.Sign(message)

	verifier := Ed25519Verifier{}
	if !verifier.Verify(message, signer.Identity(), signature) {
		t.Error("signature from the identity's own key should verify")
	}
	if verifier.Verify([]byte("different message"), signer.Identity(), signature) {
		t.Error("signature over another message should not verify")
	}

	other, err := GenerateSigner()
	if err != nil {
		t.Fatalf("GenerateSigner() error = %v", err)
	}
	if verifier.Verify(message, other.Identity(), signature) {
		t.Error("signature should not verify against another identity")
	}
}

func TestVerifyRejectsGarbageInputs(t *testing.T) {
	signer, err := GenerateSigner()
	if err != nil {
		t.Fatalf("GenerateSigner() error = %v", err)
	}
	message := []byte("msg")
	signature := signer.Sign(message)
	verifier := Ed25519Verifier{}

	tests := []struct {
		name      string
		identity  string
		signature string
	}{
		{"identity not base58", "0OIl", signature},
		{"identity wrong length", "abc", signature},
		{"signature not base58", signer.Identity(), "0OIl"},
		{"empty identity", "", signature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if verifier.Verify(message, tt.identity, tt.signature) {
				t.Error("Verify() = true, want false")
			}
		})
	}
}

func TestNewSignerSeedHandling(t *testing.T) {
	if _, err := NewSigner(make([]byte, 16)); err != ErrUnsupportedKey {
		t.Errorf("NewSigner(short seed) error = %v, want ErrUnsupportedKey", err)
	}

	seed := make([]byte, 32)
	a, err := NewSigner(seed)
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}
	b, err := NewSigner(seed)
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}
	if a.Identity() != b.Identity() {
		t.Error("same seed must derive the same identity")
	}
}
