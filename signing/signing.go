package signing

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"

	"starchain/common"
)

var ErrUnsupportedKey = errors.New("signing: unsupported private key length")

// Verifier is the signature-verification capability consumed by the
// ownership gate. Identity and signature travel base58-encoded.
type Verifier interface {
	Verify(message []byte, identity string, signature string) bool
}

// Ed25519Verifier verifies base58-encoded ed25519 identities and signatures.
type Ed25519Verifier struct{}

func (Ed25519Verifier) Verify(message []byte, identity string, signature string) bool {
	pubKey, err := common.DecodeBase58ToBytes(identity)
	if err != nil || len(pubKey) != ed25519.PublicKeySize {
		return false
	}
	sig, err := common.DecodeBase58ToBytes(signature)
	if err != nil {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey), message, sig)
}

// Signer holds an ed25519 key pair for clients that sign challenges; the
// CLI demo and the tests use it. It is not a wallet.
type Signer struct {
	privKey ed25519.PrivateKey
}

// NewSigner builds a signer from a 32-byte seed.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, ErrUnsupportedKey
	}
	return &Signer{privKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// GenerateSigner mints a fresh random key pair.
func GenerateSigner() (*Signer, error) {
	_, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Signer{privKey: privKey}, nil
}

// Identity returns the base58-encoded public key.
func (s *Signer) Identity() string {
	return common.EncodeBytesToBase58(s.privKey.Public().(ed25519.PublicKey))
}

// Sign returns the base58-encoded signature over message.
func (s *Signer) Sign(message []byte) string {
	return common.EncodeBytesToBase58(ed25519.Sign(s.privKey, message))
}

// Seed returns the private seed, for the CLI to print once at keygen.
func (s *Signer) Seed() []byte {
	return s.privKey.Seed()
}
