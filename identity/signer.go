// Package identity implements the authenticated-caller collaborator spec §1
// assumes ("Identity/signer"), grounded on the teacher's use of
// go-ethereum's secp256k1 primitives for signature verification
// (consensus/potso/evidence.ValidateEvidence).
package identity

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/houstonswap/launchpad/core/types"
)

// ErrInvalidSignature is returned when a signature fails to recover to the
// claimed address.
var ErrInvalidSignature = errors.New("identity: signature does not match claimed address")

// Signer authenticates a caller for a single entry-point invocation,
// producing the Address the core's admin-gating checks compare against.
type Signer interface {
	Address() types.Address
	Sign(digest [32]byte) ([]byte, error)
}

// ECDSASigner is a Signer backed by a secp256k1 private key, the same curve
// and recovery scheme the teacher's evidence package verifies against.
type ECDSASigner struct {
	key  *ecdsa.PrivateKey
	addr types.Address
}

// NewECDSASigner derives an ECDSASigner's address from key.
func NewECDSASigner(key *ecdsa.PrivateKey) *ECDSASigner {
	ethAddr := ethcrypto.PubkeyToAddress(key.PublicKey)
	var addr types.Address
	copy(addr[:], ethAddr[:])
	return &ECDSASigner{key: key, addr: addr}
}

// Address implements Signer.
func (s *ECDSASigner) Address() types.Address { return s.addr }

// Sign implements Signer, returning a 65-byte [R || S || V] signature over
// digest.
func (s *ECDSASigner) Sign(digest [32]byte) ([]byte, error) {
	return ethcrypto.Sign(digest[:], s.key)
}

// VerifySignature recovers the signer address from sig over digest and
// reports whether it matches claimed.
func VerifySignature(digest [32]byte, sig []byte, claimed types.Address) error {
	if len(sig) != 65 {
		return fmt.Errorf("identity: signature must be 65 bytes, got %d", len(sig))
	}
	pubKey, err := ethcrypto.SigToPub(digest[:], sig)
	if err != nil {
		return fmt.Errorf("identity: recover signer: %w", err)
	}
	recovered := ethcrypto.PubkeyToAddress(*pubKey)
	var want types.Address
	copy(want[:], recovered[:])
	if want != claimed {
		return ErrInvalidSignature
	}
	return nil
}
