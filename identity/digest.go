package identity

import ethcrypto "github.com/ethereum/go-ethereum/crypto"

// Digest hashes an arbitrary entry-point payload (e.g. a canonical encoding
// of "claim(pool_id, amount, to)") into the 32-byte digest ECDSASigner.Sign
// and VerifySignature operate on, mirroring the teacher's
// Evidence.SigningDigest helper.
func Digest(payload []byte) [32]byte {
	hash := ethcrypto.Keccak256Hash(payload)
	return [32]byte(hash)
}
