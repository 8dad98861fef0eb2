package identity_test

import (
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/houstonswap/launchpad/identity"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)

	signer := identity.NewECDSASigner(key)
	digest := identity.Digest([]byte("claim:pool=0,amount=1000"))

	sig, err := signer.Sign(digest)
	require.NoError(t, err)

	require.NoError(t, identity.VerifySignature(digest, sig, signer.Address()))
}

func TestVerifyRejectsWrongClaimedAddress(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	other, err := ethcrypto.GenerateKey()
	require.NoError(t, err)

	signer := identity.NewECDSASigner(key)
	digest := identity.Digest([]byte("claim:pool=0,amount=1000"))
	sig, err := signer.Sign(digest)
	require.NoError(t, err)

	err = identity.VerifySignature(digest, sig, identity.NewECDSASigner(other).Address())
	require.ErrorIs(t, err, identity.ErrInvalidSignature)
}
