package signing_test

import (
	"encoding/hex"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/issuance-control/cosmos/x/issuance/signing"
)

func TestFingerprintMatchesPackedEncoding(t *testing.T) {
	recipient := sdk.AccAddress(common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8").Bytes())

	packed, err := hex.DecodeString(
		"70997970c51812dc3a010c7d01b50e0d17dc79c8" +
			"0000000000000000000000000000000000000000000000000000000000000003" +
			"0000000000000000000000000000000000000000000000000000000000000007",
	)
	require.NoError(t, err)

	got := signing.Fingerprint(recipient, 3, math.NewUint(7))
	require.Equal(t, crypto.Keccak256(packed), got)
	require.Len(t, got, signing.FingerprintLength)
}

func TestFingerprintDistinguishesFields(t *testing.T) {
	a := sdk.AccAddress([]byte("recipient_a_________"))
	b := sdk.AccAddress([]byte("recipient_b_________"))
	base := signing.Fingerprint(a, 3, math.NewUint(1))

	require.NotEqual(t, base, signing.Fingerprint(b, 3, math.NewUint(1)))
	require.NotEqual(t, base, signing.Fingerprint(a, 2, math.NewUint(1)))
	require.NotEqual(t, base, signing.Fingerprint(a, 3, math.NewUint(2)))
	require.Equal(t, base, signing.Fingerprint(a, 3, math.NewUint(1)))
}

func TestSignAndRecover(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	verifier := signing.NewVerifier()
	recipient := sdk.AccAddress([]byte("recipient___________"))
	fp := verifier.Fingerprint(recipient, 3, math.NewUint(1))

	sig, err := signing.Sign(key, fp)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	require.Contains(t, []byte{27, 28}, sig[64])

	signer, err := verifier.RecoverSigner(fp, sig)
	require.NoError(t, err)
	require.Equal(t, signing.Address(key), signer)

	// 0/1 recovery ids are accepted as well
	sig[64] -= 27
	signer, err = verifier.RecoverSigner(fp, sig)
	require.NoError(t, err)
	require.Equal(t, signing.Address(key), signer)
}

func TestRecoverWithOtherFingerprint(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	recipient := sdk.AccAddress([]byte("recipient___________"))
	sig, err := signing.Sign(key, signing.Fingerprint(recipient, 3, math.NewUint(1)))
	require.NoError(t, err)

	signer, err := signing.NewVerifier().RecoverSigner(signing.Fingerprint(recipient, 2, math.NewUint(1)), sig)
	if err == nil {
		require.NotEqual(t, signing.Address(key), signer)
	}
}

func TestRecoverRejectsMalformedSignatures(t *testing.T) {
	fp := make([]byte, signing.FingerprintLength)

	_, err := signing.RecoverAddress(fp, make([]byte, 64))
	require.ErrorIs(t, err, signing.ErrSignatureLength)

	sig := make([]byte, 65)
	sig[64] = 5
	_, err = signing.RecoverAddress(fp, sig)
	require.ErrorIs(t, err, signing.ErrRecoveryID)

	// zero r and s do not recover to any key
	sig[64] = 27
	_, err = signing.RecoverAddress(fp, sig)
	require.Error(t, err)
}

func TestAuthorize(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	recipient := sdk.AccAddress([]byte("recipient___________"))
	auth, err := signing.Authorize(key, recipient, 2, math.NewUint(42))
	require.NoError(t, err)
	require.Equal(t, recipient.String(), auth.Recipient)
	require.Equal(t, uint64(2), auth.Amount)
	require.True(t, auth.Nonce.Equal(math.NewUint(42)))
	require.Equal(t, signing.Fingerprint(recipient, 2, math.NewUint(42)), []byte(auth.Fingerprint))

	addr, err := signing.RecoverAddress(auth.Fingerprint, auth.Signature)
	require.NoError(t, err)
	require.Equal(t, signing.Address(key), addr.Hex())
}

func TestSignRecoverProperty(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	expected := signing.Address(key)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("recovered signer equals the signing key", prop.ForAll(
		func(raw []byte, amount uint64, nonce uint64) bool {
			fp := signing.Fingerprint(sdk.AccAddress(raw), amount, math.NewUint(nonce))
			sig, err := signing.Sign(key, fp)
			if err != nil {
				return false
			}
			addr, err := signing.RecoverAddress(fp, sig)
			return err == nil && addr.Hex() == expected
		},
		gen.SliceOfN(20, gen.UInt8()),
		gen.UInt64Range(1, 1000),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
