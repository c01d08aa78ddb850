// Package signing implements the authorization scheme shared by the issuance
// keeper and the backend that grants signed mints.
//
// A fingerprint is keccak256(recipient ‖ uint256(amount) ‖ uint256(nonce)), the
// same bytes solidity produces for abi.encodePacked(address, uint256, uint256).
// The backend signs the fingerprint as an EIP-191 personal message, so wallets
// and libraries that expose personal_sign can issue authorizations directly.
// The field order is a compatibility contract: changing it invalidates every
// authorization ever issued.
package signing

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/issuance-control/cosmos/types"
)

const (
	// FingerprintLength is the size of a keccak256 digest.
	FingerprintLength = crypto.DigestLength

	signatureLength = crypto.SignatureLength
	recoveryIDIndex = crypto.RecoveryIDOffset
	legacyVOffset   = 27
	uint256Length   = 32
)

var (
	ErrSignatureLength = errors.New("invalid signature length")
	ErrRecoveryID      = errors.New("invalid signature recovery id")
)

var _ types.AuthorizationVerifier = Verifier{}

// Verifier recovers authorization signers with secp256k1 public key recovery.
type Verifier struct{}

// NewVerifier returns the verifier used by the issuance keeper.
func NewVerifier() Verifier {
	return Verifier{}
}

// Fingerprint implements types.AuthorizationVerifier
func (Verifier) Fingerprint(recipient sdk.AccAddress, amount uint64, nonce math.Uint) []byte {
	return Fingerprint(recipient, amount, nonce)
}

// RecoverSigner implements types.AuthorizationVerifier
func (Verifier) RecoverSigner(fingerprint, signature []byte) (string, error) {
	addr, err := RecoverAddress(fingerprint, signature)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}

// Fingerprint packs recipient, amount and nonce and hashes them with keccak256.
func Fingerprint(recipient sdk.AccAddress, amount uint64, nonce math.Uint) []byte {
	packed := make([]byte, 0, len(recipient)+2*uint256Length)
	packed = append(packed, recipient...)
	packed = append(packed, common.LeftPadBytes(math.NewUint(amount).BigInt().Bytes(), uint256Length)...)
	packed = append(packed, common.LeftPadBytes(uint256Bytes(nonce), uint256Length)...)
	return crypto.Keccak256(packed)
}

// an unset nonce encodes as zero
func uint256Bytes(u math.Uint) []byte {
	if u.IsNil() {
		return nil
	}
	return u.BigInt().Bytes()
}

// RecoverAddress returns the address whose key produced signature over the
// personal-message hash of fingerprint. Both 0/1 and 27/28 recovery ids are
// accepted.
func RecoverAddress(fingerprint, signature []byte) (common.Address, error) {
	if len(signature) != signatureLength {
		return common.Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrSignatureLength, signatureLength, len(signature))
	}

	sig := make([]byte, signatureLength)
	copy(sig, signature)

	switch v := sig[recoveryIDIndex]; {
	case v == legacyVOffset || v == legacyVOffset+1:
		sig[recoveryIDIndex] -= legacyVOffset
	case v > 1:
		return common.Address{}, fmt.Errorf("%w: %d", ErrRecoveryID, v)
	}

	pubKey, err := crypto.SigToPub(accounts.TextHash(fingerprint), sig)
	if err != nil {
		return common.Address{}, err
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}

// Sign produces the authorization signature for fingerprint with key, in the
// 27/28 recovery id form personal_sign returns.
func Sign(key *ecdsa.PrivateKey, fingerprint []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(fingerprint), key)
	if err != nil {
		return nil, err
	}

	sig[recoveryIDIndex] += legacyVOffset
	return sig, nil
}

// Authorize builds a complete authorization for recipient.
func Authorize(key *ecdsa.PrivateKey, recipient sdk.AccAddress, amount uint64, nonce math.Uint) (types.Authorization, error) {
	fingerprint := Fingerprint(recipient, amount, nonce)

	sig, err := Sign(key, fingerprint)
	if err != nil {
		return types.Authorization{}, err
	}

	return types.Authorization{
		Recipient:   recipient.String(),
		Amount:      amount,
		Nonce:       nonce,
		Fingerprint: fingerprint,
		Signature:   sig,
	}, nil
}

// Address returns the hex address that identifies key as an authority signer.
func Address(key *ecdsa.PrivateKey) string {
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}
