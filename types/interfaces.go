package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected interface for the bank module
type BankKeeper interface {
	GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// AccountKeeper defines the expected interface for the account module
type AccountKeeper interface {
	GetModuleAddress(moduleName string) sdk.AccAddress
}

// UnitLedger is the ownership registry units are issued into.
// IssueUnit is called at most once per ID.
type UnitLedger interface {
	IssueUnit(ctx context.Context, id uint64, recipient sdk.AccAddress) error
	OwnerOf(ctx context.Context, id uint64) (sdk.AccAddress, error)
	BalanceOf(ctx context.Context, owner sdk.AccAddress) (uint64, error)
	Units(ctx context.Context) ([]Unit, error)
}

// AuthorizationVerifier computes authorization fingerprints and recovers the
// identity that signed one.
type AuthorizationVerifier interface {
	// Fingerprint must encode recipient, amount and nonce in exactly that order.
	Fingerprint(recipient sdk.AccAddress, amount uint64, nonce math.Uint) []byte
	// RecoverSigner returns the hex address of the key that produced signature
	// over fingerprint.
	RecoverSigner(fingerprint, signature []byte) (string, error)
}
