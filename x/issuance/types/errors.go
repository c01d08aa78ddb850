package types

import (
	"cosmossdk.io/errors"
)

// x/issuance module sentinel errors
var (
	ErrSupplyExceeded        = errors.Register(ModuleName, 2, "token limit reached")
	ErrPaymentMismatch       = errors.Register(ModuleName, 3, "payment does not match price")
	ErrAuthorizationReused   = errors.Register(ModuleName, 4, "authorization already used")
	ErrInvalidAuthorization  = errors.Register(ModuleName, 5, "invalid authorization signature")
	ErrBundleAlreadyRedeemed = errors.Register(ModuleName, 6, "already minted a set")
	ErrUnauthorized          = errors.Register(ModuleName, 7, "unauthorized operation")
	ErrInvalidAmount         = errors.Register(ModuleName, 8, "incorrect amount")
	ErrUnitAlreadyIssued     = errors.Register(ModuleName, 9, "unit already issued")
	ErrUnitNotFound          = errors.Register(ModuleName, 10, "unit not found")
	ErrInvalidParams         = errors.Register(ModuleName, 11, "invalid params")
	ErrInvalidRecipient      = errors.Register(ModuleName, 12, "invalid recipient")
	ErrInvalidGenesis        = errors.Register(ModuleName, 13, "invalid genesis state")
)
