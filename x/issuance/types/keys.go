package types

import (
	"math"

	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "issuance"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

const (
	// FirstUnitID is the ID handed out by the first allocation.
	FirstUnitID uint64 = 1

	// MaxLastID is the largest value the counter can be overridden to.
	MaxLastID uint64 = math.MaxUint64 - 1
)

// Store key prefixes
var (
	// ParamsKey stores the immutable issuance parameters
	ParamsKey = collections.NewPrefix(0x01)

	// NextIDKey stores the supply counter
	NextIDKey = collections.NewPrefix(0x02)

	// ConsumedAuthorizationKeyPrefix indexes redeemed authorization fingerprints
	ConsumedAuthorizationKeyPrefix = collections.NewPrefix(0x03)

	// BundleRedeemerKeyPrefix indexes addresses that bought a bundle
	BundleRedeemerKeyPrefix = collections.NewPrefix(0x04)

	// UnitOwnerKeyPrefix maps unit ID to owner
	UnitOwnerKeyPrefix = collections.NewPrefix(0x05)

	// UnitBalanceKeyPrefix maps owner to number of units held
	UnitBalanceKeyPrefix = collections.NewPrefix(0x06)
)
