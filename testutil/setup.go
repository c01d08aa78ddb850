package testutil

import (
	"math/rand"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PropertyTestConfig holds configuration for property-based tests
type PropertyTestConfig struct {
	MinSuccessfulTests int
	MaxDiscardRatio    float64
	Workers            int
	Rng                *rand.Rand
}

// DefaultPropertyTestConfig returns default configuration for property tests
func DefaultPropertyTestConfig() *PropertyTestConfig {
	return &PropertyTestConfig{
		MinSuccessfulTests: 100,
		MaxDiscardRatio:    5.0,
		Workers:            1,
		Rng:                rand.New(gopter.NewLockedSource(time.Now().UnixNano())),
	}
}

// NewPropertyTester creates a new property tester with default configuration
func NewPropertyTester(t *testing.T) *gopter.Properties {
	config := DefaultPropertyTestConfig()
	parameters := &gopter.TestParameters{
		MinSuccessfulTests: config.MinSuccessfulTests,
		MaxDiscardRatio:    config.MaxDiscardRatio,
		Workers:            config.Workers,
		Rng:                config.Rng,
	}
	return gopter.NewProperties(parameters)
}

// Generators for property-based testing

// GenAddress generates 20 byte account addresses
func GenAddress() gopter.Gen {
	return gen.SliceOfN(20, gen.UInt8()).Map(func(bytes []byte) sdk.AccAddress {
		return sdk.AccAddress(bytes)
	})
}

// GenDistinctAddresses generates n different account addresses
func GenDistinctAddresses(n int) gopter.Gen {
	return gen.SliceOfN(n, GenAddress()).SuchThat(func(addrs []sdk.AccAddress) bool {
		seen := make(map[string]bool, len(addrs))
		for _, addr := range addrs {
			if seen[addr.String()] {
				return false
			}
			seen[addr.String()] = true
		}
		return true
	})
}

// GenCount generates unit counts in [1, max]
func GenCount(max uint64) gopter.Gen {
	return gen.UInt64Range(1, max)
}

// GenCounts generates a sequence of unit requests
func GenCounts(max uint64) gopter.Gen {
	return gen.SliceOfN(12, GenCount(max))
}

// GenNonce generates authorization nonces across the full uint64 range
func GenNonce() gopter.Gen {
	return gen.UInt64().Map(func(n uint64) math.Uint {
		return math.NewUint(n)
	})
}
