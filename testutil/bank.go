package testutil

import (
	"context"
	"sync"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/issuance-control/cosmos/types"
)

var (
	_ types.BankKeeper    = (*MockBankKeeper)(nil)
	_ types.AccountKeeper = MockAccountKeeper{}
)

// MockBankKeeper keeps balances in memory
type MockBankKeeper struct {
	mu       sync.Mutex
	balances map[string]sdk.Coins
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		balances: make(map[string]sdk.Coins),
	}
}

// Fund credits addr with coins out of thin air
func (m *MockBankKeeper) Fund(addr sdk.AccAddress, coins ...sdk.Coin) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

func (m *MockBankKeeper) GetAllBalances(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.balances[addr.String()]
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.send(authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (m *MockBankKeeper) send(from, to sdk.AccAddress, amt sdk.Coins) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	balance := m.balances[from.String()]
	remaining, negative := balance.SafeSub(amt...)
	if negative {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", balance, amt)
	}

	m.balances[from.String()] = remaining
	m.balances[to.String()] = m.balances[to.String()].Add(amt...)
	return nil
}

// MockAccountKeeper resolves module account addresses for a fixed set of modules
type MockAccountKeeper struct {
	modules map[string]sdk.AccAddress
}

func NewMockAccountKeeper(moduleNames ...string) MockAccountKeeper {
	modules := make(map[string]sdk.AccAddress, len(moduleNames))
	for _, name := range moduleNames {
		modules[name] = authtypes.NewModuleAddress(name)
	}
	return MockAccountKeeper{modules: modules}
}

func (m MockAccountKeeper) GetModuleAddress(moduleName string) sdk.AccAddress {
	return m.modules[moduleName]
}
