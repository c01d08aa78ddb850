package app

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/std"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/cosmos/cosmos-sdk/x/auth"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/cosmos-sdk/x/bank"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"

	"github.com/issuance-control/cosmos/x/issuance"
	issuancekeeper "github.com/issuance-control/cosmos/x/issuance/keeper"
	"github.com/issuance-control/cosmos/x/issuance/signing"
	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

const (
	AccountAddressPrefix = "cosmos"
	Name                 = "issuance"

	govModuleName = "gov"
)

var (
	// DefaultNodeHome default home directories for the issuance tooling
	DefaultNodeHome string

	// ModuleBasics defines the module BasicManager is in charge of setting up basic,
	// non-dependant module elements, such as codec registration
	// and genesis verification.
	ModuleBasics = module.NewBasicManager(
		auth.AppModuleBasic{},
		bank.AppModuleBasic{},
		issuance.AppModuleBasic{},
	)

	// module account permissions
	maccPerms = map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		issuancetypes.ModuleName:   nil,
	}
)

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultNodeHome = filepath.Join(userHomeDir, "."+Name)
}

// EncodingConfig bundles the codecs the keepers are built with.
type EncodingConfig struct {
	InterfaceRegistry codectypes.InterfaceRegistry
	Codec             codec.Codec
	Amino             *codec.LegacyAmino
}

// MakeEncodingConfig registers every module's types on fresh codecs.
func MakeEncodingConfig() EncodingConfig {
	interfaceRegistry := codectypes.NewInterfaceRegistry()
	legacyAmino := codec.NewLegacyAmino()

	std.RegisterInterfaces(interfaceRegistry)
	std.RegisterLegacyAminoCodec(legacyAmino)
	ModuleBasics.RegisterInterfaces(interfaceRegistry)
	ModuleBasics.RegisterLegacyAminoCodec(legacyAmino)

	return EncodingConfig{
		InterfaceRegistry: interfaceRegistry,
		Codec:             codec.NewProtoCodec(interfaceRegistry),
		Amino:             legacyAmino,
	}
}

// StoreKeys returns the KV store keys of every module the keepers use.
func StoreKeys() map[string]*storetypes.KVStoreKey {
	return storetypes.NewKVStoreKeys(
		authtypes.StoreKey,
		banktypes.StoreKey,
		issuancetypes.StoreKey,
	)
}

// Keepers holds the issuance keeper and the account and bank keepers it
// settles payments through.
type Keepers struct {
	AccountKeeper  authkeeper.AccountKeeper
	BankKeeper     bankkeeper.BaseKeeper
	IssuanceKeeper *issuancekeeper.Keeper
}

// NewKeepers wires the keepers over keys.
func NewKeepers(appCodec codec.Codec, keys map[string]*storetypes.KVStoreKey, logger log.Logger) Keepers {
	authority := authtypes.NewModuleAddress(govModuleName).String()

	accountKeeper := authkeeper.NewAccountKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		maccPerms,
		addresscodec.NewBech32Codec(AccountAddressPrefix),
		AccountAddressPrefix,
		authority,
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		accountKeeper,
		BlockedAddresses(),
		authority,
		logger,
	)

	issuanceKeeper := issuancekeeper.NewKeeper(
		runtime.NewKVStoreService(keys[issuancetypes.StoreKey]),
		bankKeeper,
		accountKeeper,
		signing.NewVerifier(),
	)

	return Keepers{
		AccountKeeper:  accountKeeper,
		BankKeeper:     bankKeeper,
		IssuanceKeeper: issuanceKeeper,
	}
}

// BlockedAddresses returns the module accounts that may not receive funds
// from users.
func BlockedAddresses() map[string]bool {
	blocked := make(map[string]bool, len(maccPerms))
	for name := range maccPerms {
		blocked[authtypes.NewModuleAddress(name).String()] = true
	}
	return blocked
}

// DefaultGenesis returns the app state of every module, with the issuance
// module configured by params.
func DefaultGenesis(cdc codec.JSONCodec, params issuancetypes.Params) (map[string]json.RawMessage, error) {
	genesis := ModuleBasics.DefaultGenesis(cdc)

	issuanceGenesis := issuancetypes.DefaultGenesisState()
	issuanceGenesis.Params = params
	if err := issuanceGenesis.Validate(); err != nil {
		return nil, err
	}

	bz, err := json.Marshal(issuanceGenesis)
	if err != nil {
		return nil, err
	}
	genesis[issuancetypes.ModuleName] = bz

	return genesis, nil
}
