package app

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/spf13/viper"

	issuancetypes "github.com/issuance-control/cosmos/x/issuance/types"
)

// EnvPrefix prefixes every environment override, e.g. ISSUANCE_UNIT_PRICE.
const EnvPrefix = "ISSUANCE"

// Config is the deployment configuration of the issuance module.
type Config struct {
	Name            string `mapstructure:"name"`
	Symbol          string `mapstructure:"symbol"`
	Denom           string `mapstructure:"denom"`
	UnitPrice       string `mapstructure:"unit_price"`
	BundlePrice     string `mapstructure:"bundle_price"`
	BundleSize      uint64 `mapstructure:"bundle_size"`
	SupplyCeiling   uint64 `mapstructure:"supply_ceiling"`
	MaxPerMint      uint64 `mapstructure:"max_per_mint"`
	AuthoritySigner string `mapstructure:"authority_signer"`
	Authority       string `mapstructure:"authority"`
}

// SetDefaults registers the default issuance parameters on v.
func SetDefaults(v *viper.Viper) {
	defaults := issuancetypes.DefaultParams()

	v.SetDefault("name", defaults.Name)
	v.SetDefault("symbol", defaults.Symbol)
	v.SetDefault("denom", defaults.Denom)
	v.SetDefault("unit_price", defaults.UnitPrice.String())
	v.SetDefault("bundle_price", defaults.BundlePrice.String())
	v.SetDefault("bundle_size", defaults.BundleSize)
	v.SetDefault("supply_ceiling", defaults.SupplyCeiling)
	v.SetDefault("max_per_mint", defaults.MaxPerMint)
	v.SetDefault("authority_signer", "")
	v.SetDefault("authority", "")
}

// LoadConfig reads defaults, then the config file at path when one is given,
// then ISSUANCE_* environment variables.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

// Params converts the configuration into validated module parameters.
func (c Config) Params() (issuancetypes.Params, error) {
	unitPrice, ok := math.NewIntFromString(c.UnitPrice)
	if !ok {
		return issuancetypes.Params{}, errorsmod.Wrapf(issuancetypes.ErrInvalidParams, "unit price %q is not an integer", c.UnitPrice)
	}

	bundlePrice, ok := math.NewIntFromString(c.BundlePrice)
	if !ok {
		return issuancetypes.Params{}, errorsmod.Wrapf(issuancetypes.ErrInvalidParams, "bundle price %q is not an integer", c.BundlePrice)
	}

	params := issuancetypes.Params{
		Name:            c.Name,
		Symbol:          c.Symbol,
		Denom:           c.Denom,
		UnitPrice:       unitPrice,
		BundlePrice:     bundlePrice,
		BundleSize:      c.BundleSize,
		SupplyCeiling:   c.SupplyCeiling,
		MaxPerMint:      c.MaxPerMint,
		AuthoritySigner: c.AuthoritySigner,
		Authority:       c.Authority,
	}

	if err := params.Validate(); err != nil {
		return issuancetypes.Params{}, err
	}

	return params, nil
}
