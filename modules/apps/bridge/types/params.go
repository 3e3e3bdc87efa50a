package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common"
	yaml "gopkg.in/yaml.v2"

	collcodec "cosmossdk.io/collections/codec"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/actionbridge/bridge/internal/collections"
)

// Accepted foreign destination formats.
const (
	// DestinationFormatAny accepts any non-empty destination up to MaxDestinationLength bytes.
	DestinationFormatAny = "any"
	// DestinationFormatBech32 requires a bech32 address with the configured prefix.
	DestinationFormatBech32 = "bech32"
	// DestinationFormatHex requires a 20 byte hex address (EVM style).
	DestinationFormatHex = "hex"
)

// SupportedDestinationFormats lists every accepted value of Params.DestinationFormat.
var SupportedDestinationFormats = []string{DestinationFormatAny, DestinationFormatBech32, DestinationFormatHex}

const (
	// DefaultWrappedDenom is the denom minted for TransferWrapped actions
	DefaultWrappedDenom = "wbridge"
	// DefaultAssetBridgingEnabled disables nft locking and UnfreezeAsset actions
	DefaultAssetBridgingEnabled = false
)

var _ collcodec.ValueCodec[Params] = ParamsValueCodec{}

// Params defines the configuration of the bridge module.
type Params struct {
	// NativeDenom is the local currency escrowed by Send and released by Unfreeze.
	NativeDenom string `json:"native_denom" yaml:"native_denom"`
	// WrappedDenom is minted by TransferWrapped and burned by WithdrawWrapped.
	WrappedDenom string `json:"wrapped_denom" yaml:"wrapped_denom"`
	// DestinationFormat selects how foreign destination addresses are validated.
	DestinationFormat string `json:"destination_format" yaml:"destination_format"`
	// DestinationPrefix is the bech32 human readable part for DestinationFormatBech32.
	DestinationPrefix string `json:"destination_prefix,omitempty" yaml:"destination_prefix"`
	// AssetBridgingEnabled enables LockAsset and UnfreezeAsset.
	AssetBridgingEnabled bool `json:"asset_bridging_enabled" yaml:"asset_bridging_enabled"`
}

// NewParams creates a new parameter configuration for the bridge module
func NewParams(nativeDenom, wrappedDenom, destinationFormat, destinationPrefix string, assetBridgingEnabled bool) Params {
	return Params{
		NativeDenom:          nativeDenom,
		WrappedDenom:         wrappedDenom,
		DestinationFormat:    destinationFormat,
		DestinationPrefix:    destinationPrefix,
		AssetBridgingEnabled: assetBridgingEnabled,
	}
}

// DefaultParams is the default parameter configuration for the bridge module
func DefaultParams() Params {
	return NewParams(sdk.DefaultBondDenom, DefaultWrappedDenom, DestinationFormatAny, "", DefaultAssetBridgingEnabled)
}

// Validate all bridge module parameters
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "invalid native denom: %v", err)
	}
	if err := sdk.ValidateDenom(p.WrappedDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "invalid wrapped denom: %v", err)
	}
	if p.NativeDenom == p.WrappedDenom {
		return errorsmod.Wrapf(ErrInvalidParams, "native and wrapped denom must differ, both are %s", p.NativeDenom)
	}

	if !collections.Contains(p.DestinationFormat, SupportedDestinationFormats) {
		return errorsmod.Wrapf(ErrInvalidParams, "unsupported destination format %q, expected one of %v", p.DestinationFormat, SupportedDestinationFormats)
	}
	if p.DestinationFormat == DestinationFormatBech32 && strings.TrimSpace(p.DestinationPrefix) == "" {
		return errorsmod.Wrap(ErrInvalidParams, "bech32 destination format requires a prefix")
	}

	return nil
}

// ValidateDestination checks a foreign destination address against the configured format.
func (p Params) ValidateDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return errorsmod.Wrap(ErrInvalidDestination, "destination cannot be blank")
	}
	if len(destination) > MaxDestinationLength {
		return errorsmod.Wrapf(ErrInvalidDestination, "destination must not exceed %d bytes", MaxDestinationLength)
	}

	switch p.DestinationFormat {
	case DestinationFormatBech32:
		hrp, _, err := bech32.DecodeAndConvert(destination)
		if err != nil {
			return errorsmod.Wrapf(ErrInvalidDestination, "%s: %v", destination, err)
		}
		if hrp != p.DestinationPrefix {
			return errorsmod.Wrapf(ErrInvalidDestination, "expected prefix %s, got %s", p.DestinationPrefix, hrp)
		}
	case DestinationFormatHex:
		if !common.IsHexAddress(destination) {
			return errorsmod.Wrapf(ErrInvalidDestination, "%s is not a hex address", destination)
		}
	}

	return nil
}

// String implements fmt.Stringer.
func (p Params) String() string {
	out, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Sprintf("%#v", p)
	}
	return string(out)
}

// Encode implements scale.Encodeable.
func (p Params) Encode(encoder scale.Encoder) error {
	for _, field := range []string{p.NativeDenom, p.WrappedDenom, p.DestinationFormat, p.DestinationPrefix} {
		if err := encoder.Encode(field); err != nil {
			return err
		}
	}
	return encoder.Encode(p.AssetBridgingEnabled)
}

// Decode implements scale.Decodeable.
func (p *Params) Decode(decoder scale.Decoder) error {
	for _, field := range []*string{&p.NativeDenom, &p.WrappedDenom, &p.DestinationFormat, &p.DestinationPrefix} {
		if err := decoder.Decode(field); err != nil {
			return err
		}
	}
	return decoder.Decode(&p.AssetBridgingEnabled)
}

// ParamsValueCodec stores the module params SCALE encoded.
type ParamsValueCodec struct{}

// Encode implements collcodec.ValueCodec.
func (ParamsValueCodec) Encode(value Params) ([]byte, error) {
	return gsrpctypes.EncodeToBytes(value)
}

// Decode implements collcodec.ValueCodec.
func (ParamsValueCodec) Decode(bz []byte) (Params, error) {
	var params Params
	if err := gsrpctypes.DecodeFromBytes(bz, &params); err != nil {
		return Params{}, err
	}
	return params, nil
}

// EncodeJSON implements collcodec.ValueCodec.
func (ParamsValueCodec) EncodeJSON(value Params) ([]byte, error) {
	return json.Marshal(value)
}

// DecodeJSON implements collcodec.ValueCodec.
func (ParamsValueCodec) DecodeJSON(bz []byte) (Params, error) {
	var params Params
	err := json.Unmarshal(bz, &params)
	return params, err
}

// Stringify implements collcodec.ValueCodec.
func (ParamsValueCodec) Stringify(value Params) string {
	return value.String()
}

// ValueType implements collcodec.ValueCodec.
func (ParamsValueCodec) ValueType() string {
	return "bridge/Params"
}
