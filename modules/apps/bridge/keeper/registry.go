package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	bridgeerrors "github.com/actionbridge/bridge/internal/errors"
)

// InitValidators registers the validator set and records its size. Duplicate
// addresses collapse into a single entry. The registry can be initialised only
// once.
func (k Keeper) InitValidators(ctx sdk.Context, validators []sdk.AccAddress) error {
	if k.IsRegistryInitialized(ctx) {
		return errorsmod.Wrap(bridgeerrors.ErrLogic, "validator registry is already initialised")
	}

	// every address is checked before the first write
	for _, validator := range validators {
		if err := sdk.VerifyAddressFormat(validator); err != nil {
			return errorsmod.Wrapf(bridgeerrors.ErrInvalidAddress, "invalid validator: %v", err)
		}
	}

	for _, validator := range validators {
		if err := k.validators.Set(ctx, validator); err != nil {
			return err
		}
	}

	var count uint64
	if err := k.validators.Walk(ctx, nil, func(sdk.AccAddress) (bool, error) {
		count++
		return false, nil
	}); err != nil {
		return err
	}

	return k.validatorCount.Set(ctx, count)
}

// IsRegistryInitialized reports whether the validator count has been recorded.
func (k Keeper) IsRegistryInitialized(ctx sdk.Context) bool {
	has, err := k.validatorCount.Has(ctx)
	if err != nil {
		panic(err)
	}
	return has
}

// HasValidator reports whether addr is a registered validator.
func (k Keeper) HasValidator(ctx sdk.Context, addr sdk.AccAddress) bool {
	has, err := k.validators.Has(ctx, addr)
	if err != nil {
		panic(err)
	}
	return has
}

// GetValidatorCount returns the size of the registered validator set.
// It panics if the registry has not been initialised: confirmations must never
// be evaluated against an unknown quorum.
func (k Keeper) GetValidatorCount(ctx sdk.Context) uint64 {
	count, err := k.validatorCount.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			panic(errors.New("bridge validator registry is not initialised"))
		}
		panic(err)
	}
	return count
}

// GetValidators returns the registered validators in canonical byte order.
func (k Keeper) GetValidators(ctx sdk.Context) []sdk.AccAddress {
	var validators []sdk.AccAddress
	if err := k.validators.Walk(ctx, nil, func(validator sdk.AccAddress) (bool, error) {
		validators = append(validators, validator)
		return false, nil
	}); err != nil {
		panic(err)
	}
	return validators
}
