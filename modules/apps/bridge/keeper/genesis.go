package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/actionbridge/bridge/internal/collections"
	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

// InitGenesis initializes the bridge module state from a genesis state. The
// validator registry is written exactly once here.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) error {
	if err := state.Validate(); err != nil {
		return errorsmod.Wrap(err, "invalid bridge genesis state")
	}

	k.SetParams(ctx, state.Params)

	validators := make([]sdk.AccAddress, 0, len(state.Validators))
	for _, validator := range collections.Dedup(state.Validators) {
		validators = append(validators, sdk.MustAccAddressFromBech32(validator))
	}
	if err := k.InitValidators(ctx, validators); err != nil {
		return err
	}

	if err := k.SetLastActionID(ctx, state.LastActionID); err != nil {
		return err
	}

	for _, action := range state.Actions {
		if err := k.SetAction(ctx, action.ActionID, action.Record); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis exports the bridge module state to a genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	validators := []string{}
	for _, validator := range k.GetValidators(ctx) {
		validators = append(validators, validator.String())
	}

	return types.NewGenesisState(
		k.GetParams(ctx),
		validators,
		k.GetLastActionID(ctx),
		k.GetAllActions(ctx),
	)
}
