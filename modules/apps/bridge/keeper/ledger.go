package keeper

import (
	"errors"

	"cosmossdk.io/collections"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

// GetAction returns the pending record stored under the external action id.
func (k Keeper) GetAction(ctx sdk.Context, actionID []byte) (types.ActionRecord, bool) {
	record, err := k.actions.Get(ctx, actionID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ActionRecord{}, false
		}
		panic(err)
	}
	return record, true
}

// HasAction reports whether a pending record exists for the external action id.
func (k Keeper) HasAction(ctx sdk.Context, actionID []byte) bool {
	has, err := k.actions.Has(ctx, actionID)
	if err != nil {
		panic(err)
	}
	return has
}

// SetAction inserts or replaces the pending record of an external action id.
func (k Keeper) SetAction(ctx sdk.Context, actionID []byte, record types.ActionRecord) error {
	return k.actions.Set(ctx, actionID, record)
}

// RemoveAction deletes the pending record of an external action id.
func (k Keeper) RemoveAction(ctx sdk.Context, actionID []byte) error {
	return k.actions.Remove(ctx, actionID)
}

// IterateActions iterates over all pending actions in key order. Iteration
// stops when cb returns true.
func (k Keeper) IterateActions(ctx sdk.Context, cb func(actionID []byte, record types.ActionRecord) bool) {
	if err := k.actions.Walk(ctx, nil, func(actionID []byte, record types.ActionRecord) (bool, error) {
		return cb(actionID, record), nil
	}); err != nil {
		panic(err)
	}
}

// GetAllActions returns every pending action.
func (k Keeper) GetAllActions(ctx sdk.Context) []types.GenesisAction {
	actions := []types.GenesisAction{}
	k.IterateActions(ctx, func(actionID []byte, record types.ActionRecord) bool {
		actions = append(actions, types.GenesisAction{ActionID: actionID, Record: record})
		return false
	})
	return actions
}
