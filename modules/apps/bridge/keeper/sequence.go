package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NextActionID returns the current outbound action id and increments the
// sequence. Ids start at 0.
func (k Keeper) NextActionID(ctx sdk.Context) (uint64, error) {
	return k.lastActionID.Next(ctx)
}

// GetLastActionID returns the id the next outbound action will receive.
func (k Keeper) GetLastActionID(ctx sdk.Context) uint64 {
	id, err := k.lastActionID.Peek(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SetLastActionID seeds the outbound action sequence.
func (k Keeper) SetLastActionID(ctx sdk.Context, id uint64) error {
	return k.lastActionID.Set(ctx, id)
}
