package keeper

import (
	"context"
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/actionbridge/bridge/modules/apps/bridge/internal/events"
	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the bridge MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Send defines an rpc handler method for MsgSend.
func (k msgServer) Send(goCtx context.Context, msg *types.MsgSend) (*types.MsgOutboundResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)

	actionID, err := k.Keeper.Send(ctx, sender, msg.Destination, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &types.MsgOutboundResponse{ActionID: actionID}, nil
}

// SendContractCall defines an rpc handler method for MsgSendContractCall.
func (k msgServer) SendContractCall(goCtx context.Context, msg *types.MsgSendContractCall) (*types.MsgOutboundResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)

	actionID, err := k.Keeper.SendContractCall(ctx, sender, msg.Destination, msg.Endpoint, msg.Args)
	if err != nil {
		return nil, err
	}

	return &types.MsgOutboundResponse{ActionID: actionID}, nil
}

// WithdrawWrapped defines an rpc handler method for MsgWithdrawWrapped.
func (k msgServer) WithdrawWrapped(goCtx context.Context, msg *types.MsgWithdrawWrapped) (*types.MsgOutboundResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)

	actionID, err := k.Keeper.WithdrawWrapped(ctx, sender, msg.Destination, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &types.MsgOutboundResponse{ActionID: actionID}, nil
}

// LockAsset defines an rpc handler method for MsgLockAsset.
func (k msgServer) LockAsset(goCtx context.Context, msg *types.MsgLockAsset) (*types.MsgOutboundResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	sender := sdk.MustAccAddressFromBech32(msg.Sender)

	actionID, err := k.Keeper.LockAsset(ctx, sender, msg.Destination, msg.ClassID, msg.NFTID)
	if err != nil {
		return nil, err
	}

	return &types.MsgOutboundResponse{ActionID: actionID}, nil
}

// ConfirmUnfreeze defines an rpc handler method for MsgConfirmUnfreeze.
func (k msgServer) ConfirmUnfreeze(goCtx context.Context, msg *types.MsgConfirmUnfreeze) (*types.MsgConfirmResponse, error) {
	return k.confirm(goCtx, msg)
}

// ConfirmContractCall defines an rpc handler method for MsgConfirmContractCall.
func (k msgServer) ConfirmContractCall(goCtx context.Context, msg *types.MsgConfirmContractCall) (*types.MsgConfirmResponse, error) {
	return k.confirm(goCtx, msg)
}

// ConfirmTransferWrapped defines an rpc handler method for MsgConfirmTransferWrapped.
func (k msgServer) ConfirmTransferWrapped(goCtx context.Context, msg *types.MsgConfirmTransferWrapped) (*types.MsgConfirmResponse, error) {
	return k.confirm(goCtx, msg)
}

// ConfirmUnfreezeAsset defines an rpc handler method for MsgConfirmUnfreezeAsset.
func (k msgServer) ConfirmUnfreezeAsset(goCtx context.Context, msg *types.MsgConfirmUnfreezeAsset) (*types.MsgConfirmResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if !k.GetParams(ctx).AssetBridgingEnabled {
		return nil, types.ErrAssetBridgingDisabled
	}

	return k.confirm(goCtx, msg)
}

// confirm runs the quorum engine and, when the confirmation is the one that
// reaches quorum, executes the stored payload. Both steps run in a cached
// context so that a failed execution leaves no confirmation behind.
func (k msgServer) confirm(goCtx context.Context, msg types.ConfirmMsg) (*types.MsgConfirmResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	validator := sdk.MustAccAddressFromBech32(msg.GetValidator())

	payload, err := msg.Payload()
	if err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()
	result, err := k.Confirm(cacheCtx, validator, msg.GetActionID(), payload)
	if err != nil {
		return nil, err
	}

	if result.IsReady() {
		if err := k.Dispatch(cacheCtx, msg.GetActionID(), result.Payload); err != nil {
			ctx.Logger().Error("bridge action execution failed", "action-id", hex.EncodeToString(msg.GetActionID()), "error", err)
			return nil, err
		}
	}

	writeFn()

	return &types.MsgConfirmResponse{
		Ready:         result.IsReady(),
		Confirmations: result.Confirmations,
		Threshold:     result.Threshold,
	}, nil
}

// UpdateParams defines an rpc handler method for MsgUpdateParams. Only the
// authority can update the module parameters.
func (k msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if k.GetAuthority() != msg.Signer {
		return nil, errorsmod.Wrapf(types.ErrInvalidAuthority, "expected %s, got %s", k.GetAuthority(), msg.Signer)
	}
	if err := msg.Params.Validate(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	k.SetParams(ctx, msg.Params)
	events.EmitParamsUpdatedEvent(ctx, msg.Signer)

	return &types.MsgUpdateParamsResponse{}, nil
}
