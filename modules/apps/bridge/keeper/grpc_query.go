package keeper

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	bridgeerrors "github.com/actionbridge/bridge/internal/errors"
	"github.com/actionbridge/bridge/internal/validate"
	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

var _ types.QueryServer = (*Keeper)(nil)

// Params implements the Query/Params gRPC method
func (k Keeper) Params(goCtx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	params := k.GetParams(ctx)

	return &types.QueryParamsResponse{
		Params: &params,
	}, nil
}

// Validators implements the Query/Validators gRPC method
func (k Keeper) Validators(goCtx context.Context, req *types.QueryValidatorsRequest) (*types.QueryValidatorsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	validators := []string{}
	for _, validator := range k.GetValidators(ctx) {
		validators = append(validators, validator.String())
	}

	return &types.QueryValidatorsResponse{
		Validators: validators,
	}, nil
}

// ValidatorCount implements the Query/ValidatorCount gRPC method
func (k Keeper) ValidatorCount(goCtx context.Context, req *types.QueryValidatorCountRequest) (*types.QueryValidatorCountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if !k.IsRegistryInitialized(ctx) {
		return nil, status.Error(codes.FailedPrecondition, "validator registry is not initialised")
	}

	return &types.QueryValidatorCountResponse{
		Count: k.GetValidatorCount(ctx),
	}, nil
}

// IsValidator implements the Query/IsValidator gRPC method
func (k Keeper) IsValidator(goCtx context.Context, req *types.QueryIsValidatorRequest) (*types.QueryIsValidatorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := validate.GRPCAddress(req.Address)
	if err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryIsValidatorResponse{
		IsValidator: k.HasValidator(ctx, addr),
	}, nil
}

// Action implements the Query/Action gRPC method
func (k Keeper) Action(goCtx context.Context, req *types.QueryActionRequest) (*types.QueryActionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.GRPCActionID(req.ActionID); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	record, found := k.GetAction(ctx, req.ActionID)
	if !found {
		return nil, status.Error(
			codes.NotFound,
			errorsmod.Wrapf(bridgeerrors.ErrNotFound, "action %X", req.ActionID).Error(),
		)
	}

	return &types.QueryActionResponse{
		Record: &record,
	}, nil
}

// Actions implements the Query/Actions gRPC method
func (k Keeper) Actions(ctx context.Context, req *types.QueryActionsRequest) (*types.QueryActionsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	actions, pageRes, err := query.CollectionPaginate(ctx, k.actions, req.Pagination, func(actionID []byte, record types.ActionRecord) (types.GenesisAction, error) {
		return types.GenesisAction{ActionID: actionID, Record: record}, nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("failed to paginate actions: %s", err))
	}

	return &types.QueryActionsResponse{
		Actions:    actions,
		Pagination: pageRes,
	}, nil
}

// LastActionID implements the Query/LastActionID gRPC method
func (k Keeper) LastActionID(goCtx context.Context, req *types.QueryLastActionIDRequest) (*types.QueryLastActionIDResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryLastActionIDResponse{
		LastActionID: k.GetLastActionID(ctx),
	}, nil
}

// QuorumThreshold implements the Query/QuorumThreshold gRPC method
func (k Keeper) QuorumThreshold(goCtx context.Context, req *types.QueryQuorumThresholdRequest) (*types.QueryQuorumThresholdResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if !k.IsRegistryInitialized(ctx) {
		return nil, status.Error(codes.FailedPrecondition, "validator registry is not initialised")
	}

	count := k.GetValidatorCount(ctx)

	return &types.QueryQuorumThresholdResponse{
		ValidatorCount: count,
		Threshold:      types.QuorumThreshold(count),
	}, nil
}
