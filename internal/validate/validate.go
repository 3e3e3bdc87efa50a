package validate

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

// GRPCActionID validates the external action identifier of a gRPC request.
func GRPCActionID(actionID []byte) error {
	if err := types.ValidateActionID(actionID); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return nil
}

// GRPCAddress parses the bech32 account address of a gRPC request.
func GRPCAddress(address string) (sdk.AccAddress, error) {
	addr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	return addr, nil
}
