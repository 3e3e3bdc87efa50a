package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer is the server API for the bridge Query service.
type QueryServer interface {
	// Params queries all parameters of the bridge module.
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	// Validators queries the registered validator set.
	Validators(context.Context, *QueryValidatorsRequest) (*QueryValidatorsResponse, error)
	// ValidatorCount queries the size of the registered validator set.
	ValidatorCount(context.Context, *QueryValidatorCountRequest) (*QueryValidatorCountResponse, error)
	// IsValidator queries whether an address is a registered validator.
	IsValidator(context.Context, *QueryIsValidatorRequest) (*QueryIsValidatorResponse, error)
	// Action queries a pending inbound action by its external identifier.
	Action(context.Context, *QueryActionRequest) (*QueryActionResponse, error)
	// Actions queries all pending inbound actions.
	Actions(context.Context, *QueryActionsRequest) (*QueryActionsResponse, error)
	// LastActionID queries the next outbound action id.
	LastActionID(context.Context, *QueryLastActionIDRequest) (*QueryLastActionIDResponse, error)
	// QuorumThreshold queries the number of confirmations required to execute an action.
	QuorumThreshold(context.Context, *QueryQuorumThresholdRequest) (*QueryQuorumThresholdResponse, error)
}

// QueryParamsRequest is the request type for the Query/Params RPC method.
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method.
type QueryParamsResponse struct {
	Params *Params `json:"params"`
}

// QueryValidatorsRequest is the request type for the Query/Validators RPC method.
type QueryValidatorsRequest struct{}

// QueryValidatorsResponse is the response type for the Query/Validators RPC method.
type QueryValidatorsResponse struct {
	Validators []string `json:"validators"`
}

// QueryValidatorCountRequest is the request type for the Query/ValidatorCount RPC method.
type QueryValidatorCountRequest struct{}

// QueryValidatorCountResponse is the response type for the Query/ValidatorCount RPC method.
type QueryValidatorCountResponse struct {
	Count uint64 `json:"count"`
}

// QueryIsValidatorRequest is the request type for the Query/IsValidator RPC method.
type QueryIsValidatorRequest struct {
	Address string `json:"address"`
}

// QueryIsValidatorResponse is the response type for the Query/IsValidator RPC method.
type QueryIsValidatorResponse struct {
	IsValidator bool `json:"is_validator"`
}

// QueryActionRequest is the request type for the Query/Action RPC method.
type QueryActionRequest struct {
	ActionID []byte `json:"action_id"`
}

// QueryActionResponse is the response type for the Query/Action RPC method.
type QueryActionResponse struct {
	Record *ActionRecord `json:"record"`
}

// QueryActionsRequest is the request type for the Query/Actions RPC method.
type QueryActionsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryActionsResponse is the response type for the Query/Actions RPC method.
type QueryActionsResponse struct {
	Actions    []GenesisAction     `json:"actions"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryLastActionIDRequest is the request type for the Query/LastActionID RPC method.
type QueryLastActionIDRequest struct{}

// QueryLastActionIDResponse is the response type for the Query/LastActionID RPC method.
type QueryLastActionIDResponse struct {
	LastActionID uint64 `json:"last_action_id"`
}

// QueryQuorumThresholdRequest is the request type for the Query/QuorumThreshold RPC method.
type QueryQuorumThresholdRequest struct{}

// QueryQuorumThresholdResponse is the response type for the Query/QuorumThreshold RPC method.
type QueryQuorumThresholdResponse struct {
	ValidatorCount uint64 `json:"validator_count"`
	Threshold      uint64 `json:"threshold"`
}
