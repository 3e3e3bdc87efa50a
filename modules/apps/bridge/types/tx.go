package types

import "context"

// MsgServer is the server API for the bridge Msg service.
type MsgServer interface {
	// Send escrows native currency for a foreign chain.
	Send(context.Context, *MsgSend) (*MsgOutboundResponse, error)
	// SendContractCall requests a contract call on a foreign chain.
	SendContractCall(context.Context, *MsgSendContractCall) (*MsgOutboundResponse, error)
	// WithdrawWrapped burns wrapped currency in exchange for the foreign original.
	WithdrawWrapped(context.Context, *MsgWithdrawWrapped) (*MsgOutboundResponse, error)
	// LockAsset locks a unique asset for a foreign chain.
	LockAsset(context.Context, *MsgLockAsset) (*MsgOutboundResponse, error)

	ConfirmUnfreeze(context.Context, *MsgConfirmUnfreeze) (*MsgConfirmResponse, error)
	ConfirmContractCall(context.Context, *MsgConfirmContractCall) (*MsgConfirmResponse, error)
	ConfirmTransferWrapped(context.Context, *MsgConfirmTransferWrapped) (*MsgConfirmResponse, error)
	ConfirmUnfreezeAsset(context.Context, *MsgConfirmUnfreezeAsset) (*MsgConfirmResponse, error)

	// UpdateParams defines a governance operation for updating the bridge module parameters.
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}
