package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	bridgeerrors "github.com/actionbridge/bridge/internal/errors"
)

const (
	MaximumEndpointLength = 256   // maximum length of a foreign contract endpoint in bytes (value chosen arbitrarily)
	MaximumArgsLength     = 32768 // maximum total length of foreign contract call arguments in bytes (value chosen arbitrarily)
)

// ConfirmMsg is implemented by every message a validator uses to confirm an
// inbound action.
type ConfirmMsg interface {
	ValidateBasic() error
	GetValidator() string
	GetActionID() []byte
	// Payload converts the message fields into the payload it attests to.
	Payload() (ActionPayload, error)
}

var (
	_ ConfirmMsg = (*MsgConfirmUnfreeze)(nil)
	_ ConfirmMsg = (*MsgConfirmContractCall)(nil)
	_ ConfirmMsg = (*MsgConfirmTransferWrapped)(nil)
	_ ConfirmMsg = (*MsgConfirmUnfreezeAsset)(nil)
)

// MsgSend moves native currency to a foreign chain.
type MsgSend struct {
	Sender      string      `json:"sender"`
	Destination string      `json:"destination"`
	Amount      sdkmath.Int `json:"amount"`
}

// MsgSendContractCall requests a contract call on a foreign chain.
type MsgSendContractCall struct {
	Sender      string   `json:"sender"`
	Destination string   `json:"destination"`
	Endpoint    string   `json:"endpoint"`
	Args        [][]byte `json:"args"`
}

// MsgWithdrawWrapped burns wrapped currency and sends the foreign original back.
type MsgWithdrawWrapped struct {
	Sender      string      `json:"sender"`
	Destination string      `json:"destination"`
	Amount      sdkmath.Int `json:"amount"`
}

// MsgLockAsset locks a unique asset in the module account for a foreign chain.
type MsgLockAsset struct {
	Sender      string `json:"sender"`
	Destination string `json:"destination"`
	ClassID     string `json:"class_id"`
	NFTID       string `json:"nft_id"`
}

// MsgOutboundResponse returns the local action id allocated to an outbound action.
type MsgOutboundResponse struct {
	ActionID uint64 `json:"action_id"`
}

// MsgConfirmUnfreeze attests that native currency was sent back from the foreign chain.
type MsgConfirmUnfreeze struct {
	Validator string      `json:"validator"`
	ActionID  []byte      `json:"action_id"`
	To        string      `json:"to"`
	Amount    sdkmath.Int `json:"amount"`
}

// MsgConfirmContractCall attests that the foreign chain requested a local contract call.
type MsgConfirmContractCall struct {
	Validator string `json:"validator"`
	ActionID  []byte `json:"action_id"`
	Contract  string `json:"contract"`
	CallData  []byte `json:"call_data"`
}

// MsgConfirmTransferWrapped attests that foreign currency was locked for minting here.
type MsgConfirmTransferWrapped struct {
	Validator string      `json:"validator"`
	ActionID  []byte      `json:"action_id"`
	To        string      `json:"to"`
	Amount    sdkmath.Int `json:"amount"`
}

// MsgConfirmUnfreezeAsset attests that a locked unique asset must be released.
type MsgConfirmUnfreezeAsset struct {
	Validator string `json:"validator"`
	ActionID  []byte `json:"action_id"`
	To        string `json:"to"`
	ClassID   string `json:"class_id"`
	NFTID     string `json:"nft_id"`
}

// MsgConfirmResponse reports the outcome of a confirmation.
type MsgConfirmResponse struct {
	Ready         bool   `json:"ready"`
	Confirmations uint64 `json:"confirmations"`
	Threshold     uint64 `json:"threshold"`
}

// MsgUpdateParams updates the module parameters. Only the authority may send it.
type MsgUpdateParams struct {
	Signer string `json:"signer"`
	Params Params `json:"params"`
}

// MsgUpdateParamsResponse defines the response of MsgUpdateParams.
type MsgUpdateParamsResponse struct{}

// NewMsgSend creates a new MsgSend instance
func NewMsgSend(sender, destination string, amount sdkmath.Int) *MsgSend {
	return &MsgSend{Sender: sender, Destination: destination, Amount: amount}
}

// NewMsgSendContractCall creates a new MsgSendContractCall instance
func NewMsgSendContractCall(sender, destination, endpoint string, args [][]byte) *MsgSendContractCall {
	return &MsgSendContractCall{Sender: sender, Destination: destination, Endpoint: endpoint, Args: args}
}

// NewMsgWithdrawWrapped creates a new MsgWithdrawWrapped instance
func NewMsgWithdrawWrapped(sender, destination string, amount sdkmath.Int) *MsgWithdrawWrapped {
	return &MsgWithdrawWrapped{Sender: sender, Destination: destination, Amount: amount}
}

// NewMsgLockAsset creates a new MsgLockAsset instance
func NewMsgLockAsset(sender, destination, classID, nftID string) *MsgLockAsset {
	return &MsgLockAsset{Sender: sender, Destination: destination, ClassID: classID, NFTID: nftID}
}

// NewMsgConfirmUnfreeze creates a new MsgConfirmUnfreeze instance
func NewMsgConfirmUnfreeze(validator string, actionID []byte, to string, amount sdkmath.Int) *MsgConfirmUnfreeze {
	return &MsgConfirmUnfreeze{Validator: validator, ActionID: actionID, To: to, Amount: amount}
}

// NewMsgConfirmContractCall creates a new MsgConfirmContractCall instance
func NewMsgConfirmContractCall(validator string, actionID []byte, contract string, callData []byte) *MsgConfirmContractCall {
	return &MsgConfirmContractCall{Validator: validator, ActionID: actionID, Contract: contract, CallData: callData}
}

// NewMsgConfirmTransferWrapped creates a new MsgConfirmTransferWrapped instance
func NewMsgConfirmTransferWrapped(validator string, actionID []byte, to string, amount sdkmath.Int) *MsgConfirmTransferWrapped {
	return &MsgConfirmTransferWrapped{Validator: validator, ActionID: actionID, To: to, Amount: amount}
}

// NewMsgConfirmUnfreezeAsset creates a new MsgConfirmUnfreezeAsset instance
func NewMsgConfirmUnfreezeAsset(validator string, actionID []byte, to, classID, nftID string) *MsgConfirmUnfreezeAsset {
	return &MsgConfirmUnfreezeAsset{Validator: validator, ActionID: actionID, To: to, ClassID: classID, NFTID: nftID}
}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(signer string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Signer: signer, Params: params}
}

// ValidateBasic performs a basic check of the MsgSend fields.
// NOTE: the destination format is validated statefully against the module params.
func (msg MsgSend) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if strings.TrimSpace(msg.Destination) == "" {
		return errorsmod.Wrap(ErrInvalidDestination, "destination cannot be blank")
	}
	return ValidateAmount(msg.Amount)
}

// ValidateBasic performs a basic check of the MsgSendContractCall fields.
func (msg MsgSendContractCall) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if strings.TrimSpace(msg.Destination) == "" {
		return errorsmod.Wrap(ErrInvalidDestination, "destination cannot be blank")
	}
	if len(msg.Endpoint) > MaximumEndpointLength {
		return errorsmod.Wrapf(bridgeerrors.ErrInvalidRequest, "endpoint must not exceed %d bytes", MaximumEndpointLength)
	}

	total := 0
	for _, arg := range msg.Args {
		total += len(arg)
	}
	if total > MaximumArgsLength {
		return errorsmod.Wrapf(bridgeerrors.ErrInvalidRequest, "arguments must not exceed %d bytes", MaximumArgsLength)
	}
	return nil
}

// ValidateBasic performs a basic check of the MsgWithdrawWrapped fields.
func (msg MsgWithdrawWrapped) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if strings.TrimSpace(msg.Destination) == "" {
		return errorsmod.Wrap(ErrInvalidDestination, "destination cannot be blank")
	}
	return ValidateAmount(msg.Amount)
}

// ValidateBasic performs a basic check of the MsgLockAsset fields.
func (msg MsgLockAsset) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if strings.TrimSpace(msg.Destination) == "" {
		return errorsmod.Wrap(ErrInvalidDestination, "destination cannot be blank")
	}
	if msg.ClassID == "" || len(msg.ClassID) > maxAssetIDLength {
		return errorsmod.Wrapf(bridgeerrors.ErrInvalidRequest, "class id must be between 1 and %d bytes", maxAssetIDLength)
	}
	if msg.NFTID == "" || len(msg.NFTID) > maxAssetIDLength {
		return errorsmod.Wrapf(bridgeerrors.ErrInvalidRequest, "nft id must be between 1 and %d bytes", maxAssetIDLength)
	}
	return nil
}

// ValidateBasic performs a basic check of the MsgConfirmUnfreeze fields.
func (msg MsgConfirmUnfreeze) ValidateBasic() error {
	return validateConfirm(msg)
}

// ValidateBasic performs a basic check of the MsgConfirmContractCall fields.
func (msg MsgConfirmContractCall) ValidateBasic() error {
	return validateConfirm(msg)
}

// ValidateBasic performs a basic check of the MsgConfirmTransferWrapped fields.
func (msg MsgConfirmTransferWrapped) ValidateBasic() error {
	return validateConfirm(msg)
}

// ValidateBasic performs a basic check of the MsgConfirmUnfreezeAsset fields.
func (msg MsgConfirmUnfreezeAsset) ValidateBasic() error {
	return validateConfirm(msg)
}

// ValidateBasic performs a basic check of the MsgUpdateParams fields.
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errorsmod.Wrapf(bridgeerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}
	return msg.Params.Validate()
}

func (msg MsgConfirmUnfreeze) GetValidator() string        { return msg.Validator }
func (msg MsgConfirmContractCall) GetValidator() string    { return msg.Validator }
func (msg MsgConfirmTransferWrapped) GetValidator() string { return msg.Validator }
func (msg MsgConfirmUnfreezeAsset) GetValidator() string   { return msg.Validator }

func (msg MsgConfirmUnfreeze) GetActionID() []byte        { return msg.ActionID }
func (msg MsgConfirmContractCall) GetActionID() []byte    { return msg.ActionID }
func (msg MsgConfirmTransferWrapped) GetActionID() []byte { return msg.ActionID }
func (msg MsgConfirmUnfreezeAsset) GetActionID() []byte   { return msg.ActionID }

// Payload implements ConfirmMsg.
func (msg MsgConfirmUnfreeze) Payload() (ActionPayload, error) {
	to, err := parseAddress("recipient", msg.To)
	if err != nil {
		return nil, err
	}
	return NewUnfreeze(to, msg.Amount), nil
}

// Payload implements ConfirmMsg.
func (msg MsgConfirmContractCall) Payload() (ActionPayload, error) {
	contract, err := parseAddress("contract", msg.Contract)
	if err != nil {
		return nil, err
	}
	return NewContractCall(contract, msg.CallData), nil
}

// Payload implements ConfirmMsg.
func (msg MsgConfirmTransferWrapped) Payload() (ActionPayload, error) {
	to, err := parseAddress("recipient", msg.To)
	if err != nil {
		return nil, err
	}
	return NewTransferWrapped(to, msg.Amount), nil
}

// Payload implements ConfirmMsg.
func (msg MsgConfirmUnfreezeAsset) Payload() (ActionPayload, error) {
	to, err := parseAddress("recipient", msg.To)
	if err != nil {
		return nil, err
	}
	return NewUnfreezeAsset(to, msg.ClassID, msg.NFTID), nil
}

func validateConfirm(msg ConfirmMsg) error {
	if _, err := parseAddress("validator", msg.GetValidator()); err != nil {
		return err
	}
	if err := ValidateActionID(msg.GetActionID()); err != nil {
		return err
	}

	payload, err := msg.Payload()
	if err != nil {
		return err
	}
	return payload.ValidateBasic()
}

func validateSender(sender string) error {
	_, err := parseAddress("sender", sender)
	return err
}

func parseAddress(field, bech32Addr string) (sdk.AccAddress, error) {
	addr, err := sdk.AccAddressFromBech32(bech32Addr)
	if err != nil {
		return nil, errorsmod.Wrapf(bridgeerrors.ErrInvalidAddress, "%s could not be parsed as address: %v", field, err)
	}
	return addr, nil
}
