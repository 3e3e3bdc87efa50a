package types

import (
	"encoding/json"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	bridgeerrors "github.com/actionbridge/bridge/internal/errors"
)

const (
	PayloadTypeUnfreeze        = "unfreeze"
	PayloadTypeContractCall    = "contract_call"
	PayloadTypeTransferWrapped = "transfer_wrapped"
	PayloadTypeUnfreezeAsset   = "unfreeze_asset"
)

// SCALE variant indices. The order is part of the persisted state layout.
const (
	payloadTagUnfreeze byte = iota
	payloadTagContractCall
	payloadTagTransferWrapped
	payloadTagUnfreezeAsset
)

// maxAssetIDLength bounds nft class and token identifiers (value chosen arbitrarily)
const maxAssetIDLength = 256

// ActionPayload is the local effect an inbound action requests once quorum is
// reached. The set of implementations is closed; it is sealed by an unexported
// method so that every consumer can match it exhaustively.
type ActionPayload interface {
	// Type returns the variant name used in events and JSON.
	Type() string
	// ValidateBasic performs stateless validation of the payload.
	ValidateBasic() error
	// Equal reports whether other is the same variant carrying the same fields.
	Equal(other ActionPayload) bool

	encodeSCALE(encoder scale.Encoder) error
}

var (
	_ ActionPayload = Unfreeze{}
	_ ActionPayload = ContractCall{}
	_ ActionPayload = TransferWrapped{}
	_ ActionPayload = UnfreezeAsset{}
)

// Unfreeze releases escrowed native currency to the recipient.
type Unfreeze struct {
	To     sdk.AccAddress `json:"to"`
	Amount sdkmath.Int    `json:"amount"`
}

// ContractCall invokes a local contract with raw call data.
type ContractCall struct {
	Contract sdk.AccAddress `json:"contract"`
	CallData []byte         `json:"call_data"`
}

// TransferWrapped mints the wrapped representation of a foreign currency to the recipient.
type TransferWrapped struct {
	To     sdk.AccAddress `json:"to"`
	Amount sdkmath.Int    `json:"amount"`
}

// UnfreezeAsset releases a locked unique asset (nft) to the recipient.
type UnfreezeAsset struct {
	To      sdk.AccAddress `json:"to"`
	ClassID string         `json:"class_id"`
	NFTID   string         `json:"nft_id"`
}

// NewUnfreeze creates a new Unfreeze payload.
func NewUnfreeze(to sdk.AccAddress, amount sdkmath.Int) Unfreeze {
	return Unfreeze{To: to, Amount: amount}
}

// NewContractCall creates a new ContractCall payload.
func NewContractCall(contract sdk.AccAddress, callData []byte) ContractCall {
	return ContractCall{Contract: contract, CallData: callData}
}

// NewTransferWrapped creates a new TransferWrapped payload.
func NewTransferWrapped(to sdk.AccAddress, amount sdkmath.Int) TransferWrapped {
	return TransferWrapped{To: to, Amount: amount}
}

// NewUnfreezeAsset creates a new UnfreezeAsset payload.
func NewUnfreezeAsset(to sdk.AccAddress, classID, nftID string) UnfreezeAsset {
	return UnfreezeAsset{To: to, ClassID: classID, NFTID: nftID}
}

func (Unfreeze) Type() string        { return PayloadTypeUnfreeze }
func (ContractCall) Type() string    { return PayloadTypeContractCall }
func (TransferWrapped) Type() string { return PayloadTypeTransferWrapped }
func (UnfreezeAsset) Type() string   { return PayloadTypeUnfreezeAsset }

// ValidateBasic implements ActionPayload.
func (p Unfreeze) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(p.To); err != nil {
		return errorsmod.Wrapf(bridgeerrors.ErrInvalidAddress, "invalid recipient: %v", err)
	}
	return ValidateAmount(p.Amount)
}

// ValidateBasic implements ActionPayload.
func (p ContractCall) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(p.Contract); err != nil {
		return errorsmod.Wrapf(bridgeerrors.ErrInvalidAddress, "invalid contract: %v", err)
	}
	if len(p.CallData) > MaxCallDataLength {
		return errorsmod.Wrapf(ErrInvalidPayload, "call data must not exceed %d bytes", MaxCallDataLength)
	}
	return nil
}

// ValidateBasic implements ActionPayload.
func (p TransferWrapped) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(p.To); err != nil {
		return errorsmod.Wrapf(bridgeerrors.ErrInvalidAddress, "invalid recipient: %v", err)
	}
	return ValidateAmount(p.Amount)
}

// ValidateBasic implements ActionPayload.
func (p UnfreezeAsset) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(p.To); err != nil {
		return errorsmod.Wrapf(bridgeerrors.ErrInvalidAddress, "invalid recipient: %v", err)
	}
	if p.ClassID == "" || len(p.ClassID) > maxAssetIDLength {
		return errorsmod.Wrapf(ErrInvalidPayload, "class id must be between 1 and %d bytes", maxAssetIDLength)
	}
	if p.NFTID == "" || len(p.NFTID) > maxAssetIDLength {
		return errorsmod.Wrapf(ErrInvalidPayload, "nft id must be between 1 and %d bytes", maxAssetIDLength)
	}
	return nil
}

// Equal implements ActionPayload.
func (p Unfreeze) Equal(other ActionPayload) bool {
	o, ok := other.(Unfreeze)
	return ok && p.To.Equals(o.To) && amountsEqual(p.Amount, o.Amount)
}

// Equal implements ActionPayload.
func (p ContractCall) Equal(other ActionPayload) bool {
	o, ok := other.(ContractCall)
	return ok && p.Contract.Equals(o.Contract) && string(p.CallData) == string(o.CallData)
}

// Equal implements ActionPayload.
func (p TransferWrapped) Equal(other ActionPayload) bool {
	o, ok := other.(TransferWrapped)
	return ok && p.To.Equals(o.To) && amountsEqual(p.Amount, o.Amount)
}

// Equal implements ActionPayload.
func (p UnfreezeAsset) Equal(other ActionPayload) bool {
	o, ok := other.(UnfreezeAsset)
	return ok && p.To.Equals(o.To) && p.ClassID == o.ClassID && p.NFTID == o.NFTID
}

// ValidateAmount checks that amount is positive and representable as a SCALE u128.
func ValidateAmount(amount sdkmath.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return errorsmod.Wrap(ErrInvalidValue, "amount must be positive")
	}
	if amount.BigInt().BitLen() > 128 {
		return errorsmod.Wrapf(ErrInvalidValue, "amount %s exceeds 128 bits", amount)
	}
	return nil
}

func amountsEqual(a, b sdkmath.Int) bool {
	if a.IsNil() || b.IsNil() {
		return a.IsNil() == b.IsNil()
	}
	return a.Equal(b)
}

func (p Unfreeze) encodeSCALE(encoder scale.Encoder) error {
	return encodeAddressAmount(encoder, payloadTagUnfreeze, p.To, p.Amount)
}

func (p TransferWrapped) encodeSCALE(encoder scale.Encoder) error {
	return encodeAddressAmount(encoder, payloadTagTransferWrapped, p.To, p.Amount)
}

func (p ContractCall) encodeSCALE(encoder scale.Encoder) error {
	if err := encoder.PushByte(payloadTagContractCall); err != nil {
		return err
	}
	if err := encoder.Encode([]byte(p.Contract)); err != nil {
		return err
	}
	return encoder.Encode(p.CallData)
}

func (p UnfreezeAsset) encodeSCALE(encoder scale.Encoder) error {
	if err := encoder.PushByte(payloadTagUnfreezeAsset); err != nil {
		return err
	}
	if err := encoder.Encode([]byte(p.To)); err != nil {
		return err
	}
	if err := encoder.Encode(p.ClassID); err != nil {
		return err
	}
	return encoder.Encode(p.NFTID)
}

func encodeAddressAmount(encoder scale.Encoder, tag byte, addr sdk.AccAddress, amount sdkmath.Int) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if err := encoder.PushByte(tag); err != nil {
		return err
	}
	if err := encoder.Encode([]byte(addr)); err != nil {
		return err
	}
	return encoder.Encode(gsrpctypes.NewU128(*amount.BigInt()))
}

func decodeAddressAmount(decoder scale.Decoder) (sdk.AccAddress, sdkmath.Int, error) {
	var (
		addr   []byte
		amount gsrpctypes.U128
	)
	if err := decoder.Decode(&addr); err != nil {
		return nil, sdkmath.Int{}, err
	}
	if err := decoder.Decode(&amount); err != nil {
		return nil, sdkmath.Int{}, err
	}
	return sdk.AccAddress(addr), sdkmath.NewIntFromBigInt(amount.Int), nil
}

// encodePayload writes the variant index followed by the variant fields.
func encodePayload(encoder scale.Encoder, payload ActionPayload) error {
	if payload == nil {
		return errorsmod.Wrap(ErrInvalidPayload, "payload cannot be nil")
	}
	return payload.encodeSCALE(encoder)
}

func decodePayload(decoder scale.Decoder) (ActionPayload, error) {
	tag, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case payloadTagUnfreeze:
		to, amount, err := decodeAddressAmount(decoder)
		if err != nil {
			return nil, err
		}
		return NewUnfreeze(to, amount), nil
	case payloadTagTransferWrapped:
		to, amount, err := decodeAddressAmount(decoder)
		if err != nil {
			return nil, err
		}
		return NewTransferWrapped(to, amount), nil
	case payloadTagContractCall:
		var contract, callData []byte
		if err := decoder.Decode(&contract); err != nil {
			return nil, err
		}
		if err := decoder.Decode(&callData); err != nil {
			return nil, err
		}
		return NewContractCall(contract, callData), nil
	case payloadTagUnfreezeAsset:
		var (
			to             []byte
			classID, nftID string
		)
		if err := decoder.Decode(&to); err != nil {
			return nil, err
		}
		if err := decoder.Decode(&classID); err != nil {
			return nil, err
		}
		if err := decoder.Decode(&nftID); err != nil {
			return nil, err
		}
		return NewUnfreezeAsset(to, classID, nftID), nil
	default:
		return nil, errorsmod.Wrapf(ErrInvalidPayload, "unknown payload variant %d", tag)
	}
}

type payloadJSON struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalPayloadJSON encodes a payload as a {"type", "value"} envelope.
func MarshalPayloadJSON(payload ActionPayload) ([]byte, error) {
	if payload == nil {
		return nil, errorsmod.Wrap(ErrInvalidPayload, "payload cannot be nil")
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(payloadJSON{Type: payload.Type(), Value: value})
}

// UnmarshalPayloadJSON decodes a payload envelope produced by MarshalPayloadJSON.
func UnmarshalPayloadJSON(bz []byte) (ActionPayload, error) {
	var envelope payloadJSON
	if err := json.Unmarshal(bz, &envelope); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidPayload, "malformed payload envelope: %v", err)
	}

	switch envelope.Type {
	case PayloadTypeUnfreeze:
		return unmarshalVariant[Unfreeze](envelope.Value)
	case PayloadTypeContractCall:
		return unmarshalVariant[ContractCall](envelope.Value)
	case PayloadTypeTransferWrapped:
		return unmarshalVariant[TransferWrapped](envelope.Value)
	case PayloadTypeUnfreezeAsset:
		return unmarshalVariant[UnfreezeAsset](envelope.Value)
	default:
		return nil, errorsmod.Wrapf(ErrInvalidPayload, "unknown payload type %q", envelope.Type)
	}
}

func unmarshalVariant[T ActionPayload](bz []byte) (ActionPayload, error) {
	var payload T
	if err := json.Unmarshal(bz, &payload); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidPayload, "malformed %T: %v", payload, err)
	}
	return payload, nil
}

// PayloadString renders a payload for logs and CLI output.
func PayloadString(payload ActionPayload) string {
	if payload == nil {
		return "<nil>"
	}
	bz, err := MarshalPayloadJSON(payload)
	if err != nil {
		return fmt.Sprintf("%s(%v)", payload.Type(), err)
	}
	return string(bz)
}
