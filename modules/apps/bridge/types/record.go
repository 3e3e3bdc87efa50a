package types

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"

	collcodec "cosmossdk.io/collections/codec"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ collcodec.ValueCodec[ActionRecord] = ActionRecordValueCodec{}

// ActionRecord is a pending inbound action: the payload seeded by the first
// confirming validator and the set of validators that confirmed it so far.
// Confirmations are kept sorted by address bytes and free of duplicates.
type ActionRecord struct {
	Payload       ActionPayload
	Confirmations []sdk.AccAddress
}

// NewActionRecord creates a record with no confirmations.
func NewActionRecord(payload ActionPayload) ActionRecord {
	return ActionRecord{Payload: payload}
}

// HasConfirmed reports whether validator already confirmed the action.
func (r ActionRecord) HasConfirmed(validator sdk.AccAddress) bool {
	_, found := r.search(validator)
	return found
}

// AddConfirmation inserts validator into the confirmation set. It returns
// false and leaves the set unchanged if the validator is already present.
func (r *ActionRecord) AddConfirmation(validator sdk.AccAddress) bool {
	i, found := r.search(validator)
	if found {
		return false
	}

	r.Confirmations = append(r.Confirmations, nil)
	copy(r.Confirmations[i+1:], r.Confirmations[i:])
	r.Confirmations[i] = validator
	return true
}

// ConfirmationCount returns the number of distinct validators that confirmed the action.
func (r ActionRecord) ConfirmationCount() uint64 {
	return uint64(len(r.Confirmations))
}

func (r ActionRecord) search(validator sdk.AccAddress) (int, bool) {
	i := sort.Search(len(r.Confirmations), func(i int) bool {
		return bytes.Compare(r.Confirmations[i], validator) >= 0
	})
	return i, i < len(r.Confirmations) && r.Confirmations[i].Equals(validator)
}

// Validate performs stateless validation of the record.
func (r ActionRecord) Validate() error {
	if r.Payload == nil {
		return errorsmod.Wrap(ErrInvalidPayload, "payload cannot be nil")
	}
	if err := r.Payload.ValidateBasic(); err != nil {
		return err
	}
	for i, validator := range r.Confirmations {
		if err := sdk.VerifyAddressFormat(validator); err != nil {
			return errorsmod.Wrapf(ErrInvalidPayload, "invalid confirmation %d: %v", i, err)
		}
		if i > 0 && bytes.Compare(r.Confirmations[i-1], validator) >= 0 {
			return errorsmod.Wrapf(ErrInvalidPayload, "confirmations must be sorted and unique, found %s after %s", validator, r.Confirmations[i-1])
		}
	}
	return nil
}

// Encode implements scale.Encodeable. The layout is the payload enum followed
// by the confirmation set as a vector of account bytes.
func (r ActionRecord) Encode(encoder scale.Encoder) error {
	if err := encodePayload(encoder, r.Payload); err != nil {
		return err
	}

	confirmations := make([][]byte, len(r.Confirmations))
	for i, validator := range r.Confirmations {
		confirmations[i] = validator
	}
	return encoder.Encode(confirmations)
}

// Decode implements scale.Decodeable.
func (r *ActionRecord) Decode(decoder scale.Decoder) error {
	payload, err := decodePayload(decoder)
	if err != nil {
		return err
	}

	var confirmations [][]byte
	if err := decoder.Decode(&confirmations); err != nil {
		return err
	}

	r.Payload = payload
	r.Confirmations = make([]sdk.AccAddress, len(confirmations))
	for i, validator := range confirmations {
		r.Confirmations[i] = validator
	}
	return nil
}

type actionRecordJSON struct {
	Payload       json.RawMessage  `json:"payload"`
	Confirmations []sdk.AccAddress `json:"confirmations"`
}

// MarshalJSON implements json.Marshaler.
func (r ActionRecord) MarshalJSON() ([]byte, error) {
	payload, err := MarshalPayloadJSON(r.Payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(actionRecordJSON{Payload: payload, Confirmations: r.Confirmations})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ActionRecord) UnmarshalJSON(bz []byte) error {
	var raw actionRecordJSON
	if err := json.Unmarshal(bz, &raw); err != nil {
		return err
	}

	payload, err := UnmarshalPayloadJSON(raw.Payload)
	if err != nil {
		return err
	}

	r.Payload = payload
	r.Confirmations = raw.Confirmations
	return nil
}

// ActionRecordValueCodec stores action records SCALE encoded.
type ActionRecordValueCodec struct{}

// Encode implements collcodec.ValueCodec.
func (ActionRecordValueCodec) Encode(value ActionRecord) ([]byte, error) {
	return gsrpctypes.EncodeToBytes(value)
}

// Decode implements collcodec.ValueCodec.
func (ActionRecordValueCodec) Decode(bz []byte) (ActionRecord, error) {
	var record ActionRecord
	if err := gsrpctypes.DecodeFromBytes(bz, &record); err != nil {
		return ActionRecord{}, err
	}
	return record, nil
}

// EncodeJSON implements collcodec.ValueCodec.
func (ActionRecordValueCodec) EncodeJSON(value ActionRecord) ([]byte, error) {
	return json.Marshal(value)
}

// DecodeJSON implements collcodec.ValueCodec.
func (ActionRecordValueCodec) DecodeJSON(bz []byte) (ActionRecord, error) {
	var record ActionRecord
	if err := json.Unmarshal(bz, &record); err != nil {
		return ActionRecord{}, err
	}
	return record, nil
}

// Stringify implements collcodec.ValueCodec.
func (c ActionRecordValueCodec) Stringify(value ActionRecord) string {
	bz, err := c.EncodeJSON(value)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}

// ValueType implements collcodec.ValueCodec.
func (ActionRecordValueCodec) ValueType() string {
	return "bridge/ActionRecord"
}
