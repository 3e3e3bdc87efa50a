package types

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	bridgeerrors "github.com/actionbridge/bridge/internal/errors"
)

// GenesisState defines the bridge module's genesis state.
type GenesisState struct {
	Params Params `json:"params"`
	// Validators is the initial validator list. Duplicates collapse into one entry.
	Validators []string `json:"validators"`
	// LastActionID is the next outbound action id to be allocated.
	LastActionID uint64 `json:"last_action_id"`
	// Actions are the pending inbound actions.
	Actions []GenesisAction `json:"actions"`
}

// GenesisAction is a pending action keyed by its external identifier.
type GenesisAction struct {
	ActionID []byte       `json:"action_id"`
	Record   ActionRecord `json:"record"`
}

// NewGenesisState creates a new bridge GenesisState instance.
func NewGenesisState(params Params, validators []string, lastActionID uint64, actions []GenesisAction) *GenesisState {
	return &GenesisState{
		Params:       params,
		Validators:   validators,
		LastActionID: lastActionID,
		Actions:      actions,
	}
}

// DefaultGenesisState returns a GenesisState with no validators and the
// outbound sequence seeded at 0.
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(DefaultParams(), []string{}, 0, []GenesisAction{})
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	validators := make(map[string]struct{}, len(gs.Validators))
	for _, validator := range gs.Validators {
		addr, err := sdk.AccAddressFromBech32(validator)
		if err != nil {
			return errorsmod.Wrapf(bridgeerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
		}
		validators[string(addr)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(gs.Actions))
	for _, action := range gs.Actions {
		if err := ValidateActionID(action.ActionID); err != nil {
			return err
		}
		if _, ok := seen[string(action.ActionID)]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate action id %X", action.ActionID)
		}
		seen[string(action.ActionID)] = struct{}{}

		if err := action.Record.Validate(); err != nil {
			return errorsmod.Wrapf(err, "invalid action %X", action.ActionID)
		}
		if len(action.Record.Confirmations) == 0 {
			return errorsmod.Wrapf(ErrInvalidGenesis, "action %X has no confirmations", action.ActionID)
		}
		if uint64(len(action.Record.Confirmations)) >= uint64(len(validators)) {
			return errorsmod.Wrapf(ErrInvalidGenesis, "action %X is confirmed by every validator and must have been pruned", action.ActionID)
		}
		for _, confirmation := range action.Record.Confirmations {
			if _, ok := validators[string(confirmation)]; !ok {
				return errorsmod.Wrapf(ErrInvalidGenesis, "action %X confirmed by unregistered validator %s", action.ActionID, confirmation)
			}
		}
	}

	return nil
}

// ValidateActionID checks the length bounds of an external action identifier.
func ValidateActionID(actionID []byte) error {
	if len(actionID) == 0 {
		return errorsmod.Wrap(ErrInvalidActionID, "action id cannot be empty")
	}
	if len(actionID) > MaxActionIDLength {
		return errorsmod.Wrapf(ErrInvalidActionID, "action id must not exceed %d bytes", MaxActionIDLength)
	}
	return nil
}
