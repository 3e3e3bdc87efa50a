package types

// bridge events
const (
	EventTypeTransfer        = "bridge_transfer"
	EventTypeContractCall    = "bridge_contract_call"
	EventTypeUnfreezeWrapped = "bridge_unfreeze_wrapped"
	EventTypeLockAsset       = "bridge_lock_asset"
	EventTypeConfirmation    = "bridge_confirmation"
	EventTypePayloadMismatch = "bridge_payload_mismatch"
	EventTypeActionExecuted  = "bridge_action_executed"
	EventTypeActionPruned    = "bridge_action_pruned"
	EventTypeParamsUpdated   = "bridge_params_updated"

	AttributeKeyActionID       = "action_id"
	AttributeKeySender         = "sender"
	AttributeKeyDestination    = "destination"
	AttributeKeyAmount         = "amount"
	AttributeKeyDenom          = "denom"
	AttributeKeyEndpoint       = "endpoint"
	AttributeKeyArgs           = "args"
	AttributeKeyClassID        = "class_id"
	AttributeKeyNFTID          = "nft_id"
	AttributeKeyValidator      = "validator"
	AttributeKeyPayloadType    = "payload_type"
	AttributeKeyPayload        = "payload"
	AttributeKeyStoredPayload  = "stored_payload"
	AttributeKeyOutcome        = "outcome"
	AttributeKeyConfirmations  = "confirmations"
	AttributeKeyThreshold      = "threshold"
	AttributeKeyValidatorCount = "validator_count"
	AttributeKeyAuthority      = "authority"
)
