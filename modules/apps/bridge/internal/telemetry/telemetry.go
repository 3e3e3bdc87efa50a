package telemetry

import (
	"strconv"

	"github.com/hashicorp/go-metrics"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/telemetry"

	"github.com/actionbridge/bridge/modules/apps/bridge/types"
)

const (
	LabelPayloadType = "payload_type"
	LabelOutcome     = "outcome"
	LabelPruned      = "pruned"
	LabelKind        = "kind"
	LabelDenom       = "denom"
)

// Outbound action kinds.
const (
	KindTransfer        = "transfer"
	KindContractCall    = "contract_call"
	KindWithdrawWrapped = "withdraw_wrapped"
	KindLockAsset       = "lock_asset"
)

// ReportConfirmation counts accepted confirmations by payload type and outcome.
func ReportConfirmation(payloadType string, result types.ConfirmResult) {
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "confirmation"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(LabelPayloadType, payloadType),
			telemetry.NewLabel(LabelOutcome, result.Outcome.String()),
			telemetry.NewLabel(LabelPruned, strconv.FormatBool(result.Pruned)),
		},
	)
}

// ReportPayloadMismatch counts confirmations whose payload differs from the stored one.
func ReportPayloadMismatch(storedType, submittedType string) {
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "confirmation", "payload_mismatch"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(LabelPayloadType, storedType),
			telemetry.NewLabel("submitted_"+LabelPayloadType, submittedType),
		},
	)
}

// ReportExecution counts executed inbound actions.
func ReportExecution(payloadType string) {
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "execute"},
		1,
		[]metrics.Label{telemetry.NewLabel(LabelPayloadType, payloadType)},
	)
}

// ReportOutbound counts outbound actions by kind. Fungible amounts are also
// reported as a gauge when they fit an int64.
func ReportOutbound(kind, denom string, amount sdkmath.Int) {
	if denom != "" && !amount.IsNil() && amount.IsInt64() {
		telemetry.SetGaugeWithLabels(
			[]string{"tx", "msg", types.ModuleName, kind},
			float32(amount.Int64()),
			[]metrics.Label{telemetry.NewLabel(LabelDenom, denom)},
		)
	}

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "outbound"},
		1,
		[]metrics.Label{telemetry.NewLabel(LabelKind, kind)},
	)
}
