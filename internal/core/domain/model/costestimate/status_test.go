package costestimate_test

import (
	"testing"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Transitions(t *testing.T) {
	open := map[costestimate.Status]bool{costestimate.Draft: true, costestimate.PendingApproval: true}

	for _, status := range costestimate.Statuses() {
		t.Run(status.String(), func(t *testing.T) {
			approved, approveErr := status.Approve()
			rejected, rejectErr := status.Reject()

			if open[status] {
				require.NoError(t, approveErr)
				require.NoError(t, rejectErr)
				assert.Equal(t, costestimate.Approved, approved)
				assert.Equal(t, costestimate.Rejected, rejected)
				return
			}
			require.ErrorIs(t, approveErr, errs.ErrGuardFailed)
			require.ErrorIs(t, rejectErr, errs.ErrGuardFailed)
		})
	}
}

func TestStatus_Predicates(t *testing.T) {
	for _, status := range costestimate.Statuses() {
		assert.Equal(t, status == costestimate.Draft, status.CanBeRevised(), status.String())
		assert.Equal(t, status == costestimate.Draft, status.CanBeDeleted(), status.String())
	}
	require.NoError(t, costestimate.Approved.ValidateApprovalMarkers(true))
	require.Error(t, costestimate.Approved.ValidateApprovalMarkers(false))
	require.Error(t, costestimate.Rejected.ValidateApprovalMarkers(true))
}

func TestStatus_Codes(t *testing.T) {
	for _, status := range costestimate.Statuses() {
		parsed, err := costestimate.StatusFromCode(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
	assert.Equal(t, "Pending Approval", costestimate.PendingApproval.DisplayName())
	_, err := costestimate.StatusFromCode("void")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestType_Codes(t *testing.T) {
	for _, typ := range costestimate.Types() {
		parsed, err := costestimate.TypeFromCode(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
	assert.Equal(t, "bill_of_quantities", costestimate.TypeBillOfQuantities.String())
	assert.Equal(t, "Bill of Quantities", costestimate.TypeBillOfQuantities.DisplayName())
	assert.Equal(t, "Cost Estimate", costestimate.TypeCostEstimate.DisplayName())
	require.Error(t, costestimate.UnknownType.Validate())
}
