package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePurchaseOrderCommand_ValidInput(t *testing.T) {
	actorID, poID := kernel.NewUUID(), kernel.NewUUID()
	details := purchaseorder.Details{Title: "Toner", Priority: purchaseorder.High}

	cmd, err := commands.NewCreatePurchaseOrderCommand(actorID, poID, details)
	require.NoError(t, err)
	assert.Equal(t, actorID, cmd.ActorID())
	assert.Equal(t, poID, cmd.PurchaseOrderID())
	assert.Equal(t, details, cmd.Details())
	require.NoError(t, cmd.Validate())
}

func TestNewCreatePurchaseOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCreatePurchaseOrderCommand(kernel.UUID{}, kernel.UUID{}, purchaseorder.Details{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCommandsRequireConstructor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"validate", commands.ValidatePurchaseOrderCommand{}.Validate(), commands.ErrValidatePurchaseOrderCommandIsNotConstructed},
		{"complete", commands.CompletePurchaseOrderCommand{}.Validate(), commands.ErrCompletePurchaseOrderCommandIsNotConstructed},
		{"delete order", commands.DeletePurchaseOrderCommand{}.Validate(), commands.ErrDeletePurchaseOrderCommandIsNotConstructed},
		{"create estimate", commands.CreateCostEstimateCommand{}.Validate(), commands.ErrCreateCostEstimateCommandIsNotConstructed},
		{"approve", commands.ApproveCostEstimateCommand{}.Validate(), commands.ErrApproveCostEstimateCommandIsNotConstructed},
		{"reject", commands.RejectCostEstimateCommand{}.Validate(), commands.ErrRejectCostEstimateCommandIsNotConstructed},
		{"delete user", commands.DeleteUserCommand{}.Validate(), commands.ErrDeleteUserCommandIsNotConstructed},
		{"authenticate", commands.AuthenticateUserCommand{}.Validate(), commands.ErrAuthenticateUserCommandIsNotConstructed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.want)
		})
	}
}

func TestNewCreateCostEstimateCommand_CopiesItems(t *testing.T) {
	items := []costestimate.ItemSpec{itemSpec(t, "Desk", "1", "10")}
	cmd, err := commands.NewCreateCostEstimateCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		costestimate.Content{Title: "Desk"}, items)
	require.NoError(t, err)

	items[0].Description = "changed"
	assert.Equal(t, "Desk", cmd.Items()[0].Description)
}

func TestNewApproveCostEstimateCommand_TrimsNotes(t *testing.T) {
	cmd, err := commands.NewApproveCostEstimateCommand(kernel.NewUUID(), kernel.NewUUID(), "  fine \n")
	require.NoError(t, err)
	assert.Equal(t, "fine", cmd.Notes())
}

func TestNewAuthenticateUserCommand_RequiresBothFields(t *testing.T) {
	_, err := commands.NewAuthenticateUserCommand(" ", "")
	require.Error(t, err)

	var required *errs.ValueIsRequiredError
	require.ErrorAs(t, err, &required)
	assert.True(t, errs.IsValidation(err))
}
