package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cruzetta/kitpay/internal/shared/errors"
)

func validCreateOrderCommand() CreateOrderCommand {
	return CreateOrderCommand{
		BuyerName:    "Ana Silva",
		BuyerEmail:   "ana@example.com",
		BuyerCelular: "+5511999990000",
		Kits:         json.RawMessage(`[{"size":"M","quantity":2}]`),
		TotalPrice:   150,
	}
}

func TestCreateOrderUseCase_Execute_Success(t *testing.T) {
	repo := newFakeOrderRepo()
	tx := &fakeTxManager{}
	uc := NewCreateOrderUseCase(repo, tx, testLogger())

	result, err := uc.Execute(context.Background(), validCreateOrderCommand())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.OrderID)
	assert.False(t, result.CreatedAt.IsZero())
	assert.Equal(t, 1, tx.calls)

	stored, err := repo.GetByID(context.Background(), result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "kit_order", stored.PurchaseType())
	assert.Equal(t, "pending", stored.PaymentStatus().String())
	assert.Equal(t, int64(15000), stored.TotalPrice().AmountInCents())
}

func TestCreateOrderUseCase_Execute_GeneratesUniqueIDs(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := NewCreateOrderUseCase(repo, &fakeTxManager{}, testLogger())

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		result, err := uc.Execute(context.Background(), validCreateOrderCommand())
		require.NoError(t, err)
		assert.False(t, seen[result.OrderID])
		seen[result.OrderID] = true
	}
}

func TestCreateOrderUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cmd *CreateOrderCommand)
	}{
		{"missing buyer name", func(cmd *CreateOrderCommand) { cmd.BuyerName = "" }},
		{"missing buyer email", func(cmd *CreateOrderCommand) { cmd.BuyerEmail = "" }},
		{"missing kits", func(cmd *CreateOrderCommand) { cmd.Kits = nil }},
		{"zero total", func(cmd *CreateOrderCommand) { cmd.TotalPrice = 0 }},
		{"negative total", func(cmd *CreateOrderCommand) { cmd.TotalPrice = -1 }},
		{"malformed cpf", func(cmd *CreateOrderCommand) { cmd.BuyerCPF = "123" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeOrderRepo()
			uc := NewCreateOrderUseCase(repo, &fakeTxManager{}, testLogger())

			cmd := validCreateOrderCommand()
			tt.mutate(&cmd)

			result, err := uc.Execute(context.Background(), cmd)

			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Equal(t, 0, repo.createCalls)
		})
	}
}

func TestCreateOrderUseCase_Execute_NormalizesCPF(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := NewCreateOrderUseCase(repo, &fakeTxManager{}, testLogger())

	cmd := validCreateOrderCommand()
	cmd.BuyerCPF = "123.456.789-00"

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), result.OrderID)
	require.NoError(t, err)
	require.NotNil(t, stored.BuyerCPF())
	assert.Equal(t, "12345678900", stored.BuyerCPF().String())
}

func TestCreateOrderUseCase_Execute_StoreFailure(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.createErr = assert.AnError
	uc := NewCreateOrderUseCase(repo, &fakeTxManager{}, testLogger())

	result, err := uc.Execute(context.Background(), validCreateOrderCommand())

	assert.Nil(t, result)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestCreateOrderUseCase_Execute_ConflictPassesThrough(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.createErr = apperrors.NewConflictError("order already exists")
	uc := NewCreateOrderUseCase(repo, &fakeTxManager{}, testLogger())

	_, err := uc.Execute(context.Background(), validCreateOrderCommand())

	assert.True(t, apperrors.IsConflictError(err))
}
