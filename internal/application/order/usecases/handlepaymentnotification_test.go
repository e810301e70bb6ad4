package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruzetta/kitpay/internal/application/order/paymentgateway"
	"github.com/cruzetta/kitpay/internal/domain/order"
	vo "github.com/cruzetta/kitpay/internal/domain/order/valueobjects"
)

func seedOrderWithPayment(t *testing.T, repo *fakeOrderRepo, id string, paymentID int64) *order.Order {
	t.Helper()
	ord := seedOrder(t, repo, id)
	require.NoError(t, ord.AttachPixPayment(paymentID))
	return ord
}

func TestHandlePaymentNotification_NotApplicable(t *testing.T) {
	tests := []struct {
		name string
		cmd  PaymentNotificationCommand
	}{
		{"non-payment type", PaymentNotificationCommand{Type: "plan", PaymentID: 999}},
		{"missing payment id", PaymentNotificationCommand{Type: "payment", PaymentID: 0}},
		{"empty type", PaymentNotificationCommand{PaymentID: 999}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeOrderRepo()
			gateway := paymentgateway.NewMockGateway()
			uc := NewHandlePaymentNotificationUseCase(repo, gateway, testLogger())

			result, err := uc.Execute(context.Background(), tt.cmd)

			require.NoError(t, err)
			assert.False(t, result.Applicable)
			assert.Empty(t, gateway.GetCalls)
			assert.Equal(t, 0, repo.updateCalls)
		})
	}
}

func TestHandlePaymentNotification_NoMatchingOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	gateway := paymentgateway.NewMockGateway()
	uc := NewHandlePaymentNotificationUseCase(repo, gateway, testLogger())

	result, err := uc.Execute(context.Background(), PaymentNotificationCommand{Type: "payment", PaymentID: 999})

	require.NoError(t, err)
	assert.True(t, result.Applicable)
	assert.False(t, result.OrderFound)
	assert.Equal(t, []int64{999}, gateway.GetCalls)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestHandlePaymentNotification_AppliesApproved(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := seedOrderWithPayment(t, repo, "ord1", 999)
	gateway := paymentgateway.NewMockGateway()
	gateway.GetResult = &paymentgateway.PaymentInfo{Status: "approved"}
	uc := NewHandlePaymentNotificationUseCase(repo, gateway, testLogger())

	result, err := uc.Execute(context.Background(), PaymentNotificationCommand{Type: "payment", PaymentID: 999})

	require.NoError(t, err)
	assert.True(t, result.OrderFound)
	assert.Equal(t, 1, result.OrdersUpdated)
	assert.Equal(t, vo.PaymentStatusApproved, result.Status)
	assert.Equal(t, vo.PaymentStatusApproved, ord.PaymentStatus())
	assert.Equal(t, 1, repo.updateCalls)
}

func TestHandlePaymentNotification_AppliesRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := seedOrderWithPayment(t, repo, "ord1", 999)
	gateway := paymentgateway.NewMockGateway()
	gateway.GetResult = &paymentgateway.PaymentInfo{Status: "rejected"}
	uc := NewHandlePaymentNotificationUseCase(repo, gateway, testLogger())

	result, err := uc.Execute(context.Background(), PaymentNotificationCommand{Type: "payment", PaymentID: 999})

	require.NoError(t, err)
	assert.Equal(t, 1, result.OrdersUpdated)
	assert.Equal(t, vo.PaymentStatusRejected, ord.PaymentStatus())
}

func TestHandlePaymentNotification_PendingNeverWritten(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := seedOrderWithPayment(t, repo, "ord1", 999)
	gateway := paymentgateway.NewMockGateway()
	gateway.GetResult = &paymentgateway.PaymentInfo{Status: "pending"}
	uc := NewHandlePaymentNotificationUseCase(repo, gateway, testLogger())

	result, err := uc.Execute(context.Background(), PaymentNotificationCommand{Type: "payment", PaymentID: 999})

	require.NoError(t, err)
	assert.True(t, result.OrderFound)
	assert.Equal(t, 0, result.OrdersUpdated)
	assert.Equal(t, vo.PaymentStatusPending, ord.PaymentStatus())
	assert.Equal(t, 0, repo.updateCalls)
}

func TestHandlePaymentNotification_TerminalNeverOverwritten(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := seedOrderWithPayment(t, repo, "ord1", 999)
	require.True(t, ord.ApplyGatewayStatus(vo.PaymentStatusApproved))

	gateway := paymentgateway.NewMockGateway()
	gateway.GetResult = &paymentgateway.PaymentInfo{Status: "cancelled"}
	uc := NewHandlePaymentNotificationUseCase(repo, gateway, testLogger())

	result, err := uc.Execute(context.Background(), PaymentNotificationCommand{Type: "payment", PaymentID: 999})

	require.NoError(t, err)
	assert.Equal(t, 0, result.OrdersUpdated)
	assert.Equal(t, vo.PaymentStatusApproved, ord.PaymentStatus())
}

func TestHandlePaymentNotification_GatewayFailure(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrderWithPayment(t, repo, "ord1", 999)
	gateway := paymentgateway.NewMockGateway()
	gateway.GetErr = assert.AnError
	uc := NewHandlePaymentNotificationUseCase(repo, gateway, testLogger())

	result, err := uc.Execute(context.Background(), PaymentNotificationCommand{Type: "payment", PaymentID: 999})

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestHandlePaymentNotification_UpdateFailure(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrderWithPayment(t, repo, "ord1", 999)
	repo.updateErr = assert.AnError
	gateway := paymentgateway.NewMockGateway()
	gateway.GetResult = &paymentgateway.PaymentInfo{Status: "approved"}
	uc := NewHandlePaymentNotificationUseCase(repo, gateway, testLogger())

	result, err := uc.Execute(context.Background(), PaymentNotificationCommand{Type: "payment", PaymentID: 999})

	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestHandlePaymentNotification_UpdatesAllMatches(t *testing.T) {
	repo := newFakeOrderRepo()
	ord1 := seedOrderWithPayment(t, repo, "ord1", 999)
	ord2 := seedOrderWithPayment(t, repo, "ord2", 999)
	gateway := paymentgateway.NewMockGateway()
	gateway.GetResult = &paymentgateway.PaymentInfo{Status: "cancelled"}
	uc := NewHandlePaymentNotificationUseCase(repo, gateway, testLogger())

	result, err := uc.Execute(context.Background(), PaymentNotificationCommand{Type: "payment", PaymentID: 999})

	require.NoError(t, err)
	assert.Equal(t, 2, result.OrdersUpdated)
	assert.Equal(t, vo.PaymentStatusCancelled, ord1.PaymentStatus())
	assert.Equal(t, vo.PaymentStatusCancelled, ord2.PaymentStatus())
}
