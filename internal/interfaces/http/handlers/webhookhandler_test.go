package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruzetta/kitpay/internal/application/order/usecases"
	vo "github.com/cruzetta/kitpay/internal/domain/order/valueobjects"
	"github.com/cruzetta/kitpay/internal/interfaces/http/handlers/testutil"
)

type mockNotificationUC struct {
	result *usecases.PaymentNotificationResult
	err    error
	gotCmd usecases.PaymentNotificationCommand
	called bool
}

func (m *mockNotificationUC) Execute(ctx context.Context, cmd usecases.PaymentNotificationCommand) (*usecases.PaymentNotificationResult, error) {
	m.called = true
	m.gotCmd = cmd
	return m.result, m.err
}

func TestWebhookHandler_AppliedNotification(t *testing.T) {
	uc := &mockNotificationUC{
		result: &usecases.PaymentNotificationResult{
			Applicable:    true,
			OrderFound:    true,
			Status:        vo.PaymentStatusApproved,
			OrdersUpdated: 1,
		},
	}
	handler := NewWebhookHandler(uc, testutil.QuietLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/webhooks/mercadopago", map[string]interface{}{
		"type": "payment",
		"data": map[string]interface{}{"id": 999},
	})
	handler.HandleNotification(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "payment", uc.gotCmd.Type)
	assert.Equal(t, int64(999), uc.gotCmd.PaymentID)
}

func TestWebhookHandler_StringPaymentID(t *testing.T) {
	uc := &mockNotificationUC{
		result: &usecases.PaymentNotificationResult{Applicable: true, OrderFound: true, OrdersUpdated: 1},
	}
	handler := NewWebhookHandler(uc, testutil.QuietLogger())

	c, w := testutil.NewTestContextRaw(http.MethodPost, "/webhooks/mercadopago",
		`{"type":"payment","data":{"id":"999"}}`)
	handler.HandleNotification(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(999), uc.gotCmd.PaymentID)
}

func TestWebhookHandler_NonPaymentType(t *testing.T) {
	uc := &mockNotificationUC{
		result: &usecases.PaymentNotificationResult{Applicable: false},
	}
	handler := NewWebhookHandler(uc, testutil.QuietLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/webhooks/mercadopago", map[string]interface{}{
		"type": "plan",
		"data": map[string]interface{}{"id": 123},
	})
	handler.HandleNotification(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plan", uc.gotCmd.Type)
}

func TestWebhookHandler_NoMatchingOrderStill200(t *testing.T) {
	uc := &mockNotificationUC{
		result: &usecases.PaymentNotificationResult{Applicable: true, OrderFound: false},
	}
	handler := NewWebhookHandler(uc, testutil.QuietLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/webhooks/mercadopago", map[string]interface{}{
		"type": "payment",
		"data": map[string]interface{}{"id": 999},
	})
	handler.HandleNotification(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookHandler_MalformedBody(t *testing.T) {
	uc := &mockNotificationUC{
		result: &usecases.PaymentNotificationResult{Applicable: false},
	}
	handler := NewWebhookHandler(uc, testutil.QuietLogger())

	c, w := testutil.NewTestContextRaw(http.MethodPost, "/webhooks/mercadopago", "{not json at all")
	handler.HandleNotification(c)

	// Unparseable notifications are acknowledged, never retried.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, uc.called)
}

func TestWebhookHandler_NonNumericID(t *testing.T) {
	uc := &mockNotificationUC{
		result: &usecases.PaymentNotificationResult{Applicable: false},
	}
	handler := NewWebhookHandler(uc, testutil.QuietLogger())

	c, w := testutil.NewTestContextRaw(http.MethodPost, "/webhooks/mercadopago",
		`{"type":"payment","data":{"id":"abc"}}`)
	handler.HandleNotification(c)

	require.True(t, uc.called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), uc.gotCmd.PaymentID)
}

func TestWebhookHandler_ProcessingFailure(t *testing.T) {
	uc := &mockNotificationUC{err: assert.AnError}
	handler := NewWebhookHandler(uc, testutil.QuietLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/webhooks/mercadopago", map[string]interface{}{
		"type": "payment",
		"data": map[string]interface{}{"id": 999},
	})
	handler.HandleNotification(c)

	// A 500 tells the processor to retry the notification.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
