package usecases

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cruzetta/kitpay/internal/domain/order"
	vo "github.com/cruzetta/kitpay/internal/domain/order/valueobjects"
	apperrors "github.com/cruzetta/kitpay/internal/shared/errors"
	"github.com/cruzetta/kitpay/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeOrderRepo is an in-memory order.Repository that counts writes.
type fakeOrderRepo struct {
	orders map[string]*order.Order

	createErr error
	updateErr error
	getErr    error
	findErr   error

	createCalls int
	updateCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*order.Order)}
}

var _ order.Repository = (*fakeOrderRepo)(nil)

func (r *fakeOrderRepo) Create(ctx context.Context, ord *order.Order) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.orders[ord.ID()]; exists {
		return apperrors.NewConflictError("order already exists")
	}
	r.orders[ord.ID()] = ord
	return nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, ord *order.Order) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, exists := r.orders[ord.ID()]; !exists {
		return apperrors.NewNotFoundError("order not found")
	}
	r.orders[ord.ID()] = ord
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*order.Order, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	ord, exists := r.orders[id]
	if !exists {
		return nil, apperrors.NewNotFoundError("order not found")
	}
	return ord, nil
}

func (r *fakeOrderRepo) FindByPaymentID(ctx context.Context, paymentID int64) ([]*order.Order, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var matches []*order.Order
	for _, ord := range r.orders {
		if ord.PaymentID() != nil && *ord.PaymentID() == paymentID {
			matches = append(matches, ord)
		}
	}
	return matches, nil
}

// fakeTxManager runs the function directly, without a real transaction.
type fakeTxManager struct {
	calls int
}

func (tm *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tm.calls++
	return fn(ctx)
}

func seedOrder(t *testing.T, repo *fakeOrderRepo, id string) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(id, "Ana Silva", "ana@example.com", "+5511999990000", nil,
		json.RawMessage(`[{"size":"M","quantity":1}]`), vo.NewMoneyFromReais(150))
	require.NoError(t, err)
	repo.orders[id] = ord
	return ord
}
