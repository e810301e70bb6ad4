package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cruzetta/kitpay/internal/domain/order"
	"github.com/cruzetta/kitpay/internal/infrastructure/persistence/mappers"
	"github.com/cruzetta/kitpay/internal/infrastructure/persistence/models"
	"github.com/cruzetta/kitpay/internal/shared/db"
	apperrors "github.com/cruzetta/kitpay/internal/shared/errors"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ order.Repository = (*OrderRepository)(nil)

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model := mappers.OrderToModel(o)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("order already exists", o.ID())
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	model := mappers.OrderToModel(o)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"buyer_cpf":      model.BuyerCPF,
			"payment_id":     model.PaymentID,
			"payment_status": model.PaymentStatus,
			"payment_method": model.PaymentMethod,
			"installments":   model.Installments,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// RowsAffected can be 0 when values are unchanged; only report
		// not-found when the row is genuinely absent.
		var count int64
		if err := db.GetTxFromContext(ctx, r.db).
			Model(&models.OrderModel{}).
			Where("id = ?", model.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to verify order existence: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("order not found", model.ID)
		}
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	var model models.OrderModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order not found", id)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return mappers.OrderToDomain(&model)
}

func (r *OrderRepository) FindByPaymentID(ctx context.Context, paymentID int64) ([]*order.Order, error) {
	var orderModels []models.OrderModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("payment_id = ?", paymentID).
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders by payment_id: %w", err)
	}

	orders := make([]*order.Order, len(orderModels))
	for i, model := range orderModels {
		o, err := mappers.OrderToDomain(&model)
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}

	return orders, nil
}
