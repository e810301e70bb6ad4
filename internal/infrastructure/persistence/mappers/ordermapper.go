package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/cruzetta/kitpay/internal/domain/order"
	vo "github.com/cruzetta/kitpay/internal/domain/order/valueobjects"
	"github.com/cruzetta/kitpay/internal/infrastructure/persistence/models"
)

func OrderToModel(o *order.Order) *models.OrderModel {
	model := &models.OrderModel{
		ID:            o.ID(),
		BuyerName:     o.BuyerName(),
		BuyerEmail:    o.BuyerEmail(),
		BuyerCelular:  o.BuyerCelular(),
		Kits:          datatypes.JSON(o.Kits()),
		TotalPrice:    o.TotalPrice().AmountInCents(),
		Currency:      o.TotalPrice().Currency(),
		PurchaseType:  o.PurchaseType(),
		PaymentID:     o.PaymentID(),
		PaymentStatus: o.PaymentStatus().String(),
		PaymentMethod: o.PaymentMethod(),
		Installments:  o.Installments(),
		Version:       o.Version(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}

	if cpf := o.BuyerCPF(); cpf != nil {
		s := cpf.String()
		model.BuyerCPF = &s
	}

	return model
}

func OrderToDomain(model *models.OrderModel) (*order.Order, error) {
	var cpf *vo.CPF
	if model.BuyerCPF != nil {
		normalized, err := vo.NewCPF(*model.BuyerCPF)
		if err != nil {
			return nil, fmt.Errorf("invalid stored CPF: %w", err)
		}
		cpf = &normalized
	}

	return order.Reconstruct(order.ReconstructParams{
		ID:            model.ID,
		BuyerName:     model.BuyerName,
		BuyerEmail:    model.BuyerEmail,
		BuyerCelular:  model.BuyerCelular,
		BuyerCPF:      cpf,
		Kits:          json.RawMessage(model.Kits),
		TotalPrice:    vo.NewMoney(model.TotalPrice, model.Currency),
		PurchaseType:  model.PurchaseType,
		PaymentID:     model.PaymentID,
		PaymentStatus: vo.PaymentStatus(model.PaymentStatus),
		PaymentMethod: model.PaymentMethod,
		Installments:  model.Installments,
		Version:       model.Version,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}), nil
}
