package paymentgateway

import "context"

// MockGateway is a configurable in-memory Gateway used by tests and local
// development without processor credentials. It records every call it
// receives.
type MockGateway struct {
	CardResult *CardChargeResult
	CardErr    error
	PixResult  *PixChargeResult
	PixErr     error
	GetResult  *PaymentInfo
	GetErr     error

	CardCalls []CardCharge
	PixCalls  []PixCharge
	GetCalls  []int64
}

func NewMockGateway() *MockGateway {
	return &MockGateway{
		CardResult: &CardChargeResult{ID: 1, Status: "approved", StatusDetail: "accredited"},
		PixResult: &PixChargeResult{
			ID:           1,
			Status:       "pending",
			QRCode:       "00020126mockqrcode",
			QRCodeBase64: "bW9ja3FyY29kZQ==",
		},
		GetResult: &PaymentInfo{ID: 1, Status: "approved"},
	}
}

var _ Gateway = (*MockGateway)(nil)

func (m *MockGateway) CreateCardPayment(ctx context.Context, charge CardCharge) (*CardChargeResult, error) {
	m.CardCalls = append(m.CardCalls, charge)
	if m.CardErr != nil {
		return nil, m.CardErr
	}
	return m.CardResult, nil
}

func (m *MockGateway) CreatePixPayment(ctx context.Context, charge PixCharge) (*PixChargeResult, error) {
	m.PixCalls = append(m.PixCalls, charge)
	if m.PixErr != nil {
		return nil, m.PixErr
	}
	return m.PixResult, nil
}

func (m *MockGateway) GetPayment(ctx context.Context, paymentID int64) (*PaymentInfo, error) {
	m.GetCalls = append(m.GetCalls, paymentID)
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetResult != nil {
		info := *m.GetResult
		info.ID = paymentID
		return &info, nil
	}
	return &PaymentInfo{ID: paymentID, Status: "approved"}, nil
}
