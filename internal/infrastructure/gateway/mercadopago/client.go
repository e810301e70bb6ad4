// Package mercadopago implements the payment gateway port against the
// Mercado Pago payments REST API.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cruzetta/kitpay/internal/application/order/paymentgateway"
	apperrors "github.com/cruzetta/kitpay/internal/shared/errors"
	"github.com/cruzetta/kitpay/internal/shared/logger"
)

const (
	defaultBaseURL = "https://api.mercadopago.com"
	// HTTP request timeout
	requestTimeout = 10 * time.Second
	// Maximum response body size (256KB)
	maxResponseSize = 256 << 10
)

// Client calls the Mercado Pago payments API. Pure request/response,
// no retained state; safe for concurrent use.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      logger.Interface
}

func NewClient(accessToken, baseURL string, logger logger.Interface) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

var _ paymentgateway.Gateway = (*Client)(nil)

type payerIdentification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type paymentPayer struct {
	Email          string               `json:"email"`
	FirstName      string               `json:"first_name,omitempty"`
	LastName       string               `json:"last_name,omitempty"`
	Identification *payerIdentification `json:"identification,omitempty"`
}

type paymentRequest struct {
	TransactionAmount float64      `json:"transaction_amount"`
	Description       string       `json:"description"`
	Token             string       `json:"token,omitempty"`
	Installments      int          `json:"installments,omitempty"`
	PaymentMethodID   string       `json:"payment_method_id"`
	IssuerID          string       `json:"issuer_id,omitempty"`
	Payer             paymentPayer `json:"payer"`
	NotificationURL   string       `json:"notification_url,omitempty"`
}

type transactionData struct {
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
}

type pointOfInteraction struct {
	TransactionData transactionData `json:"transaction_data"`
}

type paymentResponse struct {
	ID                 int64               `json:"id"`
	Status             string              `json:"status"`
	StatusDetail       string              `json:"status_detail"`
	PointOfInteraction *pointOfInteraction `json:"point_of_interaction"`
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}

// CreateCardPayment submits a tokenized card charge.
func (c *Client) CreateCardPayment(ctx context.Context, charge paymentgateway.CardCharge) (*paymentgateway.CardChargeResult, error) {
	req := paymentRequest{
		TransactionAmount: charge.Amount.AmountInReais(),
		Description:       charge.Description,
		Token:             charge.Token,
		Installments:      charge.Installments,
		PaymentMethodID:   charge.PaymentMethodID,
		IssuerID:          charge.IssuerID,
		Payer: paymentPayer{
			Email:     charge.PayerEmail,
			FirstName: charge.PayerFirstName,
			LastName:  charge.PayerLastName,
		},
		NotificationURL: charge.NotificationURL,
	}

	resp, err := c.createPayment(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.ID == 0 {
		return nil, apperrors.NewUpstreamError("payment id not returned by the processor")
	}

	return &paymentgateway.CardChargeResult{
		ID:           resp.ID,
		Status:       resp.Status,
		StatusDetail: resp.StatusDetail,
	}, nil
}

// CreatePixPayment submits a PIX charge and returns the QR payload.
func (c *Client) CreatePixPayment(ctx context.Context, charge paymentgateway.PixCharge) (*paymentgateway.PixChargeResult, error) {
	req := paymentRequest{
		TransactionAmount: charge.Amount.AmountInReais(),
		Description:       charge.Description,
		PaymentMethodID:   "pix",
		Payer: paymentPayer{
			Email: charge.PayerEmail,
			Identification: &payerIdentification{
				Type:   "CPF",
				Number: charge.PayerCPF,
			},
		},
		NotificationURL: charge.NotificationURL,
	}

	resp, err := c.createPayment(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.ID == 0 || resp.PointOfInteraction == nil {
		return nil, apperrors.NewUpstreamError("PIX data not returned by the processor")
	}

	return &paymentgateway.PixChargeResult{
		ID:           resp.ID,
		Status:       resp.Status,
		QRCode:       resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: resp.PointOfInteraction.TransactionData.QRCodeBase64,
	}, nil
}

// GetPayment fetches the authoritative payment state.
func (c *Client) GetPayment(ctx context.Context, paymentID int64) (*paymentgateway.PaymentInfo, error) {
	url := fmt.Sprintf("%s/v1/payments/%d", c.baseURL, paymentID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment lookup request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	var resp paymentResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}

	if resp.ID == 0 {
		return nil, apperrors.NewUpstreamError("payment not returned by the processor")
	}

	return &paymentgateway.PaymentInfo{
		ID:     resp.ID,
		Status: resp.Status,
	}, nil
}

func (c *Client) createPayment(ctx context.Context, req paymentRequest) (*paymentResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build payment request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")
	// The API requires an idempotency key per create call. A fresh key per
	// request keeps dedup entirely on the processor's side.
	httpReq.Header.Set("X-Idempotency-Key", uuid.NewString())

	var resp paymentResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// do executes the request and decodes the response into out, mapping
// non-2xx responses to upstream errors carrying the API message.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError("payment processor unreachable", err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return apperrors.NewUpstreamError("failed to read processor response", err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		message := fmt.Sprintf("processor returned status %d", resp.StatusCode)
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Message != "" {
			message = apiErr.Message
		}

		c.logger.Warnw("payment processor rejected request",
			"status", resp.StatusCode,
			"path", req.URL.Path,
			"message", message,
		)

		return apperrors.NewUpstreamError(message, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.NewUpstreamError("failed to decode processor response", err.Error())
	}

	return nil
}
