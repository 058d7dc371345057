package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusPending Status = "pending"
)

const Currency = "ETB"

type Provider interface {
	Initialize(ctx context.Context, req InitializeRequest) (*Checkout, error)
	Verify(ctx context.Context, reference string) (*Verification, error)
}

type InitializeRequest struct {
	Reference   string
	UserID      int64
	Coins       decimal.Decimal
	Amount      decimal.Decimal
	CallbackURL string
	ReturnURL   string
}

type Checkout struct {
	CheckoutURL string `json:"checkout_url"`
}

type Metadata struct {
	UserID json.Number     `json:"user_id"`
	Coins  decimal.Decimal `json:"coins"`
	Type   string          `json:"type,omitempty"`
}

// Verification is the provider's view of a payment. Only a verification
// fetched server-side is ever used to credit coins.
type Verification struct {
	Reference string   `json:"tx_ref"`
	Status    Status   `json:"status"`
	Message   string   `json:"message,omitempty"`
	Metadata  Metadata `json:"metadata"`
}

// UserID parses the user id echoed back in the payment metadata.
func (v *Verification) UserID() (int64, error) {
	id, err := strconv.ParseInt(v.Metadata.UserID.String(), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user_id in payment metadata: %q", v.Metadata.UserID)
	}
	return id, nil
}

type initializeBody struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	TxRef       string          `json:"tx_ref"`
	CallbackURL string          `json:"callback_url,omitempty"`
	ReturnURL   string          `json:"return_url,omitempty"`
	Metadata    Metadata        `json:"metadata"`
}

type initializeResponse struct {
	Status  Status   `json:"status"`
	Message string   `json:"message"`
	Data    Checkout `json:"data"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

func (c *Client) Initialize(ctx context.Context, in InitializeRequest) (*Checkout, error) {
	if !c.configured() {
		return nil, apperrors.ErrProviderNotConfigured
	}

	body, err := json.Marshal(initializeBody{
		Amount:      in.Amount,
		Currency:    Currency,
		TxRef:       in.Reference,
		CallbackURL: in.CallbackURL,
		ReturnURL:   in.ReturnURL,
		Metadata: Metadata{
			UserID: json.Number(strconv.FormatInt(in.UserID, 10)),
			Coins:  in.Coins,
			Type:   "coin_purchase",
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var result initializeResponse
	if _, err := c.do(req, &result); err != nil {
		return nil, err
	}
	if result.Status != StatusSuccess || result.Data.CheckoutURL == "" {
		return nil, fmt.Errorf("payment initialization rejected: %s", result.Message)
	}
	return &result.Data, nil
}

func (c *Client) Verify(ctx context.Context, reference string) (*Verification, error) {
	if !c.configured() {
		return nil, apperrors.ErrProviderNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v1/transaction/verify/%s", c.baseURL, url.PathEscape(reference)), nil)
	if err != nil {
		return nil, err
	}

	var result Verification
	status, err := c.do(req, &result)
	if status == http.StatusNotFound {
		return nil, apperrors.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	if result.Reference == "" {
		result.Reference = reference
	}
	return &result, nil
}

func (c *Client) do(req *http.Request, out any) (int, error) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Log.Error("failed to close provider response body", zap.Error(err))
		}
	}(resp.Body)

	logger.Log.Debug("payment provider response",
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, err
	}
	return resp.StatusCode, nil
}
