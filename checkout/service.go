package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a12frin-shagufta/vanshika-pearl/models"
)

// Service hands finished carts off to the backend: it creates the order and
// requests a hosted payment session. No payment logic lives here; the backend
// and its gateway own all of that.
type Service struct {
	baseURL string
	http    *http.Client
}

func NewService(baseURL string) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// PlaceOrder posts the order payload to the backend and returns the created
// order id.
func (s *Service) PlaceOrder(ctx context.Context, order models.OrderRequest) (string, error) {
	var out struct {
		Success bool   `json:"success"`
		OrderID string `json:"orderId"`
		Message string `json:"message"`
	}
	if err := s.postJSON(ctx, "/api/order/create", order, &out); err != nil {
		return "", err
	}
	if !out.Success {
		if out.Message == "" {
			out.Message = "order creation failed"
		}
		return "", fmt.Errorf("backend rejected order: %s", out.Message)
	}
	if out.OrderID == "" {
		return "", fmt.Errorf("backend did not return an order id")
	}
	return out.OrderID, nil
}

// CreatePaymentSession asks the backend for a hosted checkout URL for the
// given order. redirectPath is where the gateway sends the customer after
// payment.
func (s *Service) CreatePaymentSession(ctx context.Context, orderID, redirectPath string) (string, error) {
	payload := map[string]string{
		"orderId":      orderID,
		"redirectPath": redirectPath,
	}
	var out struct {
		Success     bool   `json:"success"`
		CheckoutURL string `json:"checkoutUrl"`
		Message     string `json:"message"`
	}
	if err := s.postJSON(ctx, "/api/order/payment/stripe-checkout", payload, &out); err != nil {
		return "", err
	}
	if !out.Success || out.CheckoutURL == "" {
		if out.Message == "" {
			out.Message = "no checkout URL returned"
		}
		return "", fmt.Errorf("payment session failed: %s", out.Message)
	}
	return out.CheckoutURL, nil
}

func (s *Service) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize payload for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend at %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response from %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend error on %s (%d): %s", path, resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse backend response from %s: %w", path, err)
	}
	return nil
}
