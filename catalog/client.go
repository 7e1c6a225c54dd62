package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a12frin-shagufta/vanshika-pearl/models"
)

// Client fetches catalog data from the upstream backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a catalog client for the backend at baseURL. The embedded
// HTTP client carries a timeout so a stalled backend cannot hang a load
// forever.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchProducts returns the backend's full product list.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var out struct {
		Products []models.Product `json:"products"`
	}
	if err := c.getJSON(ctx, "/api/product/list", &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// FetchActiveOffers returns the offers the backend considers active. They are
// still re-filtered locally for expiry.
func (c *Client) FetchActiveOffers(ctx context.Context) ([]models.Offer, error) {
	var out struct {
		Offers []models.Offer `json:"offers"`
	}
	if err := c.getJSON(ctx, "/api/offer/active", &out); err != nil {
		return nil, err
	}
	return out.Offers, nil
}

// FetchCategories returns the backend's category list.
func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var out struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.getJSON(ctx, "/api/category/list", &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
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
