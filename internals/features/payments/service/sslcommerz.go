package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	sandboxBaseURL = "https://sandbox.sslcommerz.com"
	liveBaseURL    = "https://securepay.sslcommerz.com"

	sessionPath = "/gwprocess/v4/api.php"
)

// Gateway is the package-level SSLCommerz client, initialized once from main.
var Gateway *Client

// InitSSLCommerz initializes the SSLCommerz client with the store credentials.
func InitSSLCommerz(storeID, storePass string, sandbox bool) {
	base := liveBaseURL
	if sandbox {
		base = sandboxBaseURL
	}
	Gateway = NewClient(storeID, storePass, base)
}

type Client struct {
	storeID    string
	storePass  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(storeID, storePass, baseURL string) *Client {
	return &Client{
		storeID:    storeID,
		storePass:  storePass,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SessionRequest carries everything the v4 session API needs for one order.
type SessionRequest struct {
	TransactionID   string
	Amount          float64
	Currency        string
	ProductName     string
	ProductCategory string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	SuccessURL      string
	FailURL         string
	CancelURL       string
	IPNURL          string
}

type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// CreateSession posts the order to the SSLCommerz session API and returns the
// gateway page URL the buyer is redirected to.
func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (string, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePass)
	form.Set("tran_id", req.TransactionID)
	form.Set("total_amount", fmt.Sprintf("%.2f", req.Amount))
	form.Set("currency", req.Currency)
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("ipn_url", req.IPNURL)

	form.Set("product_name", req.ProductName)
	form.Set("product_category", req.ProductCategory)
	form.Set("product_profile", "general")

	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)
	form.Set("cus_phone", req.CustomerPhone)
	form.Set("cus_add1", req.CustomerAddress)
	form.Set("cus_city", "Dhaka")
	form.Set("cus_country", "Bangladesh")

	// Digital tickets: fixed shipping placeholders required by the API.
	form.Set("shipping_method", "NO")
	form.Set("ship_name", req.CustomerName)
	form.Set("ship_add1", req.CustomerAddress)
	form.Set("ship_city", "Dhaka")
	form.Set("ship_postcode", "1000")
	form.Set("ship_country", "Bangladesh")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+sessionPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sslcommerz session request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("sslcommerz session request: unexpected status %d", resp.StatusCode)
	}

	var body sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("sslcommerz session response: %w", err)
	}
	if !strings.EqualFold(body.Status, "SUCCESS") || body.GatewayPageURL == "" {
		reason := body.FailedReason
		if reason == "" {
			reason = "no gateway URL returned"
		}
		return "", fmt.Errorf("sslcommerz session rejected: %s", reason)
	}
	return body.GatewayPageURL, nil
}
