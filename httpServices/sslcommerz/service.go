package sslcommerz

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// CallbackStatusValid is the status sentinel the gateway sends on a
// successfully paid transaction.
const CallbackStatusValid = "VALID"

// Client talks to the hosted payment gateway's session API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	storeID    string
	storePass  string
}

func NewClient(baseURL, storeID, storePass string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   baseURL,
		storeID:   storeID,
		storePass: storePass,
	}
}

// CreateSession initiates a hosted payment session and returns the page URL
// the payer's browser should be redirected to.
func (c *Client) CreateSession(req SessionRequest) (*SessionResponse, error) {
	if c.storeID == "" || c.storePass == "" {
		return nil, errors.New("gateway store credentials are not configured")
	}

	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePass)
	form.Set("tran_id", req.TrxID)
	form.Set("total_amount", strconv.FormatFloat(req.Amount, 'f', 2, 64))
	form.Set("currency", req.Currency)
	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)
	form.Set("cus_phone", req.CustomerPhone)
	form.Set("product_name", req.ProductName)
	form.Set("product_category", "tour")
	form.Set("product_profile", "general")
	form.Set("shipping_method", "NO")
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)

	httpReq, err := http.NewRequest("POST", c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("gateway session API returned non-OK status: " + resp.Status)
	}

	var apiResp SessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}

	if !strings.EqualFold(apiResp.Status, "SUCCESS") {
		return nil, fmt.Errorf("gateway rejected session: %s", apiResp.FailedReason)
	}
	if apiResp.GatewayPageURL == "" {
		return nil, errors.New("gateway returned empty page URL")
	}

	return &apiResp, nil
}
