// Package client is a small HTTP client for the banking API, intended
// for integration tests and internal tooling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/carson-networks/banking-server/internal/handlers/v1/account"
	"github.com/carson-networks/banking-server/internal/handlers/v1/auth"
	"github.com/carson-networks/banking-server/internal/handlers/v1/dashboard"
	"github.com/carson-networks/banking-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/banking-server/internal/handlers/v1/transfer"
	"github.com/carson-networks/banking-server/internal/handlers/v1/user"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client calls the banking API over HTTP.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client against the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope matches responses that wrap their payload in a data field.
// The API serves payloads bare, but older deployments wrapped them, so
// decoding accepts both shapes.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

func decodeBody[T any](body []byte) (T, error) {
	var out T

	var wrapped envelope
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Data) > 0 {
		if err := json.Unmarshal(wrapped.Data, &out); err == nil {
			return out, nil
		}
	}

	err := json.Unmarshal(body, &out)
	return out, err
}

func do[T any](ctx context.Context, c *Client, method, path string, payload any) (T, error) {
	var out T

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return out, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return out, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return out, &StatusError{Status: resp.StatusCode, Message: errorMessage(body)}
	}

	return decodeBody[T](body)
}

// errorMessage pulls a human-readable detail out of an error response.
func errorMessage(body []byte) string {
	var problem struct {
		Detail string `json:"detail"`
		Title  string `json:"title"`
	}
	if err := json.Unmarshal(body, &problem); err == nil {
		if problem.Detail != "" {
			return problem.Detail
		}
		if problem.Title != "" {
			return problem.Title
		}
	}
	return strings.TrimSpace(string(body))
}

// Accounts lists all accounts.
func (c *Client) Accounts(ctx context.Context) ([]account.Account, error) {
	return do[[]account.Account](ctx, c, http.MethodGet, "/v1/accounts", nil)
}

// AccountByID fetches one account.
func (c *Client) AccountByID(ctx context.Context, id string) (account.Account, error) {
	return do[account.Account](ctx, c, http.MethodGet, "/v1/accounts/"+url.PathEscape(id), nil)
}

// Transactions lists transactions newest first. An empty accountID
// returns the full history.
func (c *Client) Transactions(ctx context.Context, accountID string) ([]transaction.Transaction, error) {
	path := "/v1/transactions"
	if accountID != "" {
		path += "?accountId=" + url.QueryEscape(accountID)
	}
	return do[[]transaction.Transaction](ctx, c, http.MethodGet, path, nil)
}

// DashboardSummary fetches the dashboard summary.
func (c *Client) DashboardSummary(ctx context.Context) (dashboard.Summary, error) {
	return do[dashboard.Summary](ctx, c, http.MethodGet, "/v1/dashboard-summary", nil)
}

// CreateTransfer moves money between two accounts.
func (c *Client) CreateTransfer(ctx context.Context, body transfer.CreateTransferBody) (transfer.CreateTransferBodyOut, error) {
	return do[transfer.CreateTransferBodyOut](ctx, c, http.MethodPost, "/v1/transfers", body)
}

// CreateTransaction appends a transaction to an account.
func (c *Client) CreateTransaction(ctx context.Context, body transaction.CreateTransactionBody) (transaction.Transaction, error) {
	return do[transaction.Transaction](ctx, c, http.MethodPost, "/v1/transactions", body)
}

// UpdateAccount shallow-merges a partial account update.
func (c *Client) UpdateAccount(ctx context.Context, id string, body account.UpdateAccountBody) (account.Account, error) {
	return do[account.Account](ctx, c, http.MethodPut, "/v1/accounts/"+url.PathEscape(id), body)
}

// UpdateUserProfile shallow-merges a partial user update.
func (c *Client) UpdateUserProfile(ctx context.Context, id string, body user.UpdateUserBody) (user.Profile, error) {
	return do[user.Profile](ctx, c, http.MethodPut, "/v1/users/"+url.PathEscape(id), body)
}

// CheckUsernameAvailability reports whether a username is unused.
func (c *Client) CheckUsernameAvailability(ctx context.Context, username string) (bool, error) {
	body, err := do[auth.UsernameAvailabilityBody](ctx, c, http.MethodGet,
		"/v1/auth/username-availability?username="+url.QueryEscape(username), nil)
	if err != nil {
		return false, err
	}
	return body.Available, nil
}

// Register creates a user account.
func (c *Client) Register(ctx context.Context, body auth.RegisterBody) (user.Profile, error) {
	return do[user.Profile](ctx, c, http.MethodPost, "/v1/auth/register", body)
}

// Login matches credentials and returns a session token with the
// authenticated user.
func (c *Client) Login(ctx context.Context, email, password string) (auth.LoginBodyOut, error) {
	return do[auth.LoginBodyOut](ctx, c, http.MethodPost, "/v1/auth/login",
		auth.LoginBody{Email: email, Password: password})
}
