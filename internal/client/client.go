// Package client is a typed HTTP client for the user and payment API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const maxBodyBytes = 1 << 20

// APIError is returned for any non-2xx answer. Message is the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Message)
}

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PaymentInput carries the form values as typed by the user. Amount is sent
// as a string and parsed by the server.
type PaymentInput struct {
	CardNumber string `json:"cardNumber"`
	CVV        string `json:"cvv"`
	Amount     string `json:"amount"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// GetUser looks a user up by the raw id the caller typed.
func (c *Client) GetUser(ctx context.Context, id string) (User, error) {
	var user User
	body, err := c.do(ctx, http.MethodGet, "/api/user/"+url.PathEscape(id), "", nil)
	if err != nil {
		return user, err
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return user, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}

func (c *Client) CreateUser(ctx context.Context, name, email, password string) (User, error) {
	payload, err := json.Marshal(map[string]string{"name": name, "email": email, "password": password})
	if err != nil {
		return User{}, err
	}

	var user User
	body, err := c.do(ctx, http.MethodPost, "/api/user/create", "application/json", bytes.NewReader(payload))
	if err != nil {
		return user, err
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return user, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id uint) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/user/delete/"+strconv.FormatUint(uint64(id), 10), "", nil)
	return string(body), err
}

func (c *Client) UploadFile(ctx context.Context, fileName string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	body, err := c.do(ctx, http.MethodPost, "/api/user/upload", w.FormDataContentType(), &buf)
	return string(body), err
}

// ProcessPayment returns the gateway's body as relayed by the server.
func (c *Client) ProcessPayment(ctx context.Context, in PaymentInput) ([]byte, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/api/payment/process", "application/json", bytes.NewReader(payload))
}

func (c *Client) PaymentHistory(ctx context.Context, userID uint) (string, error) {
	q := url.Values{"userId": {strconv.FormatUint(uint64(userID), 10)}}
	body, err := c.do(ctx, http.MethodGet, "/api/payment/history?"+q.Encode(), "", nil)
	return string(body), err
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &APIError{StatusCode: res.StatusCode, Message: string(data)}
	}
	return data, nil
}
