package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/7":
			_, _ = w.Write([]byte(`{"id":7,"name":"Ada","email":"ada@example.com"}`))
		default:
			http.Error(w, "User not found.", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	user, err := c.GetUser(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, User{ID: 7, Name: "Ada", Email: "ada@example.com"}, user)

	_, err = c.GetUser(context.Background(), "42")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "User not found.\n", apiErr.Message)
}

func TestProcessPaymentSendsFormValues(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payment/process", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("approved"))
	}))
	defer srv.Close()

	body, err := New(srv.URL, nil).ProcessPayment(context.Background(), PaymentInput{CardNumber: "4111", CVV: "123", Amount: "10.00"})
	require.NoError(t, err)
	assert.Equal(t, "approved", string(body))
	assert.Equal(t, map[string]string{"cardNumber": "4111", "cvv": "123", "amount": "10.00"}, got)
}

func TestUploadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, fh, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "notes.txt", fh.Filename)
		assert.Equal(t, "hello", string(data))
		_, _ = w.Write([]byte("File uploaded successfully!"))
	}))
	defer srv.Close()

	msg, err := New(srv.URL, nil).UploadFile(context.Background(), "notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "File uploaded successfully!", msg)
}

func TestDeleteAndHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/user/delete/3":
			_, _ = w.Write([]byte("User deleted."))
		case r.Method == http.MethodGet && r.URL.Path == "/api/payment/history":
			assert.Equal(t, "3", r.URL.Query().Get("userId"))
			_, _ = w.Write([]byte("Payment history..."))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/", nil)
	msg, err := c.DeleteUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "User deleted.", msg)

	listing, err := c.PaymentHistory(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Payment history...", listing)
}

func TestTransportErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, nil).GetUser(context.Background(), "1")
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
