package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

func newProductServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products/1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":1,"name":"Bolt","sku":"B-1"}`))
		case "/api/products/2":
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProductClient_Exists(t *testing.T) {
	srv := newProductServer(t)
	c := NewProductClient(srv.URL + "/api/")

	tests := []struct {
		name    string
		id      uint
		want    bool
		wantErr bool
	}{
		{"found", 1, true, false},
		{"not found", 2, false, false},
		{"service failure", 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Exists(context.Background(), tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrProductService)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductClient_TransportError(t *testing.T) {
	srv := newProductServer(t)
	url := srv.URL
	srv.Close()

	_, err := NewProductClient(url).Exists(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrProductService)
}
