package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{e.Wrap("ProductRepo.GetByID", e.ErrInvalidID), http.StatusBadRequest, "invalid identifier"},
		{e.Wrap("unexpected EOF", e.ErrInvalidBody), http.StatusBadRequest, "invalid request body"},
		{e.ErrNoImages, http.StatusBadRequest, "no images provided"},
		{e.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "file too large"},
		{e.ErrImagesDisabled, http.StatusServiceUnavailable, "image storage is not configured"},
		{e.ErrUnauthorized, http.StatusUnauthorized, "unauthorized access"},
		{errors.Join(e.ErrForbidden, errors.New("token is expired")), http.StatusForbidden, "forbidden access"},
		{e.Wrap("a@b.com", e.ErrNotAdmin), http.StatusForbidden, "admin access required"},
		{e.ErrAlreadyPurchased, http.StatusConflict, "already purchased"},
		{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, "unsupported media type"},
		{errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "12.50", want: 1250},
		{in: "0", want: 0},
		{in: "599.99", want: 59999},
		{in: "1.230", want: 123},
		{in: "1.005", wantErr: e.ErrPricePrecision},
		{in: "-0.01", wantErr: e.ErrInvalidPrice},
		{in: "1000000001", wantErr: e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := toCents(decimal.RequireFromString(tt.in))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "12.50", fromCents(1250))
	assert.Equal(t, "0.05", fromCents(5))
}
