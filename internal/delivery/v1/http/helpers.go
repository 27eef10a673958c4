package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// httpErrors — соответствие доменных ошибок HTTP-статусам. Порядок важен:
// берётся первое совпадение по errors.Is.
var httpErrors = []struct {
	err  error
	code int
}{
	{e.ErrInvalidID, http.StatusBadRequest},
	{e.ErrInvalidBody, http.StatusBadRequest},
	{e.ErrInvalidPrice, http.StatusBadRequest},
	{e.ErrPricePrecision, http.StatusBadRequest},
	{e.ErrExpectedMultipart, http.StatusBadRequest},
	{e.ErrNoImages, http.StatusBadRequest},
	{e.ErrUnauthorized, http.StatusUnauthorized},
	{e.ErrNotAdmin, http.StatusForbidden},
	{e.ErrForbidden, http.StatusForbidden},
	{e.ErrNotFound, http.StatusNotFound},
	{e.ErrAlreadyPurchased, http.StatusConflict},
	{e.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{e.ErrImagesDisabled, http.StatusServiceUnavailable},
}

// ToHTTPResponse возвращает статус и безопасное для клиента сообщение.
// Неизвестные ошибки превращаются в 500 без подробностей.
func ToHTTPResponse(err error) (int, string) {
	for _, m := range httpErrors {
		if errors.Is(err, m.err) {
			return m.code, m.err.Error()
		}
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError логирует ошибку (5xx как error, остальное как warn) и отвечает клиенту.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	code, _ := ToHTTPResponse(err)
	if code >= http.StatusInternalServerError {
		log.Errorf(err, "%s %s failed", r.Method, r.URL.Path)
	} else {
		log.Warnf("%d %s %s: %v", code, r.Method, r.URL.Path, err)
	}

	WriteError(w, err)
}

// decodeJSON читает тело запроса в dst; любые ошибки разбора дают e.ErrInvalidBody.
func decodeJSON(r *http.Request, dst any) error {
	const maxBodySize = 1 << 20

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrInvalidBody)
	}

	return nil
}

// toCents переводит денежную сумму вида 599.99 в копейки.
// Возвращает ошибку, если:
// - сумма отрицательная
// - больше 2 знаков после запятой
// - превышает разумный предел (10^9 рублей)
func toCents(d decimal.Decimal) (int64, error) {
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// fromCents возвращает сумму с двумя знаками после запятой, например "12.50".
func fromCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return e.Wrap(whereami.WhereAmI(), e.ErrFileTooLarge)
		}
		return e.Wrap(err.Error(), e.ErrExpectedMultipart)
	}

	return nil
}

func parseImage(files []*multipart.FileHeader) (*usecase.ProductImage, error) {
	const maxFileSize = 15 << 20

	if len(files) == 0 {
		return nil, e.ErrNoImages
	}

	data, mimeType, err := readFile(files[0], maxFileSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewProductImage(data, mimeType, int64(len(data)), files[0].Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.Wrap(whereami.WhereAmI(), err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, "", e.Wrap(whereami.WhereAmI(), err)
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
