package e

import "fmt"

var (
	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrMissingEnvVariable   = fmt.Errorf("missing required environment variable")

	// Внутренние ошибки хранилища
	ErrUnexpectedID = fmt.Errorf("unexpected identifier type")

	// 400 Bad Request
	ErrInvalidID         = fmt.Errorf("invalid identifier")
	ErrInvalidBody       = fmt.Errorf("invalid request body")
	ErrInvalidPrice      = fmt.Errorf("invalid price")
	ErrPricePrecision    = fmt.Errorf("price must have at most 2 decimal places")
	ErrExpectedMultipart = fmt.Errorf("expected multipart/form-data")
	ErrNoImages          = fmt.Errorf("no images provided")
	ErrFileTooLarge      = fmt.Errorf("file too large")

	// 401 / 403
	ErrUnauthorized = fmt.Errorf("unauthorized access")
	ErrForbidden    = fmt.Errorf("forbidden access")
	ErrNotAdmin     = fmt.Errorf("admin access required")

	// 404 / 409 / 415
	ErrNotFound             = fmt.Errorf("not found")
	ErrAlreadyPurchased     = fmt.Errorf("already purchased")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 500 / 503
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrImagesDisabled      = fmt.Errorf("image storage is not configured")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
