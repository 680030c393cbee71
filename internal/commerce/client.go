package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BaoDuy1703/Ecommerce/internal/pkg/apperror"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type ctxKey int

const tokenKey ctxKey = 0

// WithToken stores the upstream access token for the current request.
// The auth middleware sets it; every client call forwards it as a Bearer
// header when present.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// Client talks to the remote commerce API. It is the only component that
// knows the endpoint layout; everything above it deals in domain types and
// apperror codes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

type upstreamError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.New(apperror.CodeInternal, "failed to encode request body", http.StatusInternalServerError)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.New(apperror.CodeTransport, "failed to build upstream request", http.StatusBadGateway)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("commerce api unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return apperror.New(apperror.CodeTransport, "commerce API unreachable", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(resp, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.New(apperror.CodeTransport, "failed to decode upstream response", http.StatusBadGateway)
	}
	return nil
}

// mapError folds upstream HTTP failures into the shared error taxonomy so
// services and handlers never inspect raw status codes.
func (c *Client) mapError(resp *http.Response, method, path string) error {
	var ue upstreamError
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &ue)

	message := ue.Message
	if message == "" {
		message = ue.Error
	}
	if message == "" {
		message = fmt.Sprintf("commerce API returned status %d", resp.StatusCode)
	}

	c.logger.Debug("commerce api error",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("message", message),
	)

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperror.New(apperror.CodeValidation, message, http.StatusBadRequest)
	case http.StatusUnauthorized:
		return apperror.New(apperror.CodeUnauthorized, message, http.StatusUnauthorized)
	case http.StatusForbidden:
		return apperror.New(apperror.CodeForbidden, message, http.StatusForbidden)
	case http.StatusNotFound:
		return apperror.New(apperror.CodeNotFound, message, http.StatusNotFound)
	case http.StatusConflict:
		return apperror.New(apperror.CodeConflict, message, http.StatusConflict)
	default:
		return apperror.New(apperror.CodeTransport, message, http.StatusBadGateway)
	}
}
