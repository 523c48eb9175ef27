package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/mediplus/geosearch/internal/config"
	"github.com/mediplus/geosearch/internal/domain"
	"github.com/mediplus/geosearch/internal/domain/repository"
	"go.uber.org/zap"
)

// Сколько байт тела ошибки попадает в лог
const maxErrorBody = 512

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

type response struct {
	Elements []domain.RawElement `json:"elements"`
}

// NewOverpassClient создает клиент Overpass API
func NewOverpassClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.OverpassRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Execute отправляет запрос GET <baseURL>?data=<query> и возвращает elements.
// Отсутствующий или пустой elements - успешный пустой результат.
func (c *client) Execute(ctx context.Context, query string) ([]domain.RawElement, error) {
	params := url.Values{}
	params.Set("data", query)
	reqURL := c.baseURL + "?" + params.Encode()

	c.logger.Debug("Calling Overpass API",
		zap.String("url", c.baseURL),
		zap.Int("query_length", len(query)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &UpstreamError{Kind: FailureTransport, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Kind: FailureTransport, Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Debug("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, &UpstreamError{
			Kind:       FailureStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &UpstreamError{Kind: FailureDecode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	c.logger.Debug("Overpass API call successful",
		zap.Int("elements", len(payload.Elements)))

	return payload.Elements, nil
}
