package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Totarae/FaleProxy/internal/fetcher"
	"github.com/Totarae/FaleProxy/internal/transform"
)

// TransformError оборачивает ошибку разбора или сериализации HTML.
type TransformError struct {
	URL string
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform %s: %v", e.URL, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

type ProxyService struct {
	Fetcher     fetcher.Fetcher
	Transformer transform.HTMLTransformer
	Logger      *zap.Logger
}

func NewProxyService(f fetcher.Fetcher, t transform.HTMLTransformer, logger *zap.Logger) *ProxyService {
	return &ProxyService{
		Fetcher:     f,
		Transformer: t,
		Logger:      logger,
	}
}

// FetchAndTransform загружает страницу и возвращает HTML с заменённым текстом.
// Ошибки загрузки возвращаются как есть (*fetcher.FetchError).
func (s *ProxyService) FetchAndTransform(ctx context.Context, url string) (string, error) {
	start := time.Now()

	body, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		s.Logger.Warn("fetch failed", zap.String("url", url), zap.Error(err))
		return "", err
	}

	content, err := s.Transformer.Transform(bytes.NewReader(body))
	if err != nil {
		s.Logger.Error("transform failed", zap.String("url", url), zap.Error(err))
		return "", &TransformError{URL: url, Err: err}
	}

	s.Logger.Debug("page transformed",
		zap.String("url", url),
		zap.Int("fetched_bytes", len(body)),
		zap.Int("content_bytes", len(content)),
		zap.Duration("duration", time.Since(start)),
	)
	return content, nil
}
