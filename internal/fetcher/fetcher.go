// Package fetcher выполняет исходящий GET-запрос к переданному URL.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher загружает содержимое страницы по URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetchError возвращается при любой неудаче получения успешного ответа.
type FetchError struct {
	URL        string
	StatusCode int // 0 для ошибок транспорта
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s responded with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Options настраивает HTTPFetcher.
type Options struct {
	Timeout      time.Duration // 0 — таймаут транспорта по умолчанию
	MaxBodyBytes int64         // 0 — без ограничения
	UserAgent    string
}

// HTTPFetcher реализует Fetcher поверх http.Client.
type HTTPFetcher struct {
	client       *http.Client
	maxBodyBytes int64
	userAgent    string
}

// New создаёт HTTPFetcher.
func New(opts Options) *HTTPFetcher {
	return &HTTPFetcher{
		client:       &http.Client{Timeout: opts.Timeout},
		maxBodyBytes: opts.MaxBodyBytes,
		userAgent:    opts.UserAgent,
	}
}

// Fetch выполняет один GET без повторов. Частичное содержимое не возвращается.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	var body io.Reader = resp.Body
	if f.maxBodyBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBodyBytes+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if f.maxBodyBytes > 0 && int64(len(data)) > f.maxBodyBytes {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("body exceeds %d bytes", f.maxBodyBytes)}
	}
	return data, nil
}
