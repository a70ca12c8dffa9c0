package handlers

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Totarae/FaleProxy/internal/model"
	"github.com/Totarae/FaleProxy/internal/service"
	"github.com/Totarae/FaleProxy/internal/validation"
)

const (
	msgURLRequired     = "URL is required"
	msgInvalidBody     = "Invalid request body"
	msgFetchFailed     = "Failed to fetch content"
	msgTransformFailed = "Failed to process content"
	msgBodyTooLarge    = "Request body too large"
)

// MaxRequestBodyBytes ограничивает тело POST /fetch.
const MaxRequestBodyBytes = 64 << 10

//go:embed static/index.html
var indexPage []byte

// ContentService загружает страницу и заменяет в ней текст.
type ContentService interface {
	FetchAndTransform(ctx context.Context, url string) (string, error)
}

// Handler обрабатывает HTTP-запросы прокси.
type Handler struct {
	Service  ContentService
	Contract *validation.Contract
	Logger   *zap.Logger
}

// NewHandler создаёт Handler.
func NewHandler(service ContentService, contract *validation.Contract, logger *zap.Logger) *Handler {
	return &Handler{
		Service:  service,
		Contract: contract,
		Logger:   logger,
	}
}

// HandleFetch принимает {"url": "..."} и возвращает изменённый HTML.
func (h *Handler) HandleFetch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, model.ErrorResponse{Error: msgBodyTooLarge})
			return
		}
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: msgInvalidBody})
		return
	}

	req, err := h.Contract.DecodeFetchRequest(body)
	if err != nil {
		h.Logger.Debug("rejected request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: msgInvalidBody})
		return
	}

	if req.URL == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: msgURLRequired})
		return
	}

	content, err := h.Service.FetchAndTransform(r.Context(), req.URL)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: errorMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, model.FetchResponse{Success: true, Content: content})
}

// Index отдаёт страницу с формой ввода URL.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexPage)
}

// Ping проверяет, что сервис жив.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// errorMessage: всё, кроме ошибки преобразования, считается ошибкой загрузки.
func errorMessage(err error) string {
	var te *service.TransformError
	if errors.As(err, &te) {
		return msgTransformFailed + ": " + te.Err.Error()
	}
	return msgFetchFailed + ": " + err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
