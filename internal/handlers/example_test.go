package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"go.uber.org/zap"

	"github.com/Totarae/FaleProxy/internal/handlers"
	"github.com/Totarae/FaleProxy/internal/validation"
)

type staticService struct{}

func (staticService) FetchAndTransform(ctx context.Context, url string) (string, error) {
	return "<h1>Welcome to Fale University</h1>", nil
}

// ExampleHandler_HandleFetch демонстрирует работу метода HandleFetch.
func ExampleHandler_HandleFetch() {
	contract, _ := validation.NewFetchRequestContract()
	h := handlers.NewHandler(staticService{}, contract, zap.NewNop())

	body := `{"url":"https://www.yale.edu/"}`
	req := httptest.NewRequest(http.MethodPost, "/fetch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.HandleFetch(rec, req)
	resp := rec.Result()
	defer resp.Body.Close()

	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)

	fmt.Println(resp.StatusCode)
	fmt.Println(result["success"], result["content"])

	// Output:
	// 200
	// true <h1>Welcome to Fale University</h1>
}
