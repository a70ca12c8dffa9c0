package model

// FetchRequest представляет тело запроса POST /fetch.
type FetchRequest struct {
	URL string `json:"url"`
}

// FetchResponse представляет успешный ответ с изменённым HTML.
type FetchResponse struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
}

// ErrorResponse представляет ответ с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
