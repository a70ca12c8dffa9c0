// Package validation проверяет форму тела запроса по JSON-схеме.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Totarae/FaleProxy/internal/model"
)

const fetchRequestSchemaURL = "https://faleproxy.local/schema/fetch_request.v1.json"

const fetchRequestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "` + fetchRequestSchemaURL + `",
  "type": "object",
  "properties": {
    "url": { "type": "string" }
  }
}`

// ErrInvalidBody возвращается, если тело не JSON или не соответствует схеме.
var ErrInvalidBody = errors.New("invalid request body")

// Contract хранит скомпилированную схему запроса.
type Contract struct {
	ID     string
	Schema *jsonschema.Schema
}

// NewFetchRequestContract компилирует встроенную схему FetchRequest.
func NewFetchRequestContract() (*Contract, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(fetchRequestSchemaURL, strings.NewReader(fetchRequestSchema)); err != nil {
		return nil, err
	}
	sch, err := compiler.Compile(fetchRequestSchemaURL)
	if err != nil {
		return nil, err
	}
	return &Contract{ID: fetchRequestSchemaURL, Schema: sch}, nil
}

// DecodeFetchRequest проверяет тело и разбирает его в FetchRequest.
// Пустое тело трактуется как {}.
func (c *Contract) DecodeFetchRequest(body []byte) (model.FetchRequest, error) {
	var req model.FetchRequest

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return req, nil
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if dec.More() {
		return req, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidBody)
	}
	if err := c.Schema.Validate(doc); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return req, nil
}
