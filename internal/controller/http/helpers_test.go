package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ibeloyar/fueldispatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type errorReader struct{}

func (errorReader) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read error")
}

type testBody struct {
	Name string `json:"name"`
}

func TestReadBody_JSON_Success(t *testing.T) {
	expected := testBody{Name: "test"}

	bodyJSON, _ := json.Marshal(expected)
	req := httptest.NewRequest("POST", "/", bytes.NewReader(bodyJSON))
	req.Header.Set("Content-Type", "application/json")

	got, err := readBody[testBody](req)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestReadBody_TextPlain_JSON_Success(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"test"}`))
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	got, err := readBody[testBody](req)
	require.NoError(t, err)
	assert.Equal(t, testBody{Name: "test"}, got)
}

func TestReadBody_UnsupportedContentType_Fail(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader("name=test"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := readBody[testBody](req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestReadBody_JSON_Invalid_Fail(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"invalid": "json"`))
	req.Header.Set("Content-Type", "application/json")

	_, err := readBody[testBody](req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read request body application/json")
}

func TestReadBody_Empty_Fail(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")

	_, err := readBody[testBody](req)
	assert.Error(t, err)
}

func TestReadBody_ReadError(t *testing.T) {
	req, _ := http.NewRequest("POST", "/", errorReader{})
	req.Header.Set("Content-Type", "application/json")

	_, err := readBody[testBody](req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read request body")
}

func TestReadBody_NoContentType_JSON(t *testing.T) {
	expected := testBody{Name: "test"}

	bodyJSON, _ := json.Marshal(expected)
	req := httptest.NewRequest("POST", "/", bytes.NewReader(bodyJSON))
	// НЕ устанавливаем Content-Type

	got, err := readBody[testBody](req)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	writeJSON(w, zap.NewNop().Sugar(), data, http.StatusOK)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, data, got)
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()
	data := make(chan int)

	writeJSON(w, zap.NewNop().Sugar(), data, http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	writeError(w, zap.NewNop().Sugar(), &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"order not found"}`, w.Body.String())
}
