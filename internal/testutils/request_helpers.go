package testutils

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vortexgear/storefront/internal/api/middleware"
	"github.com/vortexgear/storefront/internal/utils/response"
)

// CreateTestRequest builds a request carrying a discarding request logger and
// the given path values.
func CreateTestRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(middleware.WithLogger(req.Context(), logger))
}

// DecodeAPIResponse unmarshals the envelope and, when dest is non-nil, its data.
func DecodeAPIResponse(t *testing.T, rr *httptest.ResponseRecorder, dest any) response.APIResponse {
	t.Helper()

	var envelope struct {
		response.APIResponse
		Data json.RawMessage `json:"data,omitempty"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))

	if dest != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, dest))
	}

	return envelope.APIResponse
}
