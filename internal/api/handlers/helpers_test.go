package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	"github.com/aaravmahajanofficial/pos-admin/internal/testutils"
	"github.com/aaravmahajanofficial/pos-admin/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// jsonBody marshals v, or passes a string through untouched for bad-JSON cases.
func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewReader([]byte(s))
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func authedRequest(method, target string, body io.Reader, userID uuid.UUID, params map[string]string) *http.Request {
	return testutils.CreateTestRequestWithContext(method, target, body, userID, models.RoleManager, params)
}

// decodeData unpacks the success envelope into dest.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()

	var resp struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, response.StatusSuccess, resp.Status)
	require.NoError(t, json.Unmarshal(resp.Data, dest))
}

// decodeError returns the error block of an error envelope.
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) *response.ErrorResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, response.StatusError, resp.Status)
	require.NotNil(t, resp.Error)
	return resp.Error
}
