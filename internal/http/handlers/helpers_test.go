package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type jsonBody = map[string]interface{}

// newTestContext builds a gin context around a JSON request
func newTestContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatalf("failed to encode body: %v", err)
			}
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response body %q: %v", w.Body.String(), err)
	}
	return body
}

// validateValue compares expected against actual, recursing into nested maps
func validateValue(t *testing.T, key string, expected, actual interface{}) {
	t.Helper()

	expectedMap, expectedIsMap := expected.(map[string]interface{})
	actualMap, actualIsMap := actual.(map[string]interface{})

	if expectedIsMap && actualIsMap {
		for nestedKey, nestedExpected := range expectedMap {
			if nestedActual, exists := actualMap[nestedKey]; !exists {
				t.Errorf("expected key %s.%s not found in response", key, nestedKey)
			} else {
				validateValue(t, key+"."+nestedKey, nestedExpected, nestedActual)
			}
		}
	} else if expected != actual {
		t.Errorf("for key %s, expected %v, got %v", key, expected, actual)
	}
}

func assertBody(t *testing.T, w *httptest.ResponseRecorder, expected map[string]interface{}) {
	t.Helper()
	if len(expected) == 0 {
		return
	}
	body := decodeBody(t, w)
	for key, want := range expected {
		got, ok := body[key]
		if !ok {
			t.Errorf("expected key %s not found in response %s", key, w.Body.String())
			continue
		}
		validateValue(t, key, want, got)
	}
}
