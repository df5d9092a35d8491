package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/Duggineniakhil/Vectra/internal/mocks"
)

func TestPolicyHandlers(t *testing.T) {
	policySvc := mocks.NewMockPolicyService()
	var added, removed []string
	policySvc.AddPolicyFunc = func(subject, object, action string) error {
		added = []string{subject, object, action}
		return nil
	}
	policySvc.RemovePolicyFunc = func(subject, object, action string) error {
		removed = []string{subject, object, action}
		return nil
	}
	policySvc.GetPoliciesFunc = func() ([][]string, error) {
		return [][]string{{"role_ADMIN", "/api/v1/admin/*", "GET"}}, nil
	}
	handler := NewPolicyHandlers(policySvc)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/admin/policies", nil)
	handler.List(c)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decodeBody(t, w)["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected one policy, got %v", data)
	}

	rule := jsonBody{"sub": "role_DRIVER", "obj": "/api/v1/auth/me", "act": "GET"}
	c, w = newTestContext(t, http.MethodPost, "/api/v1/admin/policies", rule)
	handler.Add(c)
	// gin defers the status for bodyless responses until the writer is flushed
	c.Writer.WriteHeaderNow()
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if len(added) != 3 || added[0] != "role_DRIVER" {
		t.Errorf("unexpected added rule %v", added)
	}

	c, w = newTestContext(t, http.MethodDelete, "/api/v1/admin/policies", rule)
	handler.Remove(c)
	c.Writer.WriteHeaderNow()
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if len(removed) != 3 || removed[1] != "/api/v1/auth/me" {
		t.Errorf("unexpected removed rule %v", removed)
	}

	c, w = newTestContext(t, http.MethodPost, "/api/v1/admin/policies", jsonBody{"sub": "role_DRIVER"})
	handler.Add(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	policySvc.GetPoliciesFunc = func() ([][]string, error) { return nil, errors.New("adapter offline") }
	c, w = newTestContext(t, http.MethodGet, "/api/v1/admin/policies", nil)
	handler.List(c)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	policySvc.AddPolicyFunc = func(subject, object, action string) error { return domain.ErrInvalidPolicy }
	c, w = newTestContext(t, http.MethodPost, "/api/v1/admin/policies", jsonBody{"sub": " ", "obj": "x", "act": "GET"})
	handler.Add(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
