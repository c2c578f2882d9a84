package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"memory-mob/internal/credential"
	"memory-mob/internal/model"
	"memory-mob/pkg/log"
	"memory-mob/pkg/response"
)

type fakeUseCase struct {
	set map[model.CredentialSlot]string
}

func (f *fakeUseCase) Get(ctx context.Context, slot model.CredentialSlot) (string, error) {
	return f.set[slot], nil
}

func (f *fakeUseCase) Set(ctx context.Context, slot model.CredentialSlot, key string) error {
	if strings.TrimSpace(key) == "" {
		return credential.ErrEmptyKey
	}
	f.set[slot] = key
	return nil
}

func (f *fakeUseCase) Clear(ctx context.Context, slot model.CredentialSlot) error {
	if !slot.IsValid() {
		return credential.ErrInvalidSlot
	}
	delete(f.set, slot)
	return nil
}

func (f *fakeUseCase) Status(ctx context.Context) ([]credential.SlotStatus, error) {
	var out []credential.SlotStatus
	for _, s := range model.CredentialSlots {
		_, ok := f.set[s]
		src := credential.SourceNone
		if ok {
			src = credential.SourceStored
		}
		out = append(out, credential.SlotStatus{Slot: s, Configured: ok, Source: src})
	}
	return out, nil
}

func newTestRouter() (*gin.Engine, *fakeUseCase) {
	gin.SetMode(gin.TestMode)
	uc := &fakeUseCase{set: map[model.CredentialSlot]string{}}
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))
	return r, uc
}

func TestCredentialRoutes(t *testing.T) {
	r, uc := newTestRouter()

	do := func(method, path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	if w := do(http.MethodPut, "/api/v1/credentials/llm", `{"key":"gsk_123"}`); w.Code != http.StatusOK {
		t.Fatalf("PUT llm = %d %s", w.Code, w.Body.String())
	}
	if uc.set[model.SlotLLM] != "gsk_123" {
		t.Errorf("key not stored: %v", uc.set)
	}

	if w := do(http.MethodPut, "/api/v1/credentials/weather", `{"key":"x"}`); w.Code != http.StatusNotFound {
		t.Errorf("PUT unknown slot = %d", w.Code)
	}
	if w := do(http.MethodPut, "/api/v1/credentials/llm", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("PUT without key = %d", w.Code)
	}

	w := do(http.MethodGet, "/api/v1/credentials", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET = %d", w.Code)
	}
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.Contains(w.Body.String(), "gsk_123") {
		t.Error("status must never leak keys")
	}

	if w := do(http.MethodDelete, "/api/v1/credentials/llm", ""); w.Code != http.StatusOK {
		t.Errorf("DELETE = %d", w.Code)
	}
	if _, ok := uc.set[model.SlotLLM]; ok {
		t.Error("DELETE must clear the key")
	}
}
