package state

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newApp(t *testing.T, writeToken string) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app.Group("/state"), NewService(newRedis(t), writeToken))
	return app
}

func TestStateHandlersRoundTrip(t *testing.T) {
	app := newApp(t, "")

	body := []byte(`{"team_id":"t-1","state":{"team_name":"山岳部"}}`)
	req := httptest.NewRequest(http.MethodPost, "/state/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("save status: %v", err)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/state/?team_id=t-1", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("load status: %v", err)
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("cache control = %s", cc)
	}
	data, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(data), "山岳部") {
		t.Fatalf("unexpected body: %s", data)
	}
}

func TestStateHandlersMissingTeam(t *testing.T) {
	app := newApp(t, "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/state/?team_id=nobody", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("load status: %v", err)
	}
	var out struct {
		State json.RawMessage `json:"state"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(out.State) != "null" {
		t.Fatalf("state = %s, want null", out.State)
	}
}

func TestStateHandlersTeamIDRequired(t *testing.T) {
	app := newApp(t, "")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/state/", nil))
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}

func TestStateHandlersUnauthorized(t *testing.T) {
	app := newApp(t, "secret")

	body := []byte(`{"team_id":"t-1","state":{},"token":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/state/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized")
	}
}

func TestStateHandlersAuthorized(t *testing.T) {
	app := newApp(t, "secret")

	body := []byte(`{"team_id":"t-1","state":{},"token":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/state/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("expected ok")
	}
}
