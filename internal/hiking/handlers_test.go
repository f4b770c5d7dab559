package hiking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func newApp(mock pgxmock.PgxPoolIface) *fiber.App {
	app := fiber.New()
	svc := NewService(mock)
	RegisterMemberRoutes(app.Group("/members"), svc)
	RegisterRoutes(app.Group("/hiking"), app.Group("/mountains"), svc)
	return app
}

func TestHikingHandlersAddListDelete(t *testing.T) {
	mock := newMock(t)
	app := newApp(mock)

	mock.ExpectQuery(`INSERT INTO hiking_records`).
		WithArgs(pgxmock.AnyArg(), "m-1", "高尾山", 400, 8.5, "easy", "2024-05-03", "sunny", "").
		WillReturnRows(pgxmock.NewRows([]string{"recorded_at"}).AddRow(time.Now()))

	body, _ := json.Marshal(Record{MountainName: "高尾山", ElevationGainM: 400, DistanceKm: 8.5, Difficulty: "easy", Date: "2024-05-03", Weather: "sunny"})
	req := httptest.NewRequest(http.MethodPost, "/members/m-1/hiking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("add status: %v", err)
	}

	mock.ExpectQuery(`SELECT id, member_id, mountain_name, elevation_gain_m, distance_km`).
		WithArgs("m-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "member_id", "mountain_name", "elevation_gain_m", "distance_km", "difficulty", "date", "weather", "notes", "recorded_at"}).
			AddRow("r-1", "m-1", "高尾山", 400, 8.5, "easy", "2024-05-03", "sunny", "", time.Now()))
	req = httptest.NewRequest(http.MethodGet, "/members/m-1/hiking", nil)
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("list status: %v", err)
	}

	mock.ExpectExec(`DELETE FROM hiking_records WHERE id`).
		WithArgs("r-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	req = httptest.NewRequest(http.MethodDelete, "/hiking/r-1", nil)
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status: %v", err)
	}
}

func TestHikingHandlersMissingMountainName(t *testing.T) {
	app := newApp(nil)

	req := httptest.NewRequest(http.MethodPost, "/members/m-1/hiking", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}

func TestMountainHandlersCreateAndList(t *testing.T) {
	mock := newMock(t)
	app := newApp(mock)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("高尾山").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO mountains`).
		WithArgs(pgxmock.AnyArg(), "高尾山", 599, 8.5).
		WillReturnRows(pgxmock.NewRows([]string{"added_at"}).AddRow(time.Now()))

	body, _ := json.Marshal(Mountain{Name: "高尾山", ElevationM: 599, DistanceKm: 8.5})
	req := httptest.NewRequest(http.MethodPost, "/mountains/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status: %v", err)
	}

	mock.ExpectQuery(`SELECT id, name, elevation_m, distance_km, added_at`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "elevation_m", "distance_km", "added_at"}).
			AddRow("mt-1", "高尾山", 599, 8.5, time.Now()))
	req = httptest.NewRequest(http.MethodGet, "/mountains/", nil)
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("list status: %v", err)
	}
}

func TestMountainHandlersValidation(t *testing.T) {
	app := newApp(nil)

	body, _ := json.Marshal(Mountain{Name: "x", ElevationM: 9500})
	req := httptest.NewRequest(http.MethodPost, "/mountains/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}

func TestMountainHandlersDuplicate(t *testing.T) {
	mock := newMock(t)
	app := newApp(mock)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("高尾山").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	body, _ := json.Marshal(Mountain{Name: "高尾山", ElevationM: 599})
	req := httptest.NewRequest(http.MethodPost, "/mountains/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected conflict")
	}
}
