package hiking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

var errQuery = errors.New("query error")

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestAddAndListRecords(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO hiking_records`).
		WithArgs(pgxmock.AnyArg(), "m-1", "高尾山", 400, 8.5, "easy", "2024-05-03", "sunny", "").
		WillReturnRows(pgxmock.NewRows([]string{"recorded_at"}).AddRow(time.Now()))

	svc := NewService(mock)
	rec, err := svc.AddRecord(context.Background(), Record{
		MemberID:       "m-1",
		MountainName:   "高尾山",
		ElevationGainM: 400,
		DistanceKm:     8.5,
		Difficulty:     "easy",
		Date:           "2024-05-03",
		Weather:        "sunny",
	})
	if err != nil {
		t.Fatalf("add record: %v", err)
	}
	if rec.ID == "" {
		t.Fatalf("expected generated id")
	}

	mock.ExpectQuery(`SELECT id, member_id, mountain_name, elevation_gain_m, distance_km`).
		WithArgs("m-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "member_id", "mountain_name", "elevation_gain_m", "distance_km", "difficulty", "date", "weather", "notes", "recorded_at"}).
			AddRow(rec.ID, "m-1", "高尾山", 400, 8.5, "easy", "2024-05-03", "sunny", "", time.Now()))

	records, err := svc.Records(context.Background(), "m-1")
	if err != nil || len(records) != 1 {
		t.Fatalf("records: %v", err)
	}
}

func TestAddRecordValidation(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.AddRecord(context.Background(), Record{ElevationGainM: -1}); !errors.Is(err, ErrInvalidGain) {
		t.Fatalf("expected invalid gain, got %v", err)
	}
	if _, err := svc.AddRecord(context.Background(), Record{DistanceKm: -0.5}); !errors.Is(err, ErrInvalidDistance) {
		t.Fatalf("expected invalid distance, got %v", err)
	}
}

func TestDeleteRecord(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`DELETE FROM hiking_records WHERE id`).
		WithArgs("r-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	svc := NewService(mock)
	if err := svc.DeleteRecord(context.Background(), "r-1"); err != nil {
		t.Fatalf("delete record: %v", err)
	}
}

func TestAddMountain(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("高尾山").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO mountains`).
		WithArgs(pgxmock.AnyArg(), "高尾山", 599, 8.5).
		WillReturnRows(pgxmock.NewRows([]string{"added_at"}).AddRow(time.Now()))

	svc := NewService(mock)
	m, err := svc.AddMountain(context.Background(), Mountain{Name: "高尾山", ElevationM: 599, DistanceKm: 8.5})
	if err != nil {
		t.Fatalf("add mountain: %v", err)
	}
	if m.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestAddMountainValidation(t *testing.T) {
	svc := NewService(nil)

	if _, err := svc.AddMountain(context.Background(), Mountain{Name: ""}); !errors.Is(err, ErrMountainNameMissing) {
		t.Fatalf("expected name required, got %v", err)
	}
	if _, err := svc.AddMountain(context.Background(), Mountain{Name: "x", ElevationM: 9500}); !errors.Is(err, ErrInvalidElevation) {
		t.Fatalf("expected invalid elevation, got %v", err)
	}
	if _, err := svc.AddMountain(context.Background(), Mountain{Name: "x", ElevationM: 100, DistanceKm: 1500}); !errors.Is(err, ErrInvalidDistance) {
		t.Fatalf("expected invalid distance, got %v", err)
	}
}

func TestAddMountainDuplicate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("高尾山").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	svc := NewService(mock)
	if _, err := svc.AddMountain(context.Background(), Mountain{Name: "高尾山", ElevationM: 599}); !errors.Is(err, ErrMountainNameTaken) {
		t.Fatalf("expected duplicate, got %v", err)
	}
}

func TestMountainsQueryError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT id, name, elevation_m, distance_km, added_at`).
		WillReturnError(errQuery)

	svc := NewService(mock)
	if _, err := svc.Mountains(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
