package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var serviceColumns = []string{"position", "name", "gender", "min_age", "max_age", "skin_type", "skin_problem", "price", "base_score", "notes"}

func TestPGSourceLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rows := sqlmock.NewRows(serviceColumns).
		AddRow(0, "Hydrafacial", "any", 18, 40, "oily, combination", "acne", 1500.0, 0.0, "Monthly").
		AddRow(1, "Peel", nil, nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("SELECT position, name, gender").WillReturnRows(rows)

	cat, err := (&PGSource{DB: db}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 services, got %d", cat.Len())
	}
	first := cat.At(0)
	if first.MinAge != 18 || first.MaxAge != 40 || !first.SkinTypes.Has("combination") {
		t.Fatalf("unexpected first service: %+v", first)
	}
	peel := cat.At(1)
	if peel.GenderRule != "any" || peel.MinAge != 0 || peel.MaxAge != 200 || peel.Price != 0 {
		t.Fatalf("expected NULL columns to default, got %+v", peel)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGSourceQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	boom := errors.New("relation does not exist")
	mock.ExpectQuery("SELECT position").WillReturnError(boom)

	_, err = (&PGSource{DB: db}).Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
}

func TestPGWriterReplace(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cat, err := New(AllColumns, []Row{fullRow("Hydrafacial")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM services").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO services").
		WithArgs(0, "Hydrafacial", "Any", 18, 40, "Oily, Combination", "Acne, Pigmentation", 1500.0, 0.5, "Monthly").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := (&PGWriter{DB: db}).Replace(context.Background(), cat); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGSourceKeepsSourceText(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	fromFile, err := New(AllColumns, []Row{fullRow("Hydrafacial")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := fromFile.At(0)

	rows := sqlmock.NewRows(serviceColumns).
		AddRow(0, "Hydrafacial", want.RawGender, 18, 40, want.RawSkinType, want.RawSkinProblem, 1500.0, 0.5, "Monthly")
	mock.ExpectQuery("SELECT position").WillReturnRows(rows)

	cat, err := (&PGSource{DB: db}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := cat.At(0)
	if got.RawGender != "Any" || got.RawSkinType != "Oily, Combination" || got.RawSkinProblem != "Acne, Pigmentation" {
		t.Fatalf("expected source text after reload, got %+v", got)
	}
	if got.GenderRule != "any" || !got.SkinTypes.Has("combination") {
		t.Fatalf("expected normalized rules after reload, got %+v", got)
	}
	if cat.Version() != fromFile.Version() {
		t.Fatalf("expected reloaded catalog to keep the file version")
	}
}

func TestPGWriterReplaceRollsBackOnInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cat, err := New(AllColumns, []Row{fullRow("Hydrafacial")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM services").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO services").WillReturnError(errors.New("constraint"))
	mock.ExpectRollback()

	if err := (&PGWriter{DB: db}).Replace(context.Background(), cat); err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
