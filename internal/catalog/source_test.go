package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	localstore "skincare-recommender/internal/shared/storage/object/local"
)

const sampleCSV = "\ufeffService Name,Skin Type,Skin Problem,Min Age,Max Age,Gender,Price (PHP),Base Score,Notes\n" +
	"Hydrafacial,\"Oily, Combination\",\"Acne, Pigmentation\",18,40,Any,1500,0,Monthly\n" +
	",,,,,,,,\n" +
	"Anti-aging Peel,Dry,Wrinkles,30,65,Female,2500,,\n"

func TestReadCSV(t *testing.T) {
	cat, err := Read(FormatCSV, strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 services, got %d", cat.Len())
	}
	peel := cat.At(1)
	if peel.Name != "Anti-aging Peel" || peel.GenderRule != "female" || peel.Price != 2500 {
		t.Fatalf("unexpected second service: %+v", peel)
	}
	if peel.BaseScore != 0 || peel.Notes != "" {
		t.Fatalf("expected blank cells to default, got base=%v notes=%q", peel.BaseScore, peel.Notes)
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	body := "Service Name,Skin Type\nFacial,oily\n"
	_, err := Read(FormatCSV, strings.NewReader(body))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestReadEmptySource(t *testing.T) {
	_, err := Read(FormatCSV, strings.NewReader(""))
	if !errors.Is(err, ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	header := []any{"Service Name", "Skin Type", "Skin Problem", "Min Age", "Max Age", "Gender", "Price (PHP)", "Notes"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("SetSheetRow header: %v", err)
	}
	row := []any{"Laser Hair Removal", "Any", "Unwanted hair", 18, 60, "Any", 3000, "Six sessions"}
	if err := f.SetSheetRow(sheet, "A2", &row); err != nil {
		t.Fatalf("SetSheetRow row: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	cat, err := Read(FormatXLSX, buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("expected 1 service, got %d", cat.Len())
	}
	svc := cat.At(0)
	if svc.MaxAge != 60 || svc.Price != 3000 || !svc.SkinProblems.Has("unwanted hair") {
		t.Fatalf("unexpected service: %+v", svc)
	}
	if svc.BaseScore != 0 {
		t.Fatalf("expected base score default 0, got %v", svc.BaseScore)
	}
}

func TestFormatFromName(t *testing.T) {
	cases := map[string]Format{
		"services.csv":           FormatCSV,
		"catalogs/SERVICES.XLSX": FormatXLSX,
	}
	for name, want := range cases {
		got, err := FormatFromName(name)
		if err != nil || got != want {
			t.Fatalf("FormatFromName(%q) = %q, %v; want %q", name, got, err, want)
		}
	}
	if _, err := FormatFromName("services.xls"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFileSourceLoadsFromStore(t *testing.T) {
	store := localstore.New(t.TempDir())
	ctx := context.Background()
	if _, err := store.SaveWithKey(ctx, "services.csv", "text/csv", strings.NewReader(sampleCSV)); err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}

	cat, err := FileSource{Store: store, Key: "services.csv"}.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 services, got %d", cat.Len())
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	store := localstore.New(t.TempDir())
	_, err := FileSource{Store: store, Key: "absent.csv"}.Load(context.Background())
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
