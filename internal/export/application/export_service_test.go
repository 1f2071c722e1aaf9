package application

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	analyticsapp "ecomdash/internal/analytics/application"
	shareddomain "ecomdash/internal/shared/domain"
	sharedinfra "ecomdash/internal/shared/infrastructure"
	"ecomdash/internal/testhelpers"
)

func newTestExportService(t *testing.T) (*ExportService, shareddomain.DateRange) {
	t.Helper()

	dashboardService := analyticsapp.NewDashboardService(
		testhelpers.SampleOrderLines(t), sharedinfra.NewInMemoryCache())
	window := shareddomain.NewDateRange(
		testhelpers.Date(2023, 1, 1), testhelpers.Date(2023, 12, 31))

	return NewExportService(dashboardService), window
}

func TestExportDashboardToCSV(t *testing.T) {
	service, window := newTestExportService(t)

	data, err := service.ExportDashboardToCSV(window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := string(data)
	for _, section := range []string{
		"Revenue And Orders By Month",
		"Category Popularity",
		"Payment Types",
		"Popular Days",
		"RFM",
	} {
		if !strings.Contains(content, section) {
			t.Errorf("missing section %q", section)
		}
	}

	// Janvier: ord-1 en deux lignes de 100 et 50
	if !strings.Contains(content, "2023-01,2023,1,Jan,150.00,2") {
		t.Errorf("wrong january row in:\n%s", content)
	}
	// C1: 3 lignes (100+50+80), dernière commande le 20 février
	if !strings.Contains(content, "C1,3,230.00,0") {
		t.Errorf("wrong C1 RFM row in:\n%s", content)
	}
	// La ligne sans catégorie ne crée pas de catégorie vide
	if strings.Contains(content, "\n,1\n") {
		t.Error("empty category leaked into the category section")
	}
}

func TestExportLinesToCSV(t *testing.T) {
	service, window := newTestExportService(t)

	data, err := service.ExportLinesToCSV(window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}

	// En-tête + 4 lignes de commande
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	if records[0][0] != "order_id" || records[0][11] != "year_month" {
		t.Errorf("wrong header: %v", records[0])
	}

	first := records[1]
	if first[0] != "ord-1" || first[4] != "100.00" || first[11] != "2023-01" {
		t.Errorf("wrong first line: %v", first)
	}
}

func TestExportLinesToCSV_WindowFilter(t *testing.T) {
	service, _ := newTestExportService(t)
	january := shareddomain.NewDateRange(
		testhelpers.Date(2023, 1, 1), testhelpers.Date(2023, 1, 31))

	data, err := service.ExportLinesToCSV(january)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}

	// Seules les deux lignes de janvier passent le filtre
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 lines, got %d records", len(records))
	}
}

func TestExportLinesToParquet(t *testing.T) {
	service, window := newTestExportService(t)

	data, err := service.ExportLinesToParquet(window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Tout fichier Parquet commence et finit par le nombre magique PAR1
	if len(data) < 8 {
		t.Fatalf("parquet output too short: %d bytes", len(data))
	}
	if !bytes.HasPrefix(data, []byte("PAR1")) {
		t.Errorf("missing PAR1 header, got %q", data[:4])
	}
	if !bytes.HasSuffix(data, []byte("PAR1")) {
		t.Errorf("missing PAR1 footer, got %q", data[len(data)-4:])
	}
}

func TestExportLinesToParquet_EmptyWindow(t *testing.T) {
	service, _ := newTestExportService(t)
	inverted := shareddomain.NewDateRange(
		testhelpers.Date(2023, 12, 31), testhelpers.Date(2023, 1, 1))

	data, err := service.ExportLinesToParquet(inverted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Fichier valide sans aucune ligne
	if !bytes.HasPrefix(data, []byte("PAR1")) {
		t.Error("expected a valid empty parquet file")
	}
}
