package domain

import (
	"testing"
	"time"

	datasetdomain "ecomdash/internal/dataset/domain"
	shareddomain "ecomdash/internal/shared/domain"
	"ecomdash/internal/testhelpers"
)

func TestFilterByDateRange_InclusiveBounds(t *testing.T) {
	lines := []datasetdomain.OrderLine{
		testhelpers.MustOrderLine(t, "ord-1", "C1", "p1",
			time.Date(2023, 1, 5, 0, 0, 1, 0, time.UTC), 10, "boleto", "toys"),
		testhelpers.MustOrderLine(t, "ord-2", "C2", "p2",
			time.Date(2023, 1, 10, 23, 59, 59, 0, time.UTC), 20, "boleto", "toys"),
		testhelpers.MustOrderLine(t, "ord-3", "C3", "p3",
			time.Date(2023, 1, 11, 0, 0, 0, 0, time.UTC), 30, "boleto", "toys"),
	}

	window := shareddomain.NewDateRange(
		testhelpers.Date(2023, 1, 5),
		testhelpers.Date(2023, 1, 10),
	)

	filtered := FilterByDateRange(lines, window)

	if len(filtered) != 2 {
		t.Fatalf("expected 2 rows in window, got %d", len(filtered))
	}
	// Les bornes sont inclusives sur la date seule: l'heure ne compte pas
	if filtered[0].OrderID != "ord-1" || filtered[1].OrderID != "ord-2" {
		t.Errorf("unexpected rows: %v, %v", filtered[0].OrderID, filtered[1].OrderID)
	}
}

func TestFilterByDateRange_RowConservation(t *testing.T) {
	lines := testhelpers.SampleOrderLines(t)
	window := shareddomain.NewDateRange(
		testhelpers.Date(2023, 1, 1),
		testhelpers.Date(2023, 12, 31),
	)

	filtered := FilterByDateRange(lines, window)

	// Aucune ligne gagnée ni perdue: toute ligne en sortie vient de l'entrée,
	// toute ligne de l'entrée dans la fenêtre est en sortie
	if len(filtered) != len(lines) {
		t.Fatalf("expected all %d rows, got %d", len(lines), len(filtered))
	}
	for i, line := range filtered {
		if line != lines[i] {
			t.Errorf("row %d altered by filter", i)
		}
	}
}

func TestFilterByDateRange_InvertedWindowSelectsNothing(t *testing.T) {
	lines := testhelpers.SampleOrderLines(t)
	window := shareddomain.NewDateRange(
		testhelpers.Date(2023, 6, 1),
		testhelpers.Date(2023, 1, 1),
	)

	filtered := FilterByDateRange(lines, window)

	if len(filtered) != 0 {
		t.Errorf("inverted window must select nothing, got %d rows", len(filtered))
	}
}

func TestFilterByDateRange_DoesNotMutateSource(t *testing.T) {
	lines := testhelpers.SampleOrderLines(t)
	original := make([]datasetdomain.OrderLine, len(lines))
	copy(original, lines)

	window := shareddomain.NewDateRange(
		testhelpers.Date(2023, 1, 1),
		testhelpers.Date(2023, 1, 31),
	)
	filtered := FilterByDateRange(lines, window)

	for i := range lines {
		if lines[i] != original[i] {
			t.Fatalf("source table mutated at row %d", i)
		}
	}
	if len(filtered) == len(lines) {
		t.Fatal("expected a strict subset for the January window")
	}
}

func TestDatasetBounds(t *testing.T) {
	lines := testhelpers.SampleOrderLines(t)

	bounds, ok := DatasetBounds(lines)
	if !ok {
		t.Fatal("expected bounds on non-empty table")
	}
	if !bounds.Start().Equal(testhelpers.Date(2023, 1, 5)) {
		t.Errorf("wrong lower bound: %v", bounds.Start())
	}
	if !bounds.End().Equal(testhelpers.Date(2023, 2, 20)) {
		t.Errorf("wrong upper bound: %v", bounds.End())
	}

	if _, ok := DatasetBounds(nil); ok {
		t.Error("empty table must have no bounds")
	}
}
