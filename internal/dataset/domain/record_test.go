package domain

import (
	"testing"
	"time"
)

func TestNewOrderLine_Valid(t *testing.T) {
	// 2023-01-02 est un lundi
	purchasedAt := time.Date(2023, 1, 2, 14, 30, 0, 0, time.UTC)

	line, err := NewOrderLine("ord-1", "C1", "prod-1", purchasedAt, 99.9, "credit_card", "toys")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if line.OrderID != "ord-1" || line.CustomerID != "C1" || line.ProductID != "prod-1" {
		t.Errorf("wrong identifiers: %+v", line)
	}
	if line.PaymentValue != 99.9 || line.PaymentType != "credit_card" || line.Category != "toys" {
		t.Errorf("wrong payment fields: %+v", line)
	}
}

func TestNewOrderLine_CalendarDerivation(t *testing.T) {
	tests := []struct {
		name          string
		purchasedAt   time.Time
		wantDay       string
		wantYear      int
		wantMonthNo   int
		wantMonth     string
		wantYearMonth string
	}{
		{
			name:          "lundi de janvier",
			purchasedAt:   time.Date(2023, 1, 2, 8, 0, 0, 0, time.UTC),
			wantDay:       "Monday",
			wantYear:      2023,
			wantMonthNo:   1,
			wantMonth:     "Jan",
			wantYearMonth: "2023-01",
		},
		{
			name:          "dimanche de décembre",
			purchasedAt:   time.Date(2022, 12, 25, 23, 59, 59, 0, time.UTC),
			wantDay:       "Sunday",
			wantYear:      2022,
			wantMonthNo:   12,
			wantMonth:     "Dec",
			wantYearMonth: "2022-12",
		},
		{
			name:          "mois à un chiffre zéro-paddé",
			purchasedAt:   time.Date(2024, 9, 14, 0, 0, 0, 0, time.UTC),
			wantDay:       "Saturday",
			wantYear:      2024,
			wantMonthNo:   9,
			wantMonth:     "Sep",
			wantYearMonth: "2024-09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := NewOrderLine("ord-1", "C1", "prod-1", tt.purchasedAt, 10, "boleto", "toys")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if line.Day != tt.wantDay {
				t.Errorf("day: expected %q, got %q", tt.wantDay, line.Day)
			}
			if line.Year != tt.wantYear || line.MonthNo != tt.wantMonthNo {
				t.Errorf("year/month_no: expected %d/%d, got %d/%d",
					tt.wantYear, tt.wantMonthNo, line.Year, line.MonthNo)
			}
			if line.Month != tt.wantMonth {
				t.Errorf("month: expected %q, got %q", tt.wantMonth, line.Month)
			}
			if line.YearMonth != tt.wantYearMonth {
				t.Errorf("year_month: expected %q, got %q", tt.wantYearMonth, line.YearMonth)
			}
		})
	}
}

func TestNewOrderLine_Validation(t *testing.T) {
	valid := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		orderID      OrderID
		customerID   CustomerID
		purchasedAt  time.Time
		paymentValue float64
		paymentType  string
	}{
		{"empty order id", "", "C1", valid, 10, "boleto"},
		{"empty customer id", "ord-1", "", valid, 10, "boleto"},
		{"zero timestamp", "ord-1", "C1", time.Time{}, 10, "boleto"},
		{"negative payment value", "ord-1", "C1", valid, -1, "boleto"},
		{"empty payment type", "ord-1", "C1", valid, 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrderLine(tt.orderID, tt.customerID, "prod-1",
				tt.purchasedAt, tt.paymentValue, tt.paymentType, "toys")
			if err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewOrderLine_EmptyCategoryAllowed(t *testing.T) {
	line, err := NewOrderLine("ord-1", "C1", "prod-1",
		time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), 10, "boleto", "")
	if err != nil {
		t.Fatalf("empty category must be accepted: %v", err)
	}
	if line.HasCategory() {
		t.Error("HasCategory must be false for an empty category")
	}
}

func TestPurchaseDate_TruncatesToMidnightUTC(t *testing.T) {
	line, err := NewOrderLine("ord-1", "C1", "prod-1",
		time.Date(2023, 6, 15, 23, 45, 12, 0, time.UTC), 10, "boleto", "toys")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	if !line.PurchaseDate().Equal(want) {
		t.Errorf("expected %v, got %v", want, line.PurchaseDate())
	}
}

// ========================================
// Benchmarks
// ========================================

func BenchmarkNewOrderLine(b *testing.B) {
	purchasedAt := time.Date(2023, 1, 2, 14, 30, 0, 0, time.UTC)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = NewOrderLine("ord-1", "C1", "prod-1", purchasedAt, 99.9, "credit_card", "toys")
	}
}
