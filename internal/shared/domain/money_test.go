package domain

import "testing"

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(100.50, "BRL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Amount() != 100.50 || m.Currency() != "BRL" {
		t.Errorf("wrong money value: %v %s", m.Amount(), m.Currency())
	}

	if _, err := NewMoney(-1, "BRL"); err == nil {
		t.Error("expected an error for a negative amount")
	}
	if _, err := NewMoney(10, ""); err == nil {
		t.Error("expected an error for an empty currency")
	}
}

func TestMoney_Add(t *testing.T) {
	a, _ := NewBRL(100)
	b, _ := NewBRL(50.25)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Amount() != 150.25 {
		t.Errorf("expected 150.25, got %v", sum.Amount())
	}

	usd, _ := NewMoney(10, "USD")
	if _, err := a.Add(usd); err == nil {
		t.Error("expected an error when adding different currencies")
	}
}

func TestMoney_Format(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "R$ 0,00"},
		{"cents only", 0.5, "R$ 0,50"},
		{"small amount", 99.9, "R$ 99,90"},
		{"thousands separator", 1234.56, "R$ 1.234,56"},
		{"millions", 1234567.89, "R$ 1.234.567,89"},
		{"rounds to nearest cent", 10.006, "R$ 10,01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewBRL(tt.amount)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := m.Format(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMoney_FormatNonBRL(t *testing.T) {
	m, _ := NewMoney(1234.56, "USD")
	if got := m.Format(); got != "USD 1.234,56" {
		t.Errorf("expected the raw currency code as symbol, got %q", got)
	}
}

func TestMoney_IsZero(t *testing.T) {
	zero, _ := NewBRL(0)
	if !zero.IsZero() {
		t.Error("expected IsZero on a zero amount")
	}
	nonZero, _ := NewBRL(0.01)
	if nonZero.IsZero() {
		t.Error("expected IsZero false on a non-zero amount")
	}
}
