package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Money représente une valeur monétaire avec garanties d'invariants.
// Le jeu de données source est libellé en réais brésiliens (BRL).
type Money struct {
	amount   float64
	currency string
}

// NewMoney crée une nouvelle instance de Money avec validation
func NewMoney(amount float64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errors.New("amount cannot be negative")
	}
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// NewBRL crée un montant en réais brésiliens
func NewBRL(amount float64) (Money, error) {
	return NewMoney(amount, "BRL")
}

// Amount retourne le montant
func (m Money) Amount() float64 {
	return m.amount
}

// Currency retourne la devise
func (m Money) Currency() string {
	return m.currency
}

// Add additionne deux Money (même devise requise)
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot add different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{
		amount:   m.amount + other.amount,
		currency: m.currency,
	}, nil
}

// IsZero vérifie si le montant est zéro
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Format retourne le montant formaté pour affichage selon la convention
// pt-BR: "R$ 1.234,56" (point comme séparateur de milliers, virgule décimale)
func (m Money) Format() string {
	symbol := m.currency
	if m.currency == "BRL" {
		symbol = "R$"
	}

	cents := int64(m.amount*100 + 0.5)
	intPart := cents / 100
	decPart := cents % 100

	intStr := fmt.Sprintf("%d", intPart)
	if len(intStr) > 3 {
		var parts []string
		for len(intStr) > 3 {
			parts = append([]string{intStr[len(intStr)-3:]}, parts...)
			intStr = intStr[:len(intStr)-3]
		}
		parts = append([]string{intStr}, parts...)
		intStr = strings.Join(parts, ".")
	}

	return fmt.Sprintf("%s %s,%02d", symbol, intStr, decPart)
}
