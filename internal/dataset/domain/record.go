package domain

import (
	"errors"
	"time"

	shareddomain "ecomdash/internal/shared/domain"
)

// OrderID représente l'identifiant d'une commande (non unique par ligne:
// une commande peut compter plusieurs lignes produit ou échéances de paiement)
type OrderID string

// CustomerID représente l'identifiant d'un client
type CustomerID string

// ProductID représente l'identifiant d'un produit
type ProductID string

// OrderLine représente une ligne de commande du jeu de données aplati.
// Les champs calendaires (Day, Year, MonthNo, Month, YearMonth) sont dérivés
// du timestamp d'achat par l'ingestion et traités comme des clés opaques par
// les agrégateurs.
type OrderLine struct {
	OrderID      OrderID    `json:"order_id"`
	CustomerID   CustomerID `json:"customer_id"`
	ProductID    ProductID  `json:"product_id"`
	PurchasedAt  time.Time  `json:"order_purchase_timestamp"`
	PaymentValue float64    `json:"payment_value"`
	PaymentType  string     `json:"payment_type"`
	Category     string     `json:"product_category_name,omitempty"`
	Day          string     `json:"day"`
	Year         int        `json:"year"`
	MonthNo      int        `json:"month_no"`
	Month        string     `json:"month"`
	YearMonth    string     `json:"year_month"`
}

// NewOrderLine construit une ligne de commande avec validation et dérive les
// champs calendaires depuis le timestamp d'achat
func NewOrderLine(
	orderID OrderID,
	customerID CustomerID,
	productID ProductID,
	purchasedAt time.Time,
	paymentValue float64,
	paymentType string,
	category string,
) (OrderLine, error) {
	if orderID == "" {
		return OrderLine{}, errors.New("order ID cannot be empty")
	}
	if customerID == "" {
		return OrderLine{}, errors.New("customer ID cannot be empty")
	}
	if purchasedAt.IsZero() {
		return OrderLine{}, errors.New("purchase timestamp cannot be zero")
	}
	if paymentValue < 0 {
		return OrderLine{}, errors.New("payment value cannot be negative")
	}
	if paymentType == "" {
		return OrderLine{}, errors.New("payment type cannot be empty")
	}

	line := OrderLine{
		OrderID:      orderID,
		CustomerID:   customerID,
		ProductID:    productID,
		PurchasedAt:  purchasedAt,
		PaymentValue: paymentValue,
		PaymentType:  paymentType,
		Category:     category,
	}
	line.deriveCalendarFields()

	return line, nil
}

// deriveCalendarFields calcule les colonnes calendaires dérivées:
// day = nom du jour ("Monday"), month = abréviation ("Jan"),
// year_month = clé triable "2006-01"
func (l *OrderLine) deriveCalendarFields() {
	l.Day = l.PurchasedAt.Weekday().String()
	l.Year = l.PurchasedAt.Year()
	l.MonthNo = int(l.PurchasedAt.Month())
	l.Month = l.PurchasedAt.Month().String()[:3]
	l.YearMonth = l.PurchasedAt.Format("2006-01")
}

// PurchaseDate retourne la composante date (minuit UTC) du timestamp d'achat.
// Toutes les comparaisons temporelles du moteur se font sur la date seule.
func (l OrderLine) PurchaseDate() time.Time {
	return shareddomain.DateOf(l.PurchasedAt)
}

// HasCategory indique si la ligne porte une catégorie produit renseignée
func (l OrderLine) HasCategory() bool {
	return l.Category != ""
}
