package infrastructure

import (
	"database/sql"
	"fmt"

	"ecomdash/internal/dataset/domain"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

// OrderLineQueryRepository charge le jeu de données aplati depuis la table
// Postgres order_lines (même forme que le CSV source). Le moteur reste un
// transform en mémoire: le repository matérialise la table une fois, il
// n'exécute aucune agrégation SQL.
type OrderLineQueryRepository struct {
	sharedinfra.BaseRepository
}

// NewOrderLineQueryRepository crée un nouveau repository de lignes de commande
func NewOrderLineQueryRepository(db *sql.DB) *OrderLineQueryRepository {
	return &OrderLineQueryRepository{
		BaseRepository: sharedinfra.NewBaseRepository(db),
	}
}

// Load matérialise toutes les lignes de commande, champs calendaires dérivés
// à la construction comme pour l'ingestion CSV
func (r *OrderLineQueryRepository) Load() ([]domain.OrderLine, error) {
	query := `
		SELECT order_id, customer_id, product_id,
		       order_purchase_timestamp, payment_value, payment_type,
		       COALESCE(product_category_name, '')
		FROM order_lines
		ORDER BY order_purchase_timestamp, order_id
	`

	rows, err := r.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying order lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var (
			orderID, customerID, productID string
			purchasedAt                    sql.NullTime
			paymentValue                   float64
			paymentType, category          string
		)

		if err := rows.Scan(&orderID, &customerID, &productID,
			&purchasedAt, &paymentValue, &paymentType, &category); err != nil {
			return nil, fmt.Errorf("scanning order line: %w", err)
		}

		line, err := domain.NewOrderLine(
			domain.OrderID(orderID),
			domain.CustomerID(customerID),
			domain.ProductID(productID),
			purchasedAt.Time,
			paymentValue,
			paymentType,
			category,
		)
		if err != nil {
			// Ligne invalide en base: écartée, même politique que le CSV
			continue
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order lines: %w", err)
	}

	return lines, nil
}
