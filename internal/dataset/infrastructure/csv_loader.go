package infrastructure

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"ecomdash/internal/dataset/domain"
)

// Formats de timestamp acceptés dans le CSV source
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// CSVLoader charge le jeu de données aplati depuis un fichier CSV
// (forme main_data.csv: une ligne par ligne de commande / échéance de
// paiement). Les lignes malformées sont écartées et comptées, jamais
// bloquantes: le moteur exige une table bien typée en entrée.
type CSVLoader struct {
	path string
}

// NewCSVLoader crée un loader pour le fichier donné
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Load lit le fichier et retourne les lignes de commande typées,
// champs calendaires dérivés compris
func (l *CSVLoader) Load() ([]domain.OrderLine, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{
		"order_id", "customer_id", "order_purchase_timestamp",
		"payment_value", "payment_type", "product_id",
	} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var lines []domain.OrderLine
	skipped := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}

		line, err := parseRecord(record, cols)
		if err != nil {
			skipped++
			continue
		}
		lines = append(lines, line)
	}

	if skipped > 0 {
		log.Printf("[ingest] %d ligne(s) malformée(s) écartée(s) de %s", skipped, l.path)
	}

	return lines, nil
}

// parseRecord convertit un enregistrement CSV en ligne de commande typée
func parseRecord(record []string, cols map[string]int) (domain.OrderLine, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	purchasedAt, err := parseTimestamp(field("order_purchase_timestamp"))
	if err != nil {
		return domain.OrderLine{}, err
	}

	paymentValue, err := strconv.ParseFloat(field("payment_value"), 64)
	if err != nil {
		return domain.OrderLine{}, fmt.Errorf("invalid payment_value: %w", err)
	}

	return domain.NewOrderLine(
		domain.OrderID(field("order_id")),
		domain.CustomerID(field("customer_id")),
		domain.ProductID(field("product_id")),
		purchasedAt,
		paymentValue,
		field("payment_type"),
		field("product_category_name"),
	)
}

// parseTimestamp essaie les formats de timestamp acceptés
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}
