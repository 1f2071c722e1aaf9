package database

import (
	"fmt"
	"math/rand"
	"time"
)

// Catégories produit du jeu de données synthétique (noms façon Olist)
var seedCategories = []string{
	"cama_mesa_banho",
	"beleza_saude",
	"esporte_lazer",
	"moveis_decoracao",
	"informatica_acessorios",
	"utilidades_domesticas",
	"relogios_presentes",
	"telefonia",
	"brinquedos",
	"livros_tecnicos",
}

// Moyens de paiement pondérés (les cartes dominent largement)
var seedPaymentTypes = []struct {
	name   string
	weight int
}{
	{"credit_card", 74},
	{"boleto", 19},
	{"voucher", 4},
	{"debit_card", 3},
}

// SeedDatabase crée la table aplatie order_lines et la peuple avec des
// lignes de commande synthétiques couvrant N années
func SeedDatabase(years int) error {
	fmt.Println("[seed] Création de la table order_lines...")
	if err := createSchema(); err != nil {
		return fmt.Errorf("création du schéma: %w", err)
	}

	fmt.Printf("[seed] Génération de %d année(s) de lignes de commande...\n", years)
	inserted, err := seedOrderLines(years)
	if err != nil {
		return fmt.Errorf("génération des lignes: %w", err)
	}

	fmt.Printf("[seed] %d lignes insérées\n", inserted)
	return nil
}

// createSchema crée la table aplatie (une ligne par ligne de commande /
// échéance de paiement, même forme que le CSV source)
func createSchema() error {
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS order_lines (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL,
			customer_id TEXT NOT NULL,
			product_id TEXT NOT NULL,
			order_purchase_timestamp TIMESTAMP NOT NULL,
			payment_value NUMERIC(12,2) NOT NULL,
			payment_type TEXT NOT NULL,
			product_category_name TEXT
		)
	`)
	if err != nil {
		return err
	}

	_, err = DB.Exec(`TRUNCATE order_lines`)
	return err
}

// seedOrderLines insère des commandes réparties sur la période; une commande
// compte 1 à 3 lignes (produits multiples ou échéances), même client et même
// moyen de paiement pour toutes ses lignes
func seedOrderLines(years int) (int, error) {
	stmt, err := DB.Prepare(`
		INSERT INTO order_lines
			(order_id, customer_id, product_id, order_purchase_timestamp,
			 payment_value, payment_type, product_category_name)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	end := time.Now()
	start := end.AddDate(-years, 0, 0)
	days := int(end.Sub(start).Hours() / 24)

	customerCount := 500 * years
	inserted := 0

	for day := 0; day < days; day++ {
		ordersToday := 3 + rng.Intn(8)
		for o := 0; o < ordersToday; o++ {
			orderID := fmt.Sprintf("ord-%06d", inserted+o+day*100)
			customerID := fmt.Sprintf("cust-%05d", rng.Intn(customerCount))
			paymentType := pickPaymentType(rng)
			orderedAt := start.AddDate(0, 0, day).
				Add(time.Duration(rng.Intn(24*3600)) * time.Second)

			lineCount := 1 + rng.Intn(3)
			for l := 0; l < lineCount; l++ {
				productID := fmt.Sprintf("prod-%04d", rng.Intn(1000))
				category := seedCategories[rng.Intn(len(seedCategories))]
				// ~2% de lignes sans catégorie, comme le jeu réel
				if rng.Intn(50) == 0 {
					category = ""
				}
				value := 20 + rng.Float64()*480

				if _, err := stmt.Exec(orderID, customerID, productID,
					orderedAt, value, paymentType, category); err != nil {
					return inserted, err
				}
				inserted++
			}
		}
	}

	return inserted, nil
}

// pickPaymentType tire un moyen de paiement selon les pondérations
func pickPaymentType(rng *rand.Rand) string {
	total := 0
	for _, pt := range seedPaymentTypes {
		total += pt.weight
	}

	n := rng.Intn(total)
	for _, pt := range seedPaymentTypes {
		if n < pt.weight {
			return pt.name
		}
		n -= pt.weight
	}
	return seedPaymentTypes[0].name
}
