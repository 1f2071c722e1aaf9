package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	datasetdomain "ecomdash/internal/dataset/domain"
)

// MustOrderLine construit une ligne de commande de test, échec immédiat si
// les invariants du record sont violés
func MustOrderLine(
	tb testing.TB,
	orderID, customerID, productID string,
	purchasedAt time.Time,
	paymentValue float64,
	paymentType, category string,
) datasetdomain.OrderLine {
	tb.Helper()

	line, err := datasetdomain.NewOrderLine(
		datasetdomain.OrderID(orderID),
		datasetdomain.CustomerID(customerID),
		datasetdomain.ProductID(productID),
		purchasedAt,
		paymentValue,
		paymentType,
		category,
	)
	if err != nil {
		tb.Fatalf("invalid test order line: %v", err)
	}
	return line
}

// Date raccourci pour une date calendaire UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SampleOrderLines retourne une petite table de référence utilisée par
// plusieurs suites: deux commandes de C1 (dont une multi-lignes), une de C2,
// une ligne sans catégorie
func SampleOrderLines(tb testing.TB) []datasetdomain.OrderLine {
	tb.Helper()

	return []datasetdomain.OrderLine{
		MustOrderLine(tb, "ord-1", "C1", "prod-1",
			time.Date(2023, 1, 5, 9, 30, 0, 0, time.UTC), 100, "credit_card", "toys"),
		MustOrderLine(tb, "ord-1", "C1", "prod-2",
			time.Date(2023, 1, 5, 9, 30, 0, 0, time.UTC), 50, "credit_card", "toys"),
		MustOrderLine(tb, "ord-2", "C2", "prod-3",
			time.Date(2023, 2, 10, 18, 0, 0, 0, time.UTC), 200, "boleto", "books"),
		MustOrderLine(tb, "ord-3", "C1", "prod-4",
			time.Date(2023, 2, 20, 12, 0, 0, 0, time.UTC), 80, "voucher", ""),
	}
}

// SetupTestDB initialise une connexion à la base de données de test
func SetupTestDB(tb testing.TB) *sql.DB {
	tb.Helper()

	_ = godotenv.Load("../../.env")

	db, err := sql.Open("postgres", testConnStr())
	if err != nil {
		tb.Fatalf("Failed to open database: %v", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		tb.Fatalf("Failed to ping database: %v", err)
	}

	return db
}

// SkipIfNoDatabase skip le test/benchmark si la DB n'est pas disponible
func SkipIfNoDatabase(tb testing.TB) {
	tb.Helper()

	_ = godotenv.Load("../../.env")

	db, err := sql.Open("postgres", testConnStr())
	if err != nil {
		tb.Skip("Database not available:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		tb.Skip("Database not available:", err)
	}
}

// testConnStr construit la connection string de test depuis l'environnement
func testConnStr() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "ecomdash"),
		getEnv("DB_PASSWORD", "ecomdash"),
		getEnv("DB_NAME", "ecomdash"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

// getEnv récupère une variable d'environnement avec fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
