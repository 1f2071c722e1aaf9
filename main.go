package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/joho/godotenv"

	"ecomdash/api"
	"ecomdash/database"
	analyticsapp "ecomdash/internal/analytics/application"
	datasetdomain "ecomdash/internal/dataset/domain"
	datasetinfra "ecomdash/internal/dataset/infrastructure"
	exportapp "ecomdash/internal/export/application"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Attention: fichier .env non trouvé, utilisation des valeurs par défaut")
	}

	lines, err := loadDataset()
	if err != nil {
		log.Fatal("❌ Erreur chargement du jeu de données:", err)
	}
	log.Printf("✅ Jeu de données chargé: %d lignes de commande", len(lines))

	dashboardService := analyticsapp.NewDashboardService(lines, sharedinfra.NewInMemoryCache())
	exportService := exportapp.NewExportService(dashboardService)
	handlers := api.NewHandlers(dashboardService, exportService)

	http.HandleFunc("/api/health", healthHandler)
	http.HandleFunc("/api/dashboard", handlers.GetDashboard)
	http.HandleFunc("/api/export/dashboard-csv", handlers.ExportDashboardCSV)
	http.HandleFunc("/api/export/csv", handlers.ExportLinesCSV)
	http.HandleFunc("/api/export/parquet", handlers.ExportLinesParquet)

	addr := getEnv("HTTP_ADDR", ":8080")
	log.Printf("Tableau de bord disponible sur http://localhost%s/api/dashboard", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

// loadDataset choisit la source d'ingestion selon DATA_SOURCE (csv | postgres)
func loadDataset() ([]datasetdomain.OrderLine, error) {
	switch source := getEnv("DATA_SOURCE", "csv"); source {
	case "csv":
		path := getEnv("DATA_FILE", "dashboard/main_data.csv")
		return datasetinfra.NewCSVLoader(path).Load()
	case "postgres":
		connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "ecomdash"),
			getEnv("DB_PASSWORD", "ecomdash"),
			getEnv("DB_NAME", "ecomdash"),
			getEnv("DB_SSLMODE", "disable"),
		)
		if err := database.Init(connStr); err != nil {
			return nil, err
		}
		return datasetinfra.NewOrderLineQueryRepository(database.DB).Load()
	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q (expected csv or postgres)", source)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
