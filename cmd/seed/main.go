package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"ecomdash/database"

	"github.com/joho/godotenv"
)

func main() {
	// Charge .env
	err := godotenv.Load()
	if err != nil {
		log.Println("Attention: fichier .env non trouvé, utilisation des valeurs par défaut")
	}

	// Connexion PostgreSQL
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "ecomdash"),
		getEnv("DB_PASSWORD", "ecomdash"),
		getEnv("DB_NAME", "ecomdash"),
		getEnv("DB_SSLMODE", "disable"),
	)

	err = database.Init(connStr)
	if err != nil {
		log.Fatal("❌ Erreur connexion DB:", err)
	}
	defer database.Close()

	fmt.Println("✅ Connexion PostgreSQL établie")

	years, _ := strconv.Atoi(getEnv("SEED_YEARS", "2"))

	fmt.Println("🌱 Démarrage du seed de la base de données...")
	err = database.SeedDatabase(years)
	if err != nil {
		log.Fatal("❌ Erreur lors du seed:", err)
	}

	fmt.Println("✅ Seed terminé avec succès!")
	fmt.Println()
	fmt.Println("Vous pouvez maintenant démarrer le tableau de bord avec:")
	fmt.Println("  DATA_SOURCE=postgres go run main.go")
	fmt.Println()
	fmt.Println("Et tester les endpoints:")
	fmt.Println("  http://localhost:8080/api/dashboard")
	fmt.Println("  http://localhost:8080/api/dashboard?start=2024-01-01&end=2024-06-30")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
