package database

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// Init ouvre la connexion Postgres et configure le pool.
// Le moteur ne fait que des lectures ponctuelles (matérialisation du jeu de
// données au démarrage), le pool reste volontairement petit.
func Init(connStr string) error {
	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(2)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

// Close ferme la connexion
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
