// C:\Users\wasab\OneDrive\デスクトップ\BENTO\database\db.go
package database

import (
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
)

// InitDatabase はデータベーススキーマを適用します。
func InitDatabase(db *sqlx.DB) error {
	log.Println("Applying database schema...")
	if err := ApplySchema(db, "schema.sql"); err != nil {
		return fmt.Errorf("failed to apply schema.sql: %w", err)
	}
	log.Println("Schema applied successfully.")
	return nil
}

// ApplySchema は指定されたスキーマファイルを読み込んで実行します。
func ApplySchema(db *sqlx.DB, path string) error {
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}
	if _, err := db.Exec(string(schemaBytes)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}
