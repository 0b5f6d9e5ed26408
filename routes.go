// C:\Users\wasab\OneDrive\デスクトップ\BENTO\routes.go
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"bento/automation"
	"bento/config"
	"bento/database"
	"bento/importer"

	"github.com/jmoiron/sqlx"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB) {

	// 注文CSVアップロード取込
	mux.HandleFunc("/api/import/upload", func(w http.ResponseWriter, r *http.Request) {
		cfg := config.GetConfig()
		opts := importer.DefaultOptions()
		if cfg.MaxFileSizeMB > 0 {
			opts.MaxFileSize = int64(cfg.MaxFileSizeMB) << 20
		}
		if cfg.ErrorThreshold > 0 {
			opts.ErrorThreshold = cfg.ErrorThreshold
		}
		if cfg.AbortPolicy != "" {
			opts.AbortPolicy = importer.AbortPolicy(cfg.AbortPolicy)
		}
		importer.UploadOrderCSVHandler(dbConn, opts)(w, r)
	})

	// 取込ログ一覧
	mux.HandleFunc("/api/import/logs", func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		logs, err := database.GetImportLogs(dbConn, limit)
		if err != nil {
			log.Printf("Error querying import logs: %v", err)
			http.Error(w, "Failed to retrieve import logs", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(logs); err != nil {
			log.Printf("Error encoding import logs response: %v", err)
		}
	})

	// マスタ一覧 (CRUD画面は別システム。ここは参照APIのみ)
	mux.HandleFunc("/api/masters/companies", func(w http.ResponseWriter, r *http.Request) {
		companies, err := database.GetAllCompanies(dbConn)
		if err != nil {
			log.Printf("Error querying companies: %v", err)
			http.Error(w, "Failed to retrieve companies", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(companies)
	})

	mux.HandleFunc("/api/masters/users", func(w http.ResponseWriter, r *http.Request) {
		users, err := database.GetAllUsers(dbConn)
		if err != nil {
			log.Printf("Error querying users: %v", err)
			http.Error(w, "Failed to retrieve users", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(users)
	})

	mux.HandleFunc("/api/masters/products", func(w http.ResponseWriter, r *http.Request) {
		products, err := database.GetAllProducts(dbConn)
		if err != nil {
			log.Printf("Error querying products: %v", err)
			http.Error(w, "Failed to retrieve products", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	})

	// 受注Webからの自動受信
	mux.HandleFunc("/api/automation/download", automation.DownloadOrderCSVHandler(dbConn))

	// 設定
	mux.HandleFunc("/api/config/get", GetConfigHandler())
	mux.HandleFunc("/api/config/save", SaveConfigHandler())
}
