package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/dopagraming/wastewater-records/config"
	"github.com/dopagraming/wastewater-records/pkg/filestore"
	"github.com/dopagraming/wastewater-records/routes"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version info and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg := config.Load()

	db, err := config.Open(cfg.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer config.Close(db)

	if err := config.Migrations(db); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}
	if err := config.SeedSectors(db); err != nil {
		log.Printf("Warning: sector seeding encountered issues: %v", err)
	}

	files, err := filestore.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("could not prepare upload directory: %v", err)
	}

	handler := routes.RegisterRoutes(routes.Deps{
		DB:        db,
		JWTSecret: []byte(cfg.JWTSecret),
		Files:     files,
	})
	handlerWithCORS := enableCORS(handler)
	log.Println("Server starting at port", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlerWithCORS))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Required CORS headers
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		// Handle preflight (OPTIONS)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
