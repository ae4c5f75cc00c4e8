package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/RyanCodeGit/rdsextract/pkg/config"
	"github.com/RyanCodeGit/rdsextract/pkg/database"
)

var configPath = flag.String("config", "", "Path to the YAML credentials file")

func main() {
	flag.Parse()
	if *configPath == "" {
		log.Fatal("credentials file is required")
	}

	creds, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load credentials: %v", err)
	}

	db := database.NewPostgres(creds)
	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer db.Close()

	if err := db.Exec(ctx, "DROP TABLE IF EXISTS loans"); err != nil {
		log.Fatalf("Failed to drop table: %v", err)
	}
	if err := db.Exec(ctx, `
		CREATE TABLE loans (
			id INTEGER PRIMARY KEY,
			amount DOUBLE PRECISION NOT NULL
		)
	`); err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	for i := 1; i <= 25; i++ {
		if err := db.Exec(ctx,
			"INSERT INTO loans (id, amount) VALUES ($1, $2)", i, float64(i)*10.5); err != nil {
			log.Fatalf("Failed to insert row %d: %v", i, err)
		}
	}

	fmt.Println("Test table created successfully")
}
