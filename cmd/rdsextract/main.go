package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/RyanCodeGit/rdsextract/pkg/config"
	"github.com/RyanCodeGit/rdsextract/pkg/database"
	"github.com/RyanCodeGit/rdsextract/pkg/table"
)

var (
	// Extraction flags
	configPath = flag.String("config", "", "Path to the YAML credentials file")
	driver     = flag.String("driver", "postgres", "Database driver (postgres or mssql)")
	tableName  = flag.String("table", "", "Table to download")
	output     = flag.String("output", "", "CSV file to write the table to")

	// Inspection flag
	input = flag.String("input", "", "CSV file to inspect instead of extracting")
)

func validate() error {
	if *input != "" {
		return nil
	}
	if *configPath == "" {
		return fmt.Errorf("credentials file is required")
	}
	if *tableName == "" {
		return fmt.Errorf("table name is required")
	}
	if *output == "" {
		return fmt.Errorf("output file path is required")
	}
	if *driver != "postgres" && *driver != "mssql" {
		return fmt.Errorf("unsupported driver: %s", *driver)
	}
	return nil
}

func main() {
	flag.Parse()

	if err := validate(); err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if *input != "" {
		if err := inspect(*input, os.Stdout); err != nil {
			log.Fatalf("Failed to inspect %s: %v", *input, err)
		}
		return
	}

	if err := extract(); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("Wrote table %s to %s", *tableName, *output)
}

func extract() error {
	creds, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	db, err := database.New(*driver, creds)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer db.Close()

	tbl, err := db.FetchTable(ctx, *tableName)
	if err != nil {
		return fmt.Errorf("failed to fetch table: %w", err)
	}

	if err := table.Export(tbl, *output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// inspect prints the shape and per-column null counts of a CSV file.
func inspect(path string, w io.Writer) error {
	tbl, err := table.Import(path)
	if err != nil {
		return err
	}

	rows, cols := tbl.Shape()
	fmt.Fprintf(w, "%s: %d rows, %d columns\n", path, rows, cols)
	for _, col := range tbl.Columns {
		nulls, err := tbl.NullCount(col)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-24s %d null\n", col, nulls)
	}
	return nil
}
