package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"venue-recommender/internal/cluster"
	"venue-recommender/internal/config"

	"github.com/jackc/pgx/v5"
)

type VenueRecord struct {
	ClusterID  int
	Name       string
	Lat        float64
	Lon        float64
	VisitCount int
}

func main() {
	venuesFile := flag.String("venues", "", "Path to the venues CSV file to import")
	modelFile := flag.String("model", "", "Path to the serialized clustering model JSON file")
	modelName := flag.String("model-name", "", "Name to store the model under (defaults to config model_name)")
	flag.Parse()

	if *venuesFile == "" && *modelFile == "" {
		fmt.Println("Error: at least one of --venues or --model is required")
		os.Exit(1)
	}

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *modelName == "" {
		*modelName = cfg.ModelName
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	// Ensure tables exist
	err = createTablesIfNotExist(conn)
	if err != nil {
		fmt.Printf("Error creating tables: %v\n", err)
		os.Exit(1)
	}

	if *venuesFile != "" {
		fmt.Printf("Starting venue import from file: %s\n", *venuesFile)

		records, err := parseCSV(*venuesFile)
		if err != nil {
			fmt.Printf("Error parsing CSV: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Parsed %d records\n", len(records))

		err = insertVenues(conn, records)
		if err != nil {
			fmt.Printf("Error inserting venues: %v\n", err)
			os.Exit(1)
		}

		err = verifyImport(conn, len(records))
		if err != nil {
			fmt.Printf("Error verifying import: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Successfully imported %d venues\n", len(records))
	}

	if *modelFile != "" {
		fmt.Printf("Importing clustering model from file: %s\n", *modelFile)

		err = importModel(conn, *modelName, *modelFile)
		if err != nil {
			fmt.Printf("Error importing model: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Successfully stored model %q\n", *modelName)
	}
}

func parseCSV(filePath string) ([]VenueRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []VenueRecord
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 5 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 5 columns", len(record))
		}

		clusterID, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("invalid cluster id: %s", record[0])
		}

		lat, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[2])
		}

		lon, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[3])
		}

		visitCount, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("invalid visit count: %s", record[4])
		}

		venue := VenueRecord{
			ClusterID:  clusterID,
			Name:       record[1],
			Lat:        lat,
			Lon:        lon,
			VisitCount: visitCount,
		}

		records = append(records, venue)
	}

	return records, nil
}

func createTablesIfNotExist(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS venues (
		cluster_id INT PRIMARY KEY,
		name TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		visit_count INT NOT NULL,
		external_link TEXT
	);
	CREATE TABLE IF NOT EXISTS cluster_models (
		name TEXT PRIMARY KEY,
		model JSONB NOT NULL
	);
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func insertVenues(conn *pgx.Conn, records []VenueRecord) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"venues"},
		[]string{"cluster_id", "name", "latitude", "longitude", "visit_count"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{r.ClusterID, r.Name, r.Lat, r.Lon, r.VisitCount}, nil
		}),
	)
	return err
}

func importModel(conn *pgx.Conn, name, filePath string) error {
	blob, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read model file: %w", err)
	}

	// Reject blobs the API would fail to load at startup
	if _, err := cluster.Unmarshal(blob); err != nil {
		return fmt.Errorf("model file is not a valid serialized model: %w", err)
	}

	_, err = conn.Exec(context.Background(),
		`INSERT INTO cluster_models (name, model) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET model = EXCLUDED.model`,
		name, blob,
	)
	if err != nil {
		return fmt.Errorf("failed to store model: %w", err)
	}

	return nil
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM venues").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	return nil
}
