package config

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Resolved data file locations. LoadConfig fills these at startup; tests
// point DataDir at fixture directories.
var (
	DataDir       string
	ShapefilePath string
)

const (
	purchasesFile = "state_wise_silver_purchased_kg.csv"
	pricesFile    = "historical_silver_price.csv"
	shapefileName = "India_State_Boundary.shp"
)

// LoadEnv loads environment variables from a .env file if one is present.
func LoadEnv() error {
	// Try multiple possible locations for .env file
	possiblePaths := []string{
		".env",
		"../.env",
		os.Getenv("SILVER_ENV"),
	}

	var loadedFile string
	for _, path := range possiblePaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			loadedFile = path
			log.Printf("Found .env file at: %s", path)
			break
		}
	}
	if loadedFile == "" {
		return nil // nothing to load, defaults apply
	}

	file, err := os.Open(loadedFile)
	if err != nil {
		return err
	}
	defer file.Close()

	log.Printf("Loading environment variables from %s", loadedFile)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)
		os.Setenv(key, value)
		log.Printf("Set environment variable: %s", key)
	}
	return scanner.Err()
}

// LoadConfig resolves the data file locations from the environment.
func LoadConfig() {
	DataDir = getEnvWithDefault("DATA_DIR", "data")
	ShapefilePath = getEnvWithDefault("SHAPEFILE_PATH", filepath.Join(DataDir, shapefileName))
	log.Printf("Using data directory: %s", DataDir)
	log.Printf("Using shapefile: %s", ShapefilePath)
}

// PurchasesPath is the state-wise purchases table location.
func PurchasesPath() string { return filepath.Join(DataDir, purchasesFile) }

// PricesPath is the historical price table location.
func PricesPath() string { return filepath.Join(DataDir, pricesFile) }

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
