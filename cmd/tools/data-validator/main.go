// cmd/tools/data-validator/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"aagaz-backend/internal/common/config"
	"aagaz-backend/internal/common/logger"
	"aagaz-backend/internal/taxonomy"
	"aagaz-backend/pkg/registry"
)

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	registerCmd := flag.NewFlagSet("register", flag.ExitOnError)

	// Validate command flags
	dataDir := validateCmd.String("data", "./data", "Directory holding taxonomy and quiz JSON files")
	registryPath := validateCmd.String("registry", "configs/dataset-registry.json", "Path to dataset registry file")

	// Register command flags
	regPath := registerCmd.String("registry", "configs/dataset-registry.json", "Path to dataset registry file")
	id := registerCmd.String("id", "", "Dataset ID (e.g., quiz-12thq)")
	displayName := registerCmd.String("displayName", "", "Display Name (e.g., Class 12 Quiz)")
	description := registerCmd.String("description", "", "Description")
	kind := registerCmd.String("kind", "", "Dataset kind (taxonomy or quiz)")
	file := registerCmd.String("file", "", "Data file name relative to the data directory")
	grade := registerCmd.String("grade", "", "Grade key for quiz datasets (10thq, 12thq, ugq)")
	version := registerCmd.String("version", "1.0.0", "Version")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateData(*dataDir, *registryPath); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Validation passed.")

	case "register":
		registerCmd.Parse(os.Args[2:])
		if *id == "" || *displayName == "" || *kind == "" || *file == "" {
			fmt.Println("Error: id, displayName, kind, and file are required for register.")
			registerCmd.Usage()
			os.Exit(1)
		}
		if *kind == registry.KindQuiz && *grade == "" {
			fmt.Println("Error: grade is required for quiz datasets.")
			os.Exit(1)
		}
		dataset := registry.Dataset{
			ID:          *id,
			DisplayName: *displayName,
			Description: *description,
			Kind:        *kind,
			File:        *file,
			Grade:       *grade,
			Version:     *version,
			Tags:        []string{},
		}
		if err := registerDataset(*regPath, dataset); err != nil {
			fmt.Printf("Error registering dataset: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registered dataset: %s\n", *id)

	case "help":
		fallthrough
	default:
		help()
	}
}

// validateData loads the full data directory through the same schema-checked
// path the server uses, then cross-checks the registry against it.
func validateData(dataDir, registryPath string) error {
	store := taxonomy.NewStore(config.DataConfig{Dir: dataDir}, logger.NewNoOpLogger())
	if err := store.Load(); err != nil {
		return fmt.Errorf("data load: %w", err)
	}

	careers, err := store.Careers()
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d careers from %s\n", len(careers), dataDir)

	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No registry at %s, skipping registry checks\n", registryPath)
			return nil
		}
		return fmt.Errorf("registry load: %w", err)
	}

	for _, dataset := range reg.Datasets {
		path := filepath.Join(dataDir, dataset.File)
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("dataset %s: file missing: %s", dataset.ID, path)
		}
		switch dataset.Kind {
		case registry.KindTaxonomy, registry.KindQuiz:
		default:
			return fmt.Errorf("dataset %s: unknown kind %q", dataset.ID, dataset.Kind)
		}
	}

	if len(reg.FindByKind(registry.KindTaxonomy)) != 1 {
		return fmt.Errorf("registry must contain exactly one taxonomy dataset")
	}
	for _, grade := range []string{"10thq", "12thq", "ugq"} {
		if _, err := reg.FindByGrade(grade); err != nil {
			return err
		}
	}

	fmt.Printf("Registry %s covers all grades\n", registryPath)
	return nil
}

func registerDataset(path string, dataset registry.Dataset) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		reg = &registry.DatasetRegistry{
			Version:  "1.0.0",
			Datasets: []registry.Dataset{},
		}
	}

	for _, existing := range reg.Datasets {
		if existing.ID == dataset.ID {
			return fmt.Errorf("dataset %s already registered", dataset.ID)
		}
	}

	reg.Datasets = append(reg.Datasets, dataset)
	reg.LastUpdated = time.Now().Format(time.RFC3339)

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func help() {
	fmt.Println(`Usage: data-validator <command> [flags]

Commands:
  validate   Load and schema-check the data directory, then verify the registry
  register   Append a dataset entry to the registry
  help       Show this help

Examples:
  data-validator validate -data ./data -registry configs/dataset-registry.json
  data-validator register -id quiz-12thq -displayName "Class 12 Quiz" -kind quiz -file 12thq.json -grade 12thq`)
}
