package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/colshift/pkg/config"
)

func ExampleLoad() {
	ctx := context.Background()

	configYAML := `
path: data
steps:
  - kind: insert
    column: created_at
    default_value: "1970-01-01"
    order: 2
  - kind: reorder
    column: id
    order: 1
`

	tmpDir, err := os.MkdirTemp("", "colshift-example")
	if err != nil {
		fmt.Printf("Error creating temp dir: %v\n", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "colshift.yaml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	ops, err := cfg.Operations()
	if err != nil {
		fmt.Printf("Error reading steps: %v\n", err)
		return
	}

	fmt.Printf("Extension: %s\n", cfg.Extension)
	for _, op := range ops {
		fmt.Println(op)
	}

	// Output:
	// Extension: csv
	// Inserting created_at with default value 1970-01-01 @ 2
	// Moving id to position 1
}
