package main

import (
	"fmt"
	"os"
	"path/filepath"

	"pixelnex.dev/internal/catalog"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: catalog <output-dir> [json|yaml]")
		fmt.Println("       writes the embedded project catalog for editing; load it back with PORTFOLIO_CATALOG_FILE")
		os.Exit(1)
	}

	outputDir := os.Args[1]
	format := "json"
	if len(os.Args) > 2 {
		format = os.Args[2]
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	projects, err := catalog.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	data, err := catalog.Encode(projects, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR encoding catalog: %v\n", err)
		os.Exit(1)
	}

	path := filepath.Join(outputDir, "projects."+format)
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR writing file: %v\n", err)
		os.Exit(1)
	}

	for _, p := range projects.Projects {
		fmt.Printf("  %-28s %-9s %d media\n", p.ID, p.Category, len(p.MediaSequence()))
	}
	fmt.Printf("Created %s (%d projects)\n", path, len(projects.Projects))
}
