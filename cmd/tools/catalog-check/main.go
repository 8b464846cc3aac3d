// cmd/tools/catalog-check/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"career-advisor/pkg/catalog"
)

var catalogPath string

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	selectCmd := flag.NewFlagSet("select", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)

	validateCmd.StringVar(&catalogPath, "path", "configs/catalog.json", "Path to catalog file")
	listCmd.StringVar(&catalogPath, "path", "", "Path to catalog file (built-in catalog when empty)")
	selectCmd.StringVar(&catalogPath, "path", "", "Path to catalog file (built-in catalog when empty)")
	skills := selectCmd.String("skills", "", "Comma separated skills (e.g., Python,React)")
	exportCmd.StringVar(&catalogPath, "path", "configs/catalog.json", "Destination for the built-in catalog")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		c, err := catalog.Load(catalogPath)
		if err != nil {
			fmt.Printf("Catalog validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Catalog validation passed. Found %d careers in %d groups.\n", len(c.Careers), len(c.Groups))

	case "list":
		listCmd.Parse(os.Args[2:])
		c, err := loadCatalog()
		if err != nil {
			fmt.Printf("Error loading catalog: %v\n", err)
			os.Exit(1)
		}
		listCareers(c)

	case "select":
		selectCmd.Parse(os.Args[2:])
		c, err := loadCatalog()
		if err != nil {
			fmt.Printf("Error loading catalog: %v\n", err)
			os.Exit(1)
		}
		picked := c.Select(splitSkills(*skills))
		fmt.Printf("%d careers for skills [%s]:\n", len(picked), *skills)
		for _, career := range picked {
			fmt.Printf("  %-32s %3d%%\n", career.Title, career.Match)
		}

	case "export":
		exportCmd.Parse(os.Args[2:])
		if err := exportDefault(catalogPath); err != nil {
			fmt.Printf("Error exporting catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote built-in catalog to %s\n", catalogPath)

	case "help":
		fallthrough
	default:
		help()
	}
}

func loadCatalog() (*catalog.Catalog, error) {
	if catalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(catalogPath)
}

func listCareers(c *catalog.Catalog) {
	fmt.Printf("Catalog version %s (updated %s)\n\n", c.Version, c.LastUpdated)
	for _, g := range c.Groups {
		fmt.Printf("%s: keywords=%s\n", g.ID, strings.Join(g.Keywords, ","))
		for _, id := range g.Careers {
			if career, ok := c.CareerByID(id); ok {
				fmt.Printf("  %-32s %3d%%\n", career.Title, career.Match)
			}
		}
	}
	fmt.Println("generic:")
	for _, id := range c.Generic {
		if career, ok := c.CareerByID(id); ok {
			fmt.Printf("  %-32s %3d%%\n", career.Title, career.Match)
		}
	}
}

func splitSkills(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// exportDefault writes the built-in catalog so it can be edited and loaded
// through fallback.catalog_path.
func exportDefault(path string) error {
	c := catalog.Default()
	c.LastUpdated = time.Now().Format(time.RFC3339)

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

const usage = `
Usage: catalog-check <command> [flags]

Commands:
  validate Validate a catalog file
  list     Print the careers of a catalog by group
  select   Show which careers the offline path picks for a skill list
  export   Write the built-in catalog to a file for editing
  help     Show this help message

Examples:
  catalog-check validate -path configs/catalog.json
  catalog-check select -skills "Python,React"
  catalog-check export -path configs/catalog.json

Use 'catalog-check <command> -h' for more information about a command.
`

func help() {
	fmt.Print(usage)
}
