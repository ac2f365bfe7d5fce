package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-ultra/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants",
	Long:  `Shows every registered variant. Variants are presets layered over your configuration.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	fmt.Println("Available variants:")
	fmt.Println()

	ids := make([]string, len(variants))
	maxIDLen := 2 // "ID" header
	for i, v := range variants {
		ids[i] = v.ID
		if v.ID == registry.DefaultVariant {
			ids[i] += "*"
		}
		maxIDLen = max(maxIDLen, len(ids[i]))
	}

	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "--", "-----", "-----------")
	for i, v := range variants {
		fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, ids[i], v.Title, v.Description)
	}

	fmt.Println()
	fmt.Println("* default. Run 'snake play <id>' to play a variant.")
}
