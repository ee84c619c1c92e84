package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the sprite catalog",
	Long:  `Shows every sprite in the catalog with its glyph and world size.`,
	Args:  cobra.NoArgs,
	RunE:  runSprites,
}

func runSprites(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	names := catalog.Names()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, n := range names {
		if len(n) > maxNameLen {
			maxNameLen = len(n)
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, "Name", "Glyph", "Size")
	fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, "----", "-----", "----")

	for _, n := range names {
		s, err := catalog.Load(n)
		if err != nil {
			return err
		}
		fmt.Printf("  %-*s  %-5c  %gx%g\n", maxNameLen, n, s.Glyph, s.Width, s.Height)
	}
	return nil
}
