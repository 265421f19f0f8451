package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List board presets",
	Long:  `Shows every board preset with its size and winning tile.`,
	Args:  cobra.NoArgs,
	Run:   runVariants,
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List save slots",
	Args:  cobra.NoArgs,
	Run:   runSlots,
}

func runVariants(_ *cobra.Command, _ []string) {
	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range t2048.Variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxIDLen, "ID", "Size", "Goal", "Name")
	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxIDLen, "--", "----", "----", "----")

	for _, v := range t2048.Variants {
		size := fmt.Sprintf("%dx%d", v.GridSize, v.GridSize)
		fmt.Printf("  %-*s  %-6s  %-6d  %s\n", maxIDLen, v.ID, size, v.WinTile, v.Name)
	}

	fmt.Println()
	fmt.Println("Run 't2048 new --variant <id>' to start one.")
}

func runSlots(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	store := openStore(cfg)
	defer store.Close()

	slots, err := store.Slots()
	if err != nil {
		fail("%v", err)
	}
	if len(slots) == 0 {
		fmt.Println("No saved games.")
		return
	}

	fmt.Printf("  %-12s  %-8s  %-8s  %s\n", "Slot", "Variant", "Score", "Updated")
	fmt.Printf("  %-12s  %-8s  %-8s  %s\n", "----", "-------", "-----", "-------")
	for _, g := range slots {
		fmt.Printf("  %-12s  %-8s  %-8d  %s\n", g.Slot, g.Variant, g.Score, g.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
