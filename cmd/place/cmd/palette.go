package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the configured palette",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cc, err := loadCanvasConfig()
		if err != nil {
			return err
		}
		p, err := canvas.NewPalette(cc.Palette)
		if err != nil {
			return err
		}
		fmt.Printf("%d colors\n", p.Len())
		for i, c := range p.Colors() {
			fmt.Printf("  %2d  %s  \x1b[48;2;%d;%d;%dm    \x1b[0m\n", i, c, c.R, c.G, c.B)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
