package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenPlace/pkg/canvas"
	"github.com/OpenTraceLab/OpenPlace/pkg/feed"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Pixel feed operations",
	Long: `Commands for working with pixel feeds.

A feed has one update per line: a position key, a hex color and an
optional unix timestamp. // starts a comment.

  100x200 e50000
  3x4 #0083c7 @1700000000`,
}

var feedCheckCmd = &cobra.Command{
	Use:   "check <feed_file>",
	Short: "Validate a feed against the configured canvas",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedCheck,
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.AddCommand(feedCheckCmd)
}

func runFeedCheck(cmd *cobra.Command, args []string) error {
	_, cc, err := loadCanvasConfig()
	if err != nil {
		return err
	}
	grid, err := canvas.NewGrid(cc.GridSize, cc.Background)
	if err != nil {
		return err
	}

	src, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer src.Close()

	reader, err := feed.NewReader(nil)
	if err != nil {
		return err
	}

	accepted, rejected := 0, 0
	err = reader.Scan(cmd.Context(), src, func(l feed.Line) error {
		if l.Err == nil && !grid.Contains(l.Update.Cell) {
			l.Err = fmt.Errorf("%w: %s not in %dx%d", canvas.ErrOutOfBounds, l.Update.Cell.Key(), cc.GridSize.W, cc.GridSize.H)
		}
		if l.Err != nil {
			rejected++
			fmt.Printf("  line %d: %v\n", l.Number, l.Err)
			return nil
		}
		accepted++
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d accepted, %d rejected\n", accepted, rejected)
	if rejected > 0 {
		return fmt.Errorf("%d lines rejected", rejected)
	}
	return nil
}
