package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ostafen/gifdecode/internal/gif"
	"github.com/spf13/cobra"
)

func DefineDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "decode <file.gif>",
		Short:        "Parse a GIF file and print its container metadata",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runDecode,
	}
	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	g, err := gif.DecodePath(path)
	if err != nil {
		logger.Error("decode failed", "path", path, "err", err)
		return err
	}

	fmt.Printf("version: GIF%s\n", g.Version)
	fmt.Printf("canvas:  %dx%d\n", g.LSD.Width, g.LSD.Height)
	fmt.Printf("global color table: %d entries\n", len(g.GlobalTable))
	fmt.Printf("frames: %d\n", len(g.Frames))

	for i, f := range g.Frames {
		fmt.Printf("  [%d] rect=(%d,%d %dx%d) disposal=%d transparent=%v interlace=%v colors=%d\n",
			i, f.IM.Left, f.IM.Top, f.IM.Width, f.IM.Height,
			f.GCD.DisposalMethod, f.GCD.TransparentColorFlag, f.IM.InterlaceFlag, len(f.ColorTable))
	}

	logger.Info("decode complete", "path", path, "frames", len(g.Frames))
	return nil
}
