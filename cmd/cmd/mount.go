package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ostafen/gifdecode/internal/fuseview"
	"github.com/ostafen/gifdecode/internal/gif"
	"github.com/ostafen/gifdecode/pkg/imgio"
	"github.com/spf13/cobra"
)

func DefineMountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "mount <file.gif> <mountpoint>",
		Short:        "Decode a GIF and serve its composed frames as PNGs through a read-only FUSE filesystem",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         RunMount,
	}
	cmd.Flags().Bool("raw", false, "raw-decode mode: skip disposal handling")
	return cmd
}

func RunMount(cmd *cobra.Command, args []string) error {
	path, mountpoint := args[0], args[1]
	raw, _ := cmd.Flags().GetBool("raw")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	g, err := gif.DecodePath(path)
	if err != nil {
		logger.Error("decode failed", "path", path, "err", err)
		return err
	}

	opts := gif.DefaultOptions()
	opts.RawDecode = raw

	pngFrames := make([][]byte, len(g.Frames))
	for i := range g.Frames {
		rgba, err := g.DecodeFrame(i, opts)
		if err != nil {
			return err
		}

		w, h := g.LSD.Width, g.LSD.Height
		if raw {
			w, h = g.Frames[i].IM.Width, g.Frames[i].IM.Height
		}

		pngData, err := imgio.EncodePNG(w, h, rgba)
		if err != nil {
			return fmt.Errorf("mount: encode frame %d: %w", i, err)
		}
		pngFrames[i] = pngData
	}

	logger.Info("mounting", "path", path, "mountpoint", mountpoint, "frames", len(pngFrames))
	return fuseview.Mount(mountpoint, pngFrames)
}
