package cmd

import (
	"github.com/spf13/cobra"
)

const AppName = "gifdecode"

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: AppName + " - GIF container/LZW decoder and frame renderer",
	}

	rootCmd.AddCommand(DefineDecodeCommand())
	rootCmd.AddCommand(DefineRenderCommand())
	rootCmd.AddCommand(DefineMountCommand())

	return rootCmd.Execute()
}
