package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"famigo/internal/app"
)

var (
	runHeadless bool
	runFrames   int
	runScale    int
	runConfig   string
)

var runCmd = &cobra.Command{
	Use:   "run <rom>",
	Short: "Run a ROM",
	Long: `Runs an iNES ROM in a window. With --headless the emulator runs
without a display for the given number of frames, which is useful for
automation and timing checks.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := runConfig
		if configPath == "" {
			configPath = app.DefaultConfigPath()
		}
		config, err := app.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if runScale > 0 {
			config.Window.Scale = runScale
		}
		if runHeadless {
			config.Video.Backend = "headless"
		}

		application := app.New(config)
		defer application.Cleanup()

		if err := application.LoadROM(args[0]); err != nil {
			return err
		}

		if runHeadless {
			if err := application.RunFrames(runFrames); err != nil {
				return err
			}
			fmt.Printf("ran %d frames\n", runFrames)
			return nil
		}
		return application.Run()
	},
}

func init() {
	runCmd.Flags().BoolVar(&runHeadless, "headless", false, "run without a window")
	runCmd.Flags().IntVar(&runFrames, "frames", 60, "frames to run in headless mode")
	runCmd.Flags().IntVar(&runScale, "scale", 0, "window scale factor (overrides config)")
	runCmd.Flags().StringVar(&runConfig, "config", "", "path to config file")
	rootCmd.AddCommand(runCmd)
}
