package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "famigo",
	Short: "A cycle-stepped NES emulator",
	Long: `famigo emulates the Nintendo Entertainment System: a 6502 CPU,
the 2C02 picture processor and the common cartridge mappers, clocked
per PPU dot the way the hardware runs.`,
	SilenceUsage: true,
}
