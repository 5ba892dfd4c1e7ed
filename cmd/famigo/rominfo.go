package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"famigo/internal/cartridge"
)

var romInfoCmd = &cobra.Command{
	Use:   "rominfo <rom>",
	Short: "Print iNES header information",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := cartridge.LoadFile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("mapper:    %d\n", cart.MapperID())
		fmt.Printf("prg rom:   %d KiB (%d banks)\n", cart.PRGBanks()*16, cart.PRGBanks())
		if cart.HasCHRRAM() {
			fmt.Printf("chr ram:   8 KiB\n")
		} else {
			fmt.Printf("chr rom:   %d KiB (%d banks)\n", cart.CHRBanks()*8, cart.CHRBanks())
		}
		fmt.Printf("mirroring: %s\n", cart.Mirror())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(romInfoCmd)
}
