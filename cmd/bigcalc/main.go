package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errorColor = color.New(color.FgRed, color.Bold)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision integer calculator",
		Long:          `bigcalc evaluates and inspects arbitrary-precision integers`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			colorFlag, err := cmd.Flags().GetString("color")
			if err != nil {
				return err
			}
			switch colorFlag {
			case "on":
				color.NoColor = false
			case "off":
				color.NoColor = true
			case "auto":
				color.NoColor = !isTerminal(os.Stdout)
			default:
				return fmt.Errorf("unknown color mode %q (auto|on|off)", colorFlag)
			}
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "TOML file with defaults and named constants")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newBytesCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newPackCmd())
	root.AddCommand(newUnpackCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
