package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/shabbyrobe/go-bignum"
)

var labelColor = color.New(color.FgCyan)

func newBytesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bytes V",
		Short: "Print the two's-complement bytes of V as hex",
		Args:  cobra.ExactArgs(1),
		RunE:  runBytes,
	}
	cmd.Flags().Bool("unsigned", false, "write the magnitude only")
	cmd.Flags().Bool("big-endian", false, "most significant byte first")
	return cmd
}

func runBytes(cmd *cobra.Command, args []string) error {
	cfg, err := configFromCmd(cmd)
	if err != nil {
		return err
	}
	v, err := cfg.operand(args[0])
	if err != nil {
		return err
	}

	unsigned, bigEndian := cfg.Unsigned, cfg.BigEndian
	if cmd.Flags().Changed("unsigned") {
		unsigned, _ = cmd.Flags().GetBool("unsigned")
	}
	if cmd.Flags().Changed("big-endian") {
		bigEndian, _ = cmd.Flags().GetBool("big-endian")
	}

	b, err := v.Bytes(unsigned, bigEndian)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
	return nil
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect V",
		Short: "Describe V and dump its internal representation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromCmd(cmd)
			if err != nil {
				return err
			}
			v, err := cfg.operand(args[0])
			if err != nil {
				return err
			}
			return inspect(cmd.OutOrStdout(), cfg, v)
		},
	}
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func inspect(w io.Writer, cfg config, v bignum.Int) error {
	log2 := "-"
	if l, err := bignum.Log2(v); err == nil {
		log2 = fmt.Sprint(l)
	}

	rows := []struct {
		label string
		value interface{}
	}{
		{"value", cfg.format(v)},
		{"sign", v.Sign()},
		{"bitlen", v.BitLength()},
		{"popcount", v.PopCount()},
		{"tz", v.TrailingZeros()},
		{"lz", v.LeadingZeros()},
		{"log2", log2},
		{"even", v.IsEven()},
		{"pow2", v.IsPowerOfTwo()},
		{"int64", v.IsInt64()},
		{"hash", fmt.Sprintf("%#08x", v.Hash())},
	}
	for _, row := range rows {
		labelColor.Fprintf(w, "%-9s", row.label)
		fmt.Fprintln(w, row.value)
	}

	labelColor.Fprintln(w, "repr")
	for _, line := range strings.Split(strings.TrimRight(dumper.Sdump(v), "\n"), "\n") {
		fmt.Fprintln(w, "  "+line)
	}
	return nil
}

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack V",
		Short: "Print the msgpack encoding of V as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromCmd(cmd)
			if err != nil {
				return err
			}
			v, err := cfg.operand(args[0])
			if err != nil {
				return err
			}
			b, err := msgpack.Marshal(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
			return nil
		},
	}
}

func newUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack HEX",
		Short: "Decode a hex msgpack value written by pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromCmd(cmd)
			if err != nil {
				return err
			}
			b, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}
			var v bignum.Int
			if err := msgpack.Unmarshal(b, &v); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.format(v))
			return nil
		},
	}
}
