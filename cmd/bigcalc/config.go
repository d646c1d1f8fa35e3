package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-bignum"
)

// config is the optional --config file:
//
//	unsigned = false
//	big_endian = true
//	format = "hex"
//
//	[constants]
//	p = "340282366920938463463374607431768211297"
//	g = 5
type config struct {
	Unsigned  bool                  `toml:"unsigned"`
	BigEndian bool                  `toml:"big_endian"`
	Format    string                `toml:"format"`
	Constants map[string]bignum.Int `toml:"constants"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	switch cfg.Format {
	case "", "dec", "hex":
	default:
		return config{}, fmt.Errorf("%s: unknown format %q (dec|hex)", path, cfg.Format)
	}
	return cfg, nil
}

func configFromCmd(cmd *cobra.Command) (config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config{}, err
	}
	return loadConfig(path)
}

// operand resolves a named constant, or parses s as an integer literal.
// Literals may be decimal or carry a 0x, 0o or 0b prefix.
func (c config) operand(s string) (bignum.Int, error) {
	if v, ok := c.Constants[s]; ok {
		return v, nil
	}
	b, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return bignum.Int{}, fmt.Errorf("invalid operand %q", s)
	}
	return bignum.FromBigInt(b), nil
}

func (c config) format(v bignum.Int) string {
	if c.Format == "hex" {
		return fmt.Sprintf("%#x", v)
	}
	return v.String()
}
