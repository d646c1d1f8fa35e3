package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shabbyrobe/go-bignum"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--color", "off"}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bigcalc.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEvaluate(t *testing.T) {
	ints := func(vs ...int64) []bignum.Int {
		out := make([]bignum.Int, len(vs))
		for i, v := range vs {
			out[i] = bignum.FromInt64(v)
		}
		return out
	}

	for _, tc := range []struct {
		op       string
		operands []bignum.Int
		want     string
	}{
		{"+", ints(2, 3), "5"},
		{"-", ints(2, 3), "-1"},
		{"*", ints(-4, 3), "-12"},
		{"/", ints(-7, 2), "-3"},
		{"%", ints(-7, 2), "-1"},
		{"divrem", ints(7, -2), "-3 1"},
		{"gcd", ints(0, 5), "5"},
		{"pow", ints(2, 10), "1024"},
		{"modpow", ints(2, 10, 1000), "24"},
		{"&", ints(-8, 15), "8"},
		{"|", ints(-8, 3), "-5"},
		{"^", ints(5, 3), "6"},
		{"&^", ints(15, 5), "10"},
		{"<<", ints(1, 40), "1099511627776"},
		{">>", ints(-9, 1), "-5"},
		{">>>", ints(-1, 1), "2147483647"},
		{"rotl", ints(1, 31), "2147483648"},
		{"rotr", ints(1, 1), "2147483648"},
		{"cmp", ints(3, 4), "-1"},
		{"min", ints(3, 4), "3"},
		{"max", ints(3, 4), "4"},
		{"neg", ints(3), "-3"},
		{"abs", ints(-3), "3"},
		{"not", ints(0), "-1"},
	} {
		t.Run(tc.op, func(t *testing.T) {
			results, err := evaluate(tc.op, tc.operands)
			require.NoError(t, err)
			strs := make([]string, len(results))
			for i, r := range results {
				strs[i] = r.String()
			}
			assert.Equal(t, tc.want, strings.Join(strs, " "))
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	_, err := evaluate("/", []bignum.Int{bignum.One, bignum.Zero})
	assert.ErrorIs(t, err, bignum.ErrDivideByZero)

	_, err = evaluate("pow", []bignum.Int{bignum.One, bignum.MinusOne})
	assert.ErrorIs(t, err, bignum.ErrOutOfRange)

	_, err = evaluate("<<", []bignum.Int{bignum.One, bignum.One.Lsh(80)})
	assert.ErrorIs(t, err, bignum.ErrOverflow)

	_, err = evaluate("+", []bignum.Int{bignum.One})
	assert.Error(t, err)

	_, err = evaluate("??", []bignum.Int{bignum.One, bignum.One})
	assert.Error(t, err)
}

func TestEvalCommand(t *testing.T) {
	out, err := run(t, "eval", "0xFFFFFFFFFFFFFFFF", "*", "0xFFFFFFFFFFFFFFFF")
	require.NoError(t, err)
	assert.Equal(t, "340282366920938463426481119284349108225", out)

	out, err = run(t, "eval", "--format", "hex", "255", "<<", "8")
	require.NoError(t, err)
	assert.Equal(t, "0xff00", out)

	_, err = run(t, "eval", "1", "/", "0")
	assert.ErrorIs(t, err, bignum.ErrDivideByZero)
}

func TestBytesCommand(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"bytes", "--", "-1"}, "ff"},
		{[]string{"bytes", "33022"}, "fe8000"},
		{[]string{"bytes", "--big-endian", "33022"}, "0080fe"},
		{[]string{"bytes", "--unsigned", "33022"}, "fe80"},
		{[]string{"bytes", "--unsigned", "--big-endian", "33022"}, "80fe"},
	} {
		out, err := run(t, tc.args...)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out, "%v", tc.args)
	}

	_, err := run(t, "bytes", "--unsigned", "--", "-1")
	assert.ErrorIs(t, err, bignum.ErrOverflow)
}

func TestConfig(t *testing.T) {
	path := writeConfig(t, `
big_endian = true
format = "hex"

[constants]
p = "340282366920938463463374607431768211297"
g = 5
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.BigEndian)
	assert.False(t, cfg.Unsigned)
	assert.Equal(t, "340282366920938463463374607431768211297", cfg.Constants["p"].String())
	assert.Equal(t, "5", cfg.Constants["g"].String())

	out, err := run(t, "--config", path, "eval", "g", "modpow", "2", "p")
	require.NoError(t, err)
	assert.Equal(t, "0x19", out)

	out, err = run(t, "--config", path, "bytes", "33022")
	require.NoError(t, err)
	assert.Equal(t, "0080fe", out)

	// Flags win over the file.
	out, err = run(t, "--config", path, "bytes", "--big-endian=false", "33022")
	require.NoError(t, err)
	assert.Equal(t, "fe8000", out)
}

func TestConfigErrors(t *testing.T) {
	_, err := loadConfig(writeConfig(t, `nope = 1`))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, `format = "octal"`))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "[constants]\nx = \"1.5\""))
	assert.Error(t, err)

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Constants)
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, "inspect", "--", "-8")
	require.NoError(t, err)
	assert.Contains(t, out, "bitlen   3")
	assert.Contains(t, out, "tz       3")
	assert.Contains(t, out, "log2     -")
	assert.Contains(t, out, "bignum.Int")
	assert.Contains(t, out, "sign: (int32) -8")
}

func TestPackRoundTrip(t *testing.T) {
	for _, v := range []string{"0", "-1", "18446744073709551616", "-340282366920938463463374607431768211456"} {
		packed, err := run(t, "pack", "--", v)
		require.NoError(t, err)

		out, err := run(t, "unpack", packed)
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}

	_, err := run(t, "unpack", "zz")
	assert.Error(t, err)
}
