package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/dragon4/internal/logging"
)

func execute(args ...string) (string, error) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"shortest": {
			args: []string{"shortest", "0.1", "1e23", "123.456"},
			want: "0.1\t1\t0\n1e23\t1\t24\n123.456\t123456\t3\n",
		},
		"shortest negative": {
			args: []string{"shortest", "--", "-0.5"},
			want: "-0.5\t5\t0\n",
		},
		"shortest special": {
			args: []string{"shortest", "inf", "nan", "0"},
			want: "inf\t-\t0\nnan\t-\t0\n0\t-\t0\n",
		},
		"fixed": {
			args: []string{"fixed", "--precision", "40", "0.1"},
			want: "0.1\t1000000000000000055511151231257827021182\t0\n",
		},
		"fixed rounds to nothing": {
			args: []string{"fixed", "-p", "0", "0.1"},
			want: "0.1\t-\t0\n",
		},
		"exponent": {
			args: []string{"exponent", "--limit", "2", "885", "8.85"},
			want: "885\t88\t3\n8.85\t88\t1\n",
		},
		"decode bits": {
			args: []string{"--bits", "decode", "0x0010000000000000", "7ff0000000000000"},
			want: "0x0010000000000000\tfinite\t+\t4503599627370496\t-1074\n7ff0000000000000\tinfinite\t+\t0\t0\n",
		},
		"decode negative zero": {
			args: []string{"decode", "--", "-0"},
			want: "-0\tzero\t-\t0\t0\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := execute(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootCommand_JSON(t *testing.T) {
	got, err := execute("--output", "json", "shortest", "0.3")
	require.NoError(t, err)

	var r record
	require.NoError(t, json.Unmarshal([]byte(got), &r))
	assert.Equal(t, record{Input: "0.3", Digits: "3", K: 0}, r)
}

func TestRootCommand_Env(t *testing.T) {
	t.Setenv("DRAGON4_OUTPUT", "json")
	t.Setenv("DRAGON4_PRECISION", "2")

	got, err := execute("fixed", "3.14159")
	require.NoError(t, err)

	var r record
	require.NoError(t, json.Unmarshal([]byte(got), &r))
	assert.Equal(t, "314", r.Digits)
	assert.Equal(t, 1, r.K)
}

func TestRootCommand_Error(t *testing.T) {
	t.Run("invalid value", func(t *testing.T) {
		_, err := execute("shortest", "abc")
		assert.ErrorContains(t, err, `invalid value "abc"`)
	})

	t.Run("invalid bits", func(t *testing.T) {
		_, err := execute("--bits", "decode", "0xzz")
		assert.ErrorContains(t, err, `invalid bit pattern "0xzz"`)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := execute("shortest", "1e400")
		assert.Error(t, err)
	})

	t.Run("output format", func(t *testing.T) {
		_, err := execute("--output", "yaml", "shortest", "1")
		assert.ErrorIs(t, err, errOutputFormat)
	})

	t.Run("log format", func(t *testing.T) {
		_, err := execute("--log-format", "xml", "shortest", "1")
		assert.ErrorIs(t, err, logging.ErrFormat)
	})

	t.Run("no arguments", func(t *testing.T) {
		_, err := execute("shortest")
		assert.Error(t, err)
	})
}
