package main

import (
	"math"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortest(t *testing.T) {
	tests := []struct {
		f      float64
		digits string
		k      int16
	}{
		{0.1, "1", 0},
		{1, "1", 1},
		{123.456, "123456", 3},
		{-2.5, "25", 1},
		{math.MaxFloat64, "17976931348623157", 309},
		{math.SmallestNonzeroFloat64, "5", -323},
	}
	for _, tt := range tests {
		b := shortest(tt.f)
		digits, k := view(b)
		assert.Equal(t, tt.digits, string(digits), "shortest(%v)", tt.f)
		assert.Equal(t, tt.k, k, "shortest(%v)", tt.f)
		dragon4_free(b)
	}
	assert.Equal(t, 0, outstanding())
}

func TestFixed(t *testing.T) {
	b := fixed(0.1, 40)
	defer dragon4_free(b)

	digits, k := view(b)
	assert.Equal(t, "1000000000000000055511151231257827021182", string(digits))
	assert.Equal(t, int16(0), k)
	assert.Equal(t, 40, size(b))
}

func TestExponent(t *testing.T) {
	b := exponent(math.SmallestNonzeroFloat64, 40)
	defer dragon4_free(b)

	digits, k := view(b)
	assert.Equal(t, "4940656458412465441765687928682213723651", string(digits))
	assert.Equal(t, int16(-323), k)

	t.Run("negative limit", func(t *testing.T) {
		b := exponent(1, -1)
		assert.Equal(t, 0, size(b))
		assert.True(t, isNull(b))
		dragon4_free(b)
	})
}

func TestSentinel(t *testing.T) {
	values := map[string]float64{
		"+inf": math.Inf(1),
		"-inf": math.Inf(-1),
		"nan":  math.NaN(),
		"+0":   0,
		"-0":   math.Copysign(0, -1),
	}
	for name, f := range values {
		t.Run(name, func(t *testing.T) {
			for _, m := range []struct {
				mode string
				buf  func() ([]byte, int16, int, bool)
			}{
				{"shortest", func() ([]byte, int16, int, bool) { b := shortest(f); d, k := view(b); return d, k, size(b), isNull(b) }},
				{"fixed", func() ([]byte, int16, int, bool) { b := fixed(f, 10); d, k := view(b); return d, k, size(b), isNull(b) }},
				{"exponent", func() ([]byte, int16, int, bool) { b := exponent(f, 10); d, k := view(b); return d, k, size(b), isNull(b) }},
			} {
				digits, k, n, null := m.buf()
				assert.Empty(t, digits, m.mode)
				assert.Equal(t, int16(0), k, m.mode)
				assert.Equal(t, 0, n, m.mode)
				assert.True(t, null, m.mode)
			}
		})
	}
	assert.Equal(t, 0, outstanding())
}

func TestRelease(t *testing.T) {
	t.Run("no leak", func(t *testing.T) {
		before := outstanding()
		for i := 0; i < 1000; i++ {
			f := float64(i) * 1.1
			dragon4_free(shortest(f))
			dragon4_free(fixed(f, 20))
			dragon4_free(exponent(f, 30))
		}
		assert.Equal(t, before, outstanding())
	})

	t.Run("outstanding", func(t *testing.T) {
		b1 := shortest(1.5)
		b2 := fixed(1.5, 3)
		assert.Equal(t, 2, outstanding())
		dragon4_free(b1)
		assert.Equal(t, 1, outstanding())
		dragon4_free(b2)
		assert.Equal(t, 0, outstanding())
	})

	t.Run("empty", func(t *testing.T) {
		hook := test.NewGlobal()
		defer hook.Reset()

		dragon4_free(shortest(math.Inf(1)))
		assert.Empty(t, hook.AllEntries())
	})

	t.Run("double release", func(t *testing.T) {
		hook := test.NewGlobal()
		defer hook.Reset()

		b := shortest(0.3)
		dragon4_free(b)
		dragon4_free(b)

		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
		assert.Equal(t, 0, outstanding())
	})
}
