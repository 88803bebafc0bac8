//go:build unit

package couponcode_test

import (
	"strings"
	"testing"

	"relove/internal/pkg/couponcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("shape", func(t *testing.T) {
		code, err := couponcode.Generate()
		require.NoError(t, err)

		assert.Len(t, code, len(couponcode.Prefix)+6)
		assert.True(t, strings.HasPrefix(code, couponcode.Prefix))
		assert.True(t, couponcode.IsWellFormed(code))
	})

	t.Run("uppercase alphanumeric suffix only", func(t *testing.T) {
		for range 50 {
			code, err := couponcode.Generate()
			require.NoError(t, err)

			suffix := strings.TrimPrefix(code, couponcode.Prefix)
			for _, r := range suffix {
				ok := (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
				assert.True(t, ok, "unexpected symbol %q in %s", r, code)
			}
		}
	})

	t.Run("codes vary", func(t *testing.T) {
		seen := make(map[string]struct{}, 20)
		for range 20 {
			code, err := couponcode.Generate()
			require.NoError(t, err)
			seen[code] = struct{}{}
		}
		// 36^6 possibilities; 20 draws colliding would mean a broken RNG.
		assert.Greater(t, len(seen), 1)
	})
}

func TestIsWellFormed(t *testing.T) {
	cases := []struct {
		code string
		ok   bool
	}{
		{"DONATEAB12CD", true},
		{"DONATE000000", true},
		{"DONATEZZZZZZ", true},
		{"donateab12cd", false},
		{"DONATEAB12C", false},
		{"DONATEAB12CDE", false},
		{"REWARDAB12CD", false},
		{"DONATEab12cd", false},
		{"DONATEAB-2CD", false},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, couponcode.IsWellFormed(c.code), c.code)
	}
}
