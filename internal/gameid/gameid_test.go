package gameid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dealornodeal/internal/randutil"
)

var epoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateIsValid(t *testing.T) {
	rng := randutil.New(1)
	for i := 0; i < 100; i++ {
		id := Generate(epoch, rng)
		require.Len(t, id, Length)
		require.NoError(t, Validate(id))
	}
}

func TestGenerateUnique(t *testing.T) {
	rng := randutil.New(2)
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id := Generate(epoch, rng)
		assert.False(t, seen[id], "duplicate ID %s", id)
		seen[id] = true
	}
}

func TestGenerateDeterministic(t *testing.T) {
	assert.Equal(t, Generate(epoch, randutil.New(3)), Generate(epoch, randutil.New(3)))
}

func TestGenerateTimeSorted(t *testing.T) {
	rng := randutil.New(4)
	earlier := Generate(epoch, rng)
	later := Generate(epoch.Add(time.Millisecond), rng)
	assert.Less(t, earlier, later)
}

func TestEncodeZeroAndMax(t *testing.T) {
	assert.Equal(t, strings.Repeat("0", Length), encode([16]byte{}))

	var ones [16]byte
	for i := range ones {
		ones[i] = 0xff
	}
	assert.Equal(t, "7"+strings.Repeat("z", Length-1), encode(ones))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr string
	}{
		{"too short", "0123", "exactly 26 characters"},
		{"first char too large", "8" + strings.Repeat("0", Length-1), "first character must be 0-7"},
		{"excluded letter", "0" + strings.Repeat("i", Length-1), "invalid character i"},
		{"uppercase", "0" + strings.Repeat("A", Length-1), "invalid character A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
	assert.NoError(t, Validate(strings.Repeat("0", Length)))
}
