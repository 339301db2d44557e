package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReturnsTierForDifficulty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	s, err := New(DifficultyEasy, rng)
	require.NoError(t, err)
	assert.IsType(t, &EasyBot{}, s)

	s, err = New(DifficultyMedium, rng)
	require.NoError(t, err)
	assert.IsType(t, &MediumBot{}, s)

	s, err = New(DifficultyHard, rng)
	require.NoError(t, err)
	assert.IsType(t, &HardBot{}, s)
}

func TestNewRejectsUnknownDifficulty(t *testing.T) {
	_, err := New(Difficulty(42), nil)
	assert.Error(t, err)
}

func TestNewAcceptsNilRand(t *testing.T) {
	s, err := New(DifficultyMedium, nil)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"Medium", DifficultyMedium},
		{" HARD ", DifficultyHard},
	}
	for _, tc := range cases {
		got, err := ParseDifficulty(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestDifficultyString(t *testing.T) {
	assert.Equal(t, "Easy", DifficultyEasy.String())
	assert.Equal(t, "Hard", DifficultyHard.String())
	assert.Equal(t, "Difficulty(9)", Difficulty(9).String())
}
