package mines

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestGameParamsValid(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		valid  bool
	}{
		{"27x18(100)", GameParams{Width: 27, Height: 18, MineCount: 100}, true},
		{"5x5(24)", GameParams{Width: 5, Height: 5, MineCount: 24}, true},
		{"5x5(25)", GameParams{Width: 5, Height: 5, MineCount: 25}, false},
		{"5x5(0)", GameParams{Width: 5, Height: 5, MineCount: 0}, false},
		{"0x5(1)", GameParams{Width: 0, Height: 5, MineCount: 1}, false},
		{"3x3(-1)", GameParams{Width: 3, Height: 3, MineCount: -1}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.valid, test.params.Valid())
			assert.Equal(t, test.name, test.params.String())
		})
	}
}

func TestNewRandSeeded(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for range 100 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
