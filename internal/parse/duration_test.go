package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeconds(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  float64
		expectErr bool
	}{
		{name: "Plain seconds", raw: "27", expected: 27},
		{name: "Fractional seconds", raw: "27.5", expected: 27.5},
		{name: "Seconds suffix", raw: " 30s ", expected: 30},
		{name: "Clock", raw: "1:05", expected: 65},
		{name: "Clock with fraction", raw: "0:28.5", expected: 28.5},
		{name: "Empty", raw: "  ", expectErr: true},
		{name: "Garbage", raw: "half a minute", expectErr: true},
		{name: "Negative", raw: "-3", expectErr: true},
		{name: "Seconds out of range", raw: "1:75", expectErr: true},
		{name: "Minutes overflow int", raw: "99999999999999999999:00", expectErr: true},
		{name: "Minutes over bound", raw: "601:00", expectErr: true},
		{name: "Minutes at bound", raw: "600:00", expected: 36000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Seconds(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, tc.expected, got, 1e-9)
			}
		})
	}
}

func TestClock(t *testing.T) {
	assert.Equal(t, "0:27", Clock(27))
	assert.Equal(t, "1:05", Clock(64.6))
	assert.Equal(t, "10:00", Clock(600))
}
