package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateValid(t *testing.T) {
	d, err := ParseDate("2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, "2025-01-10", d.String())
}

func TestParseDateInvalid(t *testing.T) {
	cases := []string{
		"2025-13-01", // impossible month
		"2025-02-30", // impossible day
		"not-a-date",
		"",
		"2025-1-10",  // unpadded month
		"10-01-2025", // wrong component order
		"2025-01-10T00:00:00",
	}
	for _, input := range cases {
		_, err := ParseDate(input)
		require.Error(t, err, "input %q", input)
		assert.EqualError(t, err, "Invalid date format. Expected YYYY-MM-DD.", "input %q", input)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.March, 7)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-07"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-07"`), &parsed))
	assert.True(t, parsed.Equal(d.Time))

	// null and non-string shapes are rejected with the fixed message
	for _, raw := range []string{`null`, `20250307`, `{"y":2025}`} {
		var bad Date
		err := json.Unmarshal([]byte(raw), &bad)
		assert.EqualError(t, err, "Invalid date format. Expected YYYY-MM-DD.", "raw %s", raw)
	}
}
