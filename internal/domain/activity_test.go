package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Count
	}{
		{name: "number", input: `12`, want: 12},
		{name: "float is truncated", input: `12.9`, want: 12},
		{name: "numeric string", input: `"15"`, want: 15},
		{name: "string with suffix", input: `"15abc"`, want: 15},
		{name: "text", input: `"abc"`, want: 0},
		{name: "null", input: `null`, want: 0},
		{name: "bool", input: `true`, want: 0},
		{name: "negative number", input: `-3`, want: 0},
		{name: "negative string", input: `"-3"`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Count(99)
			require.NoError(t, c.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestDailyActivity_JSON(t *testing.T) {
	var activity DailyActivity
	err := json.Unmarshal([]byte(`{"day":"2024-01-03","dials":"110","conversations":14,"linkedIn":22}`), &activity)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-03", activity.Day.String())
	assert.Equal(t, Count(110), activity.Dials)
	assert.Equal(t, Count(14), activity.Conversations)
	assert.Equal(t, Count(22), activity.LinkedIn)
	assert.Equal(t, Count(0), activity.Meetings)

	out, err := json.Marshal(activity.Day)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-03"`, string(out))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d.Time)

	d, err = ParseDate("2024-02-29T22:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)

	var bad Date
	assert.Error(t, bad.UnmarshalJSON([]byte(`20240229`)))
	assert.Equal(t, "", Date{}.String())
}
