package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_WireFormat(t *testing.T) {
	t.Parallel()

	ts := NewTimestamp(time.Date(2024, time.March, 5, 9, 7, 3, 500, time.Local))

	assert.Equal(t, "03/05/2024 09:07:03", ts.Wire())

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `"03/05/2024 09:07:03"`, string(data))
}

func TestTimestamp_ZeroEncodesEmpty(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))
}

func TestTimestamp_UnmarshalWire(t *testing.T) {
	t.Parallel()

	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"12/31/2023 23:59:58"`), &ts))

	assert.Equal(t, 2023, ts.Year())
	assert.Equal(t, time.December, ts.Month())
	assert.Equal(t, 31, ts.Day())
	assert.Equal(t, 23, ts.Hour())
	assert.Equal(t, 58, ts.Second())
}

func TestTimestamp_UnmarshalRFC3339(t *testing.T) {
	t.Parallel()

	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-02T03:04:05Z"`), &ts))
	assert.True(t, ts.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestTimestamp_UnmarshalEmptyAndNull(t *testing.T) {
	t.Parallel()

	var a, b Timestamp
	require.NoError(t, json.Unmarshal([]byte(`""`), &a))
	require.NoError(t, json.Unmarshal([]byte(`null`), &b))
	assert.True(t, a.IsZero())
	assert.True(t, b.IsZero())
}

func TestTimestamp_UnmarshalGarbage(t *testing.T) {
	t.Parallel()

	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
}

func TestTimestamp_RoundTripPreservesSeconds(t *testing.T) {
	t.Parallel()

	orig := NewTimestamp(time.Date(2025, 7, 14, 18, 30, 45, 0, time.Local))
	parsed, err := ParseTimestamp(orig.Wire())
	require.NoError(t, err)
	assert.True(t, orig.Equal(parsed.Time))
}

func TestID_UnmarshalStringAndNumber(t *testing.T) {
	t.Parallel()

	var payload struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"m1","b":17,"c":null}`), &payload))

	assert.Equal(t, ID("m1"), payload.A)
	assert.Equal(t, ID("17"), payload.B)
	assert.True(t, payload.C.IsZero())
}

func TestID_MarshalAlwaysString(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ID("17"))
	require.NoError(t, err)
	assert.Equal(t, `"17"`, string(data))
}

func TestID_UnmarshalRejectsObjects(t *testing.T) {
	t.Parallel()

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))
}
