package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime(t *testing.T) {
	t.Parallel()
	var testTime Time

	require.NoError(t, json.Unmarshal([]byte(`0`), &testTime))
	assert.Equal(t, time.Time{}, testTime.Time())
	assert.Zero(t, testTime.Unix())

	require.NoError(t, json.Unmarshal([]byte(`""`), &testTime))
	assert.Equal(t, time.Time{}, testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`null`), &testTime))
	assert.Equal(t, time.Time{}, testTime.Time())

	// seconds
	require.NoError(t, json.Unmarshal([]byte(`1515128233`), &testTime))
	assert.Equal(t, time.Unix(1515128233, 0), testTime.Time())
	assert.Equal(t, int64(1515128233), testTime.Unix())

	require.NoError(t, json.Unmarshal([]byte(`"1628736847"`), &testTime))
	assert.Equal(t, time.Unix(1628736847, 0), testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`"1628736847.25"`), &testTime))
	assert.Equal(t, time.Unix(1628736847, 0), testTime.Time())

	// milliseconds
	require.NoError(t, json.Unmarshal([]byte(`"1628736847325"`), &testTime))
	assert.Equal(t, time.UnixMilli(1628736847325), testTime.Time())

	assert.Error(t, json.Unmarshal([]byte(`"2021-01-01"`), &testTime))
	assert.Error(t, json.Unmarshal([]byte(`"1628736847325123"`), &testTime))
}

func TestTimeLocal(t *testing.T) {
	t.Parallel()
	tt := Time(time.Unix(1515128233, 0).UTC())
	assert.Equal(t, time.Local, tt.Local().Location())
	assert.True(t, tt.Local().Equal(time.Unix(1515128233, 0)))
}

func TestTimeMarshalJSON(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(Time(time.Unix(1515128233, 0)))
	require.NoError(t, err)
	assert.Equal(t, "1515128233", string(data))

	data, err = json.Marshal(Time{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))
}

func BenchmarkTime(b *testing.B) {
	var testTime Time
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal([]byte(`"1691122380"`), &testTime); err != nil {
			b.Fatal(err)
		}
	}
}
