package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	t.Run("marshals as YYYY-MM-DD", func(t *testing.T) {
		out, err := json.Marshal(NewDate(1999, time.March, 31))
		require.NoError(t, err)
		assert.Equal(t, `"1999-03-31"`, string(out))
	})

	t.Run("unmarshals the same layout", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2010-07-16"`), &d))
		assert.Equal(t, "2010-07-16", d.String())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"16/07/2010"`), &d))
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1895-12-28")
	require.NoError(t, err)
	assert.Equal(t, 1895, d.Year())

	_, err = ParseDate("not a date")
	assert.Error(t, err)
}
