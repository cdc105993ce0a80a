package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLRecordJSONLayout(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	record := URLRecord{
		ID:        "ab12cd3",
		Original:  "https://example.com",
		Short:     "https://advrk.io/ab12cd3",
		State:     Archived,
		CreatedAt: created,
		Version:   2,
	}

	b, err := json.Marshal(record)
	require.NoError(t, err)

	// The lifecycle enum travels as the original boolean field.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, true, raw["archived"])
	assert.Equal(t, "https://example.com", raw["originalUrl"])
	assert.Equal(t, "https://advrk.io/ab12cd3", raw["shortUrl"])
	assert.Equal(t, "2024-05-01T12:30:00Z", raw["timestamp"])

	var decoded URLRecord
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, record, decoded)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "archived", Archived.String())
}
