package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestActivityLogMetaSerialisasi(t *testing.T) {
	entry := ActivityLogModel{
		LogUsername: "kasi01",
		LogRole:     "kasi_penmad",
		LogAction:   ActionApproveReport,
		LogSubject:  "3f1c9d2e",
		LogMeta: datatypes.JSONMap{
			"id_laporan": "3f1c9d2e",
			"bulan":      "2026-07",
		},
	}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	meta, ok := out["meta"].(map[string]any)
	require.True(t, ok, "meta harus berupa objek")
	assert.Equal(t, "2026-07", meta["bulan"])
	assert.Equal(t, "3f1c9d2e", meta["id_laporan"])

	// entri tanpa konteks tidak ikut membawa field meta
	raw, err = json.Marshal(ActivityLogModel{LogAction: ActionLogin})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"meta"`)
}
