package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONTidakMembocorkanPassword(t *testing.T) {
	u := UserModel{
		UserID:       uuid.New(),
		UserUsername: "op01",
		UserPassword: "$2a$10$rahasia-hash",
		UserRole:     "operator_sekolah",
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "rahasia-hash")
	assert.NotContains(t, string(raw), "password")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "op01", decoded["username"])
	assert.Equal(t, "operator_sekolah", decoded["role"])
}
