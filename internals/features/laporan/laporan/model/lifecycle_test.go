package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"madrasahku_backend/internals/constants"
)

func TestStatusLaporanValid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusSubmitted.Valid())
	assert.True(t, StatusVerified.Valid())
	assert.True(t, StatusRevisi.Valid())
	assert.False(t, StatusLaporan("").Valid())
	assert.False(t, StatusLaporan("approved").Valid())
}

func TestStatusLaporanEditable(t *testing.T) {
	assert.True(t, StatusDraft.Editable())
	assert.True(t, StatusRevisi.Editable())
	assert.False(t, StatusSubmitted.Editable())
	assert.False(t, StatusVerified.Editable())
}

func TestAllowedActionsMatrix(t *testing.T) {
	tests := []struct {
		name    string
		status  StatusLaporan
		role    string
		trashed bool
		want    []Action
	}{
		{
			name:   "operator draft bisa edit dan submit",
			status: StatusDraft,
			role:   constants.RoleOperatorSekolah,
			want:   []Action{ActionEditSections, ActionSubmit},
		},
		{
			name:   "operator revisi bisa edit, submit ulang, dan hapus",
			status: StatusRevisi,
			role:   constants.RoleOperatorSekolah,
			want:   []Action{ActionEditSections, ActionSubmit, ActionSoftDelete},
		},
		{
			name:   "operator submitted tidak bisa apa-apa",
			status: StatusSubmitted,
			role:   constants.RoleOperatorSekolah,
			want:   nil,
		},
		{
			name:   "operator verified hanya bisa hapus",
			status: StatusVerified,
			role:   constants.RoleOperatorSekolah,
			want:   []Action{ActionSoftDelete},
		},
		{
			name:   "staff penmad submitted bisa verify atau revisi",
			status: StatusSubmitted,
			role:   constants.RoleStaffPenmad,
			want:   []Action{ActionVerify, ActionRevisi},
		},
		{
			name:   "kasi penmad submitted bisa verify atau revisi",
			status: StatusSubmitted,
			role:   constants.RoleKasiPenmad,
			want:   []Action{ActionVerify, ActionRevisi},
		},
		{
			name:   "penmad draft tidak bisa apa-apa",
			status: StatusDraft,
			role:   constants.RoleStaffPenmad,
			want:   nil,
		},
		{
			name:   "penmad verified bisa hapus",
			status: StatusVerified,
			role:   constants.RoleKasiPenmad,
			want:   []Action{ActionSoftDelete},
		},
		{
			name:   "penmad revisi bisa hapus tapi tidak verify ulang",
			status: StatusRevisi,
			role:   constants.RoleStaffPenmad,
			want:   []Action{ActionSoftDelete},
		},
		{
			name:    "record di tempat sampah hanya restore/permanent (operator)",
			status:  StatusVerified,
			role:    constants.RoleOperatorSekolah,
			trashed: true,
			want:    []Action{ActionRestore, ActionPermanentDelete},
		},
		{
			name:    "record di tempat sampah hanya restore/permanent (penmad)",
			status:  StatusSubmitted,
			role:    constants.RoleKasiPenmad,
			trashed: true,
			want:    []Action{ActionRestore, ActionPermanentDelete},
		},
		{
			name:   "role tak dikenal tidak dapat aksi",
			status: StatusDraft,
			role:   "tamu",
			want:   nil,
		},
	}

	all := []Action{
		ActionEditSections, ActionSubmit, ActionVerify, ActionRevisi,
		ActionSoftDelete, ActionRestore, ActionPermanentDelete,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllowedActions(tt.status, tt.role, tt.trashed)

			wantSet := map[Action]bool{}
			for _, a := range tt.want {
				wantSet[a] = true
			}
			for _, a := range all {
				assert.Equalf(t, wantSet[a], got.Has(a), "aksi %s", a)
			}
		})
	}
}

func TestSoftDeleteNeverFromSubmittedOrDraft(t *testing.T) {
	roles := []string{
		constants.RoleOperatorSekolah,
		constants.RoleStaffPenmad,
		constants.RoleKasiPenmad,
	}
	for _, role := range roles {
		assert.False(t, AllowedActions(StatusSubmitted, role, false).Has(ActionSoftDelete), role)
		assert.False(t, AllowedActions(StatusDraft, role, false).Has(ActionSoftDelete), role)
	}
}
