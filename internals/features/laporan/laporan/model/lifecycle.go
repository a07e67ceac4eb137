// internals/features/laporan/laporan/model/lifecycle.go
package model

import (
	"madrasahku_backend/internals/constants"
)

// StatusLaporan adalah status siklus hidup laporan bulanan.
type StatusLaporan string

const (
	StatusDraft     StatusLaporan = "draft"
	StatusSubmitted StatusLaporan = "submitted"
	StatusVerified  StatusLaporan = "verified"
	StatusRevisi    StatusLaporan = "revisi"
)

func (s StatusLaporan) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusVerified, StatusRevisi:
		return true
	}
	return false
}

// Editable: operator masih boleh mengubah isi section.
func (s StatusLaporan) Editable() bool {
	return s == StatusDraft || s == StatusRevisi
}

// Action adalah operasi yang mungkin dilakukan terhadap satu laporan.
type Action string

const (
	ActionEditSections    Action = "edit_sections"
	ActionSubmit          Action = "submit"
	ActionVerify          Action = "verify"
	ActionRevisi          Action = "revisi"
	ActionSoftDelete      Action = "soft_delete"
	ActionRestore         Action = "restore"
	ActionPermanentDelete Action = "permanent_delete"
)

type ActionSet map[Action]struct{}

func (s ActionSet) Has(a Action) bool {
	_, ok := s[a]
	return ok
}

func (s ActionSet) add(a Action) { s[a] = struct{}{} }

// AllowedActions adalah satu-satunya sumber kebenaran izin status×role.
// Semua controller memakai fungsi ini; tombol yang disembunyikan di frontend
// bukan batas keamanan.
//
// Aturan:
//   - edit/submit: hanya operator, status draft atau revisi.
//   - verify/revisi: hanya reviewer penmad, status submitted.
//   - soft delete: hanya dari verified atau revisi — tidak pernah saat
//     submitted (sedang menunggu keputusan) atau draft.
//   - restore & permanent delete: hanya untuk record di tempat sampah.
func AllowedActions(status StatusLaporan, role string, trashed bool) ActionSet {
	out := ActionSet{}

	if trashed {
		out.add(ActionRestore)
		out.add(ActionPermanentDelete)
		return out
	}

	switch role {
	case constants.RoleOperatorSekolah:
		if status.Editable() {
			out.add(ActionEditSections)
			out.add(ActionSubmit)
		}
		if status == StatusVerified || status == StatusRevisi {
			out.add(ActionSoftDelete)
		}
	case constants.RoleStaffPenmad, constants.RoleKasiPenmad:
		if status == StatusSubmitted {
			out.add(ActionVerify)
			out.add(ActionRevisi)
		}
		if status == StatusVerified || status == StatusRevisi {
			out.add(ActionSoftDelete)
		}
	}
	return out
}
