package constants

import "fmt"

// Role tunggal untuk seluruh aplikasi. Role "admin" lama dan duplikasi halaman
// kasi/staff dilebur: kasi_penmad & staff_penmad sama-sama reviewer kabupaten,
// operator_sekolah adalah pelapor di tingkat madrasah.
const (
	RoleOperatorSekolah = "operator_sekolah"
	RoleStaffPenmad     = "staff_penmad"
	RoleKasiPenmad      = "kasi_penmad"
)

// Template pesan error role
const (
	ErrOnlyOperatorCanAccess = "❌ Hanya operator sekolah yang boleh mengakses fitur %s."
	ErrOnlyPenmadCanAccess   = "❌ Hanya staff atau kasi penmad yang boleh mengakses fitur %s."
	ErrOnlyKasiCanAccess     = "❌ Hanya kasi penmad yang boleh mengakses fitur %s."
)

func RoleErrorOperator(feature string) string {
	return fmt.Sprintf(ErrOnlyOperatorCanAccess, feature)
}

func RoleErrorPenmad(feature string) string {
	return fmt.Sprintf(ErrOnlyPenmadCanAccess, feature)
}

func RoleErrorKasi(feature string) string {
	return fmt.Sprintf(ErrOnlyKasiCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleOperatorSekolah,
		RoleStaffPenmad,
		RoleKasiPenmad,
	}

	// Reviewer kabupaten (verifikasi laporan, master data, pengumuman)
	PenmadRoles = []string{
		RoleStaffPenmad,
		RoleKasiPenmad,
	}

	OperatorOnly = []string{
		RoleOperatorSekolah,
	}

	KasiOnly = []string{
		RoleKasiPenmad,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
