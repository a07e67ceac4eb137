// internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lapDTO "madrasahku_backend/internals/features/laporan/laporan/dto"
	lapModel "madrasahku_backend/internals/features/laporan/laporan/model"
	sectionDTO "madrasahku_backend/internals/features/laporan/sections/dto"
	sectionModel "madrasahku_backend/internals/features/laporan/sections/model"
	madrasahModel "madrasahku_backend/internals/features/madrasah/model"
	pengumumanModel "madrasahku_backend/internals/features/pengumuman/model"
	helper "madrasahku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// parseBulan menerima YYYY-MM dan mengembalikan tanggal 1 bulan itu (UTC).
// Kosong = bulan berjalan.
func parseBulan(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("format bulan harus YYYY-MM: %w", err)
	}
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

/* ================= Admin ================= */

// GET /admin/dashboard — ringkasan bulan berjalan (atau ?bulan=YYYY-MM).
func (h *DashboardController) Admin(c *fiber.Ctx) error {
	bulan, err := parseBulan(c.Query("bulan"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var totalMadrasah int64
	if err := h.DB.Model(&madrasahModel.MadrasahModel{}).
		Where("madrasah_status_aktif = 1").Count(&totalMadrasah).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung madrasah")
	}

	countStatus := func(statuses ...lapModel.StatusLaporan) (int64, error) {
		var n int64
		err := h.DB.Model(&lapModel.LaporanModel{}).
			Where("laporan_bulan_tahun = ? AND laporan_status IN ?", bulan, statuses).
			Count(&n).Error
		return n, err
	}

	laporanMasuk, err := countStatus(lapModel.StatusSubmitted, lapModel.StatusVerified, lapModel.StatusRevisi)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung laporan")
	}
	terverifikasi, err := countStatus(lapModel.StatusVerified)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung laporan")
	}
	perluRevisi, err := countStatus(lapModel.StatusRevisi)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung laporan")
	}

	var recent []lapModel.LaporanModel
	if err := h.DB.Preload("Madrasah").
		Where("laporan_submitted_at IS NOT NULL").
		Order("laporan_submitted_at DESC").Limit(10).
		Find(&recent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan terbaru")
	}

	role := helper.GetRoleFromToken(c)
	recentResp := make([]lapDTO.LaporanResponse, 0, len(recent))
	for i := range recent {
		recentResp = append(recentResp, *lapDTO.NewLaporanResponse(&recent[i], role))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"bulan":              bulan.Format("2006-01"),
		"total_madrasah":     totalMadrasah,
		"laporan_masuk":      laporanMasuk,
		"terverifikasi":      terverifikasi,
		"perlu_revisi":       perluRevisi,
		"belum_lapor":        totalMadrasah - laporanMasuk,
		"recent_submissions": recentResp,
	})
}

/* ================= Operator ================= */

// GET /operator/dashboard?trashed=0|1 — laporan milik madrasah operator
// (aktif atau tempat sampah) + profil madrasah + pengumuman terbaru.
func (h *DashboardController) Operator(c *fiber.Ctx) error {
	madrasahID, err := helper.GetMadrasahIDFromToken(c)
	if err != nil {
		return err
	}

	var madrasah madrasahModel.MadrasahModel
	if err := h.DB.First(&madrasah, "madrasah_id = ?", madrasahID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil madrasah")
	}

	trashed := c.QueryInt("trashed", 0) == 1
	tx := h.DB.Where("laporan_madrasah_id = ?", madrasahID)
	if trashed {
		tx = tx.Unscoped().Where("laporan_deleted_at IS NOT NULL")
	}

	var rows []lapModel.LaporanModel
	if err := tx.Order("laporan_bulan_tahun DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	role := helper.GetRoleFromToken(c)
	laporan := make([]lapDTO.LaporanResponse, 0, len(rows))
	for i := range rows {
		laporan = append(laporan, *lapDTO.NewLaporanResponse(&rows[i], role))
	}

	var pengumuman []pengumumanModel.PengumumanModel
	if err := h.DB.Order("pengumuman_created_at DESC").Limit(5).Find(&pengumuman).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"madrasah":   madrasah,
		"laporan":    laporan,
		"pengumuman": pengumuman,
	})
}

/* ================= Rekap ================= */

// RecapRow: agregat satu madrasah untuk satu bulan.
type RecapRow struct {
	MadrasahID    string  `json:"id_madrasah"`
	NamaMadrasah  string  `json:"nama_madrasah"`
	NPSN          string  `json:"npsn"`
	Status        *string `json:"status_laporan"`
	TotalSiswa    int     `json:"total_siswa"`
	TotalGuru     int64   `json:"total_guru"`
	TotalPersonal int     `json:"total_personal"`
	TotalAnggaran int64   `json:"total_anggaran"`
}

// GET /admin/recap?bulan=YYYY-MM — rekap per madrasah: status laporan bulan itu
// plus total siswa/personal/anggaran dari section-nya.
func (h *DashboardController) Recap(c *fiber.Ctx) error {
	bulan, err := parseBulan(c.Query("bulan"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var madrasahs []madrasahModel.MadrasahModel
	if err := h.DB.Where("madrasah_status_aktif = 1").
		Order("madrasah_nama ASC").Find(&madrasahs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil madrasah")
	}

	var laporans []lapModel.LaporanModel
	if err := h.DB.Where("laporan_bulan_tahun = ?", bulan).Find(&laporans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}
	byMadrasah := make(map[string]*lapModel.LaporanModel, len(laporans))
	for i := range laporans {
		byMadrasah[laporans[i].LaporanMadrasahID.String()] = &laporans[i]
	}

	rekap := make([]RecapRow, 0, len(madrasahs))
	for i := range madrasahs {
		m := &madrasahs[i]
		row := RecapRow{
			MadrasahID:   m.MadrasahID.String(),
			NamaMadrasah: m.MadrasahNama,
			NPSN:         m.MadrasahNPSN,
		}

		if lap, ok := byMadrasah[m.MadrasahID.String()]; ok {
			st := string(lap.LaporanStatus)
			row.Status = &st

			var siswa []sectionModel.LaporanSiswaModel
			if err := h.DB.Where("siswa_laporan_id = ?", lap.LaporanID).Find(&siswa).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
			}
			row.TotalSiswa = sectionDTO.HitungSiswaFooter(siswa).TotalAkhir

			if err := h.DB.Model(&sectionModel.LaporanGuruModel{}).
				Where("guru_laporan_id = ? AND guru_mutasi_status <> ?", lap.LaporanID, "keluar").
				Count(&row.TotalGuru).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung guru")
			}

			var personal []sectionModel.LaporanRekapPersonalModel
			if err := h.DB.Where("rekap_laporan_id = ?", lap.LaporanID).Find(&personal).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekap personal")
			}
			row.TotalPersonal = sectionDTO.HitungRekapPersonalFooter(personal).TotalAkhir

			var keuangan []sectionModel.LaporanKeuanganModel
			if err := h.DB.Where("keuangan_laporan_id = ?", lap.LaporanID).Find(&keuangan).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keuangan")
			}
			row.TotalAnggaran = sectionDTO.HitungKeuanganFooter(keuangan).GrandTotal
		}

		rekap = append(rekap, row)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"bulan": bulan.Format("2006-01"),
		"rekap": rekap,
	})
}
