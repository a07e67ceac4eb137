// pkg/apiclient/sections.go
//
// Penyimpanan enam section laporan. SaveAllSections menjalankan pipeline
// berurutan dengan urutan tetap; kegagalan satu section tidak menghentikan
// section berikutnya, dan hasil akhirnya menyebut section mana saja yang gagal.
package apiclient

import (
	"context"
	"net/http"
)

// Nama section sesuai segmen URL-nya.
const (
	SectionSiswa         = "siswa"
	SectionRekapPersonal = "rekap-personal"
	SectionGuru          = "guru"
	SectionSarpras       = "sarpras"
	SectionMobiler       = "mobiler"
	SectionKeuangan      = "keuangan"
)

// SectionOrder: urutan simpan yang dipakai SaveAllSections.
var SectionOrder = []string{
	SectionSiswa,
	SectionRekapPersonal,
	SectionGuru,
	SectionSarpras,
	SectionMobiler,
	SectionKeuangan,
}

func (c *Client) putSection(ctx context.Context, laporanID, section string, rows any) error {
	return c.do(ctx, http.MethodPut, "/api/laporan/"+laporanID+"/"+section,
		map[string]any{"data": rows}, nil)
}

func (c *Client) SaveSiswa(ctx context.Context, laporanID string, rows []SiswaRow) error {
	return c.putSection(ctx, laporanID, SectionSiswa, rows)
}

func (c *Client) SaveRekapPersonal(ctx context.Context, laporanID string, rows []RekapPersonalRow) error {
	return c.putSection(ctx, laporanID, SectionRekapPersonal, rows)
}

func (c *Client) SaveGuru(ctx context.Context, laporanID string, rows []GuruRow) error {
	return c.putSection(ctx, laporanID, SectionGuru, rows)
}

func (c *Client) SaveSarpras(ctx context.Context, laporanID string, rows []SarprasRow) error {
	return c.putSection(ctx, laporanID, SectionSarpras, rows)
}

func (c *Client) SaveMobiler(ctx context.Context, laporanID string, rows []MobilerRow) error {
	return c.putSection(ctx, laporanID, SectionMobiler, rows)
}

func (c *Client) SaveKeuangan(ctx context.Context, laporanID string, rows []KeuanganRow) error {
	return c.putSection(ctx, laporanID, SectionKeuangan, rows)
}

// SectionData: isi lengkap editor untuk satu laporan.
type SectionData struct {
	Siswa         []SiswaRow
	RekapPersonal []RekapPersonalRow
	Guru          []GuruRow
	Sarpras       []SarprasRow
	Mobiler       []MobilerRow
	Keuangan      []KeuanganRow
}

// SectionError: kegagalan satu section dalam pipeline.
type SectionError struct {
	Section string
	Err     error
}

func (e SectionError) Error() string {
	return "section " + e.Section + ": " + e.Err.Error()
}

func (e SectionError) Unwrap() error { return e.Err }

// SaveResult: ringkasan hasil pipeline simpan.
type SaveResult struct {
	Saved  []string
	Failed []SectionError
}

// Complete: true hanya jika keenam section tersimpan.
func (r SaveResult) Complete() bool { return len(r.Failed) == 0 }

// FailedSections mengembalikan nama section yang gagal, sesuai urutan pipeline.
func (r SaveResult) FailedSections() []string {
	out := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		out = append(out, f.Section)
	}
	return out
}

// SaveAllSections menyimpan keenam section satu per satu sesuai SectionOrder.
// Kegagalan satu section tidak menghentikan section berikutnya; semua kegagalan
// dikumpulkan supaya pemanggil bisa menyebut persis section mana yang gagal.
func (c *Client) SaveAllSections(ctx context.Context, laporanID string, data SectionData) SaveResult {
	var res SaveResult

	steps := []struct {
		section string
		save    func() error
	}{
		{SectionSiswa, func() error { return c.SaveSiswa(ctx, laporanID, data.Siswa) }},
		{SectionRekapPersonal, func() error { return c.SaveRekapPersonal(ctx, laporanID, data.RekapPersonal) }},
		{SectionGuru, func() error { return c.SaveGuru(ctx, laporanID, data.Guru) }},
		{SectionSarpras, func() error { return c.SaveSarpras(ctx, laporanID, data.Sarpras) }},
		{SectionMobiler, func() error { return c.SaveMobiler(ctx, laporanID, data.Mobiler) }},
		{SectionKeuangan, func() error { return c.SaveKeuangan(ctx, laporanID, data.Keuangan) }},
	}
	for _, s := range steps {
		if err := s.save(); err != nil {
			res.Failed = append(res.Failed, SectionError{Section: s.section, Err: err})
			continue
		}
		res.Saved = append(res.Saved, s.section)
	}
	return res
}

// LaporanDetail: laporan + seluruh isi section (GET /laporan/:id).
type LaporanDetail struct {
	Laporan
	Siswa         []SiswaRow         `json:"siswa"`
	RekapPersonal []RekapPersonalRow `json:"rekap_personal"`
	Guru          []GuruRow          `json:"guru"`
	Sarpras       []SarprasRow       `json:"sarpras"`
	Mobiler       []MobilerRow       `json:"mobiler"`
	Keuangan      []KeuanganRow      `json:"keuangan"`
}

func (c *Client) GetLaporan(ctx context.Context, id string) (*LaporanDetail, error) {
	var d LaporanDetail
	if err := c.do(ctx, http.MethodGet, "/api/laporan/"+id, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
