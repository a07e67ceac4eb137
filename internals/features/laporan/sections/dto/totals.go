// internals/features/laporan/sections/dto/totals.go
//
// Footer agregat tiap section — padanan baris "JUMLAH KESELURUHAN" pada form.
// Nilai nil dianggap 0 saat menjumlah, tapi tetap tersimpan sebagai null.
package dto

import (
	sectionModel "madrasahku_backend/internals/features/laporan/sections/model"
)

func nz(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// SiswaFooter: jumlah L/P, mutasi, dan total akhir
// (L + P + masuk − keluar, dijumlah per baris).
type SiswaFooter struct {
	TotalLK           int `json:"total_lk"`
	TotalPR           int `json:"total_pr"`
	TotalMutasiMasuk  int `json:"total_mutasi_masuk"`
	TotalMutasiKeluar int `json:"total_mutasi_keluar"`
	TotalAkhir        int `json:"total_akhir"`
}

func HitungSiswaFooter(rows []sectionModel.LaporanSiswaModel) SiswaFooter {
	var f SiswaFooter
	for _, r := range rows {
		f.TotalLK += nz(r.JumlahLK)
		f.TotalPR += nz(r.JumlahPR)
		f.TotalMutasiMasuk += nz(r.MutasiMasuk)
		f.TotalMutasiKeluar += nz(r.MutasiKeluar)
		f.TotalAkhir += nz(r.JumlahLK) + nz(r.JumlahPR) + nz(r.MutasiMasuk) - nz(r.MutasiKeluar)
	}
	return f
}

type RekapPersonalFooter struct {
	TotalLK           int `json:"total_lk"`
	TotalPR           int `json:"total_pr"`
	TotalMutasiMasuk  int `json:"total_mutasi_masuk"`
	TotalMutasiKeluar int `json:"total_mutasi_keluar"`
	TotalAkhir        int `json:"total_akhir"`
}

func HitungRekapPersonalFooter(rows []sectionModel.LaporanRekapPersonalModel) RekapPersonalFooter {
	var f RekapPersonalFooter
	for _, r := range rows {
		f.TotalLK += nz(r.JumlahLK)
		f.TotalPR += nz(r.JumlahPR)
		f.TotalMutasiMasuk += nz(r.MutasiMasuk)
		f.TotalMutasiKeluar += nz(r.MutasiKeluar)
		f.TotalAkhir += nz(r.JumlahLK) + nz(r.JumlahPR) + nz(r.MutasiMasuk) - nz(r.MutasiKeluar)
	}
	return f
}

// KeuanganFooter: grand total = Σ (volume × harga_satuan).
type KeuanganFooter struct {
	GrandTotal int64 `json:"grand_total"`
}

func HitungKeuanganFooter(rows []sectionModel.LaporanKeuanganModel) KeuanganFooter {
	var f KeuanganFooter
	for _, r := range rows {
		f.GrandTotal += r.JumlahBaris()
	}
	return f
}

// KeuanganRowResponse menyisipkan jumlah per baris (dihitung, tidak disimpan).
type KeuanganRowResponse struct {
	sectionModel.LaporanKeuanganModel
	Jumlah int64 `json:"jumlah"`
}

func NewKeuanganRows(rows []sectionModel.LaporanKeuanganModel) []KeuanganRowResponse {
	out := make([]KeuanganRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, KeuanganRowResponse{LaporanKeuanganModel: r, Jumlah: r.JumlahBaris()})
	}
	return out
}
