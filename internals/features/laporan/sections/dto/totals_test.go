package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sectionModel "madrasahku_backend/internals/features/laporan/sections/model"
)

func ip(v int) *int       { return &v }
func i64p(v int64) *int64 { return &v }

func TestHitungSiswaFooter(t *testing.T) {
	rows := []sectionModel.LaporanSiswaModel{
		{Kelas: "1", JumlahLK: ip(10), JumlahPR: ip(8), MutasiMasuk: ip(2), MutasiKeluar: ip(1)},
		{Kelas: "2", JumlahLK: ip(5), JumlahPR: ip(7)},
	}

	f := HitungSiswaFooter(rows)
	assert.Equal(t, 15, f.TotalLK)
	assert.Equal(t, 15, f.TotalPR)
	assert.Equal(t, 2, f.TotalMutasiMasuk)
	assert.Equal(t, 1, f.TotalMutasiKeluar)
	// (10+8+2-1) + (5+7)
	assert.Equal(t, 31, f.TotalAkhir)
}

func TestHitungSiswaFooterNilDianggapNol(t *testing.T) {
	rows := []sectionModel.LaporanSiswaModel{
		{Kelas: "1"},
		{Kelas: "2", JumlahLK: ip(3)},
	}

	f := HitungSiswaFooter(rows)
	assert.Equal(t, 3, f.TotalLK)
	assert.Equal(t, 0, f.TotalPR)
	assert.Equal(t, 3, f.TotalAkhir)
}

func TestHitungSiswaFooterKosong(t *testing.T) {
	f := HitungSiswaFooter(nil)
	assert.Zero(t, f.TotalLK)
	assert.Zero(t, f.TotalAkhir)
}

func TestHitungRekapPersonalFooter(t *testing.T) {
	rows := []sectionModel.LaporanRekapPersonalModel{
		{Keadaan: "Guru PNS", JumlahLK: ip(4), JumlahPR: ip(6), MutasiKeluar: ip(1)},
		{Keadaan: "Guru Honorer", JumlahLK: ip(2), JumlahPR: ip(3), MutasiMasuk: ip(1)},
	}

	f := HitungRekapPersonalFooter(rows)
	assert.Equal(t, 6, f.TotalLK)
	assert.Equal(t, 9, f.TotalPR)
	assert.Equal(t, 1, f.TotalMutasiMasuk)
	assert.Equal(t, 1, f.TotalMutasiKeluar)
	assert.Equal(t, 15, f.TotalAkhir)
}

func TestHitungKeuanganFooter(t *testing.T) {
	rows := []sectionModel.LaporanKeuanganModel{
		{UraianKegiatan: "ATK", Volume: ip(10), HargaSatuan: i64p(25000)},
		{UraianKegiatan: "Honor", Volume: ip(2), HargaSatuan: i64p(500000)},
		{UraianKegiatan: "Belum diisi"}, // nil → 0, bukan error
	}

	f := HitungKeuanganFooter(rows)
	assert.Equal(t, int64(1250000), f.GrandTotal)
}

func TestNewKeuanganRowsMenyisipkanJumlah(t *testing.T) {
	rows := []sectionModel.LaporanKeuanganModel{
		{UraianKegiatan: "ATK", Volume: ip(3), HargaSatuan: i64p(10000)},
		{UraianKegiatan: "Kosong"},
	}

	out := NewKeuanganRows(rows)
	assert.Len(t, out, 2)
	assert.Equal(t, int64(30000), out[0].Jumlah)
	assert.Equal(t, int64(0), out[1].Jumlah)
}
