// internals/features/laporan/sections/model/section_models.go
//
// Enam sub-tabel laporan bulanan. Baris tidak punya identitas lintas-baris
// selain posisi (kolom urutan); PUT per section mengganti seluruh isi.
package model

import (
	"github.com/google/uuid"
)

// 1. Rekapitulasi data siswa per kelas
type LaporanSiswaModel struct {
	SiswaID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:siswa_id" json:"-"`
	SiswaLaporanID uuid.UUID `gorm:"type:uuid;not null;index;column:siswa_laporan_id" json:"-"`
	SiswaUrutan    int       `gorm:"not null;default:0;column:siswa_urutan" json:"-"`

	Kelas        string  `gorm:"size:100;column:siswa_kelas" json:"kelas"`
	JumlahRombel *int    `gorm:"column:siswa_jumlah_rombel" json:"jumlah_rombel"`
	JumlahLK     *int    `gorm:"column:siswa_jumlah_lk" json:"jumlah_lk"`
	JumlahPR     *int    `gorm:"column:siswa_jumlah_pr" json:"jumlah_pr"`
	MutasiMasuk  *int    `gorm:"column:siswa_mutasi_masuk" json:"mutasi_masuk"`
	MutasiKeluar *int    `gorm:"column:siswa_mutasi_keluar" json:"mutasi_keluar"`
	Keterangan   string  `gorm:"type:text;column:siswa_keterangan" json:"keterangan"`
}

func (LaporanSiswaModel) TableName() string { return "laporan_siswa" }

// 2. Rekap personal (keadaan pegawai)
type LaporanRekapPersonalModel struct {
	RekapID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:rekap_id" json:"-"`
	RekapLaporanID uuid.UUID `gorm:"type:uuid;not null;index;column:rekap_laporan_id" json:"-"`
	RekapUrutan    int       `gorm:"not null;default:0;column:rekap_urutan" json:"-"`

	Keadaan      string `gorm:"size:200;column:rekap_keadaan" json:"keadaan"`
	JumlahLK     *int   `gorm:"column:rekap_jumlah_lk" json:"jumlah_lk"`
	JumlahPR     *int   `gorm:"column:rekap_jumlah_pr" json:"jumlah_pr"`
	MutasiMasuk  *int   `gorm:"column:rekap_mutasi_masuk" json:"mutasi_masuk"`
	MutasiKeluar *int   `gorm:"column:rekap_mutasi_keluar" json:"mutasi_keluar"`
	Keterangan   string `gorm:"type:text;column:rekap_keterangan" json:"keterangan"`
}

func (LaporanRekapPersonalModel) TableName() string { return "laporan_rekap_personal" }

// 3. Detail guru & tenaga kependidikan
type LaporanGuruModel struct {
	GuruID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:guru_id" json:"-"`
	GuruLaporanID uuid.UUID `gorm:"type:uuid;not null;index;column:guru_laporan_id" json:"-"`
	GuruUrutan    int       `gorm:"not null;default:0;column:guru_urutan" json:"-"`

	NamaGuru           string `gorm:"size:200;column:guru_nama" json:"nama_guru"`
	NipNik             string `gorm:"size:50;column:guru_nip_nik" json:"nip_nik"`
	LP                 string `gorm:"size:2;column:guru_lp" json:"lp"`
	TempatLahir        string `gorm:"size:100;column:guru_tempat_lahir" json:"tempat_lahir"`
	TanggalLahir       string `gorm:"size:20;column:guru_tanggal_lahir" json:"tanggal_lahir"`
	StatusPegawai      string `gorm:"size:100;column:guru_status_pegawai" json:"status_pegawai"`
	PendidikanTerakhir string `gorm:"size:100;column:guru_pendidikan_terakhir" json:"pendidikan_terakhir"`
	Jurusan            string `gorm:"size:150;column:guru_jurusan" json:"jurusan"`
	Golongan           string `gorm:"size:50;column:guru_golongan" json:"golongan"`
	TmtMengajar        string `gorm:"size:50;column:guru_tmt_mengajar" json:"tmt_mengajar"`
	TmtDiMadrasah      string `gorm:"size:50;column:guru_tmt_di_madrasah" json:"tmt_di_madrasah"`
	MataPelajaran      string `gorm:"size:150;column:guru_mata_pelajaran" json:"mata_pelajaran"`
	Satminkal          string `gorm:"size:150;column:guru_satminkal" json:"satminkal"`
	JumlahJam          string `gorm:"size:20;column:guru_jumlah_jam" json:"jumlah_jam"`
	Jabatan            string `gorm:"size:100;column:guru_jabatan" json:"jabatan"`
	NamaIbuKandung     string `gorm:"size:200;column:guru_nama_ibu_kandung" json:"nama_ibu_kandung"`
	Sertifikasi        bool   `gorm:"not null;default:false;column:guru_sertifikasi" json:"sertifikasi"`
	// aktif | masuk | keluar
	MutasiStatus string `gorm:"size:10;not null;default:'aktif';column:guru_mutasi_status" json:"mutasi_status"`
}

func (LaporanGuruModel) TableName() string { return "laporan_guru" }

// 4. Sarana prasarana
type LaporanSarprasModel struct {
	SarprasID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:sarpras_id" json:"-"`
	SarprasLaporanID uuid.UUID `gorm:"type:uuid;not null;index;column:sarpras_laporan_id" json:"-"`
	SarprasUrutan    int       `gorm:"not null;default:0;column:sarpras_urutan" json:"-"`

	JenisAset          string `gorm:"size:200;column:sarpras_jenis_aset" json:"jenis_aset"`
	Luas               string `gorm:"size:100;column:sarpras_luas" json:"luas"`
	KondisiBaik        *int   `gorm:"column:sarpras_kondisi_baik" json:"kondisi_baik"`
	KondisiRusakRingan *int   `gorm:"column:sarpras_kondisi_rusak_ringan" json:"kondisi_rusak_ringan"`
	KondisiRusakBerat  *int   `gorm:"column:sarpras_kondisi_rusak_berat" json:"kondisi_rusak_berat"`
	Kekurangan         *int   `gorm:"column:sarpras_kekurangan" json:"kekurangan"`
	PerluRehab         *int   `gorm:"column:sarpras_perlu_rehab" json:"perlu_rehab"`
	Keterangan         string `gorm:"type:text;column:sarpras_keterangan" json:"keterangan"`
}

func (LaporanSarprasModel) TableName() string { return "laporan_sarpras" }

// 5. Mobiler (inventaris perabot)
type LaporanMobilerModel struct {
	MobilerID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:mobiler_id" json:"-"`
	MobilerLaporanID uuid.UUID `gorm:"type:uuid;not null;index;column:mobiler_laporan_id" json:"-"`
	MobilerUrutan    int       `gorm:"not null;default:0;column:mobiler_urutan" json:"-"`

	NamaBarang         string `gorm:"size:200;column:mobiler_nama_barang" json:"nama_barang"`
	JumlahTotal        *int   `gorm:"column:mobiler_jumlah_total" json:"jumlah_total"`
	KondisiBaik        *int   `gorm:"column:mobiler_kondisi_baik" json:"kondisi_baik"`
	KondisiRusakRingan *int   `gorm:"column:mobiler_kondisi_rusak_ringan" json:"kondisi_rusak_ringan"`
	KondisiRusakBerat  *int   `gorm:"column:mobiler_kondisi_rusak_berat" json:"kondisi_rusak_berat"`
	Kekurangan         *int   `gorm:"column:mobiler_kekurangan" json:"kekurangan"`
	Keterangan         string `gorm:"type:text;column:mobiler_keterangan" json:"keterangan"`
}

func (LaporanMobilerModel) TableName() string { return "laporan_mobiler" }

// 6. Keuangan (BOS/non-BOS). Jumlah per baris = volume × harga_satuan, dihitung,
// tidak disimpan.
type LaporanKeuanganModel struct {
	KeuanganID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:keuangan_id" json:"-"`
	KeuanganLaporanID uuid.UUID `gorm:"type:uuid;not null;index;column:keuangan_laporan_id" json:"-"`
	KeuanganUrutan    int       `gorm:"not null;default:0;column:keuangan_urutan" json:"-"`

	UraianKegiatan string `gorm:"type:text;column:keuangan_uraian_kegiatan" json:"uraian_kegiatan"`
	Satuan         string `gorm:"size:50;column:keuangan_satuan" json:"satuan"`
	Volume         *int   `gorm:"column:keuangan_volume" json:"volume"`
	HargaSatuan    *int64 `gorm:"column:keuangan_harga_satuan" json:"harga_satuan"`
}

func (LaporanKeuanganModel) TableName() string { return "laporan_keuangan" }

// JumlahBaris menghitung volume × harga_satuan; nil diperlakukan 0.
func (m LaporanKeuanganModel) JumlahBaris() int64 {
	if m.Volume == nil || m.HargaSatuan == nil {
		return 0
	}
	return int64(*m.Volume) * *m.HargaSatuan
}
