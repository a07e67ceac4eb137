// pkg/apiclient/types.go
//
// Bentuk wire sisi client. Sengaja berdiri sendiri (tidak meminjam model GORM
// server) supaya package ini tetap ringan untuk dipakai tooling eksternal.
package apiclient

import "time"

type User struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	MadrasahID *string `json:"id_madrasah,omitempty"`
	Madrasah   string  `json:"madrasah,omitempty"`
}

type LoginData struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type Madrasah struct {
	ID          string  `json:"id_madrasah"`
	Nama        string  `json:"nama_madrasah"`
	NPSN        string  `json:"npsn"`
	NSM         *string `json:"nsm,omitempty"`
	Alamat      *string `json:"alamat,omitempty"`
	Kecamatan   *string `json:"kecamatan,omitempty"`
	Kabupaten   *string `json:"kabupaten,omitempty"`
	Latitude    *string `json:"latitude,omitempty"`
	Longitude   *string `json:"longitude,omitempty"`
	NamaKepala  *string `json:"nama_kepala,omitempty"`
	NIPKepala   *string `json:"nip_kepala,omitempty"`
	TelpKepala  *string `json:"telp_kepala,omitempty"`
	Email       *string `json:"email_madrasah,omitempty"`
	StatusAktif int     `json:"status_aktif"`
}

type Laporan struct {
	ID             string     `json:"id_laporan"`
	MadrasahID     string     `json:"id_madrasah"`
	NamaMadrasah   string     `json:"madrasah,omitempty"`
	BulanTahun     string     `json:"bulan_tahun"`
	Status         string     `json:"status_laporan"`
	CatatanRevisi  *string    `json:"catatan_revisi,omitempty"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	Trashed        bool       `json:"trashed"`
	AllowedActions []string   `json:"allowed_actions"`
}

// Can melaporkan apakah aksi ada di daftar allowed_actions dari server.
func (l Laporan) Can(action string) bool {
	for _, a := range l.AllowedActions {
		if a == action {
			return true
		}
	}
	return false
}

/* ================= Baris section ================= */

type SiswaRow struct {
	Kelas        string `json:"kelas"`
	JumlahRombel *int   `json:"jumlah_rombel"`
	JumlahLK     *int   `json:"jumlah_lk"`
	JumlahPR     *int   `json:"jumlah_pr"`
	MutasiMasuk  *int   `json:"mutasi_masuk"`
	MutasiKeluar *int   `json:"mutasi_keluar"`
	Keterangan   string `json:"keterangan"`
}

type RekapPersonalRow struct {
	Keadaan      string `json:"keadaan"`
	JumlahLK     *int   `json:"jumlah_lk"`
	JumlahPR     *int   `json:"jumlah_pr"`
	MutasiMasuk  *int   `json:"mutasi_masuk"`
	MutasiKeluar *int   `json:"mutasi_keluar"`
	Keterangan   string `json:"keterangan"`
}

type GuruRow struct {
	NamaGuru           string `json:"nama_guru"`
	NipNik             string `json:"nip_nik"`
	LP                 string `json:"lp"`
	TempatLahir        string `json:"tempat_lahir"`
	TanggalLahir       string `json:"tanggal_lahir"`
	StatusPegawai      string `json:"status_pegawai"`
	PendidikanTerakhir string `json:"pendidikan_terakhir"`
	Jurusan            string `json:"jurusan"`
	Golongan           string `json:"golongan"`
	TmtMengajar        string `json:"tmt_mengajar"`
	TmtDiMadrasah      string `json:"tmt_di_madrasah"`
	MataPelajaran      string `json:"mata_pelajaran"`
	Satminkal          string `json:"satminkal"`
	JumlahJam          string `json:"jumlah_jam"`
	Jabatan            string `json:"jabatan"`
	NamaIbuKandung     string `json:"nama_ibu_kandung"`
	Sertifikasi        bool   `json:"sertifikasi"`
	MutasiStatus       string `json:"mutasi_status"`
}

type SarprasRow struct {
	JenisAset          string `json:"jenis_aset"`
	Luas               string `json:"luas"`
	KondisiBaik        *int   `json:"kondisi_baik"`
	KondisiRusakRingan *int   `json:"kondisi_rusak_ringan"`
	KondisiRusakBerat  *int   `json:"kondisi_rusak_berat"`
	Kekurangan         *int   `json:"kekurangan"`
	PerluRehab         *int   `json:"perlu_rehab"`
	Keterangan         string `json:"keterangan"`
}

type MobilerRow struct {
	NamaBarang         string `json:"nama_barang"`
	JumlahTotal        *int   `json:"jumlah_total"`
	KondisiBaik        *int   `json:"kondisi_baik"`
	KondisiRusakRingan *int   `json:"kondisi_rusak_ringan"`
	KondisiRusakBerat  *int   `json:"kondisi_rusak_berat"`
	Kekurangan         *int   `json:"kekurangan"`
	Keterangan         string `json:"keterangan"`
}

type KeuanganRow struct {
	UraianKegiatan string `json:"uraian_kegiatan"`
	Satuan         string `json:"satuan"`
	Volume         *int   `json:"volume"`
	HargaSatuan    *int64 `json:"harga_satuan"`
}

type Pengumuman struct {
	ID        string    `json:"id"`
	Judul     string    `json:"judul"`
	Isi       string    `json:"isi"`
	CreatedAt time.Time `json:"created_at"`
}

type ActivityLog struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminDashboard struct {
	Bulan             string    `json:"bulan"`
	TotalMadrasah     int64     `json:"total_madrasah"`
	LaporanMasuk      int64     `json:"laporan_masuk"`
	Terverifikasi     int64     `json:"terverifikasi"`
	PerluRevisi       int64     `json:"perlu_revisi"`
	BelumLapor        int64     `json:"belum_lapor"`
	RecentSubmissions []Laporan `json:"recent_submissions"`
}

type OperatorDashboard struct {
	Madrasah   Madrasah     `json:"madrasah"`
	Laporan    []Laporan    `json:"laporan"`
	Pengumuman []Pengumuman `json:"pengumuman"`
}

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

type Recap struct {
	Bulan string     `json:"bulan"`
	Rekap []RecapRow `json:"rekap"`
}
