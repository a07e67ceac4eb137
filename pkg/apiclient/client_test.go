package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, data string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"success":true,"message":"ok","data":%s}`, data)
}

func fail(w http.ResponseWriter, status int, msg, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"success":false,"message":%q,"error_code":%q}`, msg, code)
}

func TestInitMenyimpanToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)
		ok(w, `{"token":"tok-123","user":{"id":"u1","username":"op01","role":"operator_sekolah"}}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	data, err := c.Init(context.Background(), "op01", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", data.Token)
	assert.Equal(t, "op01", data.User.Username)
	assert.True(t, c.LoggedIn())
	assert.Equal(t, "tok-123", c.Token())
}

func TestRequestMembawaBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		ok(w, `{"id":"u1","username":"op01","role":"operator_sekolah"}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.setToken("tok-xyz")
	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-xyz", gotAuth)
}

func TestUnauthorizedMembuangToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.setToken("basi")
	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, c.LoggedIn(), "token harus dibuang setelah 401")
}

func TestTeardownSelaluMembuangToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusInternalServerError, "boom", "INTERNAL_ERROR")
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.setToken("tok")
	err := c.Teardown(context.Background())
	assert.Error(t, err)
	assert.False(t, c.LoggedIn())
}

func TestAPIErrorDariServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusConflict, "Laporan bulan ini sudah ada", "CONFLICT")
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateLaporan(context.Background(), "2026-08-01")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "CONFLICT", apiErr.ErrorCode)
	assert.Contains(t, apiErr.Error(), "Laporan bulan ini sudah ada")
}

func TestSaveAllSectionsLengkap(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		ok(w, `{"jumlah_baris":0}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.setToken("tok")
	res := c.SaveAllSections(context.Background(), "lap-1", SectionData{})

	assert.True(t, res.Complete())
	assert.Equal(t, SectionOrder, res.Saved)
	// urutan pipeline harus tetap
	want := []string{
		"/api/laporan/lap-1/siswa",
		"/api/laporan/lap-1/rekap-personal",
		"/api/laporan/lap-1/guru",
		"/api/laporan/lap-1/sarpras",
		"/api/laporan/lap-1/mobiler",
		"/api/laporan/lap-1/keuangan",
	}
	assert.Equal(t, want, paths)
}

func TestSaveAllSectionsSebagianGagal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/laporan/lap-1/guru", "/api/laporan/lap-1/keuangan":
			fail(w, http.StatusInternalServerError, "db error", "INTERNAL_ERROR")
		default:
			ok(w, `{"jumlah_baris":0}`)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.setToken("tok")
	res := c.SaveAllSections(context.Background(), "lap-1", SectionData{})

	assert.False(t, res.Complete())
	assert.Equal(t, []string{SectionSiswa, SectionRekapPersonal, SectionSarpras, SectionMobiler}, res.Saved)
	assert.Equal(t, []string{SectionGuru, SectionKeuangan}, res.FailedSections())
	for _, f := range res.Failed {
		assert.Contains(t, f.Error(), f.Section)
	}
}

func TestSaveAllSectionsSesiPutus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.setToken("basi")
	res := c.SaveAllSections(context.Background(), "lap-1", SectionData{})

	// keenam section tetap dilaporkan gagal satu per satu
	assert.False(t, res.Complete())
	require.Len(t, res.Failed, len(SectionOrder))
	assert.Equal(t, SectionOrder, res.FailedSections())
	for _, f := range res.Failed {
		assert.ErrorIs(t, f, ErrUnauthorized)
	}
	assert.False(t, c.LoggedIn())
}

func TestGetLaporanDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/laporan/lap-1", r.URL.Path)
		ok(w, `{
			"id_laporan":"lap-1",
			"status_laporan":"draft",
			"allowed_actions":["edit_sections","submit"],
			"siswa":[{"kelas":"1","jumlah_lk":10,"jumlah_pr":8}],
			"keuangan":[{"uraian_kegiatan":"ATK","volume":2,"harga_satuan":5000}]
		}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.setToken("tok")
	d, err := c.GetLaporan(context.Background(), "lap-1")
	require.NoError(t, err)

	assert.Equal(t, "draft", d.Status)
	assert.True(t, d.Can("submit"))
	assert.False(t, d.Can("verify"))
	require.Len(t, d.Siswa, 1)
	require.NotNil(t, d.Siswa[0].JumlahLK)
	assert.Equal(t, 10, *d.Siswa[0].JumlahLK)
	require.Len(t, d.Keuangan, 1)
	require.NotNil(t, d.Keuangan[0].HargaSatuan)
	assert.Equal(t, int64(5000), *d.Keuangan[0].HargaSatuan)
}
