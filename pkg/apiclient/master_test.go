package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteMadrasah(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		ok(w, `{"id":"m-1"}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.setToken("tok")
	require.NoError(t, c.DeleteMadrasah(context.Background(), "m-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/master/madrasah/m-1", gotPath)
}

func TestSetMadrasahAktifMengirimHanyaStatus(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		ok(w, `{"id_madrasah":"m-1","nama_madrasah":"MI Contoh","npsn":"12345678","status_aktif":0}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.setToken("tok")
	m, err := c.SetMadrasahAktif(context.Background(), "m-1", false)
	require.NoError(t, err)

	// payload parsial: field lain tidak ikut terkirim
	assert.Equal(t, map[string]any{"status_aktif": float64(0)}, gotBody)
	assert.Equal(t, 0, m.StatusAktif)
}

func TestSetMadrasahAktifGagalUntukRevertToggle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusInternalServerError, "db error", "INTERNAL_ERROR")
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.setToken("tok")
	_, err := c.SetMadrasahAktif(context.Background(), "m-1", true)

	// error harus sampai ke pemanggil supaya toggle optimistis bisa dikembalikan
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestCreateUserMengirimRoleDanMadrasah(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/master/users", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		ok(w, `{"id":"u-1","username":"12345678","role":"operator_sekolah","id_madrasah":"m-1"}`)
	}))
	defer srv.Close()

	madrasahID := "m-1"
	c := New(srv.URL)
	c.setToken("tok")
	u, err := c.CreateUser(context.Background(), UserInput{
		Username:   "12345678",
		Password:   "rahasia",
		Role:       "operator_sekolah",
		MadrasahID: &madrasahID,
	})
	require.NoError(t, err)

	assert.Equal(t, "operator_sekolah", gotBody["role"])
	assert.Equal(t, "m-1", gotBody["id_madrasah"])
	assert.Equal(t, "12345678", u.Username)
}

func TestPengumumanCreateDelete(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			ok(w, `{"id":"p-1","judul":"Batas pengumpulan","isi":"Paling lambat tanggal 5"}`)
		default:
			ok(w, `{"id":"p-1"}`)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.setToken("tok")

	p, err := c.CreatePengumuman(context.Background(), "Batas pengumpulan", "Paling lambat tanggal 5")
	require.NoError(t, err)
	assert.Equal(t, "p-1", p.ID)

	require.NoError(t, c.DeletePengumuman(context.Background(), "p-1"))
	assert.Equal(t, []string{
		"POST /api/master/pengumuman",
		"DELETE /api/master/pengumuman/p-1",
	}, paths)
}
