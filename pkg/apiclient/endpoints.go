// pkg/apiclient/endpoints.go
package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

/* ================= Sesi ================= */

// Init login dan menyimpan token untuk request berikutnya.
func (c *Client) Init(ctx context.Context, username, password string) (*LoginData, error) {
	var data LoginData
	err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	}, &data)
	if err != nil {
		return nil, err
	}
	c.setToken(data.Token)
	return &data, nil
}

// Teardown logout di server lalu membuang token lokal. Token tetap dibuang
// walau request logout gagal.
func (c *Client) Teardown(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
	c.setToken("")
	return err
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, username string) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPut, "/api/profile/update",
		map[string]string{"username": username}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdatePassword(ctx context.Context, lama, baru string) error {
	return c.do(ctx, http.MethodPut, "/api/profile/password", map[string]string{
		"password_lama": lama,
		"password_baru": baru,
	}, nil)
}

/* ================= Operator ================= */

func (c *Client) OperatorDashboard(ctx context.Context, trashed bool) (*OperatorDashboard, error) {
	path := "/api/operator/dashboard"
	if trashed {
		path += "?trashed=1"
	}
	var d OperatorDashboard
	if err := c.do(ctx, http.MethodGet, path, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) OwnMadrasah(ctx context.Context) (*Madrasah, error) {
	var m Madrasah
	if err := c.do(ctx, http.MethodGet, "/api/operator/madrasah", nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) UpdateOwnMadrasah(ctx context.Context, fields map[string]any) (*Madrasah, error) {
	var m Madrasah
	if err := c.do(ctx, http.MethodPut, "/api/operator/madrasah", fields, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) Pengumuman(ctx context.Context) ([]Pengumuman, error) {
	var rows []Pengumuman
	if err := c.do(ctx, http.MethodGet, "/api/pengumuman", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

/* ================= Laporan ================= */

func (c *Client) CreateLaporan(ctx context.Context, bulanTahun string) (*Laporan, error) {
	var l Laporan
	err := c.do(ctx, http.MethodPost, "/api/laporan",
		map[string]string{"bulan_tahun": bulanTahun}, &l)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) SubmitLaporan(ctx context.Context, id string) (*Laporan, error) {
	var l Laporan
	if err := c.do(ctx, http.MethodPost, "/api/laporan/"+id+"/submit", nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) DeleteLaporan(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/laporan/"+id, nil, nil)
}

func (c *Client) RestoreLaporan(ctx context.Context, id string) (*Laporan, error) {
	var l Laporan
	if err := c.do(ctx, http.MethodPost, "/api/laporan/"+id+"/restore", nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) PermanentDeleteLaporan(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/laporan/"+id+"/permanent", nil, nil)
}

/* ================= Admin ================= */

func (c *Client) AdminDashboard(ctx context.Context, bulan string) (*AdminDashboard, error) {
	path := "/api/admin/dashboard"
	if bulan != "" {
		path += "?bulan=" + url.QueryEscape(bulan)
	}
	var d AdminDashboard
	if err := c.do(ctx, http.MethodGet, path, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) AdminRecap(ctx context.Context, bulan string) (*Recap, error) {
	path := "/api/admin/recap"
	if bulan != "" {
		path += "?bulan=" + url.QueryEscape(bulan)
	}
	var r Recap
	if err := c.do(ctx, http.MethodGet, path, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListLaporanOptions: filter daftar laporan admin.
type ListLaporanOptions struct {
	Trashed bool
	Bulan   string // YYYY-MM
	Status  string
}

func (c *Client) ListLaporan(ctx context.Context, opts ListLaporanOptions) ([]Laporan, error) {
	q := url.Values{}
	if opts.Trashed {
		q.Set("trashed", "1")
	}
	if opts.Bulan != "" {
		q.Set("bulan", opts.Bulan)
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	path := "/api/admin/laporan"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var rows []Laporan
	if err := c.do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// VerifyLaporan memutuskan laporan submitted: status verified atau revisi
// (revisi wajib menyertakan catatan).
func (c *Client) VerifyLaporan(ctx context.Context, id, status, catatanRevisi string) (*Laporan, error) {
	body := map[string]any{"status": status}
	if catatanRevisi != "" {
		body["catatan_revisi"] = catatanRevisi
	}
	var l Laporan
	if err := c.do(ctx, http.MethodPost, "/api/admin/laporan/"+id+"/verify", body, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) Logs(ctx context.Context, page int) ([]ActivityLog, error) {
	path := "/api/admin/logs"
	if page > 1 {
		path += "?page=" + strconv.Itoa(page)
	}
	var rows []ActivityLog
	if err := c.do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) DeleteLog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/logs/"+id, nil, nil)
}

func (c *Client) BulkDeleteLogs(ctx context.Context, ids []string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/logs/bulk-delete",
		map[string][]string{"ids": ids}, nil)
}
