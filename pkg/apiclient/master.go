// pkg/apiclient/master.go
//
// Permukaan master data (penmad): madrasah, user, pengumuman.
package apiclient

import (
	"context"
	"net/http"
)

// MadrasahInput: payload create/update madrasah. Field nil/kosong tidak
// dikirim, jadi update parsial cukup mengisi yang berubah.
type MadrasahInput struct {
	Nama string  `json:"nama_madrasah,omitempty"`
	NPSN string  `json:"npsn,omitempty"`
	NSM  *string `json:"nsm,omitempty"`

	Alamat    *string `json:"alamat,omitempty"`
	Kecamatan *string `json:"kecamatan,omitempty"`
	Kabupaten *string `json:"kabupaten,omitempty"`
	Latitude  *string `json:"latitude,omitempty"`
	Longitude *string `json:"longitude,omitempty"`

	NamaKepala *string `json:"nama_kepala,omitempty"`
	NIPKepala  *string `json:"nip_kepala,omitempty"`
	TelpKepala *string `json:"telp_kepala,omitempty"`
	Email      *string `json:"email_madrasah,omitempty"`

	StatusAktif *int `json:"status_aktif,omitempty"`
}

func (c *Client) ListMadrasah(ctx context.Context) ([]Madrasah, error) {
	var rows []Madrasah
	if err := c.do(ctx, http.MethodGet, "/api/master/madrasah", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetMadrasah(ctx context.Context, id string) (*Madrasah, error) {
	var m Madrasah
	if err := c.do(ctx, http.MethodGet, "/api/master/madrasah/"+id, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) CreateMadrasah(ctx context.Context, in MadrasahInput) (*Madrasah, error) {
	var m Madrasah
	if err := c.do(ctx, http.MethodPost, "/api/master/madrasah", in, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) UpdateMadrasah(ctx context.Context, id string, in MadrasahInput) (*Madrasah, error) {
	var m Madrasah
	if err := c.do(ctx, http.MethodPut, "/api/master/madrasah/"+id, in, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// SetMadrasahAktif men-toggle status aktif. Pemanggil yang menampilkan toggle
// optimistis wajib mengembalikan tampilannya kalau error != nil.
func (c *Client) SetMadrasahAktif(ctx context.Context, id string, aktif bool) (*Madrasah, error) {
	status := 0
	if aktif {
		status = 1
	}
	return c.UpdateMadrasah(ctx, id, MadrasahInput{StatusAktif: &status})
}

func (c *Client) DeleteMadrasah(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/master/madrasah/"+id, nil, nil)
}

// UserInput: payload create/update user. Password kosong saat update berarti
// tidak diganti.
type UserInput struct {
	Username   string  `json:"username,omitempty"`
	Password   string  `json:"password,omitempty"`
	Role       string  `json:"role,omitempty"`
	MadrasahID *string `json:"id_madrasah,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var rows []User
	if err := c.do(ctx, http.MethodGet, "/api/master/users", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/master/users/"+id, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CreateUser(ctx context.Context, in UserInput) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/master/users", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, in UserInput) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPut, "/api/master/users/"+id, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/master/users/"+id, nil, nil)
}

func (c *Client) CreatePengumuman(ctx context.Context, judul, isi string) (*Pengumuman, error) {
	var p Pengumuman
	err := c.do(ctx, http.MethodPost, "/api/master/pengumuman",
		map[string]string{"judul": judul, "isi": isi}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeletePengumuman(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/master/pengumuman/"+id, nil, nil)
}
