// pkg/editor/grid.go
//
// Model grid untuk editor section: tambah/hapus baris, isi sel dengan
// sanitasi numerik, dan footer agregat. Logika murni tanpa I/O supaya
// gampang ditanam di TUI/CLI maupun diuji.
package editor

import "strings"

// Column mendeskripsikan satu kolom grid.
type Column struct {
	Name    string
	Numeric bool
}

// Grid: tabel sel string; kolom numerik disanitasi saat diisi.
// Sel numerik kosong berarti null, bukan nol.
type Grid struct {
	Columns []Column
	Rows    [][]string
}

func NewGrid(cols ...Column) *Grid {
	return &Grid{Columns: cols}
}

// AddRow menambah baris kosong di akhir dan mengembalikan indeksnya.
func (g *Grid) AddRow() int {
	g.Rows = append(g.Rows, make([]string, len(g.Columns)))
	return len(g.Rows) - 1
}

// RemoveRow menghapus baris i; indeks di luar jangkauan diabaikan.
func (g *Grid) RemoveRow(i int) {
	if i < 0 || i >= len(g.Rows) {
		return
	}
	g.Rows = append(g.Rows[:i], g.Rows[i+1:]...)
}

// SanitizeNumeric membuang semua karakter non-digit. Hasil kosong berarti
// sel dikosongkan (null).
func SanitizeNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SetCell mengisi sel (row, col); kolom numerik melewati SanitizeNumeric.
func (g *Grid) SetCell(row, col int, value string) {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= len(g.Columns) {
		return
	}
	if g.Columns[col].Numeric {
		value = SanitizeNumeric(value)
	}
	g.Rows[row][col] = value
}

// Cell mengembalikan isi mentah sel; di luar jangkauan = "".
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= len(g.Columns) {
		return ""
	}
	return g.Rows[row][col]
}

// IntAt membaca sel numerik: nil kalau kosong (null), bukan 0.
func (g *Grid) IntAt(row, col int) *int {
	raw := g.Cell(row, col)
	if raw == "" {
		return nil
	}
	n := 0
	for _, r := range raw {
		n = n*10 + int(r-'0')
	}
	return &n
}

// ColumnTotal menjumlahkan satu kolom numerik; sel kosong dihitung 0.
func (g *Grid) ColumnTotal(col int) int {
	if col < 0 || col >= len(g.Columns) || !g.Columns[col].Numeric {
		return 0
	}
	total := 0
	for row := range g.Rows {
		if v := g.IntAt(row, col); v != nil {
			total += *v
		}
	}
	return total
}

// ProductAt menghitung hasil kali dua kolom numerik pada satu baris —
// padanan kolom turunan jumlah = volume × harga_satuan. Sel kosong dihitung 0;
// nilainya selalu dihitung ulang dari isi sel, tidak pernah disimpan.
func (g *Grid) ProductAt(row, colA, colB int) int64 {
	if colA < 0 || colA >= len(g.Columns) || !g.Columns[colA].Numeric {
		return 0
	}
	if colB < 0 || colB >= len(g.Columns) || !g.Columns[colB].Numeric {
		return 0
	}
	a := g.IntAt(row, colA)
	b := g.IntAt(row, colB)
	if a == nil || b == nil {
		return 0
	}
	return int64(*a) * int64(*b)
}

// ProductTotal menjumlahkan hasil kali dua kolom di seluruh baris
// (grand total keuangan).
func (g *Grid) ProductTotal(colA, colB int) int64 {
	var total int64
	for row := range g.Rows {
		total += g.ProductAt(row, colA, colB)
	}
	return total
}

// Footer menghitung total untuk seluruh kolom numerik, diindeks nama kolom.
func (g *Grid) Footer() map[string]int {
	out := make(map[string]int)
	for i, c := range g.Columns {
		if c.Numeric {
			out[c.Name] = g.ColumnTotal(i)
		}
	}
	return out
}
