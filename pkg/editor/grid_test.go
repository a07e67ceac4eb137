package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestGrid() *Grid {
	return NewGrid(
		Column{Name: "kelas"},
		Column{Name: "jumlah_lk", Numeric: true},
		Column{Name: "jumlah_pr", Numeric: true},
	)
}

func TestGridAddRemoveRow(t *testing.T) {
	g := newTestGrid()

	assert.Equal(t, 0, g.AddRow())
	assert.Equal(t, 1, g.AddRow())
	assert.Len(t, g.Rows, 2)

	g.SetCell(0, 0, "Kelas 1")
	g.SetCell(1, 0, "Kelas 2")
	g.RemoveRow(0)
	assert.Len(t, g.Rows, 1)
	assert.Equal(t, "Kelas 2", g.Cell(0, 0))

	// indeks di luar jangkauan diabaikan
	g.RemoveRow(5)
	g.RemoveRow(-1)
	assert.Len(t, g.Rows, 1)
}

func TestSanitizeNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123", "123"},
		{"12a3", "123"},
		{"abc", ""},
		{"", ""},
		{" 4 5 ", "45"},
		{"-10", "10"},
		{"1.000", "1000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeNumeric(tt.in), tt.in)
	}
}

func TestSetCellSanitasiKolomNumerik(t *testing.T) {
	g := newTestGrid()
	g.AddRow()

	g.SetCell(0, 1, "1a2")
	assert.Equal(t, "12", g.Cell(0, 1))

	// kolom teks tidak disanitasi
	g.SetCell(0, 0, "Kelas 1-A")
	assert.Equal(t, "Kelas 1-A", g.Cell(0, 0))
}

func TestIntAtKosongBerartiNull(t *testing.T) {
	g := newTestGrid()
	g.AddRow()

	// kosong = null, bukan 0
	assert.Nil(t, g.IntAt(0, 1))

	g.SetCell(0, 1, "0")
	if assert.NotNil(t, g.IntAt(0, 1)) {
		assert.Equal(t, 0, *g.IntAt(0, 1))
	}

	// menghapus isi mengembalikan null
	g.SetCell(0, 1, "")
	assert.Nil(t, g.IntAt(0, 1))
}

func TestProductAtDanGrandTotal(t *testing.T) {
	g := NewGrid(
		Column{Name: "uraian_kegiatan"},
		Column{Name: "volume", Numeric: true},
		Column{Name: "harga_satuan", Numeric: true},
	)
	g.AddRow()
	g.AddRow()

	g.SetCell(0, 1, "10")
	g.SetCell(0, 2, "25000")
	g.SetCell(1, 1, "2")
	g.SetCell(1, 2, "500000")

	assert.Equal(t, int64(250000), g.ProductAt(0, 1, 2))
	assert.Equal(t, int64(1000000), g.ProductAt(1, 1, 2))
	assert.Equal(t, int64(1250000), g.ProductTotal(1, 2))

	// setiap edit langsung mengubah jumlah baris dan grand total
	g.SetCell(1, 1, "3")
	assert.Equal(t, int64(1500000), g.ProductAt(1, 1, 2))
	assert.Equal(t, int64(1750000), g.ProductTotal(1, 2))

	// sel yang dikosongkan (null) membuat jumlah barisnya 0
	g.SetCell(0, 2, "")
	assert.Equal(t, int64(0), g.ProductAt(0, 1, 2))
	assert.Equal(t, int64(1500000), g.ProductTotal(1, 2))

	// kolom teks tidak pernah ikut perkalian
	assert.Equal(t, int64(0), g.ProductAt(0, 0, 2))
}

func TestFooter(t *testing.T) {
	g := newTestGrid()
	g.AddRow()
	g.AddRow()
	g.SetCell(0, 1, "10")
	g.SetCell(0, 2, "8")
	g.SetCell(1, 1, "5")
	// (1,2) dibiarkan kosong

	f := g.Footer()
	assert.Equal(t, 15, f["jumlah_lk"])
	assert.Equal(t, 8, f["jumlah_pr"])
	_, ada := f["kelas"]
	assert.False(t, ada, "kolom teks tidak ikut footer")
}
