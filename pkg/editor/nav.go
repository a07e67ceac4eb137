// pkg/editor/nav.go
package editor

// Key: tombol panah yang dikenali navigasi grid.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// Caret: posisi kursor teks yang harus dipasang pada sel tujuan.
type Caret int

const (
	CaretStart Caret = iota
	CaretEnd
)

// Pos: koordinat sel (baris, kolom).
type Pos struct {
	Row int
	Col int
}

// NavState: kondisi sel aktif saat tombol panah ditekan.
//   - SelStart/SelEnd: posisi seleksi kursor di dalam teks sel
//   - ValueLen: panjang teks sel
type NavState struct {
	Pos      Pos
	SelStart int
	SelEnd   int
	ValueLen int
}

// Navigate menentukan perpindahan fokus antar sel:
//   - kiri hanya pindah bila kursor sudah di awal teks (SelStart == 0),
//     kanan hanya bila sudah di akhir (SelEnd == ValueLen); selain itu
//     tombol dibiarkan menggerakkan kursor teks biasa
//   - atas/bawah selalu pindah
//   - kanan di kolom terakhir menyambung ke baris berikutnya kolom pertama,
//     kiri di kolom pertama ke baris sebelumnya kolom terakhir
//   - setelah pindah: kanan/bawah menaruh kursor di awal sel tujuan,
//     kiri/atas di akhir
//
// moved=false berarti fokus tidak berpindah.
func Navigate(key Key, s NavState, numRows, numCols int) (next Pos, caret Caret, moved bool) {
	if numRows <= 0 || numCols <= 0 {
		return s.Pos, CaretStart, false
	}

	switch key {
	case KeyLeft:
		if s.SelStart != 0 {
			return s.Pos, CaretStart, false
		}
		if s.Pos.Col > 0 {
			return Pos{s.Pos.Row, s.Pos.Col - 1}, CaretEnd, true
		}
		if s.Pos.Row > 0 {
			return Pos{s.Pos.Row - 1, numCols - 1}, CaretEnd, true
		}
		return s.Pos, CaretStart, false

	case KeyRight:
		if s.SelEnd != s.ValueLen {
			return s.Pos, CaretStart, false
		}
		if s.Pos.Col < numCols-1 {
			return Pos{s.Pos.Row, s.Pos.Col + 1}, CaretStart, true
		}
		if s.Pos.Row < numRows-1 {
			return Pos{s.Pos.Row + 1, 0}, CaretStart, true
		}
		return s.Pos, CaretStart, false

	case KeyUp:
		if s.Pos.Row > 0 {
			return Pos{s.Pos.Row - 1, s.Pos.Col}, CaretEnd, true
		}
		return s.Pos, CaretStart, false

	case KeyDown:
		if s.Pos.Row < numRows-1 {
			return Pos{s.Pos.Row + 1, s.Pos.Col}, CaretStart, true
		}
		return s.Pos, CaretStart, false
	}

	return s.Pos, CaretStart, false
}
