package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Grid 3×4 dipakai di semua skenario navigasi.
const (
	testRows = 3
	testCols = 4
)

func TestNavigateRight(t *testing.T) {
	tests := []struct {
		name      string
		state     NavState
		wantPos   Pos
		wantCaret Caret
		wantMoved bool
	}{
		{
			name:      "kanan pindah kolom saat kursor di akhir teks",
			state:     NavState{Pos: Pos{0, 0}, SelStart: 3, SelEnd: 3, ValueLen: 3},
			wantPos:   Pos{0, 1},
			wantCaret: CaretStart,
			wantMoved: true,
		},
		{
			name:      "kanan tidak pindah kalau kursor belum di akhir",
			state:     NavState{Pos: Pos{0, 0}, SelStart: 1, SelEnd: 1, ValueLen: 3},
			wantPos:   Pos{0, 0},
			wantMoved: false,
		},
		{
			name:      "kanan di kolom terakhir menyambung ke baris berikutnya",
			state:     NavState{Pos: Pos{0, 3}},
			wantPos:   Pos{1, 0},
			wantCaret: CaretStart,
			wantMoved: true,
		},
		{
			name:      "kanan di sel terakhir grid diam",
			state:     NavState{Pos: Pos{2, 3}},
			wantPos:   Pos{2, 3},
			wantMoved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, caret, moved := Navigate(KeyRight, tt.state, testRows, testCols)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.wantMoved, moved)
			if moved {
				assert.Equal(t, tt.wantCaret, caret)
			}
		})
	}
}

func TestNavigateLeft(t *testing.T) {
	tests := []struct {
		name      string
		state     NavState
		wantPos   Pos
		wantCaret Caret
		wantMoved bool
	}{
		{
			name:      "kiri pindah kolom saat kursor di awal teks",
			state:     NavState{Pos: Pos{1, 2}, SelStart: 0, SelEnd: 0, ValueLen: 5},
			wantPos:   Pos{1, 1},
			wantCaret: CaretEnd,
			wantMoved: true,
		},
		{
			name:      "kiri tidak pindah kalau kursor di tengah teks",
			state:     NavState{Pos: Pos{1, 2}, SelStart: 2, SelEnd: 2, ValueLen: 5},
			wantPos:   Pos{1, 2},
			wantMoved: false,
		},
		{
			name:      "kiri di kolom pertama mundur ke baris sebelumnya kolom terakhir",
			state:     NavState{Pos: Pos{1, 0}},
			wantPos:   Pos{0, 3},
			wantCaret: CaretEnd,
			wantMoved: true,
		},
		{
			name:      "kiri di sel pertama grid diam",
			state:     NavState{Pos: Pos{0, 0}},
			wantPos:   Pos{0, 0},
			wantMoved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, caret, moved := Navigate(KeyLeft, tt.state, testRows, testCols)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.wantMoved, moved)
			if moved {
				assert.Equal(t, tt.wantCaret, caret)
			}
		})
	}
}

func TestNavigateVertical(t *testing.T) {
	// atas/bawah tidak peduli posisi kursor teks
	state := NavState{Pos: Pos{1, 2}, SelStart: 1, SelEnd: 1, ValueLen: 4}

	pos, caret, moved := Navigate(KeyDown, state, testRows, testCols)
	assert.True(t, moved)
	assert.Equal(t, Pos{2, 2}, pos)
	assert.Equal(t, CaretStart, caret)

	pos, caret, moved = Navigate(KeyUp, state, testRows, testCols)
	assert.True(t, moved)
	assert.Equal(t, Pos{0, 2}, pos)
	assert.Equal(t, CaretEnd, caret)

	// mentok di tepi
	_, _, moved = Navigate(KeyUp, NavState{Pos: Pos{0, 1}}, testRows, testCols)
	assert.False(t, moved)
	_, _, moved = Navigate(KeyDown, NavState{Pos: Pos{2, 1}}, testRows, testCols)
	assert.False(t, moved)
}

func TestNavigateGridKosong(t *testing.T) {
	_, _, moved := Navigate(KeyRight, NavState{}, 0, 0)
	assert.False(t, moved)
}
