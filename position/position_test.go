package position

import (
	"errors"
	"testing"
)

func TestNewSquareFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Square
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     E4,
			wantErr:  nil,
		},
		{
			name:     "ok 2",
			notation: "a8",
			want:     Square(0),
			wantErr:  nil,
		},
		{
			name:     "ok 3",
			notation: "h1",
			want:     Square(63),
			wantErr:  nil,
		},
		{
			name:     "ok 4",
			notation: "d6",
			want:     D6,
			wantErr:  nil,
		},
		{
			name:     "ok uppercase file",
			notation: "E4",
			want:     E4,
			wantErr:  nil,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrUnknownSquare,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrUnknownSquare,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrUnknownSquare,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrUnknownSquare,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrUnknownSquare,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrUnknownSquare,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewSquareFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestSquareNotationRoundTrip(t *testing.T) {
	t.Parallel()
	for i := 0; i < NumSquares; i++ {
		s := Square(i)
		got, err := NewSquareFromNotation(s.Notation())
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", s, err)
		}
		if got != s {
			t.Errorf("unexpected result: got=%v want=%v", got, s)
		}
	}
}

func TestSquareIndexArithmetic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		square Square
		file   File
		rank   Rank
		number uint8
	}{
		{square: A8, file: 0, rank: 0, number: 8},
		{square: H8, file: 7, rank: 0, number: 8},
		{square: E4, file: 4, rank: 4, number: 4},
		{square: A1, file: 0, rank: 7, number: 1},
		{square: H1, file: 7, rank: 7, number: 1},
	}
	for _, tt := range tests {
		if got := tt.square.File(); got != tt.file {
			t.Errorf("%s: unexpected file: got=%d want=%d", tt.square, got, tt.file)
		}
		if got := tt.square.Rank(); got != tt.rank {
			t.Errorf("%s: unexpected rank row: got=%d want=%d", tt.square, got, tt.rank)
		}
		if got := tt.square.Rank().Number(); got != tt.number {
			t.Errorf("%s: unexpected rank number: got=%d want=%d", tt.square, got, tt.number)
		}
		if got := NewSquare(tt.file, tt.rank); got != tt.square {
			t.Errorf("unexpected square: got=%v want=%v", got, tt.square)
		}
	}
}

func TestNewSquareFromIndexMasks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		index uint8
		want  Square
	}{
		{index: 0, want: A8},
		{index: 63, want: H1},
		{index: 64, want: A8},
		{index: 70, want: G8},
		{index: 255, want: H1},
	}
	for _, tt := range tests {
		if got := NewSquareFromIndex(tt.index); got != tt.want {
			t.Errorf("index %d: unexpected square: got=%v want=%v", tt.index, got, tt.want)
		}
	}
}
