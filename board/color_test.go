package board

import (
	"errors"
	"testing"
)

func TestNewColorFromString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr error
	}{
		{name: "white lower", input: "w", want: White},
		{name: "white upper", input: "W", want: White},
		{name: "black lower", input: "b", want: Black},
		{name: "black upper", input: "B", want: Black},
		{name: "first character wins", input: "white", want: White},
		{name: "empty", input: "", wantErr: ErrUnknownColor},
		{name: "unknown", input: "x", wantErr: ErrUnknownColor},
		{name: "leading space", input: " w", wantErr: ErrUnknownColor},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewColorFromString(tt.input)
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

func TestColorIndex(t *testing.T) {
	t.Parallel()
	if White.Index() != 0 || Black.Index() != 1 {
		t.Errorf("unexpected indices: white=%d black=%d", White.Index(), Black.Index())
	}
	for i, c := range Colors {
		if c.Index() != i {
			t.Errorf("Colors[%d] has index %d", i, c.Index())
		}
	}
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("unexpected opposites")
	}
}
