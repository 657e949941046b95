package board

import (
	"errors"
	"strings"
	"testing"
)

func TestNewCastlingRightsFromString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    CastlingRights
		wantErr error
	}{
		{name: "all", input: "KQkq", want: FullCastlingRights},
		{name: "Qk", input: "Qk", want: CastlingRights(0b0110)},
		{name: "Kq", input: "Kq", want: CastlingRights(0b1001)},
		{name: "q only", input: "q", want: CastlingRights(0b0001)},
		{name: "empty", input: "", want: NoCastlingRights},
		{name: "dash", input: "-", want: NoCastlingRights},
		{name: "reordered", input: "qkQK", want: FullCastlingRights},
		{name: "garbage", input: "abc", wantErr: ErrUnknownCastlingRights},
		{name: "trailing garbage", input: "KQb", wantErr: ErrUnknownCastlingRights},
		{name: "dash mixed in", input: "K-", wantErr: ErrUnknownCastlingRights},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewCastlingRightsFromString(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				if err != nil && !strings.Contains(err.Error(), tt.input) {
					t.Errorf("error does not carry offending field: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%04b want=%04b", got, tt.want)
			}
		})
	}
}

func TestCastlingRightsForColor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		white CastlingStatus
		black CastlingStatus
	}{
		{input: "KQkq", white: CastlingBoth, black: CastlingBoth},
		{input: "k", white: CastlingNotAvailable, black: CastlingKingside},
		{input: "K", white: CastlingKingside, black: CastlingNotAvailable},
		{input: "Qq", white: CastlingQueenside, black: CastlingQueenside},
		{input: "Qkq", white: CastlingQueenside, black: CastlingBoth},
		{input: "-", white: CastlingNotAvailable, black: CastlingNotAvailable},
	}
	for _, tt := range tests {
		r, err := NewCastlingRightsFromString(tt.input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.input, err)
		}
		if got := r.ForColor(White); got != tt.white {
			t.Errorf("%q: unexpected white status: got=%v want=%v", tt.input, got, tt.white)
		}
		if got := r.ForColor(Black); got != tt.black {
			t.Errorf("%q: unexpected black status: got=%v want=%v", tt.input, got, tt.black)
		}
	}
}

// A color's status must depend only on the presence of its own two
// letters, regardless of what the other color holds.
func TestCastlingRightsColorIndependence(t *testing.T) {
	t.Parallel()
	whiteParts := []string{"", "K", "Q", "KQ"}
	blackParts := []string{"", "k", "q", "kq"}
	for _, wp := range whiteParts {
		for _, bp := range blackParts {
			r, err := NewCastlingRightsFromString(wp + bp)
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", wp+bp, err)
			}
			wantWhite := statusFromLetters(strings.Contains(wp, "K"), strings.Contains(wp, "Q"))
			wantBlack := statusFromLetters(strings.Contains(bp, "k"), strings.Contains(bp, "q"))
			if got := r.ForColor(White); got != wantWhite {
				t.Errorf("%q: unexpected white status: got=%v want=%v", wp+bp, got, wantWhite)
			}
			if got := r.ForColor(Black); got != wantBlack {
				t.Errorf("%q: unexpected black status: got=%v want=%v", wp+bp, got, wantBlack)
			}
		}
	}
}

func statusFromLetters(kingside, queenside bool) CastlingStatus {
	switch {
	case kingside && queenside:
		return CastlingBoth
	case kingside:
		return CastlingKingside
	case queenside:
		return CastlingQueenside
	default:
		return CastlingNotAvailable
	}
}

func TestCastlingRightsString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{rights: FullCastlingRights, want: "KQkq"},
		{rights: NoCastlingRights, want: "-"},
		{rights: CastlingRights(0b0110), want: "Qk"},
		{rights: CastlingRights(0b1001), want: "Kq"},
	}
	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("%04b: unexpected string: got=%q want=%q", tt.rights, got, tt.want)
		}
	}
}
