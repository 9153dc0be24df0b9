package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Move
		wantErr bool
	}{
		{
			name: "quiet move",
			text: "e2e4",
			want: Move{From: Sq('e', '2'), To: Sq('e', '4'), Promotion: Empty},
		},
		{
			name: "knight development",
			text: "g1f3",
			want: Move{From: Sq('g', '1'), To: Sq('f', '3'), Promotion: Empty},
		},
		{
			name: "queen promotion",
			text: "e7e8q",
			want: Move{From: Sq('e', '7'), To: Sq('e', '8'), Promotion: Queen},
		},
		{
			name: "underpromotion to knight",
			text: "a2a1n",
			want: Move{From: Sq('a', '2'), To: Sq('a', '1'), Promotion: Knight},
		},
		{name: "too short", text: "e2e", wantErr: true},
		{name: "too long", text: "e2e4e5", wantErr: true},
		{name: "bad from square", text: "z2e4", wantErr: true},
		{name: "bad to square", text: "e2e9", wantErr: true},
		{name: "bad promotion piece", text: "e7e8k", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMove(%q) succeeded, want error", tt.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) failed: %v", tt.text, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseMove(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{
			name: "quiet move",
			move: Move{From: Sq('e', '2'), To: Sq('e', '4')},
			want: "e2e4",
		},
		{
			name: "capture shows no suffix",
			move: Move{From: Sq('e', '4'), To: Sq('d', '5'), Capture: true},
			want: "e4d5",
		},
		{
			name: "promotion suffix",
			move: Move{From: Sq('b', '7'), To: Sq('b', '8'), Promotion: Rook},
			want: "b7b8r",
		},
		{
			name: "kingside castle as king move",
			move: Move{From: Sq('e', '1'), To: Sq('g', '1'), CastleKingside: true},
			want: "e1g1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSameAction(t *testing.T) {
	parsed, err := ParseMove("e1g1")
	if err != nil {
		t.Fatalf("ParseMove failed: %v", err)
	}
	generated := Move{From: Sq('e', '1'), To: Sq('g', '1'), CastleKingside: true}
	if !generated.SameAction(parsed) {
		t.Error("generated castle should match the parsed coordinate move")
	}

	promoted := Move{From: Sq('e', '7'), To: Sq('e', '8'), Promotion: Queen}
	underpromoted := Move{From: Sq('e', '7'), To: Sq('e', '8'), Promotion: Rook}
	if promoted.SameAction(underpromoted) {
		t.Error("different promotion kinds must not match")
	}
}

func TestPromotionFromLetter(t *testing.T) {
	tests := []struct {
		letter byte
		want   Piece
		ok     bool
	}{
		{'q', Queen, true},
		{'R', Rook, true},
		{'b', Bishop, true},
		{'n', Knight, true},
		{'k', Empty, false},
		{'x', Empty, false},
	}
	for _, tt := range tests {
		got, ok := PromotionFromLetter(tt.letter)
		if got != tt.want || ok != tt.ok {
			t.Errorf("PromotionFromLetter(%q) = %v, %v; want %v, %v",
				tt.letter, got, ok, tt.want, tt.ok)
		}
	}
}
