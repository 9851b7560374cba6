package opentype

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"golang.org/x/image/math/fixed"

	"github.com/glyphtools/collide"
)

func TestGuessDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want collide.Direction
	}{
		{name: "latin", text: "hello", want: collide.DirectionLTR},
		{name: "arabic", text: "سلام", want: collide.DirectionRTL},
		{name: "hebrew", text: "שלום", want: collide.DirectionRTL},
		{name: "leading neutrals", text: "  123 שלום", want: collide.DirectionRTL},
		{name: "numbers only", text: "123", want: collide.DirectionLTR},
		{name: "empty", text: "", want: collide.DirectionLTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guessDirection([]rune(tt.text)); got != tt.want {
				t.Errorf("guessDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectScript(t *testing.T) {
	if got := detectScript([]rune("abc")); got != language.LookupScript('a') {
		t.Errorf("latin script = %v", got)
	}
	if got := detectScript([]rune("  مرحبا")); got != language.LookupScript('م') {
		t.Errorf("arabic script after spaces = %v", got)
	}
	if got := detectScript([]rune("   ")); got != language.Latin {
		t.Errorf("whitespace-only script = %v, want Latin", got)
	}
}

func TestFixedToFloat(t *testing.T) {
	tests := []struct {
		in   fixed.Int26_6
		want float64
	}{
		{in: fixed.I(100), want: 100},
		{in: fixed.I(-3), want: -3},
		{in: 32, want: 0.5},
		{in: 0, want: 0},
	}
	for _, tt := range tests {
		if got := fixedToFloat(tt.in); got != tt.want {
			t.Errorf("fixedToFloat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewSource_EmptyData(t *testing.T) {
	if _, err := NewSource(nil); err != ErrEmptyFontData {
		t.Errorf("NewSource(nil) err = %v, want ErrEmptyFontData", err)
	}
}

func TestNewSource_GarbageData(t *testing.T) {
	if _, err := NewSource([]byte("this is not a font")); err == nil {
		t.Error("NewSource should reject non-font data")
	}
}
