package mood

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Swatch is one palette colour.
type Swatch struct {
	Color string
	Name  string
}

// Palettes lists the selectable colour palettes, five swatches each.
func Palettes() [][]Swatch {
	return [][]Swatch{
		{{"#1ABC9C", "Teal"}, {"#A7D129", "Lime"}, {"#5DADE2", "Blue"}, {"#F39C12", "Orange"}, {"#E74C3C", "Red"}},
		{{"#8E44AD", "Purple"}, {"#E91E63", "Pink"}, {"#D35400", "Dark Orange"}, {"#F1C40F", "Yellow"}, {"#CDDC39", "Olive"}},
		{{"#AED6F1", "Pastel Blue"}, {"#FAD7A0", "Pastel Orange"}, {"#D7BDE2", "Pastel Purple"}, {"#ABEBC6", "Pastel Green"}, {"#F5B7B1", "Pastel Red"}},
		{{"#34495E", "Navy Blue"}, {"#7D3C98", "Dark Purple"}, {"#2E4053", "Dark Gray"}, {"#784212", "Brown"}, {"#7B241C", "Dark Red"}},
		{{"#00CED1", "Turquoise"}, {"#FF9FF3", "Light Pink"}, {"#F4D03F", "Golden Yellow"}, {"#BDC3C7", "Silver"}, {"#27AE60", "Emerald Green"}},
		{{"#3498DB", "Royal Blue"}, {"#16A085", "Deep Teal"}, {"#E67E22", "Pumpkin"}, {"#9B59B6", "Amethyst"}, {"#2ECC71", "Mint Green"}},
		{{"#95A5A6", "Gray"}, {"#D5DBDB", "Light Gray"}, {"#EAEDED", "Off White"}, {"#7F8C8D", "Slate Gray"}, {"#566573", "Charcoal"}},
		{{"#EDEFC8", "Pale Yellow"}, {"#EAE9E5", "Light Beige"}, {"#EFC8C8", "Light Pink"}, {"#BDD3CC", "Light Teal"}, {"#7C6767", "Taupe"}},
		{{"#58D68D", "Bright Green"}, {"#5DADE2", "Sky Blue"}, {"#F7DC6F", "Canary Yellow"}, {"#EC7063", "Coral"}, {"#BB8FCE", "Lavender"}},
	}
}

// EmojiThemes lists the selectable face sets, five faces each.
func EmojiThemes() [][]string {
	return [][]string{
		{"•◡•", "•ᴗ•", "•_•", "•︵•", "≥﹏≤"},
		{"◕ᴗ◕", "◕ᴗ◕", "◕_◕", "◕︵◕", "×_×"},
		{"◠◡◠", "◠ᴗ◠", "◠_◠", "◠︵◠", "×﹏×"},
		{"◠‿◠", "◠◠", "◠︵◠", "◠﹏◠", "◠益◠"},
		{"◠‿◠", "◠_◠", "◠_◠", "◠~◠", "×o×"},
		{"^ᴗ^", "•ᴗ•", "•-•", "•︵•", "•`•"},
		{"(ᵔᴥᵔ)", "(ᵔ◡ᵔ)", "(•_•)", "(´･･`)", "(•́︿•̀)"},
	}
}

// FallbackEmoji is used when a theme lacks a face for a slot.
const FallbackEmoji = "•_•"

// ValidColor reports whether hex parses as a #rrggbb colour.
func ValidColor(hex string) bool {
	_, err := colorful.Hex(hex)
	return err == nil
}

// Tint mixes alpha of hex over a white background. The calendar uses it for
// day cell backgrounds.
func Tint(hex string, alpha float64) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("mood: invalid colour %q: %w", hex, err)
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return white.BlendRgb(c, alpha).Clamped().Hex(), nil
}
