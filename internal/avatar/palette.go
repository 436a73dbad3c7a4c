package avatar

import (
	"fmt"
	"math"
	"strings"
)

// Palette holds the three colors an avatar uses, as CSS hsl() strings.
type Palette struct {
	Stroke string `json:"stroke"`
	Accent string `json:"accent"`
	Bg     string `json:"bg"`
}

func hsl(h, s, l float64) string {
	return fmt.Sprintf("hsl(%d %d%% %d%%)", int(math.Round(h)), int(math.Round(s)), int(math.Round(l)))
}

// buildPalette derives the color trio from the middle MBTI letters and the
// trait vector. N types anchor violet, S types amber, everything else blue.
func buildPalette(mbti string, traits TraitVector, style StyleProfile) Palette {
	upper := strings.ToUpper(mbti)
	hueBase := 210.0
	if len(upper) > 1 {
		switch upper[1] {
		case 'N':
			hueBase = 260
		case 'S':
			hueBase = 36
		}
	}
	hueShift := -14.0
	if len(upper) > 2 && upper[2] == 'F' {
		hueShift = 24
	}
	strokeHue := math.Mod(hueBase+hueShift+traits.Tech*18, 360)
	accentHue := math.Mod(strokeHue+60+traits.Mystic*34, 360)

	stroke := hsl(strokeHue, 24+traits.Order*24, 18+(1-traits.Energy)*20)
	accent := hsl(accentHue, 58+traits.Energy*18, 58+traits.Cheek*12)
	bg := hsl(
		math.Mod(strokeHue+180+traits.Nature*20, 360),
		26-traits.Simplicity*14+style.DecorationDensity*7,
		94-traits.Energy*8,
	)
	return Palette{Stroke: stroke, Accent: accent, Bg: bg}
}
