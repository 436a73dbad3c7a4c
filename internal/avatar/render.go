package avatar

import (
	"fmt"
	"math"
	"strings"

	"mindprint/internal/seed"
)

const viewBox = "0 0 200 200"

func num(v float64) string {
	return fmt.Sprintf("%.2f", math.Round(v*100)/100)
}

func clampCanvas(v float64) float64 {
	return clamp(v, 8, 192)
}

func wobblePoint(x, y, traitWobble float64, style StyleProfile, rng seed.Stream) (float64, float64) {
	factor := traitWobble * style.WobbleFactor * 3.2
	return clampCanvas(x + seed.RandRange(rng, -factor, factor)),
		clampCanvas(y + seed.RandRange(rng, -factor, factor))
}

func qCurve(points [3]point, traitWobble float64, style StyleProfile, rng seed.Stream) string {
	ax, ay := wobblePoint(points[0].X, points[0].Y, traitWobble, style, rng)
	bx, by := wobblePoint(points[1].X, points[1].Y, traitWobble, style, rng)
	cx, cy := wobblePoint(points[2].X, points[2].Y, traitWobble, style, rng)
	return fmt.Sprintf("M %s %s Q %s %s %s %s", num(ax), num(ay), num(bx), num(by), num(cx), num(cy))
}

func drawGlyph(glyph, accent string) string {
	switch glyph {
	case "stars":
		return `
      <path d="M22 32 l4 0 l2 -4 l2 4 l4 0 l-3 3 l1 4 l-4 -2 l-4 2 l1 -4 z" fill="none" stroke="` + accent + `"/>
      <path d="M168 38 l3 0 l1.5 -3 l1.5 3 l3 0 l-2.2 2.2 l0.8 3 l-3.1 -1.6 l-3.1 1.6 l0.8 -3 z" fill="none" stroke="` + accent + `"/>
    `
	case "ripples":
		return `
      <path d="M18 30 Q 30 22 42 30" fill="none" stroke="` + accent + `" opacity="0.55"/>
      <path d="M158 40 Q 170 32 182 40" fill="none" stroke="` + accent + `" opacity="0.55"/>
    `
	case "grid":
		return `
      <path d="M18 24 h26 M18 30 h26 M18 36 h26 M18 24 v12 M26 24 v12 M34 24 v12 M42 24 v12" fill="none" stroke="` + accent + `" opacity="0.46"/>
    `
	case "triangles":
		return `
      <path d="M24 34 l8 -10 l8 10 z M170 40 l7 -9 l7 9 z" fill="none" stroke="` + accent + `" opacity="0.6"/>
    `
	case "sparkles":
		return `
      <path d="M28 28 v10 M23 33 h10 M174 28 v10 M169 33 h10" fill="none" stroke="` + accent + `" opacity="0.7"/>
    `
	}
	return `
    <path d="M18 30 h24 M166 36 h16 M176 36 l-4 -4" fill="none" stroke="` + accent + `" opacity="0.6"/>
  `
}

func drawAccessory(id, accent string) string {
	switch id {
	case "glasses":
		return `<g><circle cx="92" cy="85" r="6" fill="none"/><circle cx="108" cy="85" r="6" fill="none"/><path d="M98 85 h4" /></g>`
	case "scarf":
		return `<g><path d="M82 118 q18 8 36 0" /><path d="M100 118 v18" /></g>`
	case "headphones":
		return `<g><path d="M84 69 q16 -12 32 0" /><rect x="79" y="74" width="6" height="10" rx="2"/><rect x="115" y="74" width="6" height="10" rx="2"/></g>`
	case "book":
		return `<g><rect x="88" y="138" width="24" height="14" rx="2" fill="none"/><path d="M100 138 v14"/></g>`
	case "coffee":
		return `<g><rect x="120" y="132" width="12" height="12" rx="2" fill="none"/><path d="M132 136 q4 0 4 4 q0 4 -4 4"/><path d="M123 129 q1 -3 0 -5" /></g>`
	case "star_hairpin":
		return `<path d="M120 70 l3 0 l1.5 -3 l1.5 3 l3 0 l-2.2 2.2 l0.8 3 l-3.1 -1.6 l-3.1 1.6 l0.8 -3 z" fill="none" stroke="` + accent + `" />`
	case "leaf_pin":
		return `<path d="M78 72 q7 -8 14 0 q-7 8 -14 0 z" fill="none" stroke="` + accent + `" />`
	case "moon_badge":
		return `<path d="M130 120 a6 6 0 1 1 -4 -10 a5 5 0 1 0 4 10 z" fill="none" stroke="` + accent + `" />`
	case "ruler":
		return `<g><path d="M68 134 h20"/><path d="M72 131 v6 M76 132 v4 M80 131 v6 M84 132 v4"/></g>`
	case "mini_keyboard":
		return `<g><rect x="80" y="144" width="40" height="10" rx="2" fill="none"/><path d="M84 148 h2 M88 148 h2 M92 148 h2 M100 148 h2 M108 148 h2 M116 148 h2"/></g>`
	case "cat_plush":
		return `<g><circle cx="136" cy="145" r="7" fill="none"/><path d="M131 139 l2 -3 l2 3 M137 139 l2 -3 l2 3" /><circle cx="133.5" cy="145" r="1"/><circle cx="138.5" cy="145" r="1"/></g>`
	case "speech_bubble":
		return `<g><rect x="126" y="70" width="22" height="13" rx="5" fill="none"/><path d="M132 83 l-3 5 l7 -3"/></g>`
	case "tiny_satchel":
		return `<g><rect x="70" y="136" width="14" height="12" rx="2" fill="none"/><path d="M70 136 q7 -6 14 0"/></g>`
	case "spark_orb":
		return `<g><circle cx="64" cy="84" r="4" fill="none" stroke="` + accent + `"/><path d="M64 78 v-3 M64 90 v3 M58 84 h-3 M70 84 h3" stroke="` + accent + `"/></g>`
	}
	return ""
}

func drawPoseLimbs(pose PoseTemplate, strokeWeight, traitWobble float64, style StyleProfile, rng seed.Stream) string {
	return fmt.Sprintf(`
    <path d="%s" stroke-width="%s" fill="none"/>
    <path d="%s" stroke-width="%s" fill="none"/>
    <path d="%s" stroke-width="%s" fill="none"/>
    <path d="%s" stroke-width="%s" fill="none"/>
  `,
		qCurve(pose.ArmL, traitWobble, style, rng), num(strokeWeight),
		qCurve(pose.ArmR, traitWobble, style, rng), num(strokeWeight),
		qCurve(pose.LegL, traitWobble, style, rng), num(strokeWeight),
		qCurve(pose.LegR, traitWobble, style, rng), num(strokeWeight))
}

// RenderSVG draws the 200x200 line-art figure from a config. Rendering the
// same config twice yields byte-identical markup because the only randomness
// is the config's own seed.
func RenderSVG(config Config) string {
	rng := seed.Mulberry32(config.Seed)
	style := styleProfileByID(config.StyleProfileID)
	pose := poseByID(config.PoseID)

	traits := config.TraitVector
	headRatio := 0.45 + 0.2*traits.Chibi
	totalHeight := 138.0
	headHeight := totalHeight * headRatio

	centerX := 100.0
	topY := 24 + pose.BodyYOffset
	headW := clamp(58+traits.Roundness*22+style.RoundBoost*12, 50, 78)
	headH := clamp(headHeight, 64, 92)
	bodyW := clamp(42+traits.Roundness*18-traits.Simplicity*6, 36, 62)
	bodyH := clamp(totalHeight-headHeight+10, 56, 86)
	faceSafeLeft := centerX - headW*0.28
	faceSafeRight := centerX + headW*0.28
	faceY := topY + headH*0.58

	strokeWeight := clamp(1.8+traits.StrokeWeight*2.2, 1.3, 4.2) * style.StrokeScale
	eyeRadius := clamp(2.2+traits.EyeSize*3.6+style.EyeBoost*2.2, 2.2, 7)
	mouthCurve := clamp((traits.Smile-0.5)*18, -6, 8)

	eyeLX := clamp(faceSafeLeft+headW*0.08, faceSafeLeft, faceSafeRight)
	eyeRX := clamp(faceSafeRight-headW*0.08, faceSafeLeft, faceSafeRight)
	eyeY := clamp(faceY-2, topY+headH*0.48, topY+headH*0.72)
	mouthY := eyeY + 14

	bodyX := centerX - bodyW/2
	bodyY := topY + headH - 10
	bodyR := clamp(10+traits.Roundness*14+style.RoundBoost*8, 8, 24)

	headPath := fmt.Sprintf(`
    <rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" fill="none" stroke-width="%s"/>
  `, num(centerX-headW/2), num(topY), num(headW), num(headH), num(bodyR+6), num(bodyR+6), num(strokeWeight))
	bodyPath := fmt.Sprintf(`
    <rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" fill="none" stroke-width="%s"/>
  `, num(bodyX), num(bodyY), num(bodyW), num(bodyH), num(bodyR), num(bodyR), num(strokeWeight))

	cheekOpacity := clamp(0.15+traits.Cheek*0.45, 0.12, 0.62)
	cheeks := fmt.Sprintf(`
    <circle cx="%s" cy="%s" r="%s" fill="%s" opacity="%s" stroke="none"/>
    <circle cx="%s" cy="%s" r="%s" fill="%s" opacity="%s" stroke="none"/>
  `,
		num(eyeLX-7), num(eyeY+9), num(2+traits.Cheek*2.6), config.Palette.Accent, num(cheekOpacity),
		num(eyeRX+7), num(eyeY+9), num(2+traits.Cheek*2.6), config.Palette.Accent, num(cheekOpacity))

	eyes := fmt.Sprintf(`
    <circle cx="%s" cy="%s" r="%s" fill="%s" stroke="none"/>
    <circle cx="%s" cy="%s" r="%s" fill="%s" stroke="none"/>
  `,
		num(eyeLX), num(eyeY), num(eyeRadius), config.Palette.Stroke,
		num(eyeRX), num(eyeY), num(eyeRadius), config.Palette.Stroke)

	mouth := fmt.Sprintf(`
    <path d="M %s %s Q %s %s %s %s" stroke-width="%s" fill="none"/>
  `,
		num(centerX-10), num(mouthY), num(centerX), num(mouthY+mouthCurve), num(centerX+10), num(mouthY),
		num(strokeWeight*0.78))

	var accessoryMarkup strings.Builder
	for _, id := range config.Accessories {
		accessoryMarkup.WriteString(drawAccessory(id, config.Palette.Accent))
	}

	glyphMarkup := drawGlyph(config.BackgroundGlyph, config.Palette.Accent)
	limbsMarkup := drawPoseLimbs(pose, clamp(strokeWeight*0.92, 1.2, 3.8), traits.Wobble, style, rng)

	return strings.TrimSpace(fmt.Sprintf(`
<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" fill="none">
  <rect x="0" y="0" width="200" height="200" fill="%s" />
  <g stroke="%s" stroke-linecap="round" stroke-linejoin="round">
    %s
    %s
    %s
    %s
    %s
    %s
    %s
    %s
  </g>
</svg>`,
		viewBox, config.Palette.Bg, config.Palette.Stroke,
		glyphMarkup, limbsMarkup, bodyPath, headPath, eyes, cheeks, mouth, accessoryMarkup.String()))
}
