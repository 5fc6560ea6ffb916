package domain

// Icon identifiers arrive as plain strings in recommendation records.
// They are parsed at the data boundary into this closed set; unknown
// values fall back to IconDefault instead of leaking arbitrary data into
// the render path.
type Icon string

const (
	IconMoon       Icon = "Moon"
	IconWind       Icon = "Wind"
	IconFootprints Icon = "Footprints"
	IconBrain      Icon = "Brain"
	IconHeart      Icon = "Heart"
	IconZap        Icon = "Zap"
	IconSparkles   Icon = "Sparkles"
	IconDefault    Icon = "Dot"
)

var iconGlyphs = map[Icon]string{
	IconMoon:       "☾",
	IconWind:       "≋",
	IconFootprints: "👣",
	IconBrain:      "◉",
	IconHeart:      "♥",
	IconZap:        "⚡",
	IconSparkles:   "✦",
	IconDefault:    "•",
}

// ParseIcon maps a wire icon name onto the closed set, falling back to
// the default for anything unknown.
func ParseIcon(name string) Icon {
	icon := Icon(name)
	if _, ok := iconGlyphs[icon]; ok {
		return icon
	}
	return IconDefault
}

// Glyph returns the terminal rendering of the icon.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return iconGlyphs[IconDefault]
}
