package ui

// Token icons
const (
	IconOpaque      = "●"
	IconTranslucent = "◐"
)

// Result icons for checks and contrast verdicts
const (
	IconPass = "✓"
	IconFail = "✗"
	IconWarn = "!"
)

// UI icons for various UI elements
const (
	IconFilter    = "⌕"
	IconSelected  = "▸"
	IconSeparator = "·"
)

// TokenIcon returns the icon for a color's opacity.
func TokenIcon(opaque bool) string {
	if opaque {
		return IconOpaque
	}
	return IconTranslucent
}

// ResultIcon returns the pass or fail icon.
func ResultIcon(ok bool) string {
	if ok {
		return IconPass
	}
	return IconFail
}
