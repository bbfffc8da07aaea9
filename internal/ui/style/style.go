// Package style holds the colours and glyphs shared by every pacdef renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#1793D1")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Bullet  = "•"
)

// Indentation used when nesting packages below their backend section.
const (
	SectionIndent = "  "
	PackageIndent = "    "
)
