package colorhash

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// PaletteSize is the number of distinct colors namespaces hash into.
const PaletteSize = 5

// paletteColors are the fixed ANSI slots namespaces map to. The order is part
// of the contract: changing it changes every namespace's color.
var paletteColors = [PaletteSize]lipgloss.Color{
	lipgloss.Color("6"), // cyan
	lipgloss.Color("2"), // green
	lipgloss.Color("3"), // yellow
	lipgloss.Color("5"), // magenta
	lipgloss.Color("4"), // blue
}

// Hash computes the djb2-xor hash of s: seed 5381, then for every byte
// h = h*33 XOR b, wrapping in unsigned 32-bit space. Hashing bytes keeps the
// result stable across runs and reproducible in any language that feeds the
// UTF-8 encoding through the same recurrence.
func Hash(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 ^ uint32(s[i])
	}
	return h
}

// Index maps a namespace to its palette slot. The hash stays unsigned all
// the way: an int32 round-trip maps 0x80000000 to a negative slot.
func Index(namespace string) int {
	return int(Hash(namespace) % PaletteSize)
}

// Palette renders namespaces, file tags and elapsed-time tokens using a fixed
// set of renderer-bound styles. The zero value is not usable; construct with
// New or NewWithProfile.
type Palette struct {
	styles  [PaletteSize]lipgloss.Style
	bold    [PaletteSize]lipgloss.Style
	fileTag lipgloss.Style
}

// New returns a palette bound to the default renderer, which detects the
// terminal's color profile and honors NO_COLOR.
func New() *Palette {
	return fromRenderer(lipgloss.DefaultRenderer())
}

// NewWithProfile returns a palette forced to a specific color profile,
// regardless of terminal detection. Tests use this to assert on escape
// sequences (or their absence, with termenv.Ascii).
func NewWithProfile(profile termenv.Profile) *Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return fromRenderer(r)
}

func fromRenderer(r *lipgloss.Renderer) *Palette {
	p := &Palette{
		fileTag: r.NewStyle().Underline(true).Foreground(lipgloss.Color("240")),
	}
	for i, c := range paletteColors {
		p.styles[i] = r.NewStyle().Foreground(c)
		p.bold[i] = r.NewStyle().Foreground(c).Bold(true)
	}
	return p
}

// Namespace renders the namespace text in its hashed color.
func (p *Palette) Namespace(namespace string, bold bool) string {
	i := Index(namespace)
	if bold {
		return p.bold[i].Render(namespace)
	}
	return p.styles[i].Render(namespace)
}

// Colorize renders arbitrary text in the color slot of the given namespace.
// Used for the elapsed-time token so it visually belongs to its namespace.
func (p *Palette) Colorize(namespace, text string) string {
	return p.styles[Index(namespace)].Render(text)
}

// FileTag renders a file:line tag underlined in a neutral color.
func (p *Palette) FileTag(text string) string {
	return p.fileTag.Render(text)
}
