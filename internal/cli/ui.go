package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - numbers
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

var styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)

const iconSuccess = "✓"

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printStats prints run statistics on a single line.
func printStats(pages, components, unique int) {
	fmt.Println(formatStats(pages, components, unique))
}

func formatStats(pages, components, unique int) string {
	parts := []string{
		plural(pages, "page", "pages"),
		plural(components, "component", "components"),
		StyleNumber.Render(fmt.Sprint(unique)) + StyleDim.Render(" unique"),
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += part
	}
	return line
}

func plural(n int, one, many string) string {
	word := many
	if n == 1 {
		word = one
	}
	return StyleNumber.Render(fmt.Sprint(n)) + StyleDim.Render(" "+word)
}
