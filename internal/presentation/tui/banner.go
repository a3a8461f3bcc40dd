package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Bayeux with the version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient-like color scheme (Indigo/Violet)
	lines := []string{
		"  ____                              ",
		" | __ )  __ _ _   _  ___ _   ___  __",
		" |  _ \\ / _` | | | |/ _ \\ | | \\ \\/ /",
		" | |_) | (_| | |_| |  __/ |_| |>  < ",
		" |____/ \\__,_|\\__, |\\___|\\__,_/_/\\_\\",
		"              |___/                 ",
	}
	colors := []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

	fmt.Println()
	for i, line := range lines {
		fmt.Println(termenv.String(line).Foreground(p.Color(colors[i])))
	}
	fmt.Printf("  exact inference %s\n\n", strings.TrimSpace(version))
}
