package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the SolarFlow ASCII banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Sunrise gradient (yellow to orange).
	s1 := termenv.String("   _____       _            ______ _               ").Foreground(p.Color("#fde047"))
	s2 := termenv.String("  / ____|     | |           |  ____| |              ").Foreground(p.Color("#facc15"))
	s3 := termenv.String(" | (___   ___ | | __ _ _ __| |__  | | _____      __").Foreground(p.Color("#eab308"))
	s4 := termenv.String("  \\___ \\ / _ \\| |/ _` | '__|  __| | |/ _ \\ \\ /\\ / /").Foreground(p.Color("#f59e0b"))
	s5 := termenv.String("  ____) | (_) | | (_| | |  | |    | | (_) \\ V  V / ").Foreground(p.Color("#f97316"))
	s6 := termenv.String(" |_____/ \\___/|_|\\__,_|_|  |_|    |_|\\___/ \\_/\\_/  ").Foreground(p.Color("#ea580c"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}

// Swatch returns the label tinted with its palette color, for the
// node-type listing in the CLI.
func Swatch(label, hexColor string) string {
	p := termenv.ColorProfile()
	return termenv.String("● " + label).Foreground(p.Color(hexColor)).String()
}
