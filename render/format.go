package render

import (
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// grouped formats n with thousands separators, 15847 -> "15,847".
func grouped(n int) string {
	return printer.Sprintf("%d", n)
}

// hue returns the i-th of n colours spread evenly around the wheel.
func hue(i, n int) colorful.Color {
	if n <= 0 {
		n = 1
	}
	return colorful.Hcl(float64(i%n)*360/float64(n), 0.8, 0.65).Clamped()
}
