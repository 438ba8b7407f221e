package telnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestColorize(t *testing.T) {
	assert.Equal(t, "\033[31mdefeat\033[0m", Colorize(Red, "defeat"))
}

func TestColorf(t *testing.T) {
	assert.Equal(t, "\033[32mticks: 4\033[0m", Colorf(Green, "ticks: %d", 4))
}

func TestStripANSI(t *testing.T) {
	input := Colorize(Bold+Cyan, "Choose a hero:") + " " + Colorize(Yellow, "Thor")
	assert.Equal(t, "Choose a hero: Thor", StripANSI(input))
}

func TestStripANSI_UnterminatedEscapeKept(t *testing.T) {
	assert.Equal(t, "a\033[31", StripANSI("a\033[31"))
}

func TestPropertyStripANSI_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 ]{0,40}`).Draw(t, "text")
		color := rapid.SampledFrom([]string{Red, Green, Yellow, Cyan, Bold, BrightWhite}).Draw(t, "color")
		assert.Equal(t, text, StripANSI(Colorize(color, text)))
	})
}
