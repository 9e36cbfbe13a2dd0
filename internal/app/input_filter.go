package app

import (
	"fmt"
	"regexp"

	tea "github.com/charmbracelet/bubbletea"
)

// oscColorReply matches terminal replies to background/foreground colour
// queries (OSC 10/11) that some terminals deliver as typed runes.
var oscColorReply = regexp.MustCompile(`\]?1?[01];rgb:[0-9a-fA-F]{1,4}/[0-9a-fA-F]{1,4}/[0-9a-fA-F]{1,4}`)

// shouldIgnoreInput drops rune input that is a terminal reply rather than
// something the user typed.
func (m *Model) shouldIgnoreInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	sequence := msg.String()
	if oscColorReply.MatchString(sequence) || containsControlRunes(sequence) {
		appLog.Debug("ignored input", "sequence", fmt.Sprintf("%q", sequence))
		return true
	}
	return false
}

func containsControlRunes(sequence string) bool {
	for _, r := range sequence {
		switch {
		case r == '\n' || r == '\t':
			continue
		case r < 32 || r == 127:
			return true
		}
	}
	return false
}
