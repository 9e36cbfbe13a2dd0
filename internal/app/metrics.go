package app

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type bufferMetrics struct {
	words int
	chars int
	lines int
}

func computeBufferMetrics(content string) bufferMetrics {
	if content == "" {
		return bufferMetrics{}
	}
	return bufferMetrics{
		words: len(strings.Fields(content)),
		chars: utf8.RuneCountInString(content),
		lines: countLines(content),
	}
}

func (m *Model) bufferMetricsSummary() string {
	content := m.editor.Value()
	if strings.TrimSpace(content) == "" {
		return ""
	}
	metrics := computeBufferMetrics(content)
	return fmt.Sprintf("W:%d C:%d L:%d", metrics.words, metrics.chars, metrics.lines)
}
