package util

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// TruncateRunes cuts s to at most n characters without splitting a rune.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}

	return s
}

var sentenceBreak = regexp.MustCompile(`([.!?])\s+`)

// FirstSentences returns up to n leading sentences of text joined by a space.
func FirstSentences(text string, n int) string {
	parts := strings.Split(sentenceBreak.ReplaceAllString(text, "$1\x00"), "\x00")

	sentences := make([]string, 0, n)
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
		if len(sentences) == n {
			break
		}
	}
	if len(sentences) == 0 {
		return text
	}

	return strings.Join(sentences, " ")
}
