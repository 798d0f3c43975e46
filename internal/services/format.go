package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCount renders a counter with thousands separators
func FormatCount(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}
