// internal/utils/format.go
package utils

import (
	"math"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatNaira renders an amount as whole naira with thousands separators, e.g. ₦800,000.
func FormatNaira(amount float64) string {
	return "₦" + currencyPrinter.Sprintf("%d", int64(math.Round(amount)))
}

// InquiryMessage is the text pre-filled when a visitor contacts an agent about a listing.
func InquiryMessage(title string, price float64, location string) string {
	return "Hello, I’m interested in the " + title + " listed for " + FormatNaira(price) +
		" in " + location + ". Is it still available?"
}

// WhatsAppLink builds a click-to-chat URL. Only the ASCII digits of number are kept.
func WhatsAppLink(number, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	return "https://wa.me/" + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
