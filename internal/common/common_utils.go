package common

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"
)

func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// Slugify lowercases s and collapses runs of non-alphanumerics into
// single hyphens: "New York - Paris" -> "new-york-paris".
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// TicketSlug derives the unique ticket slug from flight, seat and
// passenger identity.
func TicketSlug(flightSlug string, seatNumber int, email string) string {
	return Slugify(fmt.Sprintf("%s-%d-%s", flightSlug, seatNumber, email))
}

const passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!#$%&*+-=?@_"

// RandomPassword generates a password for auto-created accounts.
func RandomPassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordChars)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		out[i] = passwordChars[n.Int64()]
	}
	return string(out), nil
}

// ParseFlightDate parses the YYYY-MM-DD date used in URLs and forms.
func ParseFlightDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// ParseFlightTime parses the HH:MM clock string stored on flights.
func ParseFlightTime(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}
