package validators

import (
	"net"
	"strings"
)

// NormalizeEmail lowercases and trims an address. Registration and
// login both canonicalize before the uniqueness check so "Amal@X" and
// "amal@x" are the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid checks that the domain resolves: MX first, then a
// plain host lookup for domains that receive mail on their A record.
func IsEmailDomainValid(email string) bool {
	email = NormalizeEmail(email)

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
