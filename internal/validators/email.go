package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the domain of email resolves to an MX
// record or an address.
func IsEmailDomainValid(email string) bool {
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

// EmailDomainCheck is the check used at registration. Disabled, it accepts
// everything.
func EmailDomainCheck(enabled bool) func(string) bool {
	if !enabled {
		return func(string) bool { return true }
	}
	return IsEmailDomainValid
}
