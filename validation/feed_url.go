// Package validation checks user-supplied feed URLs before the backend ever
// fetches them. The refresh pipeline issues outbound requests on behalf of
// users, so URLs pointing into private address space are rejected outright.
package validation

import (
	"errors"
	"net"
	"net/url"
	"strings"
)

var (
	ErrEmptyURL        = errors.New("url cannot be empty")
	ErrInvalidURL      = errors.New("invalid url format")
	ErrBadScheme       = errors.New("url must use http or https")
	ErrPrivateAddress  = errors.New("url resolves into a private network")
	ErrInternalDomain  = errors.New("internal domain names are not allowed")
	ErrMetadataService = errors.New("cloud metadata endpoints are not allowed")
)

// ValidateFeedURL reports whether a feed URL is acceptable for registration.
// Beyond format checks it refuses loopback, link-local, private-range and
// cloud-metadata targets so a hostile URL cannot turn the fetcher into an
// internal network probe.
func ValidateFeedURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyURL
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ErrInvalidURL
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrBadScheme
	}

	hostname := strings.ToLower(parsed.Hostname())

	if hostname == "localhost" || strings.HasPrefix(hostname, "127.") || hostname == "0.0.0.0" {
		return ErrPrivateAddress
	}

	if hostname == "169.254.169.254" || hostname == "metadata.google.internal" {
		return ErrMetadataService
	}

	for _, suffix := range []string{".local", ".internal", ".corp", ".lan"} {
		if strings.HasSuffix(hostname, suffix) {
			return ErrInternalDomain
		}
	}

	if ip := net.ParseIP(hostname); ip != nil && isPrivateIP(ip) {
		return ErrPrivateAddress
	}

	return nil
}

func isPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsPrivate() {
		return true
	}
	return ip.IsUnspecified()
}
