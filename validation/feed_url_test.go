package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFeedURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want error
	}{
		{"plain http", "http://example.com/rss", nil},
		{"https with path and query", "https://example.com/feeds/all.atom?format=xml", nil},
		{"public ip", "http://93.184.216.34/rss", nil},
		{"empty", "", ErrEmptyURL},
		{"whitespace only", "   ", ErrEmptyURL},
		{"no scheme", "example.com/rss", ErrInvalidURL},
		{"no host", "https:///rss", ErrInvalidURL},
		{"ftp scheme", "ftp://example.com/rss", ErrBadScheme},
		{"file scheme", "file:///etc/passwd", ErrBadScheme},
		{"localhost", "http://localhost:8080/rss", ErrPrivateAddress},
		{"loopback ip", "http://127.0.0.1/rss", ErrPrivateAddress},
		{"loopback range", "http://127.1.2.3/rss", ErrPrivateAddress},
		{"unspecified", "http://0.0.0.0/rss", ErrPrivateAddress},
		{"ten range", "http://10.1.2.3/rss", ErrPrivateAddress},
		{"one seventy two range", "http://172.16.0.1/rss", ErrPrivateAddress},
		{"one ninety two range", "http://192.168.1.1/rss", ErrPrivateAddress},
		{"link local", "http://169.254.1.1/rss", ErrPrivateAddress},
		{"ipv6 unique local", "http://[fd00::1]/rss", ErrPrivateAddress},
		{"aws metadata", "http://169.254.169.254/latest/meta-data/", ErrMetadataService},
		{"gcp metadata", "http://metadata.google.internal/computeMetadata/", ErrMetadataService},
		{"dot local", "http://nas.local/rss", ErrInternalDomain},
		{"dot internal", "http://ci.internal/rss", ErrInternalDomain},
		{"dot corp", "http://wiki.corp/rss", ErrInternalDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFeedURL(tt.url)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}
