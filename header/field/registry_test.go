package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-httpheader/header/field"
)

func TestLookup_RoundTrip(t *testing.T) {
	t.Parallel()

	ids := field.IDs()
	assert.Len(t, ids, 65)

	for _, id := range ids {
		assert.Equal(t, id, field.Lookup(field.Name(id)), "lookup %s", id)
		assert.True(t, id.Known())
	}
}

func TestCanonicalize_KnownNamesAreFixedPoints(t *testing.T) {
	t.Parallel()

	for _, id := range field.IDs() {
		n := field.Name(id)
		assert.Equal(t, n, field.Canonicalize(n))
	}
}

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"content-type", "Content-Type"},
		{"Content-type", "Content-Type"},
		{"CONTENT-TYPE", "CONTENT-TYPE"},
		{"x-xss-protection", "X-Xss-Protection"},
		{"etag", "Etag"},
		{"-a-b", "-A-B"},
		{"a--b", "A--B"},
		{"1-x", "1-X"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, field.Canonicalize(tt.in), "canonicalize %q", tt.in)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, field.ContentType, field.Lookup("content-type"))
	assert.Equal(t, field.AccessControlMaxAge, field.Lookup("access-control-max-age"))
	assert.Equal(t, field.ETag, field.Lookup("ETag"))
	assert.Equal(t, field.TE, field.Lookup("TE"))

	// only the first letter and letters after hyphens are folded
	assert.Equal(t, field.Unknown, field.Lookup("CONTENT-TYPE"))
	assert.Equal(t, field.Unknown, field.Lookup("etag"))
	assert.Equal(t, field.Unknown, field.Lookup("x-xss-protection"))
	assert.Equal(t, field.Unknown, field.Lookup("te"))

	assert.Equal(t, field.Unknown, field.Lookup("Unknown"))
	assert.Equal(t, field.Unknown, field.Lookup(""))
	assert.Equal(t, field.Unknown, field.Lookup("X-Not-A-Real-Header"))
}

func TestName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unknown", field.Name(field.Unknown))
	assert.Equal(t, "Unknown", field.Name(field.ID(-1)))
	assert.Equal(t, "Unknown", field.Name(field.ID(1000)))
	assert.Equal(t, "Accept", field.Name(field.Accept))
	assert.Equal(t, "X-Real-IP", field.XRealIP.String())
	assert.False(t, field.Unknown.Known())
	assert.False(t, field.ID(1000).Known())
}
