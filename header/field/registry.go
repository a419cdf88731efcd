package field

// ID identifies one of the header fields this package knows by name. The zero
// value is Unknown, which is also what Lookup returns for names that are not
// in the registry.
type ID int

// The known header fields. The order of these constants must match the order
// of the names table below.
const (
	Unknown ID = iota

	// request
	Accept
	AcceptCharset
	AcceptEncoding
	AcceptLanguage
	Authorization
	CacheControl
	Connection
	Cookie
	Expect
	From
	Host
	IfMatch
	IfModifiedSince
	IfNoneMatch
	IfUnmodifiedSince
	MaxForwards
	Origin
	Pragma
	ProxyAuthorization
	Range
	Referer
	TE
	UserAgent

	// response
	Date
	Server
	ContentLength
	ContentType
	ContentEncoding
	ContentLanguage
	ContentDisposition
	LastModified
	ETag
	AcceptRanges
	ContentLocation
	ContentRange
	Vary

	// caching
	Age
	Expires

	// security
	StrictTransportSecurity
	ContentSecurityPolicy
	XContentTypeOptions
	XFrameOptions
	XXSSProtection
	ReferrerPolicy
	PublicKeyPins
	ExpectCT
	XContentSecurityPolicy
	XDownloadOptions
	XPermittedCrossDomainPolicies

	// redirection, auth and cookies
	Location
	ProxyAuthenticate
	SetCookie
	SetCookie2
	MultiStatus
	Link
	Allow
	RetryAfter

	// CORS
	AccessControlAllowOrigin
	AccessControlAllowMethods
	AccessControlAllowHeaders
	AccessControlExposeHeaders
	AccessControlMaxAge

	// proxies
	XForwardedFor
	XForwardedProto
	XRealIP

	idCount // must be last
)

var names = [idCount]string{
	"Unknown",
	"Accept",
	"Accept-Charset",
	"Accept-Encoding",
	"Accept-Language",
	"Authorization",
	"Cache-Control",
	"Connection",
	"Cookie",
	"Expect",
	"From",
	"Host",
	"If-Match",
	"If-Modified-Since",
	"If-None-Match",
	"If-Unmodified-Since",
	"Max-Forwards",
	"Origin",
	"Pragma",
	"Proxy-Authorization",
	"Range",
	"Referer",
	"TE",
	"User-Agent",
	"Date",
	"Server",
	"Content-Length",
	"Content-Type",
	"Content-Encoding",
	"Content-Language",
	"Content-Disposition",
	"Last-Modified",
	"ETag",
	"Accept-Ranges",
	"Content-Location",
	"Content-Range",
	"Vary",
	"Age",
	"Expires",
	"Strict-Transport-Security",
	"Content-Security-Policy",
	"X-Content-Type-Options",
	"X-Frame-Options",
	"X-XSS-Protection",
	"Referrer-Policy",
	"Public-Key-Pins",
	"Expect-CT",
	"X-Content-Security-Policy",
	"X-Download-Options",
	"X-Permitted-Cross-Domain-Policies",
	"Location",
	"Proxy-Authenticate",
	"Set-Cookie",
	"Set-Cookie2",
	"Multi-Status",
	"Link",
	"Allow",
	"Retry-After",
	"Access-Control-Allow-Origin",
	"Access-Control-Allow-Methods",
	"Access-Control-Allow-Headers",
	"Access-Control-Expose-Headers",
	"Access-Control-Max-Age",
	"X-Forwarded-For",
	"X-Forwarded-Proto",
	"X-Real-IP",
}

// byName is the reverse of names. Unknown is left out so that looking up
// "Unknown" falls through to the zero value like any other miss.
var byName = func() map[string]ID {
	m := make(map[string]ID, len(names))
	for i := Unknown + 1; i < idCount; i++ {
		m[names[i]] = i
	}
	return m
}()

// Name returns the canonical wire name of the field. It returns "Unknown" for
// Unknown and for any value outside the registry.
func Name(id ID) string {
	if id < 0 || id >= idCount {
		return names[Unknown]
	}
	return names[id]
}

// String returns the canonical wire name of the field.
func (id ID) String() string {
	return Name(id)
}

// Known returns true if the ID names a registered field other than Unknown.
func (id ID) Known() bool {
	return id > Unknown && id < idCount
}

// IDs returns every registered field, excluding Unknown, in registry order.
func IDs() []ID {
	ids := make([]ID, 0, idCount-1)
	for i := Unknown + 1; i < idCount; i++ {
		ids = append(ids, i)
	}
	return ids
}

// Canonicalize applies the field name capitalization rule: the first byte and
// every byte that follows a hyphen are upper-cased if they are ASCII lowercase
// letters. Nothing else changes, so "content-type" becomes "Content-Type", but
// "CONTENT-TYPE" and "etag" are left as they are.
func Canonicalize(token string) string {
	b := []byte(token)
	for i := range b {
		if i > 0 && b[i-1] != '-' {
			continue
		}
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

// Lookup canonicalizes the given name and returns the matching field ID. It
// returns Unknown if the canonical name is not in the registry.
func Lookup(name string) ID {
	return byName[Canonicalize(name)]
}
