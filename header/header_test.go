package header_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-httpheader/header"
	"github.com/zostay/go-httpheader/header/field"
	"github.com/zostay/go-httpheader/status"
)

func TestHeader_ZeroValue(t *testing.T) {
	t.Parallel()

	// these must safely initialize internal state which is set to zero values
	// first constructed, so let's make sure it all works and nothing panics
	testFuncs := []func(*header.Header){
		func(h *header.Header) { assert.Equal(t, header.CRLF, h.Break()) },
		func(h *header.Header) {
			h.SetBreak(header.LF)
			assert.Equal(t, header.LF, h.Break())
		},
		func(h *header.Header) { assert.Equal(t, "1.1", h.Version()) },
		func(h *header.Header) { assert.Equal(t, status.OK, h.Status()) },
		func(h *header.Header) { assert.Equal(t, "HTTP/1.1 200 OK", h.StatusLine()) },
		func(h *header.Header) { assert.Nil(t, h.GetField(0)) },
		func(h *header.Header) { assert.Equal(t, 0, h.Len()) },
		func(h *header.Header) { assert.Nil(t, h.Get(field.Host)) },
		func(h *header.Header) { assert.Empty(t, h.GetAll(field.Host)) },
		func(h *header.Header) { assert.Empty(t, h.ListFields()) },
		func(h *header.Header) {
			buf := &bytes.Buffer{}
			n, err := h.WriteTo(buf)
			assert.Zero(t, n)
			assert.NoError(t, err)
			assert.Empty(t, buf.String())
		},
		func(h *header.Header) { h.AppendText(field.Host, "example.com") },
		func(h *header.Header) { h.ClearFields() },
		func(h *header.Header) {
			err := h.DeleteField(0)
			assert.ErrorIs(t, err, header.ErrIndexOutOfRange)
		},
		func(h *header.Header) {
			_, err := h.GetTime(field.Date)
			assert.ErrorIs(t, err, header.ErrNoSuchField)
		},
	}
	for _, testFunc := range testFuncs {
		h := &header.Header{}
		assert.NotPanics(t, func() { testFunc(h) })
	}
}

func TestHeader_BreakLeavesHeaderUnchanged(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	assert.Equal(t, header.CRLF, h.Break())
	assert.Equal(t, header.Header{}, *h)
}

func TestNew(t *testing.T) {
	t.Parallel()

	h := header.New()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, "1.1", h.Version())
	assert.Equal(t, status.OK, h.Status())
	assert.Equal(t, "", h.String())
}

func TestNewWith(t *testing.T) {
	t.Parallel()

	h := header.NewWithNumber(field.ContentLength, 42)
	require.Equal(t, 1, h.Len())
	assert.Equal(t, "Content-Length: 42\r\n", h.String())

	h = header.NewWithBoolean(field.StrictTransportSecurity, true)
	require.Equal(t, 1, h.Len())
	assert.Equal(t, "Strict-Transport-Security: true\r\n", h.String())

	h = header.NewWithText(field.Server, "nginx")
	require.Equal(t, 1, h.Len())
	assert.Equal(t, "Server: nginx\r\n", h.String())
}

func TestHeader_AppendPrepends(t *testing.T) {
	t.Parallel()

	h := header.New()
	h.AppendText(field.Host, "example.com")
	h.AppendNumber(field.ContentLength, 10)
	h.AppendBoolean(field.Expect, false)

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, field.Expect, h.GetField(0).ID())
	assert.Equal(t, field.ContentLength, h.GetField(1).ID())
	assert.Equal(t, field.Host, h.GetField(2).ID())
	assert.Nil(t, h.GetField(3))
	assert.Nil(t, h.GetField(-1))

	assert.Equal(t,
		"Expect: false\r\n"+
			"Content-Length: 10\r\n"+
			"Host: example.com\r\n",
		h.String())
}

func TestHeader_AppendNamed(t *testing.T) {
	t.Parallel()

	h := header.New()
	err := h.AppendNamed("content-type", "application/json")
	require.NoError(t, err)
	assert.Equal(t, "Content-Type: application/json\r\n", h.String())

	err = h.AppendNamed("X-Bogus", "nope")
	assert.ErrorIs(t, err, field.ErrInvalidField)
	assert.Equal(t, 1, h.Len())
}

func TestHeader_GetAll(t *testing.T) {
	t.Parallel()

	h := header.New()
	h.AppendText(field.SetCookie, "a=1")
	h.AppendText(field.Vary, "Accept")
	h.AppendText(field.SetCookie, "b=2")

	cs := h.GetAll(field.SetCookie)
	require.Len(t, cs, 2)
	assert.Equal(t, "b=2", cs[0].Value())
	assert.Equal(t, "a=1", cs[1].Value())

	assert.Equal(t, "b=2", h.Get(field.SetCookie).Value())
}

func TestHeader_DeleteField(t *testing.T) {
	t.Parallel()

	h := header.New()
	h.AppendText(field.Host, "a")
	h.AppendText(field.Server, "b")
	h.AppendText(field.Link, "c")

	err := h.DeleteField(1)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, field.Host, h.GetField(1).ID())

	err = h.DeleteField(2)
	assert.ErrorIs(t, err, header.ErrIndexOutOfRange)
	err = h.DeleteField(-1)
	assert.ErrorIs(t, err, header.ErrIndexOutOfRange)

	h.ClearFields()
	assert.Equal(t, 0, h.Len())
}

func TestHeader_ListFieldsIsACopy(t *testing.T) {
	t.Parallel()

	h := header.NewWithText(field.Host, "example.com")
	fs := h.ListFields()
	require.Len(t, fs, 1)
	fs[0] = field.NewText(field.Server, "other")

	assert.Equal(t, field.Host, h.GetField(0).ID())
}

func TestHeader_Clone(t *testing.T) {
	t.Parallel()

	h := header.NewWithText(field.Host, "example.com")
	h.SetStatus(status.NotFound)
	h.SetVersion("1.0")

	c := h.Clone()
	c.AppendNumber(field.Age, 1)
	c.SetStatus(status.OK)

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, status.NotFound, h.Status())
	assert.Equal(t, "1.0", c.Version())
	assert.NotSame(t, h.GetField(0), c.GetField(1))
	assert.Equal(t, h.GetField(0), c.GetField(1))
}

func TestHeader_GetTime(t *testing.T) {
	t.Parallel()

	want := time.Date(2015, time.October, 21, 7, 28, 0, 0, time.UTC)

	h := header.NewWithNumber(field.Date, want.Unix())
	got, err := h.GetTime(field.Date)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	h = header.NewWithText(field.LastModified, "Wed, 21 Oct 2015 07:28:00 GMT")
	got, err = h.GetTime(field.LastModified)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	h = header.NewWithBoolean(field.IfModifiedSince, true)
	_, err = h.GetTime(field.IfModifiedSince)
	assert.ErrorIs(t, err, header.ErrMalformedDate)

	h = header.NewWithText(field.Expires, "whenever")
	_, err = h.GetTime(field.Expires)
	assert.ErrorIs(t, err, header.ErrMalformedDate)
}

func TestHeader_WriteTo(t *testing.T) {
	t.Parallel()

	h := header.New()
	h.AppendText(field.ContentType, "text/html")
	h.AppendNumber(field.Date, 1445412480)

	buf := &bytes.Buffer{}
	n, err := h.WriteTo(buf)
	require.NoError(t, err)

	const want = "Date: Wed, 21 Oct 2015 07:28:00 GMT\r\n" +
		"Content-Type: text/html\r\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
	assert.Equal(t, []byte(want), h.Bytes())

	h.SetBreak(header.LF)
	assert.Equal(t,
		"Date: Wed, 21 Oct 2015 07:28:00 GMT\n"+
			"Content-Type: text/html\n",
		h.String())
}

func TestHeader_WriteTo_DateBeyondYear9999(t *testing.T) {
	t.Parallel()

	// 10000-01-01T00:00:00Z
	const far = int64(253402300800)

	h := header.NewWithNumber(field.Date, far)
	out := h.String()
	assert.Equal(t, "Date: 253402300800\r\n", out)

	again, err := header.Parse(out)
	require.NoError(t, err)
	n, isNum := again.Get(field.Date).Int()
	assert.True(t, isNum)
	assert.Equal(t, far, n)

	// the last second of 9999 still fits in an HTTP date
	h = header.NewWithNumber(field.Date, far-1)
	assert.Equal(t, "Date: Fri, 31 Dec 9999 23:59:59 GMT\r\n", h.String())
}

type failWriter struct{ after int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("write failed")
	}
	w.after--
	return len(p), nil
}

func TestHeader_WriteToError(t *testing.T) {
	t.Parallel()

	h := header.NewWithText(field.Host, "example.com")

	n, err := h.WriteTo(&failWriter{after: 1})
	assert.Error(t, err)
	assert.Equal(t, int64(len("Host: example.com")), n)
}
