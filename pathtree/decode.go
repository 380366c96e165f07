package pathtree

import (
	"net/url"
	"strings"

	"github.com/erraggy/restcli/rcerrors"
	"golang.org/x/text/unicode/norm"
)

// Decoder splits raw record paths into decoded segments.
// The zero value is ready to use.
type Decoder struct {
	// Normalize applies Unicode NFC normalization to every decoded segment,
	// so canonically equivalent names land on the same node.
	Normalize bool
}

// Decode splits rawPath on '/' and percent-decodes every segment on its
// own, so "%2F" yields a literal slash inside a single segment.
//
// rawPath must start with '/' and contain at least one segment. A single
// trailing '/' is ignored. Empty segments and malformed percent sequences
// are rejected with a *rcerrors.MalformedPathError.
func (d Decoder) Decode(rawPath string) ([]string, error) {
	if rawPath == "" {
		return nil, malformed(rawPath, "", -1, "path is empty", nil)
	}
	if rawPath[0] != '/' {
		return nil, malformed(rawPath, "", -1, "path must start with '/'", nil)
	}
	body := strings.TrimSuffix(rawPath[1:], "/")
	if body == "" {
		return nil, malformed(rawPath, "", -1, "path has no segments", nil)
	}

	parts := strings.Split(body, "/")
	segments := make([]string, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, malformed(rawPath, part, i, "empty segment", nil)
		}
		seg, err := url.PathUnescape(part)
		if err != nil {
			return nil, malformed(rawPath, part, i, "invalid percent-encoding", err)
		}
		if d.Normalize {
			seg = norm.NFC.String(seg)
		}
		segments[i] = seg
	}
	return segments, nil
}

// Decode splits rawPath into decoded segments using a zero Decoder.
func Decode(rawPath string) ([]string, error) {
	return Decoder{}.Decode(rawPath)
}

func malformed(path, segment string, index int, reason string, cause error) error {
	return &rcerrors.MalformedPathError{
		Path:    path,
		Segment: segment,
		Index:   index,
		Reason:  reason,
		Cause:   cause,
	}
}
