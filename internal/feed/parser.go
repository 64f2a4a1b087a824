package feed

import (
	"fmt"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

// ErrMalformed marks documents that cannot be ingested: missing required
// keys, unparseable dates or elapsed times, values of the wrong shape.
// Callers test with errors.Is and decide whether to skip or abort.
var ErrMalformed = crerr.New("malformed match document")

// Parse decodes and validates one raw match document.
func Parse(data []byte) (Document, error) {
	var env envelope
	if err := sonic.Unmarshal(data, &env); err != nil {
		return Document{}, fmt.Errorf("%w: decode: %v", ErrMalformed, err)
	}

	doc := env.Match
	if err := doc.Validate(); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return doc, nil
}
