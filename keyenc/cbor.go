package keyenc

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR encodes keys with RFC 8949 Core Deterministic encoding (shortest
// integer and float forms). Pointers are followed, so keys holding pointers
// to equal data encode alike. It is the default encoder of sloghooks.
// The zero value is NOT ready to use. Construct with NewCBOR.
type CBOR[K any] struct {
	enc cbor.EncMode
}

var _ Encoder[struct{}] = CBOR[struct{}]{}

// NewCBOR constructs a deterministic CBOR key encoder.
// Time values are encoded as RFC3339Nano so instants in different zones differ
// the same way time.Time equality does.
func NewCBOR[K any]() (CBOR[K], error) {
	eo := cbor.CoreDetEncOptions()
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[K]{}, err
	}
	return CBOR[K]{enc: em}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Handy for package-level variables in tests/examples.
func MustCBOR[K any]() CBOR[K] {
	c, err := NewCBOR[K]()
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[K]) Key(k K) (string, error) {
	b, err := c.enc.Marshal(k)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
