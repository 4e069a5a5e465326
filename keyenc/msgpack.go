package keyenc

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack encodes keys with vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Be mindful of struct tags: fields tagged `msgpack:"-"` are skipped, and keys
// differing only in skipped fields would collide.
type Msgpack[K any] struct{}

func (Msgpack[K]) Key(k K) (string, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(k); err != nil {
		return "", err
	}
	return buf.String(), nil
}
