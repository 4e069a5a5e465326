package keyenc

import "encoding/json"

// JSON encodes keys with encoding/json. Readable output, but unexported fields
// and fields tagged `json:"-"` are dropped, which can make distinct keys collide.
type JSON[K any] struct{}

func (JSON[K]) Key(k K) (string, error) {
	b, err := json.Marshal(k)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
