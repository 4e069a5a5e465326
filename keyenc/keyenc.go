// Package keyenc turns cache keys into stable byte strings: the same key
// content gives the same bytes in every process. sloghooks hashes them to
// log keys without printing them.
//
// Encodings are not identities. Unexported struct fields are skipped, and
// numbers of different Go types can encode alike, so two unequal keys may
// share an encoding. The caches themselves always compare keys with ==.
package keyenc

// Encoder maps a key to its encoded form.
type Encoder[K any] interface {
	Key(K) (string, error)
}

// Func adapts a plain function to an Encoder.
type Func[K any] func(K) (string, error)

func (f Func[K]) Key(k K) (string, error) { return f(k) }

// String is the identity encoder for string keys.
type String struct{}

func (String) Key(s string) (string, error) { return s, nil }
