package codec

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/text/unicode/norm"

	"github.com/dirquery/dirquery/internal/expr"
	"github.com/dirquery/dirquery/internal/jval"
)

// fingerprintDomain separates expression fingerprints from any other
// SHA-256 use. The version suffix enables future algorithm migration.
const fingerprintDomain = "dirquery/expression/v1"

// Fingerprint computes a content-addressed identity for an expression tree.
// Equal trees produce equal fingerprints across processes and restarts,
// which makes the result usable as a cache key for directory queries.
//
// The digest covers the compact wire text with every string NFC normalized,
// prefixed by a domain tag and a null separator to prevent boundary
// ambiguity: SHA256(domain + 0x00 + text).
func Fingerprint(e expr.Expression) (string, error) {
	v, err := Encode(e)
	if err != nil {
		return "", err
	}
	data, err := jval.Marshal(normalize(v))
	if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(fingerprintDomain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// normalize returns v with every string NFC normalized so that
// differently-composed spellings of the same text fingerprint identically.
func normalize(v jval.Value) jval.Value {
	switch val := v.(type) {
	case jval.String:
		return jval.String(norm.NFC.String(string(val)))
	case jval.Array:
		out := make(jval.Array, len(val))
		for i, elem := range val {
			out[i] = normalize(elem)
		}
		return out
	case *jval.Object:
		out := jval.NewObject()
		for _, k := range val.Keys() {
			child, _ := val.Get(k)
			out.Set(norm.NFC.String(k), normalize(child))
		}
		return out
	default:
		return v
	}
}
