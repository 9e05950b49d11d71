package bigint

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// MarshalText renders a as its decimal numeral, implementing
// encoding.TextMarshaler.
func (a Int) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a decimal numeral, implementing
// encoding.TextUnmarshaler.
func (a *Int) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalJSON renders a as a JSON number. Arbitrary-precision values
// survive because JSON places no width limit on numbers.
func (a Int) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON parses either a JSON number or a quoted decimal string,
// the latter being what callers of the original binding commonly emit.
func (a *Int) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := FromString(s)
	if err != nil {
		return fmt.Errorf("bigint: cannot unmarshal %q: %w", string(data), err)
	}
	*a = v
	return nil
}

// EncodeMsgpack writes a as a msgpack string holding the decimal numeral,
// which keeps arbitrary magnitudes exact across the wire.
func (a Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(a.String())
}

// DecodeMsgpack reads a value written by EncodeMsgpack.
func (a *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := FromString(s)
	if err != nil {
		return fmt.Errorf("bigint: cannot decode %q: %w", s, err)
	}
	*a = v
	return nil
}

// Interface conformance checks.
var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)
