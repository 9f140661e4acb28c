package heapstr

import (
	json "github.com/goccy/go-json"
	"github.com/mus-format/mus-go/ord"
	"github.com/vmihailenco/msgpack/v5"
)

// Serialization adapters. A String travels as a plain text value on every
// wire; decoding rebuilds it through the ordinary constructors.

var (
	_ msgpack.CustomEncoder = (*String)(nil)
	_ msgpack.CustomDecoder = (*String)(nil)
)

func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *String) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = FromString(v)
	return nil
}

func (s String) MarshalText() ([]byte, error) {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out, nil
}

func (s *String) UnmarshalText(text []byte) error {
	v, err := FromBytes(text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *String) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(s.String())
}

func (s *String) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeString()
	if err != nil {
		return err
	}
	*s = FromString(v)
	return nil
}

// MarshalMUS writes the content into bs in MUS string encoding and returns
// the number of bytes written. bs must hold at least SizeMUS bytes.
func (s *String) MarshalMUS(bs []byte) int {
	return ord.String.Marshal(s.String(), bs)
}

func (s *String) UnmarshalMUS(bs []byte) (int, error) {
	v, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return n, err
	}
	*s = FromString(v)
	return n, nil
}

func (s *String) SizeMUS() int {
	return ord.String.Size(s.String())
}
