package bignum

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack writes x as a msgpack integer when it fits in an int64, and
// otherwise as a bin holding its little-endian two's-complement bytes.
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if v, err := x.Int64(); err == nil {
		return enc.EncodeInt(v)
	}
	b, err := x.Bytes(false, false)
	if err != nil {
		return err
	}
	return enc.EncodeBytes(b)
}

// DecodeMsgpack reads an Int written by EncodeMsgpack. Plain msgpack
// integers and floats are accepted too.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return err
	}

	var out Int
	switch v := v.(type) {
	case string:
		// bin comes back from DecodeInterfaceLoose as a string.
		out, err = FromBytes([]byte(v), false, false)
	case []byte:
		out, err = FromBytes(v, false, false)
	default:
		out, err = FromAny(v)
	}
	if err != nil {
		return errors.Wrap(err, "bignum: msgpack")
	}
	*x = out
	return nil
}
