package codec

import (
	cbor "github.com/fxamacker/cbor/v2"
)

type cborCodec struct{ enc cbor.EncMode }

// CBOR returns a deterministic CBOR codec (RFC 8949 core profile). Map keys
// are sorted canonically, so Object member order is not kept.
func CBOR() (Codec, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return cborCodec{enc: em}, nil
}

func (cborCodec) ContentType() string { return "application/cbor" }

func (c cborCodec) Marshal(v any) ([]byte, error) {
	pv, err := plainNumbers(v)
	if err != nil {
		return nil, err
	}
	return c.enc.Marshal(pv)
}
