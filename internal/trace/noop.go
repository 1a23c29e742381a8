package trace

// noopCodec stores captured frame bytes verbatim. Useful when the debug
// dump is small enough that compression overhead isn't worth paying.
type noopCodec struct{}

var _ Codec = noopCodec{}

func (noopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (noopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
