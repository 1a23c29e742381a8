package catalog

import (
	"fmt"

	"github.com/arloliu/amqp911/wire"
)

// The set* helpers back every FieldSpec.Set closure in this package. They
// exist once here instead of being re-typed per field so a decode type
// mismatch always produces the same error shape.

func setBool(dst *bool, v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("want bool, got %T", v)
	}

	*dst = b

	return nil
}

func setUint8(dst *uint8, v any) error {
	u, ok := v.(uint8)
	if !ok {
		return fmt.Errorf("want uint8, got %T", v)
	}

	*dst = u

	return nil
}

func setUint16(dst *uint16, v any) error {
	u, ok := v.(uint16)
	if !ok {
		return fmt.Errorf("want uint16, got %T", v)
	}

	*dst = u

	return nil
}

func setUint32(dst *uint32, v any) error {
	u, ok := v.(uint32)
	if !ok {
		return fmt.Errorf("want uint32, got %T", v)
	}

	*dst = u

	return nil
}

func setUint64(dst *uint64, v any) error {
	u, ok := v.(uint64)
	if !ok {
		return fmt.Errorf("want uint64, got %T", v)
	}

	*dst = u

	return nil
}

func setString(dst *string, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("want string, got %T", v)
	}

	*dst = s

	return nil
}

func setBytes(dst *[]byte, v any) error {
	b, ok := v.([]byte)
	if !ok {
		return fmt.Errorf("want []byte, got %T", v)
	}

	*dst = b

	return nil
}

func setTable(dst *wire.Table, v any) error {
	t, ok := v.(wire.Table)
	if !ok {
		return fmt.Errorf("want wire.Table, got %T", v)
	}

	*dst = t

	return nil
}
