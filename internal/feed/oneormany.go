package feed

import (
	"bytes"

	sonic "github.com/bytedance/sonic"
)

// OneOrMany decodes a JSON value that may be absent, a single object, or a
// list of objects into a plain slice. The source feed was converted from a
// markup export, so one-element collections arrive as bare objects.
type OneOrMany[T any] []T

func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = nil
		return nil
	}

	if data[0] == '[' {
		var items []T
		if err := sonic.Unmarshal(data, &items); err != nil {
			return err
		}
		*o = items
		return nil
	}

	var single T
	if err := sonic.Unmarshal(data, &single); err != nil {
		return err
	}
	*o = OneOrMany[T]{single}
	return nil
}

// decodeOptionalBlock fills dst only when the raw value is an object.
// Empty markers the exporter leaves behind for absent sections ("" or null)
// decode to the zero block.
func decodeOptionalBlock(data []byte, dst any) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	return sonic.Unmarshal(data, dst)
}

func (b *GoalsBlock) UnmarshalJSON(data []byte) error {
	type plain GoalsBlock
	var p plain
	if err := decodeOptionalBlock(data, &p); err != nil {
		return err
	}
	*b = GoalsBlock(p)
	return nil
}

func (b *CardsBlock) UnmarshalJSON(data []byte) error {
	type plain CardsBlock
	var p plain
	if err := decodeOptionalBlock(data, &p); err != nil {
		return err
	}
	*b = CardsBlock(p)
	return nil
}

func (b *SubstitutionsBlock) UnmarshalJSON(data []byte) error {
	type plain SubstitutionsBlock
	var p plain
	if err := decodeOptionalBlock(data, &p); err != nil {
		return err
	}
	*b = SubstitutionsBlock(p)
	return nil
}
