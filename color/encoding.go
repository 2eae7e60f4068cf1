package color

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Serialized form: a Color encodes as its Hex string in JSON, YAML and
// text. Decoders also accept an object {r, g, b, a} with a defaulting to
// 255. Both forms are validated exactly like FromChannelsRGBA and ParseHex.

// channels is the object form accepted by the decoders. Pointers tell a
// missing channel apart from zero.
type channels struct {
	R *int `json:"r" yaml:"r"`
	G *int `json:"g" yaml:"g"`
	B *int `json:"b" yaml:"b"`
	A *int `json:"a" yaml:"a"`
}

func (ch channels) color() (Color, error) {
	if ch.R == nil || ch.G == nil || ch.B == nil {
		return Color{}, fmt.Errorf("%w: object needs r, g and b", ErrInvalidChannel)
	}
	a := 255
	if ch.A != nil {
		a = *ch.A
	}
	return FromChannelsRGBA(*ch.R, *ch.G, *ch.B, a)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	case len(data) > 0 && data[0] == '{':
		var ch channels
		if err := json.Unmarshal(data, &ch); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidChannel, err)
		}
		parsed, err := ch.color()
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	return fmt.Errorf("%w: JSON %s is neither a hex string nor a channel object", ErrInvalidHexFormat, data)
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return c.UnmarshalText([]byte(value.Value))
	case yaml.MappingNode:
		var ch channels
		if err := value.Decode(&ch); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidChannel, err)
		}
		parsed, err := ch.color()
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	return fmt.Errorf("%w: YAML node at line %d is neither a hex string nor a channel object", ErrInvalidHexFormat, value.Line)
}
