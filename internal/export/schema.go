package export

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/moltenlabs/brand/brand"
	"github.com/moltenlabs/brand/color"
)

// HexPattern matches the hex forms a color decodes from.
const HexPattern = `^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`

var colorType = reflect.TypeOf(color.Color{})

// Schema returns the JSON Schema of Document, indented.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == colorType {
				return &jsonschema.Schema{
					Type:        "string",
					Pattern:     HexPattern,
					Description: "sRGB color as #rrggbb or #rrggbbaa",
				}
			}
			return nil
		},
	}

	s := r.Reflect(&Document{})
	s.Title = brand.Company + " design tokens"
	return json.MarshalIndent(s, "", "  ")
}
