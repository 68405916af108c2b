package definitions

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// document is the YAML/JSON file layout.
type document struct {
	Definitions []rawDefinition `mapstructure:"definitions"`
}

type rawDefinition struct {
	Kind   string                 `mapstructure:"kind"`
	Name   string                 `mapstructure:"name"`
	Fields map[string]interface{} `mapstructure:",remain"`
}

func decodeYAML(filename string, src []byte) ([]Definition, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, err
	}
	return decodeDocument(filename, raw)
}

func decodeJSON(filename string, src []byte) ([]Definition, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(src, &raw); err != nil {
		return nil, err
	}
	return decodeDocument(filename, raw)
}

func decodeDocument(filename string, raw map[string]interface{}) ([]Definition, error) {
	var doc document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	defs := make([]Definition, 0, len(doc.Definitions))
	for i, rd := range doc.Definitions {
		source := fmt.Sprintf("%s[%d]", filename, i)
		if rd.Kind == "" {
			return nil, fmt.Errorf("%s: kind is required", source)
		}
		if rd.Fields == nil {
			rd.Fields = map[string]interface{}{}
		}
		defs = append(defs, Definition{
			Kind:   rd.Kind,
			Name:   rd.Name,
			Source: source,
			Fields: rd.Fields,
		})
	}
	return defs, nil
}
