package iso8583

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileField is one dictionary entry as written in JSON, TOML or YAML files:
//
//	[fields.2]
//	type = "n"
//	length = "..19"
//	name = "Primary account number"
type fileField struct {
	Type   string `json:"type" toml:"type" yaml:"type"`
	Length string `json:"length" toml:"length" yaml:"length"`
	Name   string `json:"name,omitempty" toml:"name" yaml:"name,omitempty"`
}

type fileProtocol struct {
	Name   string               `json:"name" toml:"name"`
	Fields map[string]fileField `json:"fields" toml:"fields"`
}

type yamlProtocol struct {
	Name   string            `yaml:"name"`
	Fields map[int]fileField `yaml:"fields"`
}

// LoadProtocolJSON builds a Protocol from a JSON dictionary.
func LoadProtocolJSON(data []byte) (*Protocol, error) {
	var fp fileProtocol
	if err := json.Unmarshal(data, &fp); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary JSON: %w", err)
	}
	return fp.compile()
}

// LoadProtocolTOML builds a Protocol from a TOML dictionary.
func LoadProtocolTOML(data []byte) (*Protocol, error) {
	var fp fileProtocol
	if _, err := toml.Decode(string(data), &fp); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary TOML: %w", err)
	}
	return fp.compile()
}

// LoadProtocolYAML builds a Protocol from a YAML dictionary.
func LoadProtocolYAML(data []byte) (*Protocol, error) {
	var yp yamlProtocol
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary YAML: %w", err)
	}
	fp := fileProtocol{Name: yp.Name, Fields: make(map[string]fileField, len(yp.Fields))}
	for num, f := range yp.Fields {
		fp.Fields[strconv.Itoa(num)] = f
	}
	return fp.compile()
}

// LoadProtocolFile reads a dictionary and picks the decoder from the file
// extension (.json, .toml, .yaml or .yml).
func LoadProtocolFile(path string) (*Protocol, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary load failed (%s): %w", path, err)
	}
	var p *Protocol
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		p, err = LoadProtocolJSON(data)
	case ".toml":
		p, err = LoadProtocolTOML(data)
	case ".yaml", ".yml":
		p, err = LoadProtocolYAML(data)
	default:
		return nil, fmt.Errorf("dictionary load failed (%s): unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (fp fileProtocol) compile() (*Protocol, error) {
	fields := make(map[int]FieldMetadata, len(fp.Fields))
	for key, f := range fp.Fields {
		num, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("invalid field number in dictionary: %q", key)
		}
		maxLen, digits, err := ParseLengthSpec(f.Length)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", num, err)
		}
		fields[num] = FieldMetadata{
			Type:         EncodingType(strings.ToLower(strings.TrimSpace(f.Type))),
			MaxLength:    maxLen,
			LengthDigits: digits,
			Name:         f.Name,
		}
	}
	name := fp.Name
	if name == "" {
		name = "custom"
	}
	return NewProtocol(name, fields)
}
