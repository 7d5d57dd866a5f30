package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// GlobalConf declares a global identifier's mutability.
type GlobalConf string

const (
	GlobalOff      GlobalConf = "off"
	GlobalReadonly GlobalConf = "readonly"
	GlobalWritable GlobalConf = "writable"
)

// ParseGlobalConf normalizes the accepted wire forms: the canonical strings,
// the deprecated "writeable" synonym, and the boolean shorthand
// (true → writable, false → off).
func ParseGlobalConf(v any) (GlobalConf, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return GlobalWritable, nil
		}
		return GlobalOff, nil
	case string:
		switch t {
		case "off":
			return GlobalOff, nil
		case "readonly":
			return GlobalReadonly, nil
		case "writable", "writeable":
			return GlobalWritable, nil
		}
	case GlobalConf:
		return ParseGlobalConf(string(t))
	}
	return "", fmt.Errorf("invalid global config %v (expected \"off\", \"readonly\", \"writable\", or a boolean)", v)
}

func (g *GlobalConf) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	gc, err := ParseGlobalConf(raw)
	if err != nil {
		return err
	}
	*g = gc
	return nil
}

func (g *GlobalConf) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	gc, err := ParseGlobalConf(raw)
	if err != nil {
		return err
	}
	*g = gc
	return nil
}
