package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Severity is the three-level violation severity for a rule.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity accepts the ordinal form (0, 1, 2) or its string synonyms
// ("off", "warn", "error"). Anything else is invalid.
func ParseSeverity(v any) (Severity, error) {
	switch t := v.(type) {
	case int:
		if t >= 0 && t <= 2 {
			return Severity(t), nil
		}
	case int64:
		if t >= 0 && t <= 2 {
			return Severity(t), nil
		}
	case uint64:
		if t <= 2 {
			return Severity(t), nil
		}
	case float64:
		if t == 0 || t == 1 || t == 2 {
			return Severity(t), nil
		}
	case string:
		switch t {
		case "off":
			return SeverityOff, nil
		case "warn":
			return SeverityWarn, nil
		case "error":
			return SeverityError, nil
		}
	case Severity:
		if t >= SeverityOff && t <= SeverityError {
			return t, nil
		}
	}
	return SeverityOff, fmt.Errorf("invalid severity %v (expected 0, 1, 2, \"off\", \"warn\", or \"error\")", v)
}

func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	// YAML 1.1 resolves the bare scalar "off" as a boolean; recover the
	// literal so the string synonym still applies.
	if _, isBool := raw.(bool); isBool {
		raw = node.Value
	}
	sev, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// MarshalYAML writes the string synonym so configs stay human-readable.
func (s Severity) MarshalYAML() (any, error) {
	if s < SeverityOff || s > SeverityError {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return s.String(), nil
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	sev, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

func (s Severity) MarshalJSON() ([]byte, error) {
	if s < SeverityOff || s > SeverityError {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return json.Marshal(s.String())
}
