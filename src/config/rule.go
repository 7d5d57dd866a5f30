package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RuleConf is a rule's configuration: a severity alone, or a severity
// followed by rule-specific option values. Option values are opaque to this
// layer and order-significant (each rule defines its own schema).
type RuleConf struct {
	Severity Severity
	Options  []any
}

// NewRuleConf builds a RuleConf from a severity and optional rule options.
func NewRuleConf(sev Severity, opts ...any) RuleConf {
	return RuleConf{Severity: sev, Options: opts}
}

// ParseRuleConf accepts the two wire forms: a bare severity, or a sequence
// whose first element is a severity.
func ParseRuleConf(v any) (RuleConf, error) {
	switch t := v.(type) {
	case []any:
		if len(t) == 0 {
			return RuleConf{}, fmt.Errorf("rule config sequence must not be empty")
		}
		sev, err := ParseSeverity(t[0])
		if err != nil {
			return RuleConf{}, err
		}
		rc := RuleConf{Severity: sev}
		if len(t) > 1 {
			rc.Options = append(rc.Options, t[1:]...)
		}
		return rc, nil
	case RuleConf:
		return t, nil
	default:
		sev, err := ParseSeverity(v)
		if err != nil {
			return RuleConf{}, err
		}
		return RuleConf{Severity: sev}, nil
	}
}

func (r *RuleConf) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		if len(node.Content) == 0 {
			return fmt.Errorf("rule config sequence must not be empty")
		}
		var sev Severity
		if err := node.Content[0].Decode(&sev); err != nil {
			return err
		}
		rc := RuleConf{Severity: sev}
		for _, c := range node.Content[1:] {
			var v any
			if err := c.Decode(&v); err != nil {
				return err
			}
			rc.Options = append(rc.Options, v)
		}
		*r = rc
		return nil
	}

	var sev Severity
	if err := node.Decode(&sev); err != nil {
		return err
	}
	*r = RuleConf{Severity: sev}
	return nil
}

// MarshalYAML writes the compact form: a bare severity when there are no
// options, the sequence form otherwise.
func (r RuleConf) MarshalYAML() (any, error) {
	if len(r.Options) == 0 {
		return r.Severity, nil
	}
	out := make([]any, 0, len(r.Options)+1)
	out = append(out, r.Severity)
	out = append(out, r.Options...)
	return out, nil
}

func (r *RuleConf) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rc, err := ParseRuleConf(raw)
	if err != nil {
		return err
	}
	*r = rc
	return nil
}

func (r RuleConf) MarshalJSON() ([]byte, error) {
	if len(r.Options) == 0 {
		return json.Marshal(r.Severity)
	}
	out := make([]any, 0, len(r.Options)+1)
	out = append(out, r.Severity)
	out = append(out, r.Options...)
	return json.Marshal(out)
}
