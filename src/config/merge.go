package config

// Merge layers child on top of base and returns the result. The map-valued
// fields (rules, globals, env, settings) merge key-wise with child winning
// on conflicts; everything else is replaced wholesale when the child sets
// it. Neither input is mutated.
func Merge(base, child *ConfigData) *ConfigData {
	if base == nil && child == nil {
		return nil
	}
	if base == nil {
		c := *child
		return &c
	}
	out := *base
	if child == nil {
		return &out
	}

	out.Env = mergeBoolMap(base.Env, child.Env)
	out.Globals = mergeGlobalMap(base.Globals, child.Globals)
	out.Rules = mergeRuleMap(base.Rules, child.Rules)
	out.Settings = mergeAnyMap(base.Settings, child.Settings)

	if len(child.Extends) > 0 {
		out.Extends = child.Extends
	}
	if len(child.IgnorePatterns) > 0 {
		out.IgnorePatterns = append(append(StringList{}, base.IgnorePatterns...), child.IgnorePatterns...)
	}
	if child.NoInlineConfig {
		out.NoInlineConfig = true
	}
	if len(child.Overrides) > 0 {
		out.Overrides = child.Overrides
	}
	if child.Parser != "" {
		out.Parser = child.Parser
	}
	if child.ParserOptions != nil {
		out.ParserOptions = mergeParserOptions(base.ParserOptions, child.ParserOptions)
	}
	if len(child.Plugins) > 0 {
		out.Plugins = appendUnique(base.Plugins, child.Plugins)
	}
	if child.Processor != "" {
		out.Processor = child.Processor
	}
	if child.ReportUnusedDisableDirectives != nil {
		out.ReportUnusedDisableDirectives = child.ReportUnusedDisableDirectives
	}
	if child.Root {
		out.Root = true
	}
	return &out
}

func mergeBoolMap(a, b map[string]bool) map[string]bool {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]bool, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func mergeGlobalMap(a, b map[string]GlobalConf) map[string]GlobalConf {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]GlobalConf, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func mergeRuleMap(a, b map[string]RuleConf) map[string]RuleConf {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]RuleConf, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func mergeAnyMap(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func mergeParserOptions(a, b *ParserOptions) *ParserOptions {
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	if b.EcmaVersion != 0 {
		out.EcmaVersion = b.EcmaVersion
	}
	if b.SourceType != "" {
		out.SourceType = b.SourceType
	}
	if b.EcmaFeatures != nil {
		out.EcmaFeatures = mergeEcmaFeatures(a.EcmaFeatures, b.EcmaFeatures)
	}
	return &out
}

func mergeEcmaFeatures(a, b *EcmaFeatures) *EcmaFeatures {
	if a == nil {
		c := *b
		return &c
	}
	out := *a
	if b.GlobalReturn != nil {
		out.GlobalReturn = b.GlobalReturn
	}
	if b.JSX != nil {
		out.JSX = b.JSX
	}
	if b.ImpliedStrict != nil {
		out.ImpliedStrict = b.ImpliedStrict
	}
	return &out
}

func appendUnique(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
