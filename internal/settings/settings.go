package settings

// TypeKey is the platform discriminator stored inside a group's settings.
// Downstream platform adapters use it to pick a decoder, so it is always
// derived from the integration and never trusted from caller input.
const TypeKey = "__type"

// Override is one caller-supplied key/value pair. Overrides arrive as an
// ordered list rather than a map so that duplicate keys keep their explicit
// later-wins semantics.
type Override struct {
	Key   string
	Value any
}

// Merge folds overrides into a copy of existing, later entries winning, and
// stamps the platform discriminator. A caller-supplied __type is discarded.
func Merge(existing map[string]any, overrides []Override, providerIdentifier string) map[string]any {
	merged := make(map[string]any, len(existing)+len(overrides)+1)
	for k, v := range existing {
		merged[k] = v
	}
	for _, o := range overrides {
		merged[o.Key] = o.Value
	}
	merged[TypeKey] = providerIdentifier
	return merged
}
