package ai

import "strings"

// DefaultProviderOrder is used when AI_PROVIDER_ORDER names no known provider.
var DefaultProviderOrder = []ProviderID{ProviderOpenAI, ProviderAnthropic, ProviderGrok}

// ParseProviderID accepts only the concrete provider ids. "auto" and unknown
// values report false.
func ParseProviderID(v string) (ProviderID, bool) {
	switch id := ProviderID(strings.ToLower(strings.TrimSpace(v))); id {
	case ProviderOpenAI, ProviderAnthropic, ProviderGrok:
		return id, true
	default:
		return "", false
	}
}

// ResolveProviderOrder turns a comma-separated override and an optional
// preferred provider into the attempt order. The result never holds
// duplicates or unknown ids.
func ResolveProviderOrder(configured string, preferred ProviderID) []ProviderID {
	var base []ProviderID
	for _, part := range strings.Split(configured, ",") {
		if id, ok := ParseProviderID(part); ok {
			base = append(base, id)
		}
	}
	if len(base) == 0 {
		base = append(base, DefaultProviderOrder...)
	}

	if id, ok := ParseProviderID(string(preferred)); ok {
		base = append([]ProviderID{id}, base...)
	}

	seen := make(map[ProviderID]struct{}, len(base))
	out := make([]ProviderID, 0, len(base))
	for _, id := range base {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
