package settings

import (
	"slices"
	"strings"
)

// FromEnv collects entries of an os.Environ style list whose name starts
// with prefix (case-insensitive). The prefix is stripped and the remaining
// name normalized.
func FromEnv(environ []string, prefix string) map[string]string {
	p := strings.ToUpper(strings.TrimSpace(prefix))
	out := make(map[string]string)
	for _, kv := range environ {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		upper := strings.ToUpper(strings.TrimSpace(name))
		if !strings.HasPrefix(upper, p) {
			continue
		}
		key := NormalizeKey(upper[len(p):])
		if key == "" {
			continue
		}
		out[key] = val
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Merge combines scopes; later scopes override earlier ones.
func Merge(scopes ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, scope := range scopes {
		for k, v := range scope {
			out[NormalizeKey(k)] = v
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
