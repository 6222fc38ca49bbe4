package settings

import (
	"strings"
)

type Matcher func(string) bool
type ApplyFunc func(key, val string) error

type Handler struct {
	Match Matcher
	Apply ApplyFunc
}

// Applier routes key/value settings to the first handler whose matcher
// accepts the key.
type Applier struct {
	handlers []Handler
}

func New(handlers ...Handler) Applier {
	return Applier{handlers: handlers}
}

// ApplyAll applies every setting and returns the ones no handler claimed,
// keyed by their normalized name.
func (a Applier) ApplyAll(settings map[string]string) (map[string]string, error) {
	if len(settings) == 0 {
		return nil, nil
	}
	left := make(map[string]string)
	for _, k := range sortedKeys(settings) {
		key := NormalizeKey(k)
		if key == "" {
			continue
		}
		v := strings.TrimSpace(settings[k])
		h, ok := a.find(key)
		if !ok {
			left[key] = v
			continue
		}
		if h.Apply == nil {
			continue
		}
		if err := h.Apply(key, v); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (a Applier) find(key string) (Handler, bool) {
	for _, h := range a.handlers {
		if h.Match != nil && h.Match(key) {
			return h, true
		}
	}
	return Handler{}, false
}

// NormalizeKey lowercases and trims a key and folds '-' and '.' to '_'.
func NormalizeKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer("-", "_", ".", "_").Replace(k)
}

func ExactMatcher(keys ...string) Matcher {
	return func(key string) bool {
		k := NormalizeKey(key)
		for _, want := range keys {
			if k == NormalizeKey(want) {
				return true
			}
		}
		return false
	}
}
