package locale

import (
	"context"
	"slices"
	"strconv"
	"strings"
)

type localeKey struct{}

var aliases = map[string]string{
	EN:          EN,
	"english":   EN,
	SW:          SW,
	"swahili":   SW,
	"kiswahili": SW,
}

// ParseLang picks the supported language the header asks for. It accepts a
// bare code ("sw"), a name ("kiswahili") or an Accept-Language list, where
// the highest q-weight wins and ties keep header order.
func ParseLang(header string) string {
	best, bestQ := DefaultLang, -1.0
	for _, part := range strings.Split(header, ",") {
		tag, q := splitWeight(part)
		if i := strings.IndexAny(tag, "-_"); i >= 0 {
			tag = tag[:i]
		}
		lang, ok := aliases[tag]
		if ok && q > bestQ {
			best, bestQ = lang, q
		}
	}
	return best
}

func splitWeight(part string) (tag string, q float64) {
	tag, params, _ := strings.Cut(strings.ToLower(strings.TrimSpace(part)), ";")
	q = 1
	if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			q = parsed
		}
	}
	return strings.TrimSpace(tag), q
}

func IsValidLang(lang string) bool {
	return slices.Contains(LangList, strings.TrimSpace(strings.ToLower(lang)))
}

// GetLang returns the request language, or DefaultLang when none was set.
func GetLang(ctx context.Context) string {
	if lang, ok := ctx.Value(localeKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}

// SetLocaleToContext stores lang in ctx. Unsupported values store DefaultLang.
func SetLocaleToContext(ctx context.Context, lang string) context.Context {
	if !IsValidLang(lang) {
		lang = DefaultLang
	}
	return context.WithValue(ctx, localeKey{}, lang)
}
