package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"isp-dashboard/internal/messaging"
)

var (
	placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}]*?)\s*\}\}`)
	variableName       = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

const (
	gsmSingle     = 160
	gsmPart       = 153
	unicodeSingle = 70
	unicodePart   = 67
)

// placeholders returns the distinct {{variable}} names in content in order of first use.
func placeholders(content string) ([]string, error) {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	if strings.Count(content, "{{") != len(matches) || strings.Count(content, "}}") != len(matches) {
		return nil, messaging.ErrInvalidPlaceholder
	}

	vars := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		name := m[1]
		if !variableName.MatchString(name) {
			return nil, messaging.ErrInvalidPlaceholder
		}
		if !seen[name] {
			seen[name] = true
			vars = append(vars, name)
		}
	}
	return vars, nil
}

func render(content string, values map[string]string) (string, []string) {
	var missing []string
	text := placeholderPattern.ReplaceAllStringFunc(content, func(m string) string {
		name := placeholderPattern.FindStringSubmatch(m)[1]
		if v, ok := values[name]; ok {
			return v
		}
		missing = append(missing, name)
		return m
	})
	return text, missing
}

// smsParts is how many messages text is split into. Any character outside
// ASCII switches the whole message to the shorter unicode limits.
func smsParts(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	single, part := gsmSingle, gsmPart
	for _, r := range text {
		if r > 0x7F {
			single, part = unicodeSingle, unicodePart
			break
		}
	}
	if n <= single {
		return 1
	}
	return (n + part - 1) / part
}
