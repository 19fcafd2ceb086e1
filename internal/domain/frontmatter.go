package domain

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// frontMatter holds the fields the store cares about. Unknown fields are
// ignored; documents carry whatever metadata their callers put there.
type frontMatter struct {
	Title string `yaml:"title"`
}

// ExtractTitle returns the document title for display purposes: the front
// matter "title" field when present, otherwise the first markdown heading,
// otherwise "".
func ExtractTitle(content string) string {
	if fm, ok := parseFrontMatter(content); ok && fm.Title != "" {
		return fm.Title
	}
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(trimmed, "# "); ok {
			return strings.TrimSpace(after)
		}
	}
	return ""
}

func parseFrontMatter(content string) (frontMatter, bool) {
	var fm frontMatter

	rest, ok := strings.CutPrefix(content, frontMatterDelimiter+"\n")
	if !ok {
		return fm, false
	}
	end := strings.Index(rest, "\n"+frontMatterDelimiter)
	if end < 0 {
		return fm, false
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return frontMatter{}, false
	}
	return fm, true
}
