package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patrickprogramme/subshare/internal/export"
)

// yamlListBlock retourne une liste YAML en bloc, à placer après "clé:".
func yamlListBlock(xs []string) string {
	if len(xs) == 0 {
		return " []" // note l'espace: on l'utilise après 'tags:'
	}
	var b strings.Builder
	for _, s := range xs {
		b.WriteString("\n  - ")
		b.WriteString(strconv.Quote(s))
	}
	return b.String()
}

// quoteBlockPure : préfixe chaque ligne par "> " pour un blockquote Markdown.
func quoteBlockPure(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := range lines {
		lines[i] = "> " + lines[i]
	}
	return strings.Join(lines, "\n")
}

// indentPure décale chaque ligne de n espaces. Usage : {{ x | indent 2 }}
func indentPure(n int, s string) string {
	if s == "" || n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}

// cueLinkPure : "[M:SS](url&t=Ns)" ; sans url, le temps seul.
func cueLinkPure(start float64, baseURL string) string {
	ts := export.ShortTimestamp(start)
	if baseURL == "" {
		return ts
	}
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("[%s](%s%st=%ds)", ts, baseURL, sep, int64(start))
}
