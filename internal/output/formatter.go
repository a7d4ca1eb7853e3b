package output

import (
	"fmt"
	"sort"
	"strings"
)

const ruleWidth = 80

// FormatSection renders a "--- Title ----..." rule padded to the standard
// dump width.
func FormatSection(title string) string {
	header := "--- " + title + " "
	if pad := ruleWidth - len(header); pad > 0 {
		header += strings.Repeat("-", pad)
	}
	return sectionStyle.Render(header)
}

// FormatRule renders the closing rule of a dump section.
func FormatRule() string {
	return sectionStyle.Render(strings.Repeat("-", ruleWidth))
}

// FormatMapping renders a full dump section: a titled rule, the source file
// the mapping came from (when known), the key-value pairs sorted by key,
// and a closing rule.
func FormatMapping(title, source string, m map[string]any) string {
	var b strings.Builder
	b.WriteString(FormatSection(title))
	b.WriteByte('\n')
	if source != "" {
		fmt.Fprintf(&b, "config file: %s\n", source)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", keyStyle.Render(k), m[k])
	}

	b.WriteString(FormatRule())
	b.WriteByte('\n')
	return b.String()
}

// FormatPairing renders the paired-end verdict for a sample summary.
func FormatPairing(paired bool) string {
	if paired {
		return pairedStyle.Render("paired-end")
	}
	return pairedStyle.Render("single-end")
}
