package portproxy

import (
	"regexp"
	"strings"
)

// Strict shape of a data row: address, port, address, port. Column widths
// and header wording drift across Windows versions and locales, so this is
// tried first and a token fallback catches the rest.
var rowPattern = regexp.MustCompile(`^\s*(\d{1,3}(?:\.\d{1,3}){3})\s+(\d+)\s+(\d{1,3}(?:\.\d{1,3}){3})\s+(\d+)\s*$`)

// ParseTable turns the `netsh interface portproxy show v4tov4` listing into
// rules. The header is localized, so the parser keys on the dash separator
// line between header and body rather than on header text. Rows matching
// neither the strict nor the fallback shape are skipped; the OS row order is
// preserved and duplicates are surfaced as-is.
func ParseTable(text string) []Rule {
	lines := strings.Split(text, "\n")

	start := len(lines)
	for i, line := range lines {
		if strings.Contains(line, "----") {
			start = i + 1
			break
		}
	}

	var rules []Rule
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if rule, ok := parseRow(line); ok {
			rules = append(rules, rule)
		}
	}
	return rules
}

func parseRow(line string) (Rule, bool) {
	if m := rowPattern.FindStringSubmatch(line); m != nil {
		return Rule{
			ListenAddress:  m[1],
			ListenPort:     m[2],
			ConnectAddress: m[3],
			ConnectPort:    m[4],
		}, true
	}

	// Formatting drift: fall back to whitespace tokens, requiring numeric
	// port columns so footers and stray text don't parse as rules.
	fields := strings.Fields(line)
	if len(fields) < 4 || !isDigits(fields[1]) || !isDigits(fields[3]) {
		return Rule{}, false
	}
	return Rule{
		ListenAddress:  fields[0],
		ListenPort:     fields[1],
		ConnectAddress: fields[2],
		ConnectPort:    fields[3],
	}, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
