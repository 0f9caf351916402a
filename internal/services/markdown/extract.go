package markdown

import (
	"regexp"
	"strings"
)

// Value is a raw metadata value: a scalar or a one-level bracket list
type Value struct {
	Text   string
	Items  []string
	IsList bool
}

// Scalar creates a scalar value
func Scalar(text string) Value {
	return Value{Text: text}
}

// List creates a list value
func List(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{Items: items, IsList: true}
}

// String renders the value as text; list items are joined with ", "
func (v Value) String() string {
	if v.IsList {
		return strings.Join(v.Items, ", ")
	}
	return v.Text
}

// Metadata maps recognised field names to raw values
type Metadata map[string]Value

// Lookup returns the value for the first key present
func (m Metadata) Lookup(keys ...string) (Value, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Strategy extracts metadata from a task body, returning nil or an empty map when
// it finds nothing
type Strategy func(body string) Metadata

// DefaultStrategies is the extraction chain: fenced YAML first, bold labels second
var DefaultStrategies = []Strategy{StructuredBlock, LabelBased}

// Extract runs the default strategy chain
func Extract(body string) Metadata {
	return ExtractWith(body, DefaultStrategies...)
}

// ExtractWith returns the first non-empty result of strategies, as a whole.
// Results are never merged field by field.
func ExtractWith(body string, strategies ...Strategy) Metadata {
	for _, strategy := range strategies {
		if meta := strategy(body); len(meta) > 0 {
			return meta
		}
	}
	return Metadata{}
}

var yamlFenceRegex = regexp.MustCompile("(?s)```\\{?ya?ml\\}?\\s*\\n(.*?)```")

// StructuredBlock reads the first ```yaml (or ```yml, ```{yaml}) fence in body as
// flat key: value lines
func StructuredBlock(body string) Metadata {
	m := yamlFenceRegex.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	return parseFlatYAML(m[1])
}

// parseFlatYAML handles scalars and single-level bracket lists only
func parseFlatYAML(text string) Metadata {
	out := Metadata{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)

		switch {
		case strings.HasPrefix(val, "[") && strings.HasSuffix(val, "]") && len(val) >= 2:
			items := []string{}
			for _, item := range strings.Split(val[1:len(val)-1], ",") {
				item = strings.TrimSpace(item)
				if item == "" {
					continue
				}
				items = append(items, strings.Trim(item, `'"`))
			}
			out[key] = List(items...)
		case len(val) >= 2 && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0]:
			out[key] = Scalar(val[1 : len(val)-1])
		default:
			out[key] = Scalar(val)
		}
	}
	return out
}

var (
	statusLabelRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)[-*]\s*(?:✅|⬜|\[.?\])\s*\*\*Status[:\s]*\*\*\s*(.+)`),
		regexp.MustCompile(`(?i)\*\*Status[:\s]*\*\*\s*(.+)`),
	}
	priorityLabelRegex = regexp.MustCompile(`(?i)\*\*Priority[:\s]*\*\*\s*(P[0-3])`)
	ownerLabelRegex    = regexp.MustCompile(`(?i)\*\*Owner[:\s]*\*\*\s*([^\n*]+)`)
	depsLabelRegexes   = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\*\*Depends?\s*(?:On|_on)?[:\s]*\*\*\s*([^\n]+)`),
		regexp.MustCompile(`(?i)\*\*Dependencies?[:\s]*\*\*\s*([^\n]+)`),
	}
	effortLabelRegex = regexp.MustCompile(`(?i)\*\*Effort[:\s]*\*\*\s*(\d+h?)`)
)

// LabelBased scans body for the legacy bold labels (**Status:**, **Priority:**,
// **Owner:**, **Depends On:**, **Effort:**)
func LabelBased(body string) Metadata {
	meta := Metadata{}

	for _, re := range statusLabelRegexes {
		if m := re.FindStringSubmatch(body); m != nil {
			status := strings.TrimSpace(m[1])
			status = strings.TrimSpace(strings.TrimRight(status, "*"))
			meta["status"] = Scalar(status)
			break
		}
	}

	if m := priorityLabelRegex.FindStringSubmatch(body); m != nil {
		meta["priority"] = Scalar(m[1])
	}

	if m := ownerLabelRegex.FindStringSubmatch(body); m != nil {
		meta["owner"] = Scalar(strings.TrimSpace(m[1]))
	}

	for _, re := range depsLabelRegexes {
		if m := re.FindStringSubmatch(body); m != nil {
			v := strings.TrimSpace(m[1])
			if !IsNoDependency(v) {
				meta["depends_on"] = List(FindIDs(v)...)
			}
			break
		}
	}

	if m := effortLabelRegex.FindStringSubmatch(body); m != nil {
		meta["effort"] = Scalar(m[1])
	}

	return meta
}
