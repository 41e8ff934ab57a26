package utils

import "strings"

// splitLabel describes a label the bill layout breaks across two lines,
// e.g. "Consumer" on one line and "Name : ..." on the next.
type splitLabel struct {
	first  string // whole first line
	second string // prefix of the following line
	joined string // merged label, value is appended
}

var splitLabels = [...]splitLabel{
	{first: "Consumer", second: "Name :", joined: "Consumer Name : "},
	{first: "Contract", second: "Demand (KVA)", joined: "Contract Demand (KVA) : "},
	{first: "Connected", second: "Load (KW)", joined: "Connected Load (KW): "},
}

// MergeSplitLabels trims every line and rejoins the known two-line labels
// into single "Label : value" lines. The consumed second line is dropped;
// all other lines keep their order.
func MergeSplitLabels(lines []string) []string {
	merged := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		current := strings.TrimSpace(lines[i])
		next := ""
		if i+1 < len(lines) {
			next = strings.TrimSpace(lines[i+1])
		}

		if line, ok := mergePair(current, next); ok {
			merged = append(merged, line)
			i++
			continue
		}
		merged = append(merged, current)
	}

	return merged
}

func mergePair(current, next string) (string, bool) {
	for _, l := range splitLabels {
		if current != l.first || !strings.HasPrefix(next, l.second) {
			continue
		}
		return l.joined + labelValue(next, l.second), true
	}
	return "", false
}

// labelValue returns the text after the first ':' of line. Lines without a
// colon yield whatever follows the label prefix.
func labelValue(line, prefix string) string {
	if _, value, ok := strings.Cut(line, ":"); ok {
		return strings.TrimSpace(value)
	}
	return strings.TrimSpace(strings.TrimPrefix(line, prefix))
}

// MergePages applies MergeSplitLabels to each page separately, so a label
// never merges across a page break, and joins the result with newlines.
func MergePages(pages [][]string) string {
	var all []string
	for _, page := range pages {
		all = append(all, MergeSplitLabels(page)...)
	}
	return strings.Join(all, "\n")
}
