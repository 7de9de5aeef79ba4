package surface

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// docMaxLen is the truncation budget for a doc summary.
const docMaxLen = 100

var (
	summaryRe  = regexp.MustCompile(`(?is)<summary[^>]*>(.*?)</summary>`)
	tagRe      = regexp.MustCompile(`<[^>]*>`)
	spaceRunRe = regexp.MustCompile(`\s+`)
)

// docSummary extracts the documentation summary attached to a declaration:
// the contiguous run of comment trivia ending on the line directly above it.
func (w *Walker) docSummary(node *sitter.Node) string {
	startRow := node.StartPoint().Row

	var lines []string
	prev := node.PrevSibling()
	for prev != nil && prev.Type() == "comment" {
		// Stop at a blank line between the comment run and the declaration.
		if prev.EndPoint().Row+1 != startRow {
			break
		}
		lines = append([]string{w.result.NodeText(prev)}, lines...)
		startRow = prev.StartPoint().Row
		prev = prev.PrevSibling()
	}

	if len(lines) == 0 {
		return ""
	}
	return SummarizeDoc(strings.Join(lines, "\n"))
}

// SummarizeDoc reduces raw doc-comment trivia to at most one short sentence.
// Only the <summary> element is consulted; anything else (params, returns,
// remarks) is dropped. An empty result means the declaration has no summary.
func SummarizeDoc(raw string) string {
	text := stripCommentMarkers(raw)

	m := summaryRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	// Strip residual markup such as <see cref="..."/> and <paramref/>.
	inner := tagRe.ReplaceAllString(m[1], " ")
	inner = strings.TrimSpace(spaceRunRe.ReplaceAllString(inner, " "))
	return truncateSummary(inner)
}

// stripCommentMarkers removes the comment syntax from each line, keeping the
// XML payload.
func stripCommentMarkers(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "///"):
			line = line[3:]
		case strings.HasPrefix(line, "/**"):
			line = line[3:]
		case strings.HasPrefix(line, "//"):
			line = line[2:]
		case strings.HasPrefix(line, "/*"):
			line = line[2:]
		case strings.HasPrefix(line, "*"):
			line = line[1:]
		}
		lines[i] = strings.TrimSuffix(line, "*/")
	}
	return strings.Join(lines, "\n")
}

// truncateSummary cuts a summary through its first period when one occurs
// within the first docMaxLen characters; otherwise an over-long summary is
// hard-cut at docMaxLen with an ellipsis marker.
func truncateSummary(s string) string {
	runes := []rune(s)

	limit := len(runes)
	if limit > docMaxLen {
		limit = docMaxLen
	}
	for i := 0; i < limit; i++ {
		if runes[i] == '.' {
			return string(runes[:i+1])
		}
	}

	if len(runes) > docMaxLen {
		return string(runes[:docMaxLen]) + "..."
	}
	return s
}
