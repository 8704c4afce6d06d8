package changes

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ParseError reports a malformed Changes file with the offending line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// versionPattern matches release header tokens like "1.2.3", "0.4" or
// "v2.0.0". Anything else at the start of an unindented line is preamble
// or body text.
var versionPattern = regexp.MustCompile(`^v?\d+(\.\d+)*$`)

// Load reads and parses a Changes file from disk.
func Load(path, pendingToken string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading change file: %w", err)
	}
	doc, err := Parse(string(data), pendingToken)
	if err != nil {
		return nil, fmt.Errorf("parsing change file %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses Changes text. pendingToken identifies the placeholder
// release header; when empty, DefaultPendingToken is used.
func Parse(text, pendingToken string) (*Document, error) {
	if pendingToken == "" {
		pendingToken = DefaultPendingToken
	}

	doc := &Document{pendingToken: pendingToken}

	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
		doc.finalNewline = true
	}

	var (
		cur      *Release
		curGroup *group
	)

	for i, line := range lines {
		if name, ok := releaseHeader(line, pendingToken); ok {
			cur = &Release{header: line, name: name}
			curGroup = nil
			doc.fileOrder = append(doc.fileOrder, cur)
			continue
		}

		if cur == nil {
			doc.preamble = append(doc.preamble, line)
			continue
		}

		trimmed := strings.TrimSpace(line)

		if name, ok := groupHeader(trimmed); ok {
			if cur.hasGroup(name) {
				return nil, &ParseError{
					Line:    i + 1,
					Message: fmt.Sprintf("group %q declared twice in release %q", name, cur.name),
				}
			}
			curGroup = &group{name: name, lines: []string{line}}
			cur.groups = append(cur.groups, curGroup)
			continue
		}

		if trimmed == "" && curGroup == nil {
			cur.preBody = append(cur.preBody, line)
			continue
		}

		// Ungrouped items live in the bucket with the empty name.
		if curGroup == nil {
			curGroup = &group{name: ""}
			cur.groups = append(cur.groups, curGroup)
		}
		curGroup.lines = append(curGroup.lines, line)

		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "- "):
			curGroup.items = append(curGroup.items, strings.TrimSpace(trimmed[2:]))
		case trimmed == "-":
			curGroup.items = append(curGroup.items, "")
		case len(curGroup.items) > 0:
			// Continuation of a wrapped item.
			last := len(curGroup.items) - 1
			curGroup.items[last] = strings.TrimSpace(curGroup.items[last] + " " + trimmed)
		}
	}

	return doc, nil
}

// Serialize renders the document back to text. Untouched lines are
// replayed verbatim, so an unmodified document round-trips exactly.
func (d *Document) Serialize() string {
	var out []string
	out = append(out, d.preamble...)
	for _, r := range d.fileOrder {
		out = append(out, r.header)
		out = append(out, r.preBody...)
		for _, g := range r.groups {
			out = append(out, g.lines...)
		}
	}

	text := strings.Join(out, "\n")
	if d.finalNewline {
		text += "\n"
	}
	return text
}

// releaseHeader reports whether line opens a release section and returns
// the release name (version label or pending token).
func releaseHeader(line, pendingToken string) (string, bool) {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return "", false
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	token := fields[0]
	if token == pendingToken || versionPattern.MatchString(token) {
		return token, true
	}
	return "", false
}

// groupHeader reports whether a trimmed line is a bracketed group header
// and returns the group name.
func groupHeader(trimmed string) (string, bool) {
	if len(trimmed) >= 2 && trimmed[0] == '[' && trimmed[len(trimmed)-1] == ']' {
		return trimmed[1 : len(trimmed)-1], true
	}
	return "", false
}
