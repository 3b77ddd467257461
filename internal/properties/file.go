package properties

import "strings"

// entryKind discriminates the two kinds of parsed lines.
type entryKind int

const (
	// rawEntry is a comment, blank, or malformed line kept verbatim.
	rawEntry entryKind = iota
	// keyEntry marks the position of a key=value line.
	keyEntry
)

// entry is one parsed line: either raw text or a reference to a key.
type entry struct {
	// kind tells whether text is a verbatim line or a key name.
	kind entryKind
	// text holds the raw line for rawEntry and the key name for keyEntry.
	text string
}

// File is a parsed key=value file that can be patched and re-serialized
// without disturbing the original line order or comments.
type File struct {
	// entries is the original line sequence.
	entries []entry
	// values maps keys to their current values.
	values map[string]string
	// appended lists keys set after parsing that the original file lacked,
	// in first-set order, so rewrites are deterministic.
	appended []string
}

// Parse reads a key=value file. Lines that are empty, start with '#' after
// leading whitespace, or carry no '=' are preserved as raw lines. Values keep
// their original spacing; keys are trimmed.
func Parse(data []byte) *File {
	f := &File{
		values: make(map[string]string),
	}

	for _, line := range splitLines(string(data)) {
		if line == "" || strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") || !strings.Contains(line, "=") {
			f.entries = append(f.entries, entry{kind: rawEntry, text: line})
			continue
		}

		key, value, _ := strings.Cut(line, "=")
		key = strings.TrimSpace(key)

		f.values[key] = value
		f.entries = append(f.entries, entry{kind: keyEntry, text: key})
	}

	return f
}

// Get returns the current value for key.
func (f *File) Get(key string) (string, bool) {
	value, ok := f.values[key]

	return value, ok
}

// Set updates key in place when the original file carried it, or records it
// for appending at the end otherwise.
func (f *File) Set(key, value string) {
	if _, exists := f.values[key]; !exists && !f.isAppended(key) {
		f.appended = append(f.appended, key)
	}

	f.values[key] = value
}

// Render serializes the file: original lines in their original order,
// followed by appended keys, with a trailing newline.
func (f *File) Render() []byte {
	lines := make([]string, 0, len(f.entries)+len(f.appended))

	for _, e := range f.entries {
		if e.kind == rawEntry {
			lines = append(lines, e.text)
			continue
		}

		lines = append(lines, e.text+"="+f.values[e.text])
	}

	for _, key := range f.appended {
		lines = append(lines, key+"="+f.values[key])
	}

	return []byte(strings.Join(lines, "\n") + "\n")
}

// isAppended reports whether key is already queued for appending.
func (f *File) isAppended(key string) bool {
	for _, appended := range f.appended {
		if appended == key {
			return true
		}
	}

	return false
}

// splitLines splits file contents into lines, tolerating CRLF endings and a
// missing trailing newline.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")

	return strings.Split(s, "\n")
}
