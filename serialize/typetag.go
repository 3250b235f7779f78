package serialize

import "strings"

// TypeTag parses the "mainType/subType1/subType2;hint1;hint2" grammar spec
// §6 reserves for future packed IntSet encodings: main type, "/"-separated
// subtypes, ";"-separated hints.
type TypeTag struct {
	MainType string
	SubTypes []string
	Hints    []string
}

// ParseTypeTag splits s per the reserved grammar.
func ParseTypeTag(s string) TypeTag {
	main := s
	var hints []string
	if i := strings.IndexByte(s, ';'); i >= 0 {
		main, hints = s[:i], strings.Split(s[i+1:], ";")
	}
	parts := strings.Split(main, "/")
	return TypeTag{MainType: parts[0], SubTypes: parts[1:], Hints: hints}
}

// String renders the tag back to its wire form.
func (t TypeTag) String() string {
	var b strings.Builder
	b.WriteString(t.MainType)
	for _, sub := range t.SubTypes {
		b.WriteByte('/')
		b.WriteString(sub)
	}
	for _, h := range t.Hints {
		b.WriteByte(';')
		b.WriteString(h)
	}
	return b.String()
}

// Next descends into the first subtype, as spec §6 describes ("a parser
// ... supports a next() that descends into the first subtype"). ok is
// false if there is no subtype to descend into.
func (t TypeTag) Next() (next TypeTag, ok bool) {
	if len(t.SubTypes) == 0 {
		return TypeTag{}, false
	}
	return TypeTag{MainType: t.SubTypes[0], SubTypes: t.SubTypes[1:], Hints: t.Hints}, true
}

// Hint returns the value of the first hint of the form "key=value", and
// whether it was present.
func (t TypeTag) Hint(key string) (string, bool) {
	prefix := key + "="
	for _, h := range t.Hints {
		if strings.HasPrefix(h, prefix) {
			return strings.TrimPrefix(h, prefix), true
		}
	}
	return "", false
}
