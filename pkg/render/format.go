package render

import "strings"

// Format identifies one physical label layout.
type Format string

const (
	FormatA4 Format = "a4"
	FormatA5 Format = "a5"
	FormatV1 Format = "v1"
	FormatV2 Format = "v2"
	FormatV3 Format = "v3"
	FormatI4 Format = "i4"
)

// DefaultFormat is used for empty or unrecognised identifiers.
const DefaultFormat = FormatA4

// Formats lists every supported layout in display order.
func Formats() []Format {
	return []Format{FormatA4, FormatA5, FormatV1, FormatV2, FormatV3, FormatI4}
}

// ParseFormat matches s case-insensitively against the known formats. Anything
// else, including the empty string, silently resolves to DefaultFormat.
func ParseFormat(s string) Format {
	f, ok := LookupFormat(s)
	if !ok {
		return DefaultFormat
	}
	return f
}

// LookupFormat is ParseFormat without the fallback.
func LookupFormat(s string) (Format, bool) {
	candidate := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, f := range Formats() {
		if f == candidate {
			return f, true
		}
	}
	return "", false
}

func (f Format) String() string {
	return string(f)
}
