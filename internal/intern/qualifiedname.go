package intern

import "strings"

// QualifiedName is a parsed "Package.Type.Name" fully-qualified asset
// name (spec.md §9 Open Question #1).
type QualifiedName struct {
	Package string
	Type    string
	Name    string
}

// ParseQualifiedName splits a fully-qualified asset name on its first
// two '.' separators into package/type/name parts. The original
// engine's basset_util_parse_name has a bug where it writes each
// character's index into the part buffer instead of the character's
// bytes; this implementation writes the actual bytes, per spec.md's
// explicit instruction to implement it correctly.
func ParseQualifiedName(fullyQualifiedName string) (QualifiedName, bool) {
	if fullyQualifiedName == "" {
		return QualifiedName{}, false
	}

	var parts [3]strings.Builder
	partIndex := 0
	for _, r := range fullyQualifiedName {
		if partIndex < 2 && r == '.' {
			partIndex++
			continue
		}
		parts[partIndex].WriteRune(r)
	}

	return QualifiedName{
		Package: parts[0].String(),
		Type:    parts[1].String(),
		Name:    parts[2].String(),
	}, true
}
