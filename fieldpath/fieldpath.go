// Package fieldpath splits and joins dotted field-path names used by
// field references and by aggregate-function struct-path derivation.
package fieldpath

import "strings"

const sep = "."

// Split separates name into its struct-path prefix and leaf segment.
// ok is false when name has no dot, in which case prefix is empty and leaf
// equals name.
func Split(name string) (prefix, leaf string, ok bool) {
	i := strings.LastIndex(name, sep)
	if i < 0 {
		return "", name, false
	}
	return name[:i], name[i+1:], true
}

// Join reassembles a prefix and leaf into a dotted name. An empty prefix
// yields leaf unchanged.
func Join(prefix, leaf string) string {
	if prefix == "" {
		return leaf
	}
	return prefix + sep + leaf
}
