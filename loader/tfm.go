package loader

import "strings"

// unknownFramework is the TFM reported when a project file carries none of
// the recognised target-framework elements.
const unknownFramework = "unknown"

// normalizeFramework implements SPEC_FULL.md §4.6c's TFM derivation: prefer
// <TargetFramework>, then the first entry of <TargetFrameworks>, then
// <TargetFrameworkVersion> converted "v4.7.2" -> "net472" by dropping the
// leading "v" and the dots.
func normalizeFramework(targetFramework, targetFrameworks, targetFrameworkVersion string) string {
	if tf := strings.TrimSpace(targetFramework); tf != "" {
		return tf
	}
	if tfs := strings.TrimSpace(targetFrameworks); tfs != "" {
		first, _, _ := strings.Cut(tfs, ";")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if v := strings.TrimSpace(targetFrameworkVersion); v != "" {
		return legacyVersionToTFM(v)
	}
	return unknownFramework
}

// legacyVersionToTFM converts a <TargetFrameworkVersion> value such as
// "v4.7.2" into its moniker "net472": drop the leading "v" and every dot.
func legacyVersionToTFM(v string) string {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	v = strings.ReplaceAll(v, ".", "")
	if v == "" {
		return unknownFramework
	}
	return "net" + v
}
