package surface

// Included decides whether a declaration with the given modifier set belongs
// on the API surface. A declaration is included when it carries no explicit
// accessibility modifier at all, or when it is explicitly public or internal.
// Private declarations (including private protected) and protected-only
// declarations are excluded; the walker never descends into an excluded
// declaration, so exclusion is subtree-wide.
//
// The no-modifier rule is applied uniformly at every nesting level, even
// though unmarked nested declarations default to private in C#.
func Included(modifiers []string) bool {
	hasAccessibility := false
	for _, m := range modifiers {
		switch m {
		case "private":
			return false
		case "public", "internal":
			return true
		case "protected":
			hasAccessibility = true
		}
	}
	return !hasAccessibility
}
