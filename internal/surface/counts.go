package surface

// Count visits every member of every file map exactly once and tallies
// namespaces, types (class, interface, record, enum), and methods (method,
// constructor). The result is a pure sum: invariant to nesting depth and
// traversal order.
func Count(files []*FileMap) Summary {
	s := Summary{Files: len(files)}
	for _, f := range files {
		for _, m := range f.Members {
			countMember(m, &s)
		}
	}
	return s
}

func countMember(m *Member, s *Summary) {
	switch {
	case m.Kind == KindNamespace:
		s.Namespaces++
	case m.Kind.IsType():
		s.Types++
	case m.Kind.IsCallable():
		s.Methods++
	}
	for _, child := range m.Children {
		countMember(child, s)
	}
}

// Merge combines two summaries. Per-file counts merge commutatively, so
// summaries computed independently (for example per project) can be reduced
// in any order.
func (s Summary) Merge(other Summary) Summary {
	return Summary{
		Projects:   s.Projects + other.Projects,
		Files:      s.Files + other.Files,
		Namespaces: s.Namespaces + other.Namespaces,
		Types:      s.Types + other.Types,
		Methods:    s.Methods + other.Methods,
	}
}
