package model

// FindProperty returns the first declared property of t named name.
func FindProperty(t CompiledType, name string) (CompiledProperty, bool) {
	if t == nil {
		return nil, false
	}

	for _, p := range t.Properties() {
		if p.Name() == name {
			return p, true
		}
	}

	return nil, false
}

// Correlate maps a semantic property onto the binary model: the declaring
// type is resolved through the program, then the property is matched by name
// with the FindProperty tie-break.
func Correlate(program Program, prop SemanticProperty) (CompiledProperty, bool) {
	if program == nil || prop == nil {
		return nil, false
	}

	t, ok := program.ResolveType(NormalizeTypeName(prop.DeclaringTypeName()))
	if !ok {
		return nil, false
	}

	return FindProperty(t, prop.Name())
}
