package unit

import "strings"

// Select resolves names into the ordered list of tests to run.
//
// With no names every test is selected. A name of the form "Suite::method"
// selects that single test, and any other name selects every test of the
// suite with that exact name. Names that match nothing select nothing;
// this is not an error. The result is deduplicated and always in
// registration order, whatever the order of names.
func Select(reg *Registry, names ...string) []*Test {
	all := reg.Tests()
	if len(names) == 0 {
		return all
	}

	wanted := make(map[*Test]struct{})
	for _, name := range names {
		for _, t := range match(reg, name) {
			wanted[t] = struct{}{}
		}
	}

	selected := make([]*Test, 0, len(wanted))
	for _, t := range all {
		if _, ok := wanted[t]; ok {
			selected = append(selected, t)
		}
	}
	return selected
}

func match(reg *Registry, name string) []*Test {
	if suite, method, ok := strings.Cut(name, Separator); ok {
		if t, ok := reg.Lookup(suite, method); ok {
			return []*Test{t}
		}
		return nil
	}
	if s, ok := reg.Suite(name); ok {
		return s.Tests()
	}
	return nil
}
