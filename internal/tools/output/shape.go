// Package output shapes and bounds tool responses before they are returned
// to the client: structural transforms over decoded JSON trees, plus a hard
// size cap on the serialized result.
package output

// Identity returns its input unchanged.
func Identity(v any) any {
	return v
}

// ClearField returns a shaper that replaces the value of the named key with
// an empty array in every object of the tree, however deeply nested. The
// input tree is not mutated.
func ClearField(name string) func(any) any {
	return func(v any) any {
		return clearField(v, name)
	}
}

func clearField(v any, name string) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			if k == name {
				out[k] = []any{}
				continue
			}
			out[k] = clearField(child, name)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = clearField(item, name)
		}
		return out
	default:
		return v
	}
}

// PruneLinks returns a shaper that trims hypermedia link blocks from objects
// reached under the given parent key: such an object's "_links" entry is
// reduced to only its "self" link, or to an empty object when there is no
// self link. Arrays are transparent, so every element of a list stored under
// the parent key is trimmed. Objects elsewhere in the tree keep their links.
func PruneLinks(parentKey string) func(any) any {
	return func(v any) any {
		return pruneLinks(v, "", parentKey)
	}
}

func pruneLinks(v any, key, parentKey string) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = pruneLinks(child, k, parentKey)
		}
		if key != parentKey {
			return out
		}
		links, ok := out["_links"].(map[string]any)
		if !ok {
			return out
		}
		if self, ok := links["self"]; ok {
			out["_links"] = map[string]any{"self": self}
		} else {
			out["_links"] = map[string]any{}
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			// Elements of a list inherit the key the list is stored under.
			out[i] = pruneLinks(item, key, parentKey)
		}
		return out
	default:
		return v
	}
}

// MinimizeCodelists rebuilds a controlled terminology package payload,
// keeping only conceptId and submissionValue for each codelist and each of
// its terms. Inputs that carry no "codelists" field are returned unchanged.
func MinimizeCodelists(v any) any {
	root, ok := v.(map[string]any)
	if !ok {
		return v
	}
	codelists, ok := root["codelists"].([]any)
	if !ok {
		return v
	}
	out := make([]any, 0, len(codelists))
	for _, item := range codelists {
		cl, ok := item.(map[string]any)
		if !ok {
			continue
		}
		clean := map[string]any{
			"conceptId":       cl["conceptId"],
			"submissionValue": cl["submissionValue"],
			"terms":           []any{},
		}
		if terms, ok := cl["terms"].([]any); ok {
			kept := make([]any, 0, len(terms))
			for _, t := range terms {
				term, ok := t.(map[string]any)
				if !ok {
					continue
				}
				kept = append(kept, map[string]any{
					"conceptId":       term["conceptId"],
					"submissionValue": term["submissionValue"],
				})
			}
			clean["terms"] = kept
		}
		out = append(out, clean)
	}
	return map[string]any{"codelists": out}
}
