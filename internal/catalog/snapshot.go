package catalog

// ParamSnapshot is the serializable view of one parameter's constraints.
type ParamSnapshot struct {
	Name     string `json:"name"`
	Required bool   `json:"required,omitempty"`
	// Allowed lists the accepted values for flat allow-lists.
	Allowed []string `json:"allowed,omitempty"`
	// AllowedBy maps each accepted value of the parent parameter to the
	// values accepted for this one.
	AllowedBy map[string][]string `json:"allowedBy,omitempty"`
	DependsOn string              `json:"dependsOn,omitempty"`
}

// OperationSnapshot is the serializable view of one operation.
type OperationSnapshot struct {
	Tool   string          `json:"tool"`
	Family string          `json:"family"`
	Params []ParamSnapshot `json:"params,omitempty"`
}

// Snapshot renders the registry as plain data, suitable for publishing as a
// resource so clients can discover valid parameter values without probing.
func (r *Registry) Snapshot() []OperationSnapshot {
	out := make([]OperationSnapshot, 0, len(r.names))
	for _, name := range r.names {
		op := r.ops[name]
		snap := OperationSnapshot{Tool: op.Name, Family: op.Family}
		for _, p := range op.Params {
			ps := ParamSnapshot{Name: p.Name, Required: p.Required, DependsOn: p.DependsOn}
			if p.Allow != nil {
				ps.Allowed = p.Allow.Values()
			}
			if p.Dependent != nil {
				ps.AllowedBy = make(map[string][]string, len(p.Dependent.Parents()))
				for _, parent := range p.Dependent.Parents() {
					ps.AllowedBy[parent] = p.Dependent.ChildrenOf(parent).Values()
				}
			}
			snap.Params = append(snap.Params, ps)
		}
		out = append(out, snap)
	}
	return out
}
