package catalog

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ShapeFunc transforms a decoded response tree before it is serialized back
// to the caller. Implementations must not mutate their input.
type ShapeFunc func(v any) any

// ParamSpec describes one parameter of an operation.
type ParamSpec struct {
	// Name is the parameter name as exposed in the tool schema and as used
	// in path templates.
	Name string
	// Required marks parameters that must be present. Optional parameters
	// switch the operation from its listing form to its detail form.
	Required bool
	// Allow restricts the value to a flat allow-list. Nil means the value is
	// forwarded unvalidated (e.g. standard versions, codelist codes).
	Allow *AllowList
	// Dependent restricts the value relative to another parameter. When set,
	// DependsOn names the parent parameter and Allow is ignored.
	Dependent *DependentAllowList
	DependsOn string
	// Description documents the parameter in the tool schema.
	Description string
}

// Operation is one CDISC Library endpoint exposed as an MCP tool: its
// parameters, the path templates to render, the response shaping to apply,
// and the per-call timeout. The operation table is the single place a new
// endpoint is added.
type Operation struct {
	// Name is the MCP tool name.
	Name string
	// Family groups operations by standard for logging and metrics
	// (products, sdtmig, sdtm, sendig, cdashig, cdash, adam, qrs, ct).
	Family string
	// Description is the tool description published to clients.
	Description string
	// Params lists the parameters in schema order. A parent parameter always
	// precedes its dependent child.
	Params []ParamSpec
	// ListPath is the path template used when the optional selector is
	// absent. DetailPath is used when every parameter is present; when it is
	// empty the operation has a single form and ListPath is always used.
	// Templates use {name} placeholders matching Params entries.
	ListPath   string
	DetailPath string
	// ListQuery and DetailQuery are raw query strings appended to the
	// corresponding path, without the leading question mark.
	ListQuery   string
	DetailQuery string
	// Timeout bounds the upstream call.
	Timeout time.Duration
	// Shape transforms the decoded response. Nil means identity.
	Shape ShapeFunc
}

// optionalParam returns the operation's optional parameter, if any. The
// operation table never defines more than one.
func (op *Operation) optionalParam() *ParamSpec {
	for i := range op.Params {
		if !op.Params[i].Required {
			return &op.Params[i]
		}
	}
	return nil
}

// Validate checks params against the operation's allow-lists. Parameters are
// checked in declaration order and the first rejection wins, so a dependent
// child is never reported before its parent. Absent optional parameters are
// skipped.
func (op *Operation) Validate(params map[string]string) error {
	for _, p := range op.Params {
		v, ok := params[p.Name]
		if !ok || v == "" {
			if p.Required {
				return fmt.Errorf("missing required parameter %q", p.Name)
			}
			continue
		}
		if p.Dependent != nil {
			if err := ValidateDependent(p.DependsOn, params[p.DependsOn], p.Name, v, p.Dependent); err != nil {
				return err
			}
			continue
		}
		if p.Allow != nil {
			if err := ValidateFlat(p.Name, v, p.Allow); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildPath renders the request path, including any query suffix, for an
// already validated parameter set. When the operation has an optional
// selector and it is absent, the listing form is rendered; otherwise the
// detail form. Values are path-escaped before substitution.
func (op *Operation) BuildPath(params map[string]string) string {
	path, query := op.ListPath, op.ListQuery
	if opt := op.optionalParam(); opt != nil && params[opt.Name] != "" && op.DetailPath != "" {
		path, query = op.DetailPath, op.DetailQuery
	}
	for _, p := range op.Params {
		path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(params[p.Name]))
	}
	if query != "" {
		path += "?" + query
	}
	return path
}
