package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/allensrj/mcp-cdisc-library/internal/tools/output"
)

// Operation families, used as the metrics and logging dimension.
const (
	FamilyProducts = "products"
	FamilySDTMIG   = "sdtmig"
	FamilySDTM     = "sdtm"
	FamilySENDIG   = "sendig"
	FamilyCDASHIG  = "cdashig"
	FamilyCDASH    = "cdash"
	FamilyADaM     = "adam"
	FamilyQRS      = "qrs"
	FamilyCT       = "ct"
)

// Per-call timeouts. Controlled terminology packages are large payloads and
// get a longer budget.
const (
	DefaultTimeout = 15 * time.Second
	CTTimeout      = 30 * time.Second
)

// Registry holds the operation table and resolves operations by tool name.
type Registry struct {
	names []string
	ops   map[string]*Operation
}

// Get returns the operation registered under name.
func (r *Registry) Get(name string) (*Operation, error) {
	op, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", name)
	}
	return op, nil
}

// MustGet is Get for statically known names; it panics on a miss.
func (r *Registry) MustGet(name string) *Operation {
	op, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return op
}

// Names returns the registered tool names in table order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	return len(r.names)
}

func newRegistry(ops ...*Operation) *Registry {
	r := &Registry{ops: make(map[string]*Operation, len(ops))}
	for _, op := range ops {
		if _, ok := r.ops[op.Name]; ok {
			panic(fmt.Sprintf("duplicate operation %q", op.Name))
		}
		r.names = append(r.names, op.Name)
		r.ops[op.Name] = op
	}
	return r
}

func versionParam(standard, examples string) ParamSpec {
	return ParamSpec{
		Name:        "version",
		Required:    true,
		Description: fmt.Sprintf("The %s version, e.g. %s.", standard, examples),
	}
}

// DefaultRegistry builds the operation table: every CDISC Library endpoint
// the server exposes, with its parameters, allow-lists, path templates,
// response shaping and timeout.
func DefaultRegistry() *Registry {
	return newRegistry(
		&Operation{
			Name:        "get_CDISC_Library_api_product_list",
			Family:      FamilyProducts,
			Description: "Get the master list of all CDISC Library API products and their available versions. Use this tool when the user asks about available CDISC standards, supported versions (e.g. \"What versions of SDTM are available?\"), or wants to explore the catalog.",
			ListPath:    "/mdr/products",
			ListQuery:   "expand=false",
			Timeout:     DefaultTimeout,
		},
		&Operation{
			Name:        "get_sdtmig_class_info",
			Family:      FamilySDTMIG,
			Description: "Get SDTM Implementation Guide (SDTMIG) class information or the list of datasets within a class. Omit className to list all observation classes for the version. This tool does not return dataset variables; use get_sdtmig_dataset_info for those.",
			Params: []ParamSpec{
				versionParam("SDTMIG", `"3-1-2", "3-1-3", "3-2", "3-3", "3-4", "ap-1-0", "md-1-0" or "md-1-1"`),
				{Name: "className", Allow: SDTMIGClasses, Description: "The SDTMIG observation class. One of: " + joinValues(SDTMIGClasses) + ". If omitted, lists all classes for the version."},
			},
			ListPath:    "/mdr/sdtmig/{version}/classes",
			DetailPath:  "/mdr/sdtmig/{version}/classes/{className}/datasets",
			DetailQuery: "expand=false",
			Timeout:     DefaultTimeout,
		},
		&Operation{
			Name:        "get_sdtmig_dataset_info",
			Family:      FamilySDTMIG,
			Description: "Get detailed metadata (variables, structure) for a specific SDTMIG dataset (domain), or the list of all datasets when the dataset is omitted.",
			Params: []ParamSpec{
				versionParam("SDTMIG", `"3-1-2", "3-1-3", "3-2", "3-3", "3-4", "ap-1-0", "md-1-0" or "md-1-1"`),
				{Name: "dataset", Allow: SDTMIGDatasets, Description: "The two-character domain code. One of: " + joinValues(SDTMIGDatasets) + ". If omitted, lists all datasets for the version."},
			},
			ListPath:   "/mdr/sdtmig/{version}/datasets",
			DetailPath: "/mdr/sdtmig/{version}/datasets/{dataset}",
			Timeout:    DefaultTimeout,
		},
		&Operation{
			Name:        "get_sdtm_model_class_info",
			Family:      FamilySDTM,
			Description: "Get Study Data Tabulation Model (SDTM) class information. Omit className to list all classes for the version.",
			Params: []ParamSpec{
				versionParam("SDTM", `"1-2" through "1-8", "2-0" or "2-1"`),
				{Name: "className", Allow: SDTMClasses, Description: "The SDTM class. One of: " + joinValues(SDTMClasses) + ". If omitted, lists all classes for the version."},
			},
			ListPath:   "/mdr/sdtm/{version}/classes",
			DetailPath: "/mdr/sdtm/{version}/classes/{className}",
			Timeout:    DefaultTimeout,
		},
		&Operation{
			Name:        "get_sdtm_model_dataset_info",
			Family:      FamilySDTM,
			Description: "Get Study Data Tabulation Model (SDTM) dataset (domain) definitions. Omit dataset to list all datasets for the version.",
			Params: []ParamSpec{
				versionParam("SDTM", `"1-2" through "1-8", "2-0" or "2-1"`),
				{Name: "dataset", Allow: SDTMDatasets, Description: "The SDTM dataset. One of: " + joinValues(SDTMDatasets) + ". If omitted, lists all datasets for the version."},
			},
			ListPath:   "/mdr/sdtm/{version}/datasets",
			DetailPath: "/mdr/sdtm/{version}/datasets/{dataset}",
			Timeout:    DefaultTimeout,
		},
		&Operation{
			Name:        "get_sendig_class_info",
			Family:      FamilySENDIG,
			Description: "Get SEND Implementation Guide (SENDIG) class information. Omit className to list all classes for the version.",
			Params: []ParamSpec{
				versionParam("SENDIG", `"3-0", "3-1", "3-1-1", "ar-1-0", "dart-1-1" or "genetox-1-0"`),
				{Name: "className", Allow: SENDIGClasses, Description: "The SENDIG class. One of: " + joinValues(SENDIGClasses) + ". If omitted, lists all classes for the version."},
			},
			ListPath:   "/mdr/sendig/{version}/classes",
			DetailPath: "/mdr/sendig/{version}/classes/{className}",
			Timeout:    DefaultTimeout,
		},
		&Operation{
			Name:        "get_sendig_dataset_info",
			Family:      FamilySENDIG,
			Description: "Get SEND Implementation Guide (SENDIG) dataset definitions. Omit dataset to list all datasets for the version.",
			Params: []ParamSpec{
				versionParam("SENDIG", `"3-0", "3-1", "3-1-1", "ar-1-0", "dart-1-1" or "genetox-1-0"`),
				{Name: "dataset", Allow: SENDIGDatasets, Description: "The SENDIG dataset. One of: " + joinValues(SENDIGDatasets) + ". If omitted, lists all datasets for the version."},
			},
			ListPath:   "/mdr/sendig/{version}/datasets",
			DetailPath: "/mdr/sendig/{version}/datasets/{dataset}",
			Timeout:    DefaultTimeout,
		},
		&Operation{
			Name:        "get_cdashig_class_info",
			Family:      FamilyCDASHIG,
			Description: "Get CDASH Implementation Guide (CDASHIG) class information or the domains within a class. Omit className to list all classes for the version.",
			Params: []ParamSpec{
				versionParam("CDASHIG", `"1-1-1", "2-0", "2-1", "2-2" or "2-3"`),
				{Name: "className", Allow: CDASHIGClasses, Description: "The CDASHIG class. One of: " + joinValues(CDASHIGClasses) + ". If omitted, lists all classes for the version."},
			},
			ListPath:   "/mdr/cdashig/{version}/classes",
			DetailPath: "/mdr/cdashig/{version}/classes/{className}/domains",
			Timeout:    DefaultTimeout,
		},
		&Operation{
			Name:        "get_cdashig_domain_info",
			Family:      FamilyCDASHIG,
			Description: "Get CDASH Implementation Guide (CDASHIG) domain definitions. Omit domains to list all domains for the version.",
			Params: []ParamSpec{
				versionParam("CDASHIG", `"1-1-1", "2-0", "2-1", "2-2" or "2-3"`),
				{Name: "domains", Allow: CDASHIGDomains, Description: "The CDASHIG domain. One of: " + joinValues(CDASHIGDomains) + ". If omitted, lists all domains for the version."},
			},
			ListPath:   "/mdr/cdashig/{version}/domains",
			DetailPath: "/mdr/cdashig/{version}/domains/{domains}",
			Timeout:    DefaultTimeout,
		},
		&Operation{
			Name:        "get_cdashig_scenarios_info",
			Family:      FamilyCDASHIG,
			Description: "Get CDASH Implementation Guide (CDASHIG) data collection scenarios. Omit scenario to list all scenarios for the version.",
			Params: []ParamSpec{
				versionParam("CDASHIG", `"1-1-1", "2-0", "2-1", "2-2" or "2-3"`),
				{Name: "scenario", Description: "The CDASHIG scenario identifier, e.g. \"DS\". If omitted, lists all scenarios for the version."},
			},
			ListPath:   "/mdr/cdashig/{version}/scenarios",
			DetailPath: "/mdr/cdashig/{version}/scenarios/{scenario}",
			Timeout:    DefaultTimeout,
		},
		&Operation{
			Name:        "get_cdash_model_class_info",
			Family:      FamilyCDASH,
			Description: "Get CDASH model class information. Omit className to list all classes for the version.",
			Params: []ParamSpec{
				versionParam("CDASH model", `"1-0", "1-1", "1-2" or "1-3"`),
				{Name: "className", Allow: CDASHClasses, Description: "The CDASH model class. One of: " + joinValues(CDASHClasses) + ". If omitted, lists all classes for the version."},
			},
			ListPath:   "/mdr/cdash/{version}/classes",
			DetailPath: "/mdr/cdash/{version}/classes/{className}",
			Timeout:    DefaultTimeout,
		},
		&Operation{
			Name:        "get_cdash_model_domain_info",
			Family:      FamilyCDASH,
			Description: "Get CDASH model domain definitions. Omit domain to list all domains for the version.",
			Params: []ParamSpec{
				versionParam("CDASH model", `"1-0", "1-1", "1-2" or "1-3"`),
				{Name: "domain", Allow: CDASHDomains, Description: "The CDASH model domain. One of: " + joinValues(CDASHDomains) + ". If omitted, lists all domains for the version."},
			},
			ListPath:   "/mdr/cdash/{version}/domains",
			DetailPath: "/mdr/cdash/{version}/domains/{domain}",
			Timeout:    DefaultTimeout,
		},
		&Operation{
			Name:        "get_adam_product_info",
			Family:      FamilyADaM,
			Description: "Get ADaM product and datastructure information from CDISC Library. Analysis variable listings are cleared from the response to keep it small; use get_adam_datastructure_info for variable-level detail.",
			Params: []ParamSpec{
				{Name: "product", Required: true, Description: `The ADaM product identifier, e.g. "adam-2-1", "adamig-1-3", "adam-adae-1-0", "adam-occds-1-1", "adam-tte-1-0" or "adam-md-1-0".`},
			},
			ListPath: "/mdr/adam/{product}",
			Timeout:  DefaultTimeout,
			Shape:    output.ClearField("analysisVariables"),
		},
		&Operation{
			Name:        "get_adam_datastructure_info",
			Family:      FamilyADaM,
			Description: "Get the detailed definition of a specific ADaM datastructure, including its analysis variables. The datastructure must belong to the requested product.",
			Params: []ParamSpec{
				{Name: "product", Required: true, Description: "The ADaM product identifier. One of: " + joinParents(ADaMDatastructures) + "."},
				{Name: "datastructure", Required: true, Dependent: ADaMDatastructures, DependsOn: "product", Description: "The datastructure within the product, e.g. \"ADSL\" or \"BDS\" for adamig products."},
			},
			ListPath: "/mdr/adam/{product}/datastructures/{datastructure}",
			Timeout:  DefaultTimeout,
			Shape:    output.PruneLinks("analysisVariables"),
		},
		&Operation{
			Name:        "get_qrs_info",
			Family:      FamilyQRS,
			Description: "Get QRS (questionnaires, ratings and scales) instrument information from CDISC Library for a specific instrument version.",
			Params: []ParamSpec{
				{Name: "instrument", Required: true, Description: "The QRS instrument name. One of: " + joinParents(QRSInstrumentVersions) + "."},
				{Name: "version", Required: true, Dependent: QRSInstrumentVersions, DependsOn: "instrument", Description: "The published version of the instrument, e.g. \"2-0\" for AIMS01."},
			},
			ListPath: "/mdr/qrs/instruments/{instrument}/versions/{version}",
			Timeout:  DefaultTimeout,
		},
		&Operation{
			Name:        "get_package_ct_info",
			Family:      FamilyCT,
			Description: "Get a controlled terminology (CT) package from CDISC Library, reduced to the concept IDs and submission values of its codelists and terms. Package identifiers combine a standard prefix (adamct, cdashct, coact, ddfct, define-xmlct, glossaryct, mrctct, protocolct, qrsct, qs-ftct, sdtmct, sendct, tmfct) with a publication date, e.g. \"sdtmct-2025-09-26\". Read the cdisc://catalog resource for the full list.",
			Params: []ParamSpec{
				{Name: "package", Required: true, Allow: CTPackages, Description: "The CT package identifier, e.g. \"sdtmct-2025-09-26\" or \"adamct-2024-03-29\"."},
			},
			ListPath: "/mdr/ct/packages/{package}",
			Timeout:  CTTimeout,
			Shape:    output.MinimizeCodelists,
		},
		&Operation{
			Name:        "get_package_ct_codelist_info",
			Family:      FamilyCT,
			Description: "Get a single codelist from a controlled terminology package, including all of its terms.",
			Params: []ParamSpec{
				{Name: "package", Required: true, Allow: CTPackages, Description: "The CT package identifier, e.g. \"sdtmct-2025-09-26\"."},
				{Name: "codelist", Required: true, Description: "The codelist concept ID, e.g. \"C66731\"."},
			},
			ListPath: "/mdr/ct/packages/{package}/codelists/{codelist}",
			Timeout:  CTTimeout,
		},
		&Operation{
			Name:        "get_package_ct_codelist_term_info",
			Family:      FamilyCT,
			Description: "Get a single term from a codelist in a controlled terminology package.",
			Params: []ParamSpec{
				{Name: "package", Required: true, Allow: CTPackages, Description: "The CT package identifier, e.g. \"sdtmct-2025-09-26\"."},
				{Name: "codelist", Required: true, Description: "The codelist concept ID, e.g. \"C66731\"."},
				{Name: "term", Required: true, Description: "The term concept ID, e.g. \"C49487\"."},
			},
			ListPath: "/mdr/ct/packages/{package}/codelists/{codelist}/terms/{term}",
			Timeout:  CTTimeout,
		},
	)
}

func joinValues(l *AllowList) string {
	return strings.Join(l.Values(), ", ")
}

func joinParents(d *DependentAllowList) string {
	return strings.Join(d.Parents(), ", ")
}
