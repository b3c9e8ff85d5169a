package catalog

// Allow-lists for the CDISC Library tool parameters. The memberships mirror
// the published CDISC standards: observation classes and datasets per
// implementation guide, ADaM product/datastructure pairs, QRS instrument
// versions, and the dated controlled terminology packages.

// SDTMIGClasses are the observation classes of the SDTM Implementation Guide.
var SDTMIGClasses = NewAllowList(
	"GeneralObservations", "Interventions", "Events", "Findings", "FindingsAbout",
	"SpecialPurpose", "TrialDesign", "StudyReference", "Relationship",
)

// SDTMIGDatasets are the dataset (domain) codes of the SDTM Implementation Guide.
var SDTMIGDatasets = NewAllowList(
	"AG", "CM", "EC", "EX", "ML", "PR", "SU", "AE", "BE", "CE", "DS", "DV", "HO",
	"MH", "BS", "CP", "DA", "DD", "EG", "FT", "GF", "IE", "IS", "LB", "MB", "MI",
	"MK", "MS", "NV", "OE", "PC", "PE", "PP", "QS", "RE", "RP", "RS", "SC", "SS",
	"TR", "TU", "UR", "VS", "FA", "SR", "CO", "DM", "SE", "SM", "SV", "TA", "TD",
	"TE", "TI",
)

// SDTMClasses are the observation classes of the SDTM model. The model adds
// AssociatedPersons on top of the implementation guide classes.
var SDTMClasses = NewAllowList(
	"GeneralObservations", "Interventions", "Events", "Findings", "FindingsAbout",
	"SpecialPurpose", "AssociatedPersons", "TrialDesign", "StudyReference",
	"Relationship",
)

// SDTMDatasets are the dataset codes of the SDTM model.
var SDTMDatasets = NewAllowList(
	"DM", "CO", "SE", "SJ", "SV", "SM", "TE", "TA", "TX", "TT", "TP", "TV", "TD",
	"TM", "TI", "TS", "AC", "DI", "OI", "RELREC", "SUPPQUAL", "POOLDEF", "RELSUB",
	"RELREF", "DR", "APRELSUB", "RELSPEC",
)

// SENDIGClasses are the observation classes of the SEND Implementation Guide.
var SENDIGClasses = NewAllowList(
	"GeneralObservations", "SpecialPurpose", "Interventions", "Events", "Findings",
	"TrialDesign", "Relationship",
)

// SENDIGDatasets are the dataset codes of the SEND Implementation Guide.
var SENDIGDatasets = NewAllowList(
	"DM", "CO", "SE", "EX", "DS", "BW", "BG", "CL", "DD", "FW", "LB", "MA", "MI",
	"OM", "PM", "PC", "PP", "SC", "TF", "VS", "EG", "CV", "RE", "TE", "TA", "TX",
	"TS", "RELREC", "SUPPQUAL", "POOLDEF",
)

// CDASHIGClasses are the observation classes of the CDASH Implementation Guide.
var CDASHIGClasses = NewAllowList(
	"Interventions", "Events", "Findings", "FindingsAbout", "SpecialPurpose",
)

// CDASHIGDomains are the domain codes of the CDASH Implementation Guide.
var CDASHIGDomains = NewAllowList(
	"AG", "CM", "EC", "EX", "ML", "PR", "SU", "AE", "CE", "DS", "DV", "HO", "MH",
	"SA", "CP", "CV", "DA", "DD", "EG", "GF", "IE", "LB", "MB", "MI", "MK", "MS",
	"NV", "OE", "PC", "PE", "RE", "RP", "RS", "SC", "TR", "TU", "UR", "VS", "FA",
	"SR", "CO", "DM",
)

// CDASHClasses are the classes of the CDASH model.
var CDASHClasses = NewAllowList(
	"Interventions", "Events", "Findings", "FindingsAbout", "SpecialPurpose",
	"Identifiers", "AssociatedPersonsIdentifiers", "Timing",
)

// CDASHDomains are the domain codes of the CDASH model.
var CDASHDomains = NewAllowList("AE", "CO", "DM", "DS", "MH", "MS")

// ADaMDatastructures maps each ADaM product to the datastructures it defines.
// A datastructure such as ADSL exists in several products, so membership is
// only decidable once the product is known.
var ADaMDatastructures = NewDependentAllowList().
	Add("adam-nca-1-0", "ADNCA").
	Add("adamig-1-0", "ADSL", "BDS").
	Add("adamig-1-1", "ADSL", "BDS").
	Add("adam-occds-1-0", "OCCDS").
	Add("adam-occds-1-1", "OCCDS", "AE").
	Add("adam-adae-1-0", "ADAE").
	Add("adam-poppk-1-0", "ADPPK").
	Add("adam-tte-1-0", "ADTTE").
	Add("adamig-1-2", "ADSL", "BDS").
	Add("adam-md-1-0", "ADDL", "MDOCCDS", "MDBDS", "MDTTE").
	Add("adamig-1-3", "ADSL", "BDS", "TTE")

// QRSInstrumentVersions maps each QRS instrument to its published versions.
var QRSInstrumentVersions = NewDependentAllowList().
	Add("AIMS01", "2-0").
	Add("APCH1", "1-0").
	Add("ATLAS1", "1-0").
	Add("CGI02", "2-1").
	Add("HAMA1", "2-1").
	Add("KFSS1", "2-0").
	Add("KPSS1", "2-0").
	Add("PGI01", "1-1").
	Add("SIXMW1", "1-0")

// CTPackages are the dated controlled terminology package identifiers the
// server exposes, grouped by standard prefix.
var CTPackages = NewAllowList(
	"adamct-2014-09-26", "adamct-2015-12-18", "adamct-2016-03-25", "adamct-2016-09-30",
	"adamct-2016-12-16", "adamct-2017-03-31", "adamct-2017-09-29", "adamct-2018-12-21",
	"adamct-2019-03-29", "adamct-2019-12-20", "adamct-2020-03-27", "adamct-2020-06-26",
	"adamct-2020-11-06", "adamct-2021-12-17", "adamct-2022-06-24", "adamct-2023-03-31",
	"adamct-2023-06-30", "adamct-2024-03-29", "adamct-2024-09-27", "adamct-2025-03-28",
	"adamct-2025-09-26",
	"cdashct-2014-09-26", "cdashct-2015-03-27", "cdashct-2016-03-25", "cdashct-2016-09-30",
	"cdashct-2016-12-16", "cdashct-2017-09-29", "cdashct-2018-03-30", "cdashct-2018-06-29",
	"cdashct-2018-09-28", "cdashct-2018-12-21", "cdashct-2019-03-29", "cdashct-2019-06-28",
	"cdashct-2019-12-20", "cdashct-2020-11-06", "cdashct-2020-12-18", "cdashct-2021-03-26",
	"cdashct-2021-06-25", "cdashct-2021-09-24", "cdashct-2021-12-17", "cdashct-2022-06-24",
	"cdashct-2022-09-30", "cdashct-2022-12-16", "cdashct-2024-09-27", "cdashct-2025-03-28",
	"coact-2014-12-19", "coact-2015-03-27",
	"ddfct-2022-09-30", "ddfct-2022-12-16", "ddfct-2023-03-31", "ddfct-2023-06-30",
	"ddfct-2023-09-29", "ddfct-2023-12-15", "ddfct-2024-03-29", "ddfct-2024-09-27",
	"ddfct-2025-09-26",
	"define-xmlct-2019-12-20", "define-xmlct-2020-03-27", "define-xmlct-2020-06-26",
	"define-xmlct-2020-11-06", "define-xmlct-2020-12-18", "define-xmlct-2021-03-26",
	"define-xmlct-2021-06-25", "define-xmlct-2021-09-24", "define-xmlct-2021-12-17",
	"define-xmlct-2022-09-30", "define-xmlct-2022-12-16", "define-xmlct-2023-06-30",
	"define-xmlct-2023-12-15", "define-xmlct-2024-03-29", "define-xmlct-2024-09-27",
	"define-xmlct-2025-03-28", "define-xmlct-2025-09-26",
	"glossaryct-2020-12-18", "glossaryct-2021-12-17", "glossaryct-2022-12-16",
	"glossaryct-2023-12-15", "glossaryct-2024-09-27", "glossaryct-2025-09-26",
	"mrctct-2024-03-29", "mrctct-2024-09-27", "mrctct-2025-09-26",
	"protocolct-2017-03-31", "protocolct-2017-06-30", "protocolct-2017-09-29",
	"protocolct-2018-03-30", "protocolct-2018-06-29", "protocolct-2018-09-28",
	"protocolct-2019-03-29", "protocolct-2019-06-28", "protocolct-2019-09-27",
	"protocolct-2019-12-20", "protocolct-2020-03-27", "protocolct-2020-06-26",
	"protocolct-2020-11-06", "protocolct-2020-12-18", "protocolct-2021-03-26",
	"protocolct-2021-06-25", "protocolct-2021-09-24", "protocolct-2021-12-17",
	"protocolct-2022-03-25", "protocolct-2022-06-24", "protocolct-2022-09-30",
	"protocolct-2022-12-16", "protocolct-2023-03-31", "protocolct-2023-06-30",
	"protocolct-2023-09-29", "protocolct-2023-12-15", "protocolct-2024-03-29",
	"protocolct-2024-09-27", "protocolct-2025-03-28", "protocolct-2025-09-26",
	"qrsct-2015-06-26", "qrsct-2015-09-25",
	"qs-ftct-2014-09-26",
	"sdtmct-2014-09-26", "sdtmct-2014-12-19", "sdtmct-2015-03-27", "sdtmct-2015-06-26",
	"sdtmct-2015-09-25", "sdtmct-2015-12-18", "sdtmct-2016-03-25", "sdtmct-2016-06-24",
	"sdtmct-2016-09-30", "sdtmct-2016-12-16", "sdtmct-2017-03-31", "sdtmct-2017-06-30",
	"sdtmct-2017-09-29", "sdtmct-2017-12-22", "sdtmct-2018-03-30", "sdtmct-2018-06-29",
	"sdtmct-2018-09-28", "sdtmct-2018-12-21", "sdtmct-2019-03-29", "sdtmct-2019-06-28",
	"sdtmct-2019-09-27", "sdtmct-2019-12-20", "sdtmct-2020-03-27", "sdtmct-2020-06-26",
	"sdtmct-2020-11-06", "sdtmct-2020-12-18", "sdtmct-2021-03-26", "sdtmct-2021-06-25",
	"sdtmct-2021-09-24", "sdtmct-2021-12-17", "sdtmct-2022-03-25", "sdtmct-2022-06-24",
	"sdtmct-2022-09-30", "sdtmct-2022-12-16", "sdtmct-2023-03-31", "sdtmct-2023-06-30",
	"sdtmct-2023-09-29", "sdtmct-2023-12-15", "sdtmct-2024-03-29", "sdtmct-2024-09-27",
	"sdtmct-2025-03-28", "sdtmct-2025-09-26",
	"sendct-2014-09-26", "sendct-2014-12-19", "sendct-2015-03-27", "sendct-2015-06-26",
	"sendct-2015-09-25", "sendct-2015-12-18", "sendct-2016-03-25", "sendct-2016-06-24",
	"sendct-2016-09-30", "sendct-2016-12-16", "sendct-2017-03-31", "sendct-2017-06-30",
	"sendct-2017-09-29", "sendct-2017-12-22", "sendct-2018-03-30", "sendct-2018-06-29",
	"sendct-2018-09-28", "sendct-2018-12-21", "sendct-2019-03-29", "sendct-2019-06-28",
	"sendct-2019-09-27", "sendct-2019-12-20", "sendct-2020-03-27", "sendct-2020-06-26",
	"sendct-2020-11-06", "sendct-2020-12-18", "sendct-2021-03-26", "sendct-2021-06-25",
	"sendct-2021-09-24", "sendct-2021-12-17", "sendct-2022-03-25", "sendct-2022-06-24",
	"sendct-2022-09-30", "sendct-2022-12-16", "sendct-2023-03-31", "sendct-2023-06-30",
	"sendct-2023-09-29", "sendct-2023-12-15", "sendct-2024-03-29", "sendct-2024-09-27",
	"sendct-2025-03-28", "sendct-2025-09-26",
	"tmfct-2024-09-27",
)
