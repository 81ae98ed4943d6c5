package naming

import (
	"fmt"
	"regexp"
)

// GrammarSet selects which family of folder grammars to resolve against.
type GrammarSet string

const (
	SetStandard GrammarSet = "wgs_csbd"
	SetAlt      GrammarSet = "gbdf_mcr"
)

// Grammar is one recognized folder-name shape. Each grammar captures exactly
// three groups: suite number, edit identifier, response code.
type Grammar struct {
	Name string
	re   *regexp.Regexp
}

// Match is a successfully parsed folder name.
type Match struct {
	Grammar      string
	SuiteRaw     string
	EditID       string
	ResponseCode string
	Category     Category
	SubEdit      int // 0 unless the folder carries a Sub Edit number
}

const (
	suitePart = `(\d{1,3})`
	codePart  = `([A-Za-z0-9]+)`
)

// descriptive builds a grammar whose middle is a fixed human-written phrase
// followed by the WGS_CSBD family token, then edit id and response code.
func descriptive(name, middle string) Grammar {
	return Grammar{
		Name: name,
		re: regexp.MustCompile(`^TS_` + suitePart + `_` + regexp.QuoteMeta(middle) +
			`_WGS_CSBD_` + codePart + `_` + codePart + `_sur$`),
	}
}

// standardGrammars recognizes the WGS_CSBD folder family. First match wins,
// so the generic REVENUE shape sits ahead of the descriptive phrases. Only
// the generic shape tolerates the payloads marker (including its historical
// _ayloads misspelling) before the _sur tail.
var standardGrammars = []Grammar{
	{
		Name: "revenue-generic",
		re: regexp.MustCompile(`^TS_` + suitePart + `_REVENUE_WGS_CSBD_` +
			codePart + `_` + codePart + `(?:_payloads|_ayloads)?_sur$`),
	},
	{
		Name: "revenue-services",
		re: regexp.MustCompile(`^TS_` + suitePart +
			`_Revenue code Services not payable on Facility claim Sub Edit \d+_WGS_CSBD_` +
			codePart + `_` + codePart + `_sur$`),
	},
	descriptive("lab-panel", "Lab panel Model"),
	descriptive("recovery-room", "Recovery Room Reimbursement"),
	descriptive("covid", "Covid"),
	descriptive("laterality", "Laterality Policy-Disgnosis to Diagnosis"),
	descriptive("device-dependent", "Device Dependent Procedures(R1)-1B"),
	descriptive("revenue-model", "revenue model"),
	descriptive("revenue-hcpcs", "Revenue Code to HCPCS Xwalk-1B"),
	descriptive("incidental", "Incidentcal Services Facility"),
	descriptive("revenue-cr-v3", "Revenue model CR v3"),
	descriptive("hcpcs-revenue", "HCPCS to Revenue Code Xwalk"),
	descriptive("multiple-em", "Multiple E&M Same day"),
}

// altGrammars recognizes the GBDF MCR folder family, which carries no
// WGS_CSBD token.
var altGrammars = []Grammar{
	{
		Name: "covid-gbdf-mcr",
		re: regexp.MustCompile(`^TS_` + suitePart + `_Covid_gbdf_mcr_` +
			codePart + `_` + codePart + `_sur$`),
	},
}

// Resolve parses folderName against the grammars of the given set. Grammars
// are tried in registration order and the first match wins. Returns ErrNoMatch
// when nothing fits.
func Resolve(folderName string, set GrammarSet) (Match, error) {
	var grammars []Grammar
	switch set {
	case SetAlt:
		grammars = altGrammars
	case SetStandard:
		grammars = standardGrammars
	default:
		return Match{}, fmt.Errorf("unknown grammar set %q", set)
	}
	for _, g := range grammars {
		m := g.re.FindStringSubmatch(folderName)
		if m == nil {
			continue
		}
		match := Match{
			Grammar:      g.Name,
			SuiteRaw:     m[1],
			EditID:       m[2],
			ResponseCode: m[3],
			Category:     ClassifyCategory(folderName),
		}
		if n, ok := SubEditNumber(folderName); ok {
			match.SubEdit = n
		}
		return match, nil
	}
	return Match{}, fmt.Errorf("%w: %s", ErrNoMatch, folderName)
}
