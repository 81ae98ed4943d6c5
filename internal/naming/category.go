package naming

import (
	"fmt"
	"regexp"
	"strings"
)

// Category is the descriptive classification of a test-suite folder. It
// drives collection naming and the collection filename prefix only; it never
// affects grammar matching.
type Category string

const (
	CategoryRevenue         Category = "revenue" // generic REVENUE middle
	CategoryRevenueServices Category = "revenue-services"
	CategoryLabPanel        Category = "lab-panel"
	CategoryRecoveryRoom    Category = "recovery-room"
	CategoryCovid           Category = "covid"
	CategoryCovidGBDFMCR    Category = "covid-gbdf-mcr"
	CategoryLaterality      Category = "laterality"
	CategoryDeviceDependent Category = "device-dependent"
	CategoryRevenueModel    Category = "revenue-model"
	CategoryRevenueHCPCS    Category = "revenue-hcpcs"
	CategoryIncidental      Category = "incidental"
	CategoryRevenueCRv3     Category = "revenue-cr-v3"
	CategoryHCPCSRevenue    Category = "hcpcs-revenue"
	CategoryMultipleEM      Category = "multiple-em"
	CategoryUnspecified     Category = "unspecified"
)

// categoryRules classifies a folder by descriptive substring. Ordered most
// specific first so "Covid_gbdf_mcr" wins over "Covid" and the Sub Edit
// revenue names win over the generic REVENUE token.
var categoryRules = []struct {
	token    string
	category Category
}{
	{"Revenue code Services not payable on Facility claim", CategoryRevenueServices},
	{"Laterality Policy-Disgnosis to Diagnosis", CategoryLaterality},
	{"Device Dependent Procedures", CategoryDeviceDependent},
	{"Revenue Code to HCPCS Xwalk-1B", CategoryRevenueHCPCS},
	{"HCPCS to Revenue Code Xwalk", CategoryHCPCSRevenue},
	{"Incidentcal Services Facility", CategoryIncidental},
	{"Recovery Room Reimbursement", CategoryRecoveryRoom},
	{"Revenue model CR v3", CategoryRevenueCRv3},
	{"Multiple E&M Same day", CategoryMultipleEM},
	{"Lab panel Model", CategoryLabPanel},
	{"Covid_gbdf_mcr", CategoryCovidGBDFMCR},
	{"revenue model", CategoryRevenueModel},
	{"_REVENUE_", CategoryRevenue},
	{"Covid", CategoryCovid},
}

// ClassifyCategory returns the category for a folder name, or
// CategoryUnspecified when no known descriptive substring is present.
func ClassifyCategory(folderName string) Category {
	for _, r := range categoryRules {
		if strings.Contains(folderName, r.token) {
			return r.category
		}
	}
	return CategoryUnspecified
}

var reSubEdit = regexp.MustCompile(`Sub Edit (\d+)`)

// SubEditNumber extracts the embedded Sub Edit integer from a
// revenue-services folder name.
func SubEditNumber(folderName string) (int, bool) {
	m := reSubEdit.FindStringSubmatch(folderName)
	if m == nil {
		return 0, false
	}
	n := 0
	for _, c := range m[1] {
		n = n*10 + int(c-'0')
	}
	return n, true
}

// categoryLabels holds the display label each category contributes to its
// collection name: "TS_<suite>_<label>_Collection".
var categoryLabels = map[Category]string{
	CategoryLabPanel:        "Lab panel Model",
	CategoryRecoveryRoom:    "Recovery Room Reimbursement",
	CategoryCovid:           "Covid",
	CategoryCovidGBDFMCR:    "Covid_gbdf_mcr",
	CategoryLaterality:      "Laterality",
	CategoryDeviceDependent: "Device Dependent Procedures",
	CategoryRevenueModel:    "revenue model",
	CategoryRevenueHCPCS:    "Revenue Code to HCPCS Xwalk-1B",
	CategoryIncidental:      "Incidentcal Services Facility",
	CategoryRevenueCRv3:     "Revenue model CR v3",
	CategoryHCPCSRevenue:    "HCPCS to Revenue Code Xwalk",
	CategoryMultipleEM:      "Multiple E&M Same day",
}

// CollectionName builds the collection display name for a matched folder.
// Revenue-services folders embed their Sub Edit number; categories without a
// descriptive label fall back to the compact "ts_<suite>_collection" form.
func CollectionName(cat Category, suite, folderName string) string {
	if cat == CategoryRevenueServices {
		if n, ok := SubEditNumber(folderName); ok {
			return fmt.Sprintf(
				"TS_%s_Revenue code Services not payable on Facility claim Sub Edit %d_Collection",
				suite, n)
		}
		return fmt.Sprintf("ts_%s_collection", suite)
	}
	if label, ok := categoryLabels[cat]; ok {
		return fmt.Sprintf("TS_%s_%s_Collection", suite, label)
	}
	return fmt.Sprintf("ts_%s_collection", suite)
}

// categoryFilePrefixes holds the collection filename prefix per category.
// Categories not listed use the generic "revenue" prefix.
var categoryFilePrefixes = map[Category]string{
	CategoryLabPanel:        "lab",
	CategoryRecoveryRoom:    "recovery",
	CategoryCovid:           "covid",
	CategoryLaterality:      "laterality",
	CategoryDeviceDependent: "device",
	CategoryIncidental:      "incidentcal",
	CategoryRevenueCRv3:     "revenue_model",
	CategoryHCPCSRevenue:    "hcpcs",
	CategoryMultipleEM:      "multiple_em",
}

// CollectionFileName builds the on-disk collection filename for a model. The
// GBDF MCR category uses its own scheme without the wgs_csbd token.
func CollectionFileName(cat Category, editID, responseCode string) string {
	if cat == CategoryCovidGBDFMCR {
		return fmt.Sprintf("covid_gbdf_mcr_%s_%s.json", editID, strings.ToLower(responseCode))
	}
	prefix, ok := categoryFilePrefixes[cat]
	if !ok {
		prefix = "revenue"
	}
	return fmt.Sprintf("%s_wgs_csbd_%s_%s.json", prefix, editID, strings.ToLower(responseCode))
}
