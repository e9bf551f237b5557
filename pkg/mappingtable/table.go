// Package mappingtable maintains the authoritative mapping from
// extractor field names to document field keys, reconciled with an
// on-disk cache of mappings learned from earlier runs.
package mappingtable

// Authoritative returns the in-code mapping from extractor field
// names to document field keys. These entries always win over cached
// ones.
func Authoritative() map[string]string {
	return map[string]string{
		// Mortgage terms
		"Mortgage Applied For":          "Mortgage Applied For",
		"Agency Case Number":            "Agency Case Number",
		"Lender Case Number":            "Lender Case Number",
		"Loan Amount":                   "Loan Amount",
		"Loan Amount Requested":         "Loan Amount",
		"Amount":                        "Loan Amount",
		"Interest Rate":                 "Interest Rate",
		"Number of Months (Loan Term)":  "No. of Months",
		"No. of Months":                 "No. of Months",
		"Amortization Type":             "Amortization Type",

		// Property
		"Subject Property Street Address": "Subject Property Address",
		"Property Street Address":         "Subject Property Address",
		"Subject Property Address":        "Subject Property Address",
		"Number of Units":                 "No. of Units",
		"No. of Units":                    "No. of Units",
		"Legal Description of Subject Property": "Subject Property Description",
		"Year Built":                      "Year Built",
		"Purpose of Loan":                 "Purpose of Loan",
		"Purpose of Refinance":            "Purpose of Refinance",
		"Original Cost":                   "Original Cost",
		"Cost of Improvements":            "Improvements",
		"Estate will be held in":          "Estate will be held in",
		"Title will be held in what names": "Title will be held in what Name(s)",
		"Manner in which Title will be held": "Manner in which Title will be held",

		// Borrower
		"Borrower Name":                   "Borrower Name",
		"Borrower Full Name":              "Borrower Name",
		"Primary Borrower Name":           "Borrower Name",
		"Borrower First Name":             "Borrower First Name",
		"Borrower Middle Name":            "Borrower Middle Name",
		"Borrower Last Name":              "Borrower Last Name",
		"Borrower Social Security Number": "Borrower SSN",
		"Social Security Number":          "Borrower SSN",
		"Borrower SSN":                    "Borrower SSN",
		"Borrower Home Phone":             "Borrower Home Phone",
		"Primary Phone Number":            "Borrower Home Phone",
		"Borrower Date of Birth":          "Borrower DOB",
		"Date of Birth":                   "Borrower DOB",
		"Borrower DOB":                    "Borrower DOB",
		"Borrower Years of School":        "Borrower Yrs School",
		"Marital Status":                  "Borrower Marital Status",
		"Borrower Marital Status":         "Borrower Marital Status",
		"Borrower Present Street Address": "Borrower Present Address",
		"Current Street Address":          "Borrower Present Address",
		"Borrower Present Address":        "Borrower Present Address",
		"Borrower Mailing Address":        "Borrower Mailing Address",
		"Number of Dependents":            "Borrower Dependents No",
		"Dependent Ages":                  "Borrower Dependents Ages",

		// Co-borrower
		"Co-Borrower Name":                   "Co-Borrower Name",
		"Co-Borrower Full Name":              "Co-Borrower Name",
		"Co-Borrower Social Security Number": "Co-Borrower SSN",
		"Co-Borrower SSN":                    "Co-Borrower SSN",
		"Co-Borrower Home Phone":             "Co-Borrower Home Phone",
		"Co-Borrower Date of Birth":          "Co-Borrower DOB",
		"Co-Borrower DOB":                    "Co-Borrower DOB",
		"Co-Borrower Marital Status":         "Co-Borrower Marital Status",
		"Co-Borrower Present Address":        "Co-Borrower Present Address",

		// Employment
		"Borrower Employer Name":          "Borrower Employer",
		"Name of Employer":                "Borrower Employer",
		"Borrower Employer Address":       "Borrower Employer Address",
		"Borrower Years on Job":           "Borrower Yrs on Job",
		"Borrower Position/Title":         "Borrower Position",
		"Borrower Business Phone":         "Borrower Business Phone",
		"Borrower Self Employed":          "Borrower Self Employed",
		"Co-Borrower Employer Name":       "Co-Borrower Employer",
		"Co-Borrower Years on Job":        "Co-Borrower Yrs on Job",
		"Co-Borrower Position/Title":      "Co-Borrower Position",
		"Co-Borrower Self Employed":       "Co-Borrower Self Employed",

		// Income and housing expense
		"Borrower Base Monthly Income":    "Borrower Base Income",
		"Gross Monthly Income":            "Borrower Base Income",
		"Borrower Overtime":               "Borrower Overtime",
		"Borrower Bonuses":                "Borrower Bonuses",
		"Borrower Commissions":            "Borrower Commissions",
		"Borrower Dividends/Interest":     "Borrower Dividends",
		"Present Monthly Rent":            "Present Rent",
		"First Mortgage (P&I)":            "Proposed First Mortgage P&I",
		"Hazard Insurance":                "Proposed Hazard Insurance",
		"Real Estate Taxes":               "Proposed Real Estate Taxes",
		"Mortgage Insurance":              "Proposed Mortgage Insurance",
		"Homeowner Association Dues":      "Proposed HOA Dues",

		// Declarations
		"Outstanding Judgments":              "Declaration A Borrower",
		"Declared Bankrupt (Past 7 Years)":   "Declaration B Borrower",
		"Property Foreclosed (Past 7 Years)": "Declaration C Borrower",
		"Party to a Lawsuit":                 "Declaration D Borrower",
		"US Citizen":                         "Declaration J Borrower",
		"Permanent Resident Alien":           "Declaration K Borrower",
		"Primary Residence":                  "Declaration L Borrower",
	}
}
