// Package knowledge holds the domain vocabulary used by the matcher
// and coercer: synonym groups, category indicators, checkbox clusters,
// and the affirmative/negative value lexicons. Tables are built once
// and passed explicitly to their consumers.
package knowledge

// Concept groups a canonical field concept with the name variants an
// extractor is likely to produce for it
type Concept struct {
	Name     string
	Variants []string
}

// Category groups related fields by the indicator substrings that
// appear in their names
type Category struct {
	Name       string
	Indicators []string
}

// ClusterChoice is one selectable option of a checkbox cluster, with
// the value indicators that select it. Choices are evaluated in order
// and the first hit wins.
type ClusterChoice struct {
	Keyword    string
	Indicators []string
}

// CheckboxCluster routes a single categorical source field onto a
// group of mutually exclusive checkboxes. Sources lists the
// normalized names the source field may arrive under.
type CheckboxCluster struct {
	Sources []string
	Choices []ClusterChoice
}

// Tables is the immutable vocabulary consulted during matching and
// value coercion
type Tables struct {
	Concepts     []Concept
	Categories   []Category
	Clusters     []CheckboxCluster
	Affirmatives []string
	Negatives    []string
}

// Default returns the built-in vocabulary for loan application forms
func Default() *Tables {
	return &Tables{
		Concepts:     defaultConcepts(),
		Categories:   defaultCategories(),
		Clusters:     defaultClusters(),
		Affirmatives: defaultAffirmatives(),
		Negatives:    defaultNegatives(),
	}
}

func defaultConcepts() []Concept {
	return []Concept{
		{Name: "ssn", Variants: []string{"social security number", "social security", "ss number", "tax id"}},
		{Name: "borrower name", Variants: []string{"applicant name", "primary borrower", "borrower full name", "name of borrower"}},
		{Name: "co borrower name", Variants: []string{"coborrower name", "co applicant name", "secondary borrower", "spouse name"}},
		{Name: "date of birth", Variants: []string{"dob", "birth date", "birthdate", "born"}},
		{Name: "phone", Variants: []string{"telephone", "phone number", "home phone", "contact number", "cell"}},
		{Name: "email", Variants: []string{"email address", "e mail", "electronic mail"}},
		{Name: "property address", Variants: []string{"subject property address", "property location", "home address", "site address"}},
		{Name: "property value", Variants: []string{"appraised value", "home value", "purchase price", "sales price"}},
		{Name: "loan amount", Variants: []string{"mortgage amount", "amount of loan", "requested amount", "principal"}},
		{Name: "interest rate", Variants: []string{"rate", "note rate", "mortgage rate"}},
		{Name: "loan term", Variants: []string{"term", "number of months", "amortization period", "loan duration"}},
		{Name: "monthly income", Variants: []string{"gross monthly income", "base income", "base employment income", "salary"}},
		{Name: "other income", Variants: []string{"additional income", "supplemental income", "bonus income", "overtime"}},
		{Name: "employer", Variants: []string{"employer name", "company", "name of employer", "place of employment"}},
		{Name: "employer address", Variants: []string{"business address", "work address", "employer location"}},
		{Name: "years employed", Variants: []string{"years on job", "time at employer", "employment length", "yrs on this job"}},
		{Name: "position", Variants: []string{"job title", "title", "occupation", "type of business"}},
		{Name: "marital status", Variants: []string{"married", "unmarried", "separated"}},
		{Name: "dependents", Variants: []string{"number of dependents", "no of dependents", "dependent ages"}},
		{Name: "years of school", Variants: []string{"yrs school", "education years", "schooling"}},
		{Name: "present address", Variants: []string{"current address", "residence address", "street address"}},
		{Name: "mailing address", Variants: []string{"correspondence address", "postal address"}},
		{Name: "rent", Variants: []string{"monthly rent", "rent payment", "present rent"}},
		{Name: "first mortgage", Variants: []string{"first mortgage p i", "1st mortgage", "proposed first mortgage"}},
		{Name: "hazard insurance", Variants: []string{"homeowners insurance", "property insurance"}},
		{Name: "real estate taxes", Variants: []string{"property taxes", "taxes"}},
		{Name: "hoa dues", Variants: []string{"homeowner association dues", "association dues", "hoa"}},
		{Name: "self employed", Variants: []string{"self employment", "business owner", "own business"}},
		{Name: "us citizen", Variants: []string{"citizen", "citizenship", "united states citizen"}},
		{Name: "permanent resident", Variants: []string{"resident alien", "green card"}},
		{Name: "bankruptcy", Variants: []string{"declared bankrupt", "bankrupt"}},
		{Name: "foreclosure", Variants: []string{"foreclosed", "deed in lieu"}},
		{Name: "lawsuit", Variants: []string{"party to a lawsuit", "litigation"}},
		{Name: "down payment", Variants: []string{"downpayment", "source of down payment", "cash deposit"}},
		{Name: "lender", Variants: []string{"lender name", "mortgage company", "creditor"}},
		{Name: "account number", Variants: []string{"acct no", "account no", "loan number"}},
		{Name: "case number", Variants: []string{"agency case number", "file number"}},
	}
}

func defaultCategories() []Category {
	return []Category{
		{Name: "borrower", Indicators: []string{"borrower", "applicant", "buyer"}},
		{Name: "co_borrower", Indicators: []string{"co borrower", "coborrower", "co applicant", "spouse"}},
		{Name: "property", Indicators: []string{"property", "subject", "dwelling", "residence", "address"}},
		{Name: "employment", Indicators: []string{"employ", "job", "business", "occupation", "position"}},
		{Name: "income", Indicators: []string{"income", "salary", "wage", "bonus", "overtime", "commission"}},
		{Name: "loan", Indicators: []string{"loan", "mortgage", "rate", "term", "amortization", "principal"}},
		{Name: "declaration", Indicators: []string{"declaration", "bankrupt", "foreclos", "lawsuit", "citizen", "obligated", "judgment"}},
	}
}

func defaultClusters() []CheckboxCluster {
	return []CheckboxCluster{
		{
			Sources: []string{"mortgage type", "mortgage applied for", "type of mortgage", "loan type"},
			Choices: []ClusterChoice{
				{Keyword: "va", Indicators: []string{"va", "veteran"}},
				{Keyword: "fha", Indicators: []string{"fha"}},
				{Keyword: "usda", Indicators: []string{"usda", "rural"}},
				{Keyword: "conventional", Indicators: []string{"conventional", "standard", "regular"}},
				{Keyword: "other", Indicators: []string{"other"}},
			},
		},
		{
			Sources: []string{"amortization type", "type of amortization"},
			Choices: []ClusterChoice{
				{Keyword: "fixed", Indicators: []string{"fixed"}},
				{Keyword: "gpm", Indicators: []string{"gpm", "graduated"}},
				{Keyword: "arm", Indicators: []string{"arm", "adjustable", "variable"}},
				{Keyword: "other", Indicators: []string{"other"}},
			},
		},
		{
			Sources: []string{"purpose of loan", "loan purpose", "loan purpose type"},
			Choices: []ClusterChoice{
				{Keyword: "purchase", Indicators: []string{"purchase", "buy"}},
				{Keyword: "refinance", Indicators: []string{"refinance", "refi"}},
				{Keyword: "construction permanent", Indicators: []string{"construction permanent", "construction perm"}},
				{Keyword: "construction", Indicators: []string{"construction", "build"}},
				{Keyword: "other", Indicators: []string{"other"}},
			},
		},
		{
			Sources: []string{"property will be", "property usage", "occupancy", "property use"},
			Choices: []ClusterChoice{
				{Keyword: "primary", Indicators: []string{"primary", "principal"}},
				{Keyword: "secondary", Indicators: []string{"secondary", "second home", "vacation"}},
				{Keyword: "investment", Indicators: []string{"investment", "rental"}},
			},
		},
		{
			Sources: []string{"estate will be held in", "estate held in", "estate type"},
			Choices: []ClusterChoice{
				{Keyword: "fee simple", Indicators: []string{"fee simple"}},
				{Keyword: "leasehold", Indicators: []string{"leasehold", "lease"}},
			},
		},
	}
}

func defaultAffirmatives() []string {
	return []string{
		"yes", "true", "on", "y", "1", "checked", "selected", "agree",
		"confirmed", "completed", "active",
		"is ", "are ", "has ", "does ", "was ", "were ",
	}
}

func defaultNegatives() []string {
	return []string{
		"no", "false", "off", "n", "0", "unchecked", "not selected",
		"none", "n/a", "not applicable", "not confirmed",
		"not completed", "inactive", "disagree", "denied",
		"is not", "are not", "has not", "does not", "was not", "were not",
	}
}
