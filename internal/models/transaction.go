package models

import "time"

// Source identifies where a raw text unit came from.
type Source string

const (
	SourceSMS Source = "sms"
	SourcePDF Source = "pdf"
)

// Direction is the money flow of a transaction.
type Direction string

const (
	DirectionExpense Direction = "expense"
	DirectionIncome  Direction = "income"
)

// Category is a spend category from the fixed taxonomy.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryGroceries     Category = "Groceries"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryUtilities     Category = "Utilities"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryEMI           Category = "EMI"
	CategorySalary        Category = "Salary"
	CategoryTransfer      Category = "Transfer"
	CategoryInvestment    Category = "Investment"
	CategoryTravel        Category = "Travel"
	CategoryOther         Category = "Other"
)

// RawUnit is one line or one date-anchored multi-line window of source text.
type RawUnit struct {
	Text   string
	Sender string // SMS only
	Source Source
}

// Transaction is a single extracted transaction record.
//
// A record is only ever emitted with a resolvable date and a positive
// amount; every other field degrades to its zero value.
type Transaction struct {
	ID                 string    `json:"id"`
	Date               time.Time `json:"date"`
	Amount             float64   `json:"amount"`
	Direction          Direction `json:"direction"`
	Description        string    `json:"description"`
	Merchant           string    `json:"merchant,omitempty"`
	Category           Category  `json:"category"`
	CategoryConfidence float64   `json:"categoryConfidence"`
	AccountLast4       string    `json:"accountLast4,omitempty"`
	Balance            float64   `json:"balance,omitempty"`
	UPIID              string    `json:"upiId,omitempty"`
	MobileNumber       string    `json:"mobileNumber,omitempty"`
	Bank               string    `json:"bank"`
	Confidence         float64   `json:"confidence"`
	Source             Source    `json:"source"`
	RawText            string    `json:"rawText,omitempty"`

	// DateFromText records whether the date was read from the text rather
	// than supplied as a reference-timestamp fallback. DirectionResolved
	// records whether a direction keyword matched. Both feed the
	// confidence score and are not part of the output contract.
	DateFromText      bool `json:"-"`
	DirectionResolved bool `json:"-"`
}

// ParseResult is the aggregate output of a batch parse.
type ParseResult struct {
	Transactions []Transaction `json:"transactions"`
	Count        int           `json:"count"`
	Confidences  []float64     `json:"confidences"`
	Bank         Bank          `json:"bank"`
	TotalDebit   float64       `json:"totalDebit"`
	TotalCredit  float64       `json:"totalCredit"`
}
