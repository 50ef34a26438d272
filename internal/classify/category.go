package classify

import (
	"strings"

	"github.com/insightdelivered/transaction-engine/internal/models"
)

// Confidence levels for the three classification outcomes.
const (
	merchantHitConfidence = 0.9
	textHitConfidence     = 0.7
	defaultConfidence     = 0.3
)

// Rule maps a category to the merchant/domain keywords that imply it.
// Rules are plain data so the taxonomy can be extended without code
// changes; see LoadRules.
type Rule struct {
	Category models.Category `yaml:"category"`
	Keywords []string        `yaml:"keywords"`
}

// DefaultRules returns the built-in keyword table, ordered so that the
// more specific categories match first (EMI before Transfer, Salary before
// Transfer).
func DefaultRules() []Rule {
	return []Rule{
		{models.CategoryFood, []string{
			"swiggy", "zomato", "dominos", "pizza", "mcdonald", "kfc",
			"burger", "restaurant", "cafe", "eatery", "dhaba", "biryani",
			"food", "dining",
		}},
		{models.CategoryGroceries, []string{
			"bigbasket", "blinkit", "zepto", "grofers", "dmart",
			"big bazaar", "reliance fresh", "grocery", "groceries",
			"supermarket", "kirana", "bazaar", "mart",
		}},
		{models.CategoryTransport, []string{
			"uber", "ola", "rapido", "redbus", "irctc", "metro",
			"petrol", "diesel", "fuel", "fastag", "parking", "toll", "cab",
		}},
		{models.CategoryShopping, []string{
			"amazon", "flipkart", "myntra", "ajio", "nykaa", "meesho",
			"snapdeal", "shopping", "store", "mall", "retail",
		}},
		{models.CategoryEntertainment, []string{
			"netflix", "hotstar", "prime video", "spotify", "sonyliv",
			"zee5", "bookmyshow", "pvr", "inox", "gaming", "movie",
		}},
		{models.CategoryUtilities, []string{
			"electricity", "bescom", "mseb", "airtel", "jio", "vodafone",
			"vi recharge", "broadband", "wifi", "dth", "recharge",
			"water bill", "gas bill", "lpg", "postpaid", "bill payment",
		}},
		{models.CategoryHealthcare, []string{
			"pharmacy", "apollo", "medplus", "netmeds", "pharmeasy",
			"1mg", "hospital", "clinic", "diagnostic", "doctor", "medical",
		}},
		{models.CategoryEducation, []string{
			"school", "college", "university", "udemy", "coursera",
			"byjus", "unacademy", "tuition", "course fee", "exam fee",
		}},
		{models.CategoryEMI, []string{
			"emi", "loan", "instalment", "installment", "repayment",
			"bajaj fin", "home credit",
		}},
		{models.CategorySalary, []string{
			"salary", "payroll", "wages", "stipend",
		}},
		{models.CategoryInvestment, []string{
			"zerodha", "groww", "upstox", "mutual fund", "sip", "nps",
			"ppf", "fixed deposit",
		}},
		{models.CategoryTravel, []string{
			"makemytrip", "goibibo", "cleartrip", "oyo", "airbnb",
			"indigo", "air india", "vistara", "hotel", "flight",
		}},
		{models.CategoryTransfer, []string{
			"transfer", "neft", "imps", "rtgs", "self", "own account",
		}},
	}
}

// Classifier assigns spend categories from a keyword table.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a classifier with the built-in rules.
func NewClassifier() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// NewClassifierWithRules returns a classifier with a custom rule table,
// e.g. one loaded via LoadRules.
func NewClassifierWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Categorize assigns a category and confidence. A keyword hit on the
// merchant name scores 0.9, a hit anywhere in the full text 0.7, and no
// hit falls back to Other at 0.3.
func (c *Classifier) Categorize(merchant, text string) (models.Category, float64) {
	merchantLower := strings.ToLower(merchant)
	textLower := strings.ToLower(text)

	if merchantLower != "" {
		for _, rule := range c.rules {
			for _, kw := range rule.Keywords {
				if strings.Contains(merchantLower, kw) {
					return rule.Category, merchantHitConfidence
				}
			}
		}
	}
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(textLower, kw) {
				return rule.Category, textHitConfidence
			}
		}
	}
	return models.CategoryOther, defaultConfidence
}
