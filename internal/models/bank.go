package models

// Bank identifies the issuing bank or payment app of a text unit.
type Bank string

const (
	BankSBI       Bank = "sbi"
	BankHDFC      Bank = "hdfc"
	BankICICI     Bank = "icici"
	BankAxis      Bank = "axis"
	BankKotak     Bank = "kotak"
	BankPNB       Bank = "pnb"
	BankBOB       Bank = "bob"
	BankIDFC      Bank = "idfc"
	BankPhonePe   Bank = "phonepe"
	BankPaytm     Bank = "paytm"
	BankGPay      Bank = "gpay"
	BankAmazonPay Bank = "amazonpay"
	BankUnknown   Bank = "unknown"
)

var bankDisplayNames = map[Bank]string{
	BankSBI:       "State Bank of India",
	BankHDFC:      "HDFC Bank",
	BankICICI:     "ICICI Bank",
	BankAxis:      "Axis Bank",
	BankKotak:     "Kotak Mahindra Bank",
	BankPNB:       "Punjab National Bank",
	BankBOB:       "Bank of Baroda",
	BankIDFC:      "IDFC First Bank",
	BankPhonePe:   "PhonePe",
	BankPaytm:     "Paytm",
	BankGPay:      "Google Pay",
	BankAmazonPay: "Amazon Pay",
}

// DisplayName returns the human-readable issuer name, or "Unknown".
func (b Bank) DisplayName() string {
	if name, ok := bankDisplayNames[b]; ok {
		return name
	}
	return "Unknown"
}

// IsPaymentApp reports whether the issuer is a UPI payment app rather than
// a bank. Payment-app statements scatter a transaction's fields across
// several lines and are routed to the block parser.
func (b Bank) IsPaymentApp() bool {
	switch b {
	case BankPhonePe, BankPaytm, BankGPay, BankAmazonPay:
		return true
	}
	return false
}
