package parser

import (
	"strings"

	"github.com/insightdelivered/transaction-engine/internal/models"
)

type bankSignature struct {
	bank    models.Bank
	needles []string
}

// senderSignatures maps SMS sender IDs (e.g. "VM-HDFCBK", "SBIINB") to
// issuers. Order encodes priority: payment apps come before banks so a
// PSP sender mentioning a partner bank is not claimed by the bank, and
// longer bank codes are listed with their parent so "SBIINB" and "SBIPSG"
// resolve the same way "SBI" does.
var senderSignatures = []bankSignature{
	{models.BankPhonePe, []string{"phonepe", "phonpe", "phnpe"}},
	{models.BankPaytm, []string{"paytm", "pytm"}},
	{models.BankGPay, []string{"googlepay", "google pay", "gpay"}},
	{models.BankAmazonPay, []string{"amazonpay", "amznpay", "amzpay"}},
	{models.BankSBI, []string{"sbiinb", "sbipsg", "sbyono", "cbssbi", "atmsbi", "sbi"}},
	{models.BankHDFC, []string{"hdfcbk", "hdfcbn", "hdfc"}},
	{models.BankICICI, []string{"icicib", "icicit", "icici"}},
	{models.BankAxis, []string{"axisbk", "axis"}},
	{models.BankKotak, []string{"kotakb", "kotak"}},
	{models.BankPNB, []string{"pnbsms", "pnb"}},
	{models.BankBOB, []string{"bobtxn", "bobsms", "bob"}},
	{models.BankIDFC, []string{"idfcfb", "idfc"}},
}

// documentSignatures identify the issuer from whole-document text, e.g. a
// PhonePe statement header or a bank's letterhead.
var documentSignatures = []bankSignature{
	{models.BankPhonePe, []string{"phonepe"}},
	{models.BankPaytm, []string{"paytm"}},
	{models.BankGPay, []string{"google pay", "gpay"}},
	{models.BankAmazonPay, []string{"amazon pay"}},
	{models.BankSBI, []string{"state bank of india", "sbi"}},
	{models.BankHDFC, []string{"hdfc bank", "hdfc"}},
	{models.BankICICI, []string{"icici bank", "icici"}},
	{models.BankAxis, []string{"axis bank", "axis"}},
	{models.BankKotak, []string{"kotak mahindra", "kotak"}},
	{models.BankPNB, []string{"punjab national bank"}},
	{models.BankBOB, []string{"bank of baroda"}},
	{models.BankIDFC, []string{"idfc first", "idfc"}},
}

// DetectBank identifies the issuer from an SMS sender ID. First match
// wins; no match routes to BankUnknown and the generic parser.
func DetectBank(sender string) models.Bank {
	return matchSignatures(sender, senderSignatures)
}

// DetectBankFromText identifies the issuer from full document text.
func DetectBankFromText(text string) models.Bank {
	return matchSignatures(text, documentSignatures)
}

func matchSignatures(text string, sigs []bankSignature) models.Bank {
	lower := strings.ToLower(text)
	for _, sig := range sigs {
		for _, needle := range sig.needles {
			if strings.Contains(lower, needle) {
				return sig.bank
			}
		}
	}
	return models.BankUnknown
}
