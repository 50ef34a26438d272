package parser

import (
	"testing"
	"time"

	"github.com/insightdelivered/transaction-engine/internal/models"
)

func TestParseSMS_HDFCDebit(t *testing.T) {
	e := NewEngine(nil)

	msg := "Rs.450.00 debited from A/c XX1234 on 05-03-2025 to SWIGGY. Avl Bal Rs.12,340.50"
	txn, err := e.ParseSMS("VM-HDFCBK", msg, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn == nil {
		t.Fatal("expected a transaction")
	}

	if txn.Amount != 450.00 {
		t.Errorf("amount: got %f, want 450.00", txn.Amount)
	}
	if txn.Balance != 12340.50 {
		t.Errorf("balance: got %f, want 12340.50", txn.Balance)
	}
	if txn.Direction != models.DirectionExpense {
		t.Errorf("direction: got %q", txn.Direction)
	}
	if txn.AccountLast4 != "1234" {
		t.Errorf("accountLast4: got %q", txn.AccountLast4)
	}
	if want := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC); !txn.Date.Equal(want) {
		t.Errorf("date: got %v, want %v", txn.Date, want)
	}
	if txn.Description != "SWIGGY" {
		t.Errorf("description: got %q", txn.Description)
	}
	if txn.Category != models.CategoryFood {
		t.Errorf("category: got %q", txn.Category)
	}
	if txn.Bank != "HDFC Bank" {
		t.Errorf("bank: got %q", txn.Bank)
	}
	if txn.Source != models.SourceSMS {
		t.Errorf("source: got %q", txn.Source)
	}
	if txn.ID == "" {
		t.Error("expected a generated ID")
	}
	if txn.Confidence < 0.9 {
		t.Errorf("confidence: got %f, want >= 0.9", txn.Confidence)
	}
}

func TestParseSMS_SBISalaryCredit(t *testing.T) {
	e := NewEngine(nil)

	msg := "Your A/c XX9876 credited with INR 50,000.00 on 01/04/25 SALARY NEFT. Avl Bal INR 1,05,000.00"
	txn, err := e.ParseSMS("AD-SBIINB", msg, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn == nil {
		t.Fatal("expected a transaction")
	}

	if txn.Amount != 50000.00 {
		t.Errorf("amount: got %f, want 50000.00 (balance must not win)", txn.Amount)
	}
	if txn.Direction != models.DirectionIncome {
		t.Errorf("direction: got %q", txn.Direction)
	}
	if txn.Category != models.CategorySalary {
		t.Errorf("category: got %q", txn.Category)
	}
	if txn.AccountLast4 != "9876" {
		t.Errorf("accountLast4: got %q", txn.AccountLast4)
	}
	if txn.Date.Year() != 2025 || txn.Date.Month() != time.April || txn.Date.Day() != 1 {
		t.Errorf("date: got %v", txn.Date)
	}
	if txn.Bank != "State Bank of India" {
		t.Errorf("bank: got %q", txn.Bank)
	}
}

func TestParseSMS_UPIFields(t *testing.T) {
	e := NewEngine(nil)

	msg := "Rs 120 debited via UPI. Paid to netflix@icici on 10/06/2025"
	txn, err := e.ParseSMS("VM-ICICIB", msg, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn == nil {
		t.Fatal("expected a transaction")
	}

	if txn.UPIID != "netflix@icici" {
		t.Errorf("upiID: got %q", txn.UPIID)
	}
	if txn.Merchant != "Netflix" {
		t.Errorf("merchant: got %q", txn.Merchant)
	}
	if txn.Category != models.CategoryEntertainment {
		t.Errorf("category: got %q", txn.Category)
	}
}

func TestParseSMS_SkipsNonTransactional(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		name string
		msg  string
	}{
		{"otp", "Your OTP for txn of Rs 500 is 123456. Do not share."},
		{"one time password", "Use one-time password 9912 to login"},
		{"no amount", "Dear customer, your new cheque book has been dispatched today."},
		{"promo without currency", "Get 50% off on your next order!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := e.ParseSMS("VM-HDFCBK", tt.msg, time.Now())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if txn != nil {
				t.Errorf("expected no transaction, got %+v", txn)
			}
		})
	}
}

func TestParseSMS_FallbackDate(t *testing.T) {
	e := NewEngine(nil)
	ts := time.Date(2025, time.May, 10, 14, 0, 0, 0, time.UTC)

	txn, err := e.ParseSMS("VM-HDFCBK", "Rs 99 debited for Spotify subscription", ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn == nil {
		t.Fatal("expected a transaction")
	}
	if !txn.Date.Equal(ts) {
		t.Errorf("date: got %v, want reference timestamp %v", txn.Date, ts)
	}
}

func TestParseSMS_CallerContract(t *testing.T) {
	e := NewEngine(nil)

	if _, err := e.ParseSMS("", "Rs 100 debited", time.Now()); err == nil {
		t.Error("expected error for empty sender")
	}
	if _, err := e.ParseSMS("VM-HDFCBK", "   ", time.Now()); err == nil {
		t.Error("expected error for empty message")
	}
}

func TestParseSMSBatch(t *testing.T) {
	e := NewEngine(nil)

	debit := "Rs.450.00 debited from A/c XX1234 on 05-03-2025 to SWIGGY. Avl Bal Rs.12,340.50"
	credit := "Your A/c XX9876 credited with INR 50,000.00 on 01/03/2025 SALARY NEFT"
	msgs := []SMSMessage{
		{Sender: "VM-HDFCBK", Body: debit},
		{Sender: "VM-HDFCBK", Body: debit}, // duplicate delivery
		{Sender: "VM-HDFCBK", Body: credit},
		{Sender: "VM-HDFCBK", Body: "Your OTP is 123456"},
	}

	res, err := e.ParseSMSBatch(msgs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Count != 2 {
		t.Fatalf("count: got %d, want 2 (duplicate and OTP removed)", res.Count)
	}
	if len(res.Confidences) != 2 {
		t.Errorf("confidences: got %d entries", len(res.Confidences))
	}
	if res.Bank != models.BankHDFC {
		t.Errorf("bank: got %q", res.Bank)
	}
	// Date-sorted: the 01-03 credit precedes the 05-03 debit
	if !res.Transactions[0].Date.Before(res.Transactions[1].Date) {
		t.Error("transactions not sorted by date")
	}
	if res.TotalCredit != 50000.00 {
		t.Errorf("totalCredit: got %f", res.TotalCredit)
	}
	if res.TotalDebit != 450.00 {
		t.Errorf("totalDebit: got %f", res.TotalDebit)
	}
}

func TestParseSMSBatch_MissingFields(t *testing.T) {
	e := NewEngine(nil)
	_, err := e.ParseSMSBatch([]SMSMessage{{Sender: "VM-HDFCBK", Body: ""}})
	if err == nil {
		t.Error("expected error for message without body")
	}
}

func TestParseDocument_PaymentAppBlocks(t *testing.T) {
	e := NewEngine(nil)

	text := `PhonePe Transaction Statement

Jan 29, 2026
Paid to Big Bazaar
DEBIT
₹1,250

Feb 2, 2026
Received from Ramesh Kumar
CREDIT
₹500
`
	res, err := e.ParseDocument(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Bank != models.BankPhonePe {
		t.Fatalf("bank: got %q", res.Bank)
	}
	if res.Count != 2 {
		t.Fatalf("count: got %d, want 2", res.Count)
	}

	first := res.Transactions[0]
	if want := time.Date(2026, time.January, 29, 0, 0, 0, 0, time.UTC); !first.Date.Equal(want) {
		t.Errorf("date: got %v, want %v", first.Date, want)
	}
	if first.Description != "Big Bazaar" {
		t.Errorf("description: got %q", first.Description)
	}
	if first.Amount != 1250 {
		t.Errorf("amount: got %f", first.Amount)
	}
	if first.Direction != models.DirectionExpense {
		t.Errorf("direction: got %q", first.Direction)
	}
	if first.Category != models.CategoryGroceries {
		t.Errorf("category: got %q", first.Category)
	}
	if first.Source != models.SourcePDF {
		t.Errorf("source: got %q", first.Source)
	}

	second := res.Transactions[1]
	if second.Direction != models.DirectionIncome {
		t.Errorf("direction: got %q", second.Direction)
	}
	if second.Amount != 500 {
		t.Errorf("amount: got %f", second.Amount)
	}

	if res.TotalDebit != 1250 || res.TotalCredit != 500 {
		t.Errorf("totals: debit %f credit %f", res.TotalDebit, res.TotalCredit)
	}
}

func TestParseDocument_BankStatementLines(t *testing.T) {
	e := NewEngine(nil)

	text := `HDFC Bank Statement of Account

15/01/2024 POS purchase Rs 450.00 Dr Avl Bal Rs 10,000.00
16/01/2024 NEFT credited Rs 5,000.00 Avl Bal Rs 15,000.00
Closing balance carried forward
`
	res, err := e.ParseDocument(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Bank != models.BankHDFC {
		t.Errorf("bank: got %q", res.Bank)
	}
	if res.Count != 2 {
		t.Fatalf("count: got %d, want 2", res.Count)
	}
	if res.Transactions[0].Amount != 450 || res.Transactions[0].Direction != models.DirectionExpense {
		t.Errorf("first txn: %+v", res.Transactions[0])
	}
	if res.Transactions[1].Amount != 5000 || res.Transactions[1].Direction != models.DirectionIncome {
		t.Errorf("second txn: %+v", res.Transactions[1])
	}
}

func TestParseDocument_Empty(t *testing.T) {
	e := NewEngine(nil)
	if _, err := e.ParseDocument("   \n  "); err == nil {
		t.Error("expected error for empty document")
	}
}

func TestParseDocument_NoTransactions(t *testing.T) {
	e := NewEngine(nil)

	res, err := e.ParseDocument("Terms and conditions apply.\nThank you for banking with us.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Count != 0 {
		t.Errorf("count: got %d, want 0", res.Count)
	}
	if res.Transactions == nil {
		t.Error("transactions must be an empty slice, not nil")
	}
}
