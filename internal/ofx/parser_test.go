package ofx

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
	"github.com/aclindsa/ofxgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>-125.00
<FITID>2024012001
<NAME>Whole Foods Market
</STMTTRN>
<STMTTRN>
<TRNTYPE>CHECK
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>-500.00
<FITID>2024012501
<CHECKNUM>1234
<NAME>CHECK #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240130120000[0:GMT]
<TRNAMT>1500.00
<FITID>2024013001
<NAME>PAYROLL DIRECT DEP
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2024011001
<NAME>AMAZON.COM*RT4Y7HG2
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-15.00
<FITID>CC2024011501
<NAME>NETFLIX.COM
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	tests := []struct {
		name          string
		ofxData       string
		expectedCount int
		expectedError bool
	}{
		{name: "valid bank statement", ofxData: sampleBankOFX, expectedCount: 4},
		{name: "valid credit card statement", ofxData: sampleCreditCardOFX, expectedCount: 2},
		{name: "leading blank lines", ofxData: "\n\n  " + sampleCreditCardOFX, expectedCount: 2},
		{name: "invalid OFX data", ofxData: "not valid OFX", expectedError: true},
		{name: "empty OFX", ofxData: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser(nil)

			expenses, err := parser.ParseFile(context.Background(), strings.NewReader(tt.ofxData))

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, expenses, tt.expectedCount)
		})
	}
}

func TestParseFile_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewParser(nil).ParseFile(ctx, strings.NewReader(sampleBankOFX))
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseBankStatement(t *testing.T) {
	expenses, err := NewParser(nil).ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, expenses, 4)

	coffee := expenses[0]
	assert.Equal(t, "STARBUCKS STORE #1234", coffee.Description)
	assert.Equal(t, 25.50, coffee.Amount)
	assert.Equal(t, model.ExpenseTypeExpense, coffee.Type)
	assert.Equal(t, model.CategoryOther, coffee.Category)
	assert.Equal(t, []string{"ofx:2024011501", "account:1234567890"}, coffee.Tags)
	assert.Equal(t, 2024, coffee.Date.Year())
	assert.Equal(t, time.January, coffee.Date.Month())
	assert.Equal(t, 15, coffee.Date.Day())

	groceries := expenses[1]
	assert.Equal(t, "Whole Foods Market", groceries.Description)
	assert.Equal(t, "food", groceries.Category)
	assert.Equal(t, 125.00, groceries.Amount)

	check := expenses[2]
	assert.Equal(t, "CHECK #1234", check.Description)
	assert.Equal(t, 500.00, check.Amount)

	salary := expenses[3]
	assert.Equal(t, model.ExpenseTypeIncome, salary.Type)
	assert.Equal(t, 1500.00, salary.Amount)
	assert.Equal(t, model.CategoryOther, salary.Category)
}

func TestParseCreditCardStatement(t *testing.T) {
	expenses, err := NewParser(nil).ParseFile(context.Background(), strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, expenses, 2)

	assert.Equal(t, "AMAZON.COM*RT4Y7HG2", expenses[0].Description)
	assert.Equal(t, 45.99, expenses[0].Amount)
	assert.True(t, expenses[0].HasTag("account:4111111111111111"))

	assert.Equal(t, "NETFLIX.COM", expenses[1].Description)
	assert.Equal(t, 15.00, expenses[1].Amount)
	id, ok := FITID(expenses[1])
	require.True(t, ok)
	assert.Equal(t, "CC2024011501", id)
}

func TestMerchantName(t *testing.T) {
	tests := []struct {
		name     string
		tx       ofxgo.Transaction
		expected string
	}{
		{
			name:     "remove POS prefix",
			tx:       ofxgo.Transaction{Name: "POS PURCHASE STARBUCKS"},
			expected: "STARBUCKS",
		},
		{
			name:     "remove DEBIT CARD prefix",
			tx:       ofxgo.Transaction{Name: "DEBIT CARD PURCHASE WHOLE FOODS"},
			expected: "WHOLE FOODS",
		},
		{
			name:     "keep clean name",
			tx:       ofxgo.Transaction{Name: "NETFLIX.COM"},
			expected: "NETFLIX.COM",
		},
		{
			name:     "trim whitespace",
			tx:       ofxgo.Transaction{Name: "  AMAZON.COM  "},
			expected: "AMAZON.COM",
		},
		{
			name:     "strip date stamp",
			tx:       ofxgo.Transaction{Name: "03/14 SHELL OIL"},
			expected: "SHELL OIL",
		},
		{
			name:     "generic name falls back to memo",
			tx:       ofxgo.Transaction{Name: "DEBIT", Memo: "CITY UTILITIES"},
			expected: "CITY UTILITIES",
		},
		{
			name:     "payee wins",
			tx:       ofxgo.Transaction{Name: "ACH", Payee: &ofxgo.Payee{Name: "Metro Transport"}},
			expected: "Metro Transport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, merchantName(tt.tx))
		})
	}
}

func TestAccounts(t *testing.T) {
	parser := NewParser(nil)

	accounts, err := parser.Accounts(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	assert.Equal(t, []string{"1234567890"}, accounts)

	accounts, err = parser.Accounts(strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	assert.Equal(t, []string{"4111111111111111"}, accounts)
}

func TestFilterNew(t *testing.T) {
	imported := func(fitid string) model.Expense {
		return model.Expense{Amount: 1, Tags: []string{TagPrefix + fitid}}
	}
	manual := model.Expense{Amount: 2, Description: "typed in"}

	existing := []model.Expense{imported("A"), manual}
	incoming := []model.Expense{imported("A"), imported("B"), imported("B"), manual}

	fresh, skipped := FilterNew(existing, incoming)

	assert.Equal(t, 2, skipped)
	require.Len(t, fresh, 2)
	id, _ := FITID(fresh[0])
	assert.Equal(t, "B", id)
	assert.Equal(t, "typed in", fresh[1].Description)
}

func TestPreprocess(t *testing.T) {
	in := "\n  <SEVERITY>Info</SEVERITY>\n<BANKACCTFROM\n"
	out := preprocess(in)

	assert.True(t, strings.HasPrefix(out, "<SEVERITY>INFO</SEVERITY>"))
	assert.Contains(t, out, "<BANKACCTFROM>")
}
