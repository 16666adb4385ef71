// Package ofx imports OFX/QFX bank and credit card statements as expenses.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/Veraticus/lifedash/internal/intent"
	"github.com/Veraticus/lifedash/internal/model"
	"github.com/aclindsa/ofxgo"
)

// TagPrefix marks expenses created from a statement. The FITID follows it.
const TagPrefix = "ofx:"

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	// SGML files sometimes leave an opening tag without its closing bracket.
	openTagRegex = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Parser converts statements into dashboard expenses.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser. A nil logger uses slog.Default.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagRegex.ReplaceAllString(content, "$1>")
}

func (p *Parser) parse(reader io.Reader) (*ofxgo.Response, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}
	return resp, nil
}

// ParseFile reads every bank and credit card transaction in the statement.
// Debits become expenses and credits become income; amounts are stored
// as positive values.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.Expense, error) {
	resp, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	var expenses []model.Expense
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		bankStmts++
		for _, tx := range stmt.BankTranList.Transactions {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			expenses = append(expenses, convert(tx, string(stmt.BankAcctFrom.AcctID)))
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		ccStmts++
		for _, tx := range stmt.BankTranList.Transactions {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			expenses = append(expenses, convert(tx, string(stmt.CCAcctFrom.AcctID)))
		}
	}

	p.logger.Info("Parsed OFX file",
		"total_transactions", len(expenses),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return expenses, nil
}

func convert(tx ofxgo.Transaction, accountID string) model.Expense {
	amount, _ := tx.TrnAmt.Float64()
	typ := model.ExpenseTypeExpense
	if amount > 0 {
		typ = model.ExpenseTypeIncome
	}
	if amount < 0 {
		amount = -amount
	}

	description := merchantName(tx)
	category, ok := intent.MatchCategory(description)
	if !ok || typ == model.ExpenseTypeIncome {
		category = model.CategoryOther
	}

	tags := []string{TagPrefix + string(tx.FiTID)}
	if accountID != "" {
		tags = append(tags, "account:"+accountID)
	}

	return model.Expense{
		Date:        tx.DtPosted.Time,
		Category:    category,
		Description: description,
		Type:        typ,
		Tags:        tags,
		Amount:      amount,
	}
}

var purchasePrefixes = []string{
	"POS PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
	"DEBIT CARD PURCHASE ",
	"ACH DEBIT ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"MC PURCHASE ",
	"DEBIT PURCHASE ",
}

var genericNames = map[string]bool{
	"DEBIT":           true,
	"CREDIT":          true,
	"PURCHASE":        true,
	"PAYMENT":         true,
	"POS TRANSACTION": true,
	"CARD PURCHASE":   true,
}

// merchantName prefers PAYEE, then NAME, then MEMO when NAME is generic.
func merchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && genericNames[strings.ToUpper(name)] {
		name = strings.TrimSpace(string(tx.Memo))
	}

	upper := strings.ToUpper(name)
	for _, prefix := range purchasePrefixes {
		if strings.HasPrefix(upper, prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// "MM/DD " date stamps
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

// Accounts lists the distinct account ids in the statement.
func (p *Parser) Accounts(reader io.Reader) ([]string, error) {
	resp, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankAcctFrom.AcctID != "" {
			seen[string(stmt.BankAcctFrom.AcctID)] = true
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.CCAcctFrom.AcctID != "" {
			seen[string(stmt.CCAcctFrom.AcctID)] = true
		}
	}

	accounts := make([]string, 0, len(seen))
	for acct := range seen {
		accounts = append(accounts, acct)
	}
	sort.Strings(accounts)
	return accounts, nil
}

// FITID returns the statement transaction id an imported expense carries.
func FITID(e model.Expense) (string, bool) {
	for _, tag := range e.Tags {
		if id, ok := strings.CutPrefix(tag, TagPrefix); ok {
			return id, true
		}
	}
	return "", false
}

// FilterNew drops incoming expenses whose FITID is already present in
// existing or earlier in incoming. It returns the fresh expenses and the
// number skipped.
func FilterNew(existing, incoming []model.Expense) ([]model.Expense, int) {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		if id, ok := FITID(e); ok {
			seen[id] = true
		}
	}

	fresh := make([]model.Expense, 0, len(incoming))
	skipped := 0
	for _, e := range incoming {
		id, ok := FITID(e)
		if ok && seen[id] {
			skipped++
			continue
		}
		if ok {
			seen[id] = true
		}
		fresh = append(fresh, e)
	}
	return fresh, skipped
}
