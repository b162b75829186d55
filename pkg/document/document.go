package document

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as bare JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type TxKind string

const (
	KindIncome      TxKind = "Income"
	KindExpenditure TxKind = "Expenditure"
)

func (k TxKind) Valid() bool {
	return k == KindIncome || k == KindExpenditure
}

type PaymentMode string

const (
	PaymentCash         PaymentMode = "Cash"
	PaymentCard         PaymentMode = "Card"
	PaymentWalletOrUPI  PaymentMode = "UPI / Wallet"
	PaymentBankTransfer PaymentMode = "Bank Transfer"
	PaymentOther        PaymentMode = "Other"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentWalletOrUPI, PaymentBankTransfer, PaymentOther:
		return true
	}
	return false
}

type Transaction struct {
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Kind        TxKind          `json:"income_or_expenditure"`
	PaymentMode PaymentMode     `json:"payment_mode"`
	Amount      decimal.Decimal `json:"amount"`
}

// amountEpsilon is the tolerance used when matching transaction amounts.
// Transactions carry no stable identifier, so equality is structural.
var amountEpsilon = decimal.NewFromFloat(0.01)

// Matches reports whether two transactions are structurally equal: all
// fields identical, with amounts compared within amountEpsilon. Duplicate
// entries are indistinguishable under this rule.
func (t Transaction) Matches(other Transaction) bool {
	return t.Date == other.Date &&
		t.Category == other.Category &&
		t.Kind == other.Kind &&
		t.PaymentMode == other.PaymentMode &&
		t.Amount.Sub(other.Amount).Abs().LessThan(amountEpsilon)
}

// ArchivedMonth is the snapshot of a closed month. Never mutated once written.
type ArchivedMonth struct {
	MonthlyAllowance decimal.Decimal `json:"monthly_allowance"`
	Transactions     []Transaction   `json:"transactions"`
}

type SavingsGoal struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	TargetDate   string          `json:"target_date"`
	CreatedDate  string          `json:"created_date"`
}

// Document is the single persisted ledger: the open month's state plus all
// archived months and savings goals. It is always handled as a whole value;
// every mutation is a read-modify-write of the full document.
type Document struct {
	CurrentMonth     string                   `json:"current_month"`
	MonthlyAllowance decimal.Decimal          `json:"monthly_allowance"`
	Categories       []string                 `json:"categories"`
	Transactions     []Transaction            `json:"transactions"`
	Archives         map[string]ArchivedMonth `json:"archives"`
	SavingsGoals     []SavingsGoal            `json:"savings_goals"`

	// extra carries unknown top-level fields through a load/save round trip.
	extra map[string]json.RawMessage
}

// StarterCategories is the category set a brand-new ledger starts with.
var StarterCategories = []string{
	"Food",
	"Transport",
	"Rent / Hostel",
	"Groceries",
	"Entertainment",
	"Academic",
	"Health",
	"Savings",
	"Miscellaneous",
}

// NewDefault returns the first-run document for the given open month.
func NewDefault(monthKey string) *Document {
	doc := &Document{
		CurrentMonth: monthKey,
		Categories:   append([]string(nil), StarterCategories...),
	}
	doc.normalize()
	return doc
}

// NewFallback returns the recovery document used when persisted state cannot
// be parsed. It is deliberately more minimal than the first-run default (no
// starter categories) so corruption is visible instead of guessed over.
func NewFallback(monthKey string) *Document {
	doc := &Document{CurrentMonth: monthKey}
	doc.normalize()
	return doc
}

// normalize replaces nil collections with empty ones so that serialization is
// stable and callers can append without nil checks.
func (d *Document) normalize() {
	if d.Categories == nil {
		d.Categories = []string{}
	}
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.Archives == nil {
		d.Archives = map[string]ArchivedMonth{}
	}
	if d.SavingsGoals == nil {
		d.SavingsGoals = []SavingsGoal{}
	}
}

// Backfill fills fields missing from an older or partially written document
// with their defaults, keeping everything that did parse.
func (d *Document) Backfill(monthKey string) {
	if d.CurrentMonth == "" {
		d.CurrentMonth = monthKey
	}
	d.normalize()
}

// HasCategory reports whether name is a currently known category.
// Comparison is case-sensitive.
func (d *Document) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		CurrentMonth:     d.CurrentMonth,
		MonthlyAllowance: d.MonthlyAllowance,
		Categories:       append([]string{}, d.Categories...),
		Transactions:     append([]Transaction{}, d.Transactions...),
		Archives:         make(map[string]ArchivedMonth, len(d.Archives)),
		SavingsGoals:     append([]SavingsGoal{}, d.SavingsGoals...),
	}
	for key, month := range d.Archives {
		out.Archives[key] = ArchivedMonth{
			MonthlyAllowance: month.MonthlyAllowance,
			Transactions:     append([]Transaction{}, month.Transactions...),
		}
	}
	if d.extra != nil {
		out.extra = make(map[string]json.RawMessage, len(d.extra))
		for key, raw := range d.extra {
			out.extra[key] = append(json.RawMessage{}, raw...)
		}
	}
	return out
}

// docFields mirrors Document for plain JSON encoding without recursing into
// the custom (un)marshalers.
type docFields struct {
	CurrentMonth     string                   `json:"current_month"`
	MonthlyAllowance decimal.Decimal          `json:"monthly_allowance"`
	Categories       []string                 `json:"categories"`
	Transactions     []Transaction            `json:"transactions"`
	Archives         map[string]ArchivedMonth `json:"archives"`
	SavingsGoals     []SavingsGoal            `json:"savings_goals"`
}

var knownFields = map[string]bool{
	"current_month":     true,
	"monthly_allowance": true,
	"categories":        true,
	"transactions":      true,
	"archives":          true,
	"savings_goals":     true,
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var fields docFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = Document{
		CurrentMonth:     fields.CurrentMonth,
		MonthlyAllowance: fields.MonthlyAllowance,
		Categories:       fields.Categories,
		Transactions:     fields.Transactions,
		Archives:         fields.Archives,
		SavingsGoals:     fields.SavingsGoals,
	}
	for key, value := range raw {
		if knownFields[key] {
			continue
		}
		if d.extra == nil {
			d.extra = map[string]json.RawMessage{}
		}
		d.extra[key] = value
	}
	return nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(docFields{
		CurrentMonth:     d.CurrentMonth,
		MonthlyAllowance: d.MonthlyAllowance,
		Categories:       d.Categories,
		Transactions:     d.Transactions,
		Archives:         d.Archives,
		SavingsGoals:     d.SavingsGoals,
	})
	if err != nil {
		return nil, err
	}
	if len(d.extra) == 0 {
		return known, nil
	}

	// Merge unknown fields back in. Encoding through a map keeps the output
	// deterministic (keys are sorted).
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for key, value := range d.extra {
		merged[key] = value
	}
	return json.Marshal(merged)
}
