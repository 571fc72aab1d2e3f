package usecase

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/savingsgl/internal/domain"
)

var allRoles = []domain.AccountRole{
	domain.RoleSavingsControl,
	domain.RoleSavingsReference,
	domain.RoleLiabilityTransfer,
	domain.RolePayableDividends,
	domain.RoleEscheatLiability,
	domain.RoleInterestOnSavings,
	domain.RoleInterestPayable,
	domain.RoleIncomeFromFees,
	domain.RoleIncomeFromPenalties,
	domain.RoleIncomeFromInterest,
	domain.RoleTransfersSuspense,
	domain.RoleOverdraftPortfolioControl,
	domain.RoleLossesWrittenOff,
	domain.RoleEMTLevy,
}

// testChart maps every role to "<prefix>:<role>".
func testChart(basis domain.AccountingBasis) *domain.Chart {
	prefix := strings.ToUpper(string(basis))
	chart := &domain.Chart{
		ProductID: "prod-1",
		Basis:     basis,
		Accounts:  make(map[domain.AccountRole]string, len(allRoles)),
	}
	for _, r := range allRoles {
		chart.Accounts[r] = prefix + ":" + string(r)
	}
	return chart
}

func gl(basis domain.AccountingBasis, role domain.AccountRole) string {
	return strings.ToUpper(string(basis)) + ":" + string(role)
}

func testTxn(kind domain.TransactionKind, amount string) domain.Transaction {
	return domain.Transaction{
		ID:                    "tx-1",
		ExternalTransactionID: "ext-1",
		OfficeID:              "1",
		CurrencyCode:          "USD",
		Kind:                  kind,
		Amount:                dec(amount),
	}
}

type wantPair struct {
	debit  domain.AccountRole
	credit domain.AccountRole
	amount string
}

func assertPairs(t *testing.T, basis domain.AccountingBasis, got []domain.PostingInstruction, want []wantPair) {
	t.Helper()

	if len(got) != 2*len(want) {
		t.Fatalf("expected %d instructions, got %d: %+v", 2*len(want), len(got), got)
	}

	for i, w := range want {
		debit, credit := got[2*i], got[2*i+1]

		if debit.Side != domain.SideDebit || debit.GLAccountID != gl(basis, w.debit) || !debit.Amount.Equal(dec(w.amount)) {
			t.Errorf("pair %d debit: got %s %s %s, want debit %s %s", i, debit.Side, debit.GLAccountID, debit.Amount, gl(basis, w.debit), w.amount)
		}

		if credit.Side != domain.SideCredit || credit.GLAccountID != gl(basis, w.credit) || !credit.Amount.Equal(dec(w.amount)) {
			t.Errorf("pair %d credit: got %s %s %s, want credit %s %s", i, credit.Side, credit.GLAccountID, credit.Amount, gl(basis, w.credit), w.amount)
		}
	}
}

func TestPostingRuleDispatcher_RuleTable(t *testing.T) {
	tests := []struct {
		name   string
		txn    func() domain.Transaction
		basis  domain.AccountingBasis
		expect []wantPair
	}{
		{
			name: "deposit ordinary",
			txn:  func() domain.Transaction { return testTxn(domain.KindDeposit, "1000") },
			expect: []wantPair{
				{domain.RoleSavingsReference, domain.RoleSavingsControl, "1000"},
			},
		},
		{
			name: "deposit transfer",
			txn: func() domain.Transaction {
				txn := testTxn(domain.KindDeposit, "250")
				txn.IsAccountTransfer = true
				return txn
			},
			expect: []wantPair{
				{domain.RoleLiabilityTransfer, domain.RoleSavingsControl, "250"},
			},
		},
		{
			name: "withdrawal ordinary",
			txn:  func() domain.Transaction { return testTxn(domain.KindWithdrawal, "80") },
			expect: []wantPair{
				{domain.RoleSavingsControl, domain.RoleSavingsReference, "80"},
			},
		},
		{
			name: "withdrawal transfer",
			txn: func() domain.Transaction {
				txn := testTxn(domain.KindWithdrawal, "80")
				txn.IsAccountTransfer = true
				return txn
			},
			expect: []wantPair{
				{domain.RoleSavingsControl, domain.RoleLiabilityTransfer, "80"},
			},
		},
		{
			name: "dividend payout",
			txn:  func() domain.Transaction { return testTxn(domain.KindDividendPayout, "12.5") },
			expect: []wantPair{
				{domain.RolePayableDividends, domain.RoleSavingsControl, "12.5"},
			},
		},
		{
			name: "escheat",
			txn:  func() domain.Transaction { return testTxn(domain.KindEscheat, "40") },
			expect: []wantPair{
				{domain.RoleSavingsControl, domain.RoleEscheatLiability, "40"},
			},
		},
		{
			name: "interest posting cash",
			txn:  func() domain.Transaction { return testTxn(domain.KindInterestPosting, "3.21") },
			expect: []wantPair{
				{domain.RoleInterestOnSavings, domain.RoleSavingsControl, "3.21"},
			},
		},
		{
			name:  "interest posting accrual",
			txn:   func() domain.Transaction { return testTxn(domain.KindInterestPosting, "3.21") },
			basis: domain.BasisAccrual,
			expect: []wantPair{
				{domain.RoleInterestPayable, domain.RoleSavingsControl, "3.21"},
			},
		},
		{
			name:  "accrual",
			txn:   func() domain.Transaction { return testTxn(domain.KindAccrual, "1.1") },
			basis: domain.BasisAccrual,
			expect: []wantPair{
				{domain.RoleInterestOnSavings, domain.RoleInterestPayable, "1.1"},
			},
		},
		{
			name: "fee deduction",
			txn: func() domain.Transaction {
				txn := testTxn(domain.KindFeeDeduction, "100")
				txn.FeePayments = []domain.ChargePayment{{ChargeID: "charge-1", Amount: dec("100")}}
				return txn
			},
			expect: []wantPair{
				{domain.RoleSavingsControl, domain.RoleIncomeFromFees, "100"},
			},
		},
		{
			name: "penalty deduction",
			txn: func() domain.Transaction {
				txn := testTxn(domain.KindFeeDeduction, "100")
				txn.PenaltyPayments = []domain.ChargePayment{{ChargeID: "charge-2", Amount: dec("100")}}
				return txn
			},
			expect: []wantPair{
				{domain.RoleSavingsControl, domain.RoleIncomeFromPenalties, "100"},
			},
		},
		{
			name: "initiate transfer",
			txn:  func() domain.Transaction { return testTxn(domain.KindInitiateTransfer, "60") },
			expect: []wantPair{
				{domain.RoleSavingsControl, domain.RoleTransfersSuspense, "60"},
			},
		},
		{
			name: "withdraw transfer",
			txn:  func() domain.Transaction { return testTxn(domain.KindWithdrawTransfer, "60") },
			expect: []wantPair{
				{domain.RoleTransfersSuspense, domain.RoleSavingsControl, "60"},
			},
		},
		{
			name: "approve transfer",
			txn:  func() domain.Transaction { return testTxn(domain.KindApproveTransfer, "60") },
			expect: []wantPair{
				{domain.RoleTransfersSuspense, domain.RoleSavingsControl, "60"},
			},
		},
		{
			name: "overdraft interest",
			txn:  func() domain.Transaction { return testTxn(domain.KindOverdraftInterest, "7") },
			expect: []wantPair{
				{domain.RoleSavingsReference, domain.RoleIncomeFromInterest, "7"},
			},
		},
		{
			name: "written off",
			txn:  func() domain.Transaction { return testTxn(domain.KindWrittenOff, "55") },
			expect: []wantPair{
				{domain.RoleLossesWrittenOff, domain.RoleOverdraftPortfolioControl, "55"},
			},
		},
		{
			name: "overdraft fee",
			txn:  func() domain.Transaction { return testTxn(domain.KindOverdraftFee, "5") },
			expect: []wantPair{
				{domain.RoleSavingsReference, domain.RoleIncomeFromFees, "5"},
			},
		},
		{
			name: "emt levy",
			txn:  func() domain.Transaction { return testTxn(domain.KindEmtLevy, "0.5") },
			expect: []wantPair{
				{domain.RoleSavingsControl, domain.RoleEMTLevy, "0.5"},
			},
		},
		{
			name: "withhold tax without components",
			txn:  func() domain.Transaction { return testTxn(domain.KindWithholdTax, "9") },
			expect: []wantPair{
				{domain.RoleSavingsControl, domain.RoleSavingsReference, "9"},
			},
		},
	}

	d := NewPostingRuleDispatcher()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basis := tt.basis
			if basis == "" {
				basis = domain.BasisCash
			}

			got, err := d.Dispatch(tt.txn(), basis, testChart(basis))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			assertPairs(t, basis, got, tt.expect)
		})
	}
}

func TestPostingRuleDispatcher_ScenarioA(t *testing.T) {
	got, err := NewPostingRuleDispatcher().Dispatch(testTxn(domain.KindDeposit, "1000"), domain.BasisCash, testChart(domain.BasisCash))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertPairs(t, domain.BasisCash, got, []wantPair{
		{domain.RoleSavingsReference, domain.RoleSavingsControl, "1000"},
	})
}

func TestPostingRuleDispatcher_ScenarioB(t *testing.T) {
	txn := testTxn(domain.KindWithdrawal, "500")
	txn.OverdraftAmount = dec("300")
	txn.IsOverdraftTransaction = true

	got, err := NewPostingRuleDispatcher().Dispatch(txn, domain.BasisCash, testChart(domain.BasisCash))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertPairs(t, domain.BasisCash, got, []wantPair{
		{domain.RoleOverdraftPortfolioControl, domain.RoleSavingsReference, "300"},
		{domain.RoleSavingsControl, domain.RoleSavingsReference, "200"},
	})
}

func TestPostingRuleDispatcher_OverdraftConservation(t *testing.T) {
	kinds := []domain.TransactionKind{
		domain.KindDeposit,
		domain.KindWithdrawal,
		domain.KindInterestPosting,
		domain.KindFeeDeduction,
		domain.KindEmtLevy,
	}
	overdrafts := []string{"0", "0.01", "300", "499.99", "500"}

	d := NewPostingRuleDispatcher()
	chart := testChart(domain.BasisCash)

	for _, kind := range kinds {
		for _, od := range overdrafts {
			t.Run(string(kind)+"/"+od, func(t *testing.T) {
				txn := testTxn(kind, "500")
				txn.OverdraftAmount = dec(od)

				got, err := d.Dispatch(txn, domain.BasisCash, chart)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				debits, credits := decimal.Zero, decimal.Zero
				for _, in := range got {
					if !in.Amount.IsPositive() {
						t.Errorf("zero or negative posting emitted: %+v", in)
					}
					if in.Side == domain.SideDebit {
						debits = debits.Add(in.Amount)
					} else {
						credits = credits.Add(in.Amount)
					}
				}

				if !debits.Equal(txn.Amount) || !credits.Equal(txn.Amount) {
					t.Errorf("debits %s credits %s, want both %s", debits, credits, txn.Amount)
				}

				wantPairs := 2
				if od == "0" || od == "500" {
					wantPairs = 1
				}
				if len(got) != 2*wantPairs {
					t.Errorf("expected %d pairs, got %d instructions", wantPairs, len(got))
				}
			})
		}
	}
}

func TestPostingRuleDispatcher_Reversal(t *testing.T) {
	txn := testTxn(domain.KindDeposit, "1000")
	txn.IsReversal = true

	got, err := NewPostingRuleDispatcher().Dispatch(txn, domain.BasisCash, testChart(domain.BasisCash))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 instructions, got %d", len(got))
	}

	if got[0].Side != domain.SideCredit || got[0].GLAccountID != gl(domain.BasisCash, domain.RoleSavingsReference) {
		t.Errorf("expected credit to savings reference, got %+v", got[0])
	}

	if got[1].Side != domain.SideDebit || got[1].GLAccountID != gl(domain.BasisCash, domain.RoleSavingsControl) {
		t.Errorf("expected debit to savings control, got %+v", got[1])
	}

	if !strings.HasSuffix(got[0].Memo, "reversal") {
		t.Errorf("expected reversal memo, got %q", got[0].Memo)
	}
}

func TestPostingRuleDispatcher_ZeroAmount(t *testing.T) {
	for _, kind := range []domain.TransactionKind{domain.KindInterestPosting, domain.KindDeposit, domain.KindWithholdTax} {
		got, err := NewPostingRuleDispatcher().Dispatch(testTxn(kind, "0"), domain.BasisCash, testChart(domain.BasisCash))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		if len(got) != 0 {
			t.Errorf("%s: expected no instructions, got %d", kind, len(got))
		}
	}
}

func TestPostingRuleDispatcher_TaxComponents(t *testing.T) {
	chart := testChart(domain.BasisCash)
	chart.TaxAccounts = map[string]string{"vat": "CASH:vat_payable"}

	txn := testTxn(domain.KindVatOnFees, "15")
	txn.TaxPayments = []domain.TaxPayment{
		{TaxComponentID: "vat", Amount: dec("10")},
		{TaxComponentID: "stamp", Amount: dec("5")},
	}

	got, err := NewPostingRuleDispatcher().Dispatch(txn, domain.BasisCash, chart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 4 {
		t.Fatalf("expected 4 instructions, got %d", len(got))
	}

	if got[1].GLAccountID != "CASH:vat_payable" || !got[1].Amount.Equal(dec("10")) {
		t.Errorf("expected vat component credit, got %+v", got[1])
	}

	if got[3].GLAccountID != gl(domain.BasisCash, domain.RoleSavingsReference) || !got[3].Amount.Equal(dec("5")) {
		t.Errorf("expected unmapped component to fall back to savings reference, got %+v", got[3])
	}
}

func TestPostingRuleDispatcher_BasisNeverMixes(t *testing.T) {
	d := NewPostingRuleDispatcher()

	for _, basis := range []domain.AccountingBasis{domain.BasisCash, domain.BasisAccrual} {
		txn := testTxn(domain.KindInterestPosting, "500")
		txn.OverdraftAmount = dec("100")

		got, err := d.Dispatch(txn, basis, testChart(basis))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		prefix := strings.ToUpper(string(basis)) + ":"
		for _, in := range got {
			if !strings.HasPrefix(in.GLAccountID, prefix) {
				t.Errorf("%s dispatch used account %s", basis, in.GLAccountID)
			}
		}
	}

	_, err := d.Dispatch(testTxn(domain.KindDeposit, "1"), domain.BasisAccrual, testChart(domain.BasisCash))
	if !errors.Is(err, domain.ErrChartBasisMismatch) {
		t.Fatalf("expected ErrChartBasisMismatch, got %v", err)
	}
}

func TestPostingRuleDispatcher_Errors(t *testing.T) {
	d := NewPostingRuleDispatcher()

	partial := testChart(domain.BasisCash)
	delete(partial.Accounts, domain.RoleEscheatLiability)

	_, err := d.Dispatch(testTxn(domain.KindEscheat, "10"), domain.BasisCash, partial)
	var mapping *domain.MissingAccountMappingError
	if !errors.As(err, &mapping) || mapping.Role != string(domain.RoleEscheatLiability) {
		t.Errorf("expected missing escheat mapping, got %v", err)
	}

	bad := testTxn(domain.KindWithdrawal, "10")
	bad.OverdraftAmount = dec("11")
	if _, err := d.Dispatch(bad, domain.BasisCash, testChart(domain.BasisCash)); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}

	if _, err := d.Dispatch(testTxn(domain.KindDeposit, "10"), domain.BasisCash, nil); !errors.Is(err, domain.ErrMissingAccountMapping) {
		t.Errorf("expected missing mapping for nil chart, got %v", err)
	}
}

func TestPostingRuleDispatcher_Deterministic(t *testing.T) {
	txn := testTxn(domain.KindWithdrawal, "500")
	txn.OverdraftAmount = dec("300")
	chart := testChart(domain.BasisCash)
	d := NewPostingRuleDispatcher()

	first, err := d.Dispatch(txn, domain.BasisCash, chart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := d.Dispatch(txn, domain.BasisCash, chart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("dispatch not deterministic:\n%+v\n%+v", first, second)
	}
}
