package history_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/businessanalystdm/projecthrm/internal/history"
	historyerrors "github.com/businessanalystdm/projecthrm/internal/history/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Random sequences of transfer/increment/promote must never leave more than
// one open entry per ledger, and every closed interval must end on or after
// its start. Rejected operations are fine; broken invariants are not.
func TestHistoryLedger_InvariantsUnderRandomTransitions(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := newMemRepository()
	svc := history.NewService(db, repo, &fakeBranchLookup{}, &fakeChainValidator{}, &fakeOutbox{})

	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	joining := day(time.Now().AddDate(0, 0, -365))
	emp := history.EmployeeCurrent{
		ID:              uuid.New(),
		EmpID:           "1000003",
		BranchID:        uuid.New(),
		DepartmentID:    uuid.New(),
		SubDepartmentID: uuid.New(),
		CategoryID:      uuid.New(),
		DesignationID:   uuid.New(),
		Salary:          30000,
		JoiningDate:     joining,
	}
	repo.addEmployee(emp)
	assert.NoError(t, svc.SeedLedgers(ctx, repo, &emp))

	randomDate := func() time.Time {
		return joining.AddDate(0, 0, rng.Intn(365))
	}

	expected := []error{
		historyerrors.ErrSameBranch,
		historyerrors.ErrInvalidSalary,
		historyerrors.ErrSalaryNotIncreased,
		historyerrors.ErrNoOpPromotion,
	}
	isExpected := func(err error) bool {
		for _, e := range expected {
			if errors.Is(err, e) {
				return true
			}
		}
		return false
	}

	for i := 0; i < 500; i++ {
		var opErr error
		switch rng.Intn(3) {
		case 0:
			// occasionally target the current branch to exercise the no-op path
			target := uuid.New()
			if rng.Intn(4) == 0 {
				target = emp.BranchID
			}
			opErr = svc.ApplyTransfer(ctx, repo, &emp, target, randomDate())
		case 1:
			// deltas around zero so both accept and reject paths run
			delta := float64(rng.Intn(2000)) - 500
			opErr = svc.ApplyIncrement(ctx, repo, &emp, emp.Salary+delta, randomDate())
		case 2:
			desig := uuid.New()
			if rng.Intn(4) == 0 {
				desig = emp.DesignationID
			}
			opErr = svc.ApplyPromotion(ctx, repo, &emp,
				emp.DepartmentID, emp.SubDepartmentID, emp.CategoryID, desig, randomDate())
		}

		if opErr != nil {
			assert.True(t, isExpected(opErr), "op %d: unexpected error %v", i, opErr)
		}

		openBranch, openSalary, openPromo := repo.openCount(emp.ID.String())
		assert.LessOrEqual(t, openBranch, 1, "op %d: branch ledger has %d open entries", i, openBranch)
		assert.LessOrEqual(t, openSalary, 1, "op %d: salary ledger has %d open entries", i, openSalary)
		assert.LessOrEqual(t, openPromo, 1, "op %d: promotion ledger has %d open entries", i, openPromo)
		assert.True(t, repo.closedIntervalsValid(), "op %d: closed entry ends before it starts", i)
	}

	// the employee row must agree with the open ledger entries at the end
	branchOpen, err := repo.FindOpenBranchEntryForUpdate(ctx, emp.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, emp.BranchID, branchOpen.BranchID)

	salaryOpen, err := repo.FindOpenSalaryEntryForUpdate(ctx, emp.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, emp.Salary, salaryOpen.Salary)

	promoOpen, err := repo.FindOpenPromotionEntriesForUpdate(ctx, emp.ID.String())
	assert.NoError(t, err)
	assert.Len(t, promoOpen, 1)
	assert.Equal(t, emp.DesignationID, promoOpen[0].DesignationID)
}
