package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgoncalo/centavo/internal/category"
	"github.com/mgoncalo/centavo/internal/ledger"
	"github.com/mgoncalo/centavo/internal/money"
)

func expenseTx(categoryID uuid.UUID, amount money.Amount, date time.Time) *ledger.Transaction {
	return &ledger.Transaction{
		ID:         uuid.New(),
		CategoryID: &categoryID,
		Type:       ledger.TypeExpense,
		Amount:     amount,
		Date:       date,
	}
}

func TestService_Create(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()
	date := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		params    ledger.CreateParams
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Uncategorized",
			params: ledger.CreateParams{
				Type:        ledger.TypeExpense,
				Amount:      1250,
				Date:        date,
				Description: "groceries",
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "CategorizedTypeMatches",
			params: ledger.CreateParams{
				Type:       ledger.TypeExpense,
				Amount:     1250,
				CategoryID: &categoryID,
				Date:       date,
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					GetCategory(gomock.Any(), ownerID, categoryID).
					Return(&category.Category{
						ID:      categoryID,
						OwnerID: ownerID,
						Name:    "Food",
						Type:    category.TypeExpense,
					}, nil)
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "CategoryTypeMismatch",
			params: ledger.CreateParams{
				Type:       ledger.TypeIncome,
				Amount:     1250,
				CategoryID: &categoryID,
				Date:       date,
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					GetCategory(gomock.Any(), ownerID, categoryID).
					Return(&category.Category{
						ID:      categoryID,
						OwnerID: ownerID,
						Name:    "Food",
						Type:    category.TypeExpense,
					}, nil)
			},
			wantErr: ledger.ErrCategoryTypeMismatch,
		},
		{
			name: "UnknownCategory",
			params: ledger.CreateParams{
				Type:       ledger.TypeExpense,
				Amount:     1250,
				CategoryID: &categoryID,
				Date:       date,
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					GetCategory(gomock.Any(), ownerID, categoryID).
					Return(nil, category.ErrNotFound)
			},
			wantErr: category.ErrNotFound,
		},
		{
			name: "ZeroAmount",
			params: ledger.CreateParams{
				Type:   ledger.TypeExpense,
				Amount: 0,
				Date:   date,
			},
			setupMock: func(m *ledger.MockRepository) {},
			wantErr:   ledger.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := ledger.NewService(repo)
			got, err := svc.Create(context.Background(), ownerID, tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, ownerID, got.OwnerID)
		})
	}
}

func TestService_SpentInMonth(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *ledger.MockRepository)
		want      money.Amount
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "SumsExpenses",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), ownerID, gomock.Any()).
					Return([]*ledger.Transaction{
						expenseTx(categoryID, 5000, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
						expenseTx(categoryID, 7500, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
						expenseTx(categoryID, 2500, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)),
					}, nil)
			},
			want: 15000,
		},
		{
			name: "NoTransactionsIsZero",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), ownerID, gomock.Any()).
					Return(nil, nil)
			},
			want: 0,
		},
		{
			name: "SkipsMislinkedIncomeRows",
			setupMock: func(m *ledger.MockRepository) {
				badRow := expenseTx(categoryID, 9999, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))
				badRow.Type = ledger.TypeIncome

				m.EXPECT().
					ListTransactions(gomock.Any(), ownerID, gomock.Any()).
					Return([]*ledger.Transaction{
						badRow,
						expenseTx(categoryID, 5000, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)),
					}, nil)
			},
			want: 5000,
		},
		{
			name: "RepoError",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), ownerID, gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := ledger.NewService(repo)
			got, err := svc.SpentInMonth(context.Background(), ownerID, categoryID, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Aggregating two disjoint transaction sets separately and adding the totals
// must equal aggregating their union.
func TestService_SpentInMonth_Additive(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()
	month := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	setA := []*ledger.Transaction{
		expenseTx(categoryID, 1234, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		expenseTx(categoryID, 999, time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)),
	}
	setB := []*ledger.Transaction{
		expenseTx(categoryID, 450, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)),
		expenseTx(categoryID, 10001, time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)),
	}

	sum := func(txs []*ledger.Transaction) money.Amount {
		ctrl := gomock.NewController(t)
		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			ListTransactions(gomock.Any(), ownerID, gomock.Any()).
			Return(txs, nil)

		got, err := ledger.NewService(repo).SpentInMonth(context.Background(), ownerID, categoryID, month)
		require.NoError(t, err)

		return got
	}

	union := append(append([]*ledger.Transaction{}, setA...), setB...)

	assert.Equal(t, sum(union), sum(setA)+sum(setB))
}

func TestService_SpentInMonth_QueriesFullMonth(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := ledger.NewMockRepository(ctrl)

	repo.EXPECT().
		ListTransactions(gomock.Any(), ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
			assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *filter.EndDate) // leap year
			require.NotNil(t, filter.CategoryID)
			assert.Equal(t, categoryID, *filter.CategoryID)

			return nil, nil
		})

	_, err := ledger.NewService(repo).SpentInMonth(context.Background(), ownerID, categoryID, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
}

func TestService_CreateBatch_RejectsWholeBatchOnBadRow(t *testing.T) {
	ownerID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := ledger.NewMockRepository(ctrl)
	// No CreateTransactions expectation: nothing may be written.

	params := []ledger.CreateParams{
		{Type: ledger.TypeExpense, Amount: 100, Date: time.Now()},
		{Type: ledger.TypeExpense, Amount: 0, Date: time.Now()},
	}

	got, err := ledger.NewService(repo).CreateBatch(context.Background(), ownerID, params)
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	assert.Nil(t, got)
}
