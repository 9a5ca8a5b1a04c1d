package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgoncalo/centavo/internal/budget"
	"github.com/mgoncalo/centavo/internal/category"
	"github.com/mgoncalo/centavo/internal/money"
)

func expenseCategory(ownerID, id uuid.UUID, name string) *category.Category {
	return &category.Category{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		Type:    category.TypeExpense,
	}
}

func TestService_Set(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()

	type testCase struct {
		name      string
		params    budget.SetParams
		setupMock func(m *budget.MockRepository)
		wantMonth time.Time
		wantErr   error
	}

	tests := []testCase{
		{
			name: "MidMonthDateNormalizedToFirst",
			params: budget.SetParams{
				CategoryID: categoryID,
				Amount:     30000,
				Month:      time.Date(2024, 6, 17, 13, 45, 0, 0, time.UTC),
			},
			setupMock: func(m *budget.MockRepository) {
				m.EXPECT().
					GetCategory(gomock.Any(), ownerID, categoryID).
					Return(expenseCategory(ownerID, categoryID, "Food"), nil)
				m.EXPECT().
					UpsertAllocation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *budget.Allocation) error {
						a.ID = uuid.New()
						return nil
					})
			},
			wantMonth: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "ZeroBudgetIsValid",
			params: budget.SetParams{
				CategoryID: categoryID,
				Amount:     0,
				Month:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *budget.MockRepository) {
				m.EXPECT().
					GetCategory(gomock.Any(), ownerID, categoryID).
					Return(expenseCategory(ownerID, categoryID, "Food"), nil)
				m.EXPECT().
					UpsertAllocation(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantMonth: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "NegativeAmount",
			params: budget.SetParams{
				CategoryID: categoryID,
				Amount:     -1,
				Month:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *budget.MockRepository) {},
			wantErr:   budget.ErrInvalidAmount,
		},
		{
			name: "IncomeCategoryRejected",
			params: budget.SetParams{
				CategoryID: categoryID,
				Amount:     30000,
				Month:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *budget.MockRepository) {
				m.EXPECT().
					GetCategory(gomock.Any(), ownerID, categoryID).
					Return(&category.Category{
						ID:      categoryID,
						OwnerID: ownerID,
						Name:    "Salary",
						Type:    category.TypeIncome,
					}, nil)
			},
			wantErr: budget.ErrNotExpenseCategory,
		},
		{
			name: "UnknownCategory",
			params: budget.SetParams{
				CategoryID: categoryID,
				Amount:     30000,
				Month:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *budget.MockRepository) {
				m.EXPECT().
					GetCategory(gomock.Any(), ownerID, categoryID).
					Return(nil, category.ErrNotFound)
			},
			wantErr: category.ErrNotFound,
		},
		{
			name: "AncientMonthRejected",
			params: budget.SetParams{
				CategoryID: categoryID,
				Amount:     30000,
				Month:      time.Date(1999, 12, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *budget.MockRepository) {},
			wantErr:   budget.ErrMonthOutOfRange,
		},
		{
			name: "FarFutureMonthRejected",
			params: budget.SetParams{
				CategoryID: categoryID,
				Amount:     30000,
				Month:      time.Now().UTC().AddDate(11, 0, 0),
			},
			setupMock: func(m *budget.MockRepository) {},
			wantErr:   budget.ErrMonthOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := budget.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := budget.NewService(repo)
			got, err := svc.Set(context.Background(), ownerID, tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantMonth, got.Month)
			assert.Equal(t, tt.params.Amount, got.Amount)
		})
	}
}

func TestService_AmountFor(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()
	june := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("ReturnsExactAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := budget.NewMockRepository(ctrl)

		repo.EXPECT().
			GetAllocation(gomock.Any(), ownerID, categoryID, june).
			Return(&budget.Allocation{Amount: 30000, Month: june}, nil)

		got, err := budget.NewService(repo).AmountFor(context.Background(), ownerID, categoryID, june)
		require.NoError(t, err)
		assert.Equal(t, money.Amount(30000), got)
	})

	t.Run("NormalizesLookupMonth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := budget.NewMockRepository(ctrl)

		// Looking up by the 23rd must hit the allocation stored on the 1st.
		repo.EXPECT().
			GetAllocation(gomock.Any(), ownerID, categoryID, june).
			Return(&budget.Allocation{Amount: 500, Month: june}, nil)

		got, err := budget.NewService(repo).AmountFor(context.Background(), ownerID, categoryID,
			time.Date(2024, 6, 23, 9, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, money.Amount(500), got)
	})

	t.Run("NotSetIsDistinctFromZero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := budget.NewMockRepository(ctrl)

		repo.EXPECT().
			GetAllocation(gomock.Any(), ownerID, categoryID, june).
			Return(nil, budget.ErrNotSet)

		_, err := budget.NewService(repo).AmountFor(context.Background(), ownerID, categoryID, june)
		assert.ErrorIs(t, err, budget.ErrNotSet)
	})
}

func TestNormalizeMonth(t *testing.T) {
	got := budget.NormalizeMonth(time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)

	got = budget.NormalizeMonth(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)
}
