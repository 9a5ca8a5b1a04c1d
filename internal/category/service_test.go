package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgoncalo/centavo/internal/category"
)

func TestService_CreateOrGet(t *testing.T) {
	ownerID := uuid.New()

	type testCase struct {
		name      string
		catName   string
		catType   category.Type
		setupMock func(m *category.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:    "CreatesNew",
			catName: "Food",
			catType: category.TypeExpense,
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					UpsertCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "DuplicateResolvesToExisting",
			catName: "Food",
			catType: category.TypeExpense,
			setupMock: func(m *category.MockRepository) {
				existingID := uuid.New()
				m.EXPECT().
					UpsertCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = existingID
						return nil
					})
			},
		},
		{
			name:      "EmptyName",
			catName:   "",
			catType:   category.TypeExpense,
			setupMock: func(m *category.MockRepository) {},
			wantErr:   category.ErrInvalidName,
		},
		{
			name:      "UnknownType",
			catName:   "Food",
			catType:   category.Type("savings"),
			setupMock: func(m *category.MockRepository) {},
			wantErr:   category.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := category.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := category.NewService(repo)
			got, err := svc.CreateOrGet(context.Background(), ownerID, tt.catName, tt.catType)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, ownerID, got.OwnerID)
			assert.Equal(t, tt.catName, got.Name)
		})
	}
}

func TestService_List(t *testing.T) {
	ownerID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := category.NewMockRepository(ctrl)

	expense := category.TypeExpense
	filter := category.ListFilter{Type: &expense}

	repo.EXPECT().
		ListCategories(gomock.Any(), ownerID, filter).
		Return([]*category.Category{
			{ID: uuid.New(), Name: "Food", Type: category.TypeExpense},
			{ID: uuid.New(), Name: "Rent", Type: category.TypeExpense},
		}, nil)

	got, err := category.NewService(repo).List(context.Background(), ownerID, filter)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
