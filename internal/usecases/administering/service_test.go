package administering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-spend-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	budgets   *mocks.MockBudgetRepository
	teams     *mocks.MockTeamRepository
	projects  *mocks.MockProjectRepository
	divisions *mocks.MockDivisionRepository
	providers *mocks.MockProviderRepository
	service   Administrator
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		budgets:   mocks.NewMockBudgetRepository(ctrl),
		teams:     mocks.NewMockTeamRepository(ctrl),
		projects:  mocks.NewMockProjectRepository(ctrl),
		divisions: mocks.NewMockDivisionRepository(ctrl),
		providers: mocks.NewMockProviderRepository(ctrl),
	}
	f.service = NewService(f.budgets, f.teams, f.projects, f.divisions, f.providers)
	return f
}

func intPtr(v int) *int {
	return &v
}

func TestService_CreateBudget(t *testing.T) {
	tests := []struct {
		name    string
		entry   domain.BudgetEntry
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name:  "orçamento válido",
			entry: domain.BudgetEntry{ProviderID: 1, TeamID: 2, Month: " 2024-03 ", Amount: 1200},
			setup: func(f *fixture) {
				f.budgets.EXPECT().
					InsertBudget(gomock.Any(), &domain.BudgetEntry{ProviderID: 1, TeamID: 2, Month: "2024-03", Amount: 1200}).
					Return(&domain.BudgetEntry{ID: 10, ProviderID: 1, TeamID: 2, Month: "2024-03", Amount: 1200}, nil)
			},
		},
		{
			name:    "mês inválido",
			entry:   domain.BudgetEntry{ProviderID: 1, TeamID: 2, Month: "03/2024"},
			setup:   func(f *fixture) {},
			wantErr: domain.ErrInvalidFilter,
		},
		{
			name:    "sem provider",
			entry:   domain.BudgetEntry{TeamID: 2, Month: "2024-03"},
			setup:   func(f *fixture) {},
			wantErr: domain.ErrInvalidFilter,
		},
		{
			name:  "falha de escrita",
			entry: domain.BudgetEntry{ProviderID: 1, TeamID: 2, Month: "2024-03"},
			setup: func(f *fixture) {
				f.budgets.EXPECT().
					InsertBudget(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewStoreError("budget.InsertBudget", domain.ErrWriteFailed, errors.New("fk")))
			},
			wantErr: domain.ErrWriteFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			entry := tt.entry
			created, err := f.service.CreateBudget(context.Background(), &entry)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 10, created.ID)
		})
	}
}

func TestService_UpdateAndDeleteBudget(t *testing.T) {
	f := newFixture(t)

	err := f.service.UpdateBudget(context.Background(), &domain.BudgetEntry{ProviderID: 1, TeamID: 1, Month: "2024-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)

	f.budgets.EXPECT().
		UpdateBudget(gomock.Any(), gomock.Any()).
		Return(domain.NewStoreError("budget.UpdateBudget", domain.ErrNotFound, nil))
	err = f.service.UpdateBudget(context.Background(), &domain.BudgetEntry{ID: 4, ProviderID: 1, TeamID: 1, Month: "2024-01"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f.budgets.EXPECT().DeleteBudget(gomock.Any(), 4).Return(nil)
	assert.NoError(t, f.service.DeleteBudget(context.Background(), 4))

	assert.ErrorIs(t, f.service.DeleteBudget(context.Background(), 0), domain.ErrInvalidFilter)
}

func TestService_CloneBudgets(t *testing.T) {
	t.Run("clona com filtro de provider", func(t *testing.T) {
		f := newFixture(t)
		req := domain.CloneRequest{Source: "2024-01", Target: "2024-02", ProviderID: intPtr(1)}

		f.budgets.EXPECT().CloneMonth(gomock.Any(), req).Return(int64(3), nil)

		result, err := f.service.CloneBudgets(context.Background(), domain.CloneRequest{
			Source: " 2024-01", Target: "2024-02 ", ProviderID: intPtr(1),
		})
		require.NoError(t, err)
		assert.Equal(t, &domain.CloneResult{Source: "2024-01", Target: "2024-02", Cloned: 3}, result)
	})

	t.Run("repetir a clonagem não copia nada", func(t *testing.T) {
		f := newFixture(t)
		f.budgets.EXPECT().CloneMonth(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		result, err := f.service.CloneBudgets(context.Background(), domain.CloneRequest{Source: "2024-01", Target: "2024-02"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.Cloned)
	})

	t.Run("mesmo mês é rejeitado", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CloneBudgets(context.Background(), domain.CloneRequest{Source: "2024-01", Target: "2024-01"})
		assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	})
}

func TestService_Teams(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateTeam(context.Background(), &domain.Team{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)

	f.teams.EXPECT().
		InsertTeam(gomock.Any(), &domain.Team{Name: "Core", DivisionID: intPtr(2)}).
		Return(&domain.Team{ID: 5, Name: "Core", DivisionID: intPtr(2)}, nil)
	created, err := f.service.CreateTeam(context.Background(), &domain.Team{Name: " Core ", DivisionID: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)

	f.teams.EXPECT().UpdateTeam(gomock.Any(), &domain.Team{ID: 5, Name: "Core"}).Return(nil)
	assert.NoError(t, f.service.UpdateTeam(context.Background(), &domain.Team{ID: 5, Name: "Core"}))

	f.teams.EXPECT().DeleteTeam(gomock.Any(), 5).Return(nil)
	assert.NoError(t, f.service.DeleteTeam(context.Background(), 5))
}

func TestService_Projects(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.CreateProject(context.Background(), &domain.Project{ExternalName: "web", ProviderID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)

	project := &domain.Project{ExternalName: "web", ExternalID: "123", ProviderID: 1, TeamID: 2}
	f.projects.EXPECT().InsertProject(gomock.Any(), project).Return(&domain.Project{ID: 9, ExternalName: "web"}, nil)
	created, err := f.service.CreateProject(context.Background(), project)
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)

	f.projects.EXPECT().DeleteProject(gomock.Any(), 9).Return(nil)
	assert.NoError(t, f.service.DeleteProject(context.Background(), 9))
}

func TestService_Divisions(t *testing.T) {
	f := newFixture(t)

	f.divisions.EXPECT().
		InsertDivision(gomock.Any(), &domain.Division{Name: "Platform"}).
		Return(&domain.Division{ID: 3, Name: "Platform"}, nil)
	created, err := f.service.CreateDivision(context.Background(), &domain.Division{Name: "Platform"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)

	f.divisions.EXPECT().
		DeleteDivision(gomock.Any(), 3).
		Return(domain.NewStoreError("division.DeleteDivision", domain.ErrStoreUnavailable, nil))
	assert.ErrorIs(t, f.service.DeleteDivision(context.Background(), 3), domain.ErrStoreUnavailable)
}

func TestService_ReferenceLists(t *testing.T) {
	f := newFixture(t)

	f.providers.EXPECT().ListProviders(gomock.Any()).Return([]domain.Provider{{ID: 1, Name: "AWS"}}, nil)
	f.teams.EXPECT().ListTeams(gomock.Any()).Return([]domain.Team{{ID: 2, Name: "Core"}}, nil)
	f.divisions.EXPECT().ListDivisions(gomock.Any()).Return([]domain.Division{}, nil)
	f.projects.EXPECT().ListProjects(gomock.Any(), domain.Ids{}).Return([]domain.Project{{ID: 4}}, nil)

	lists, err := f.service.ReferenceLists(context.Background())
	require.NoError(t, err)

	assert.Len(t, lists.Providers, 1)
	assert.Len(t, lists.Teams, 1)
	assert.Empty(t, lists.Divisions)
	assert.Len(t, lists.Projects, 1)
}

func TestService_ReferenceLists_FailsOnAnyError(t *testing.T) {
	f := newFixture(t)

	f.providers.EXPECT().ListProviders(gomock.Any()).Return(nil, domain.NewStoreError("provider.ListProviders", domain.ErrStoreUnavailable, nil))
	f.teams.EXPECT().ListTeams(gomock.Any()).Return(nil, nil).AnyTimes()
	f.divisions.EXPECT().ListDivisions(gomock.Any()).Return(nil, nil).AnyTimes()
	f.projects.EXPECT().ListProjects(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := f.service.ReferenceLists(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
