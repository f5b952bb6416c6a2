package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	admin "github.com/carolinadevia11/Bridge/internal/pkg/admin/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/admin/persistence/repository/port"
	family "github.com/carolinadevia11/Bridge/internal/pkg/family/application/domain"
)

// fakeReportingRepo serves canned back-office views.
type fakeReportingRepo struct {
	overviews []admin.FamilyOverview
	stats     admin.Stats
	users     []admin.UserOverview
	err       error
}

var _ repository.ReportingRepository = (*fakeReportingRepo)(nil)

func (f *fakeReportingRepo) ListFamilyOverviews(context.Context) ([]admin.FamilyOverview, error) {
	return f.overviews, f.err
}

func (f *fakeReportingRepo) GetFamilyOverview(_ context.Context, familyID string) (*admin.FamilyOverview, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.overviews {
		if f.overviews[i].ID == familyID {
			cp := f.overviews[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeReportingRepo) Stats(context.Context) (*admin.Stats, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := f.stats
	return &s, nil
}

func (f *fakeReportingRepo) ListUserOverviews(context.Context) ([]admin.UserOverview, error) {
	return f.users, f.err
}

func seededRepo() *fakeReportingRepo {
	now := time.Now().UTC()
	famID := "fam-1"
	famName := "The Does"
	return &fakeReportingRepo{
		overviews: []admin.FamilyOverview{
			{
				ID:         famID,
				FamilyName: famName,
				Parent1:    admin.ParentAccount{ID: "u-1", Email: "pat@example.com", FirstName: "Pat", LastName: "Doe", Role: "parent", CreatedAt: now},
				Parent2:    &admin.ParentAccount{ID: "u-2", Email: "sam@example.com", FirstName: "Sam", LastName: "Doe", Role: "parent", CreatedAt: now},
				Children:   []family.Child{{ID: "c-1", FamilyID: famID, Name: "Jo", DateOfBirth: time.Date(2016, 4, 2, 0, 0, 0, 0, time.UTC)}},
				CreatedAt:  now,
				LinkedAt:   &now,
			},
			{
				ID:         "fam-2",
				FamilyName: "Solo Household",
				Parent1:    admin.ParentAccount{ID: "u-3", Email: "lee@example.com", FirstName: "Lee", LastName: "Park", Role: "parent", CreatedAt: now},
				CreatedAt:  now,
			},
		},
		stats: admin.Stats{TotalFamilies: 2, LinkedFamilies: 1, UnlinkedFamilies: 1, TotalUsers: 3, TotalChildren: 1},
		users: []admin.UserOverview{
			{ID: "u-1", Email: "pat@example.com", Role: "parent", CreatedAt: now, FamilyID: &famID, FamilyName: &famName},
			{ID: "u-4", Email: "solo@example.com", Role: "parent", CreatedAt: now},
		},
	}
}

func TestListFamiliesOverview(t *testing.T) {
	overviews, err := NewListFamiliesUseCase(seededRepo()).Execute(context.Background())
	if err != nil {
		t.Fatalf("list families: %v", err)
	}
	if len(overviews) != 2 {
		t.Fatalf("expected 2 overviews, got %d", len(overviews))
	}
	if !overviews[0].IsLinked() {
		t.Fatal("family with a second parent must report linked")
	}
	if overviews[1].IsLinked() || overviews[1].Parent2 != nil {
		t.Fatal("single-parent family must report unlinked with nil parent2")
	}
}

func TestListFamiliesEmptyIsNotNil(t *testing.T) {
	overviews, err := NewListFamiliesUseCase(&fakeReportingRepo{}).Execute(context.Background())
	if err != nil {
		t.Fatalf("list families: %v", err)
	}
	if overviews == nil || len(overviews) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", overviews)
	}
}

func TestGetFamilyDetail(t *testing.T) {
	detail, err := NewGetFamilyDetailUseCase(seededRepo()).Execute(context.Background(), "fam-1")
	if err != nil {
		t.Fatalf("family detail: %v", err)
	}
	if detail.Parent2 == nil || detail.Parent2.Email != "sam@example.com" {
		t.Fatalf("detail must carry the second parent: %+v", detail.Parent2)
	}
	if len(detail.Children) != 1 || detail.Children[0].Name != "Jo" {
		t.Fatalf("detail must carry the children: %+v", detail.Children)
	}
}

func TestGetFamilyDetailNotFoundPassesThrough(t *testing.T) {
	_, err := NewGetFamilyDetailUseCase(seededRepo()).Execute(context.Background(), "ghost")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetStats(t *testing.T) {
	stats, err := NewGetStatsUseCase(seededRepo()).Execute(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalFamilies != 2 || stats.LinkedFamilies != 1 || stats.UnlinkedFamilies != 1 {
		t.Fatalf("unexpected family counts: %+v", stats)
	}
	if stats.TotalUsers != 3 || stats.TotalChildren != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
}

func TestListUsersMembership(t *testing.T) {
	users, err := NewListUsersUseCase(seededRepo()).Execute(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if !users[0].HasFamily() || *users[0].FamilyName != "The Does" {
		t.Fatalf("parent in a family must report membership: %+v", users[0])
	}
	if users[1].HasFamily() {
		t.Fatalf("user without a family must not report membership: %+v", users[1])
	}
}

func TestReportingFailureIsPersistenceError(t *testing.T) {
	repo := &fakeReportingRepo{err: errors.New("read replica unavailable")}
	ctx := context.Background()

	if _, err := NewListFamiliesUseCase(repo).Execute(ctx); !errors.Is(err, ErrPersistence) {
		t.Fatalf("list families: expected ErrPersistence, got %v", err)
	}
	if _, err := NewGetFamilyDetailUseCase(repo).Execute(ctx, "fam-1"); !errors.Is(err, ErrPersistence) {
		t.Fatalf("family detail: expected ErrPersistence, got %v", err)
	}
	if _, err := NewGetStatsUseCase(repo).Execute(ctx); !errors.Is(err, ErrPersistence) {
		t.Fatalf("stats: expected ErrPersistence, got %v", err)
	}
	if _, err := NewListUsersUseCase(repo).Execute(ctx); !errors.Is(err, ErrPersistence) {
		t.Fatalf("list users: expected ErrPersistence, got %v", err)
	}
}
