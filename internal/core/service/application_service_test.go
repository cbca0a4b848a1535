package service

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobtrack/jobtrack/internal/core/domain"
	"github.com/jobtrack/jobtrack/internal/core/ports"
)

// stubAppRepo keeps records in insertion order so sort tie-breaks are
// observable, mirroring the Mongo repository's _id tie-break.
type stubAppRepo struct {
	apps   []*domain.Application
	nextID int
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{}
}

func cloneApp(a *domain.Application) *domain.Application {
	clone := *a
	return &clone
}

func (r *stubAppRepo) Create(_ context.Context, app *domain.Application) (string, error) {
	r.nextID++
	id := fmt.Sprintf("app-%d", r.nextID)
	stored := cloneApp(app)
	stored.ID = id
	r.apps = append(r.apps, stored)
	return id, nil
}

func (r *stubAppRepo) FindByID(_ context.Context, ownerID, id string) (*domain.Application, error) {
	for _, a := range r.apps {
		if a.ID == id && a.OwnerID == ownerID {
			return cloneApp(a), nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubAppRepo) Update(_ context.Context, ownerID string, app *domain.Application) error {
	for i, a := range r.apps {
		if a.ID == app.ID && a.OwnerID == ownerID {
			updated := cloneApp(app)
			updated.CreatedAt = a.CreatedAt
			r.apps[i] = updated
			return nil
		}
	}
	return domain.ErrApplicationNotFound
}

func (r *stubAppRepo) Delete(_ context.Context, ownerID, id string) error {
	for i, a := range r.apps {
		if a.ID == id && a.OwnerID == ownerID {
			r.apps = append(r.apps[:i], r.apps[i+1:]...)
			return nil
		}
	}
	return domain.ErrApplicationNotFound
}

func (r *stubAppRepo) List(_ context.Context, filter ports.ListFilter) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if a.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Status != "" && string(a.Status) != filter.Status {
			continue
		}
		out = append(out, cloneApp(a))
	}
	asc := filter.Sort == ports.SortAscending
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].AppliedDate < out[j].AppliedDate
		}
		return out[i].AppliedDate > out[j].AppliedDate
	})
	return out, nil
}

func (r *stubAppRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for _, a := range r.apps {
		if a.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *stubAppRepo) CountByStatus(_ context.Context, ownerID string, status domain.ApplicationStatus) (int64, error) {
	var n int64
	for _, a := range r.apps {
		if a.OwnerID == ownerID && a.Status == status {
			n++
		}
	}
	return n, nil
}

func newTestAppService() (*ApplicationService, *stubAppRepo) {
	repo := newStubAppRepo()
	return NewApplicationService(repo, zerolog.Nop()), repo
}

func sampleInput() ports.ApplicationInput {
	return ports.ApplicationInput{
		Company:     "Acme",
		Role:        "Backend Engineer",
		Category:    "engineering",
		Location:    "Berlin",
		Flexibility: "remote",
		Status:      "Applied",
		AppliedDate: "2024-01-05",
		Link:        "https://jobs.example.com/123",
	}
}

func TestApplicationService_Create_RoundTrip(t *testing.T) {
	svc, _ := newTestAppService()

	created, err := svc.Create(context.Background(), "owner-1", sampleInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected record id")
	}

	apps, err := svc.List(context.Background(), "owner-1", "", ports.SortNone)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}

	got := apps[0]
	want := sampleInput()
	if got.Company != want.Company || got.Role != want.Role ||
		got.Category != want.Category || got.Location != want.Location ||
		got.Flexibility != want.Flexibility || string(got.Status) != want.Status ||
		got.AppliedDate != want.AppliedDate || got.Link != want.Link {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestApplicationService_Create_Validation(t *testing.T) {
	svc, _ := newTestAppService()

	input := sampleInput()
	input.Company = ""
	if _, err := svc.Create(context.Background(), "owner-1", input); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for missing company, got %v", err)
	}

	input = sampleInput()
	input.Status = "Ghosted"
	if _, err := svc.Create(context.Background(), "owner-1", input); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestApplicationService_Update_MissingRecord(t *testing.T) {
	svc, _ := newTestAppService()

	if err := svc.Update(context.Background(), "owner-1", "nope", sampleInput()); err != domain.ErrApplicationNotFound {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplicationService_Update_ForeignOwner(t *testing.T) {
	svc, _ := newTestAppService()

	created, err := svc.Create(context.Background(), "owner-1", sampleInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	input := sampleInput()
	input.Company = "Hijacked"
	if err := svc.Update(context.Background(), "owner-2", created.ID, input); err != domain.ErrApplicationNotFound {
		t.Fatalf("expected ErrApplicationNotFound for foreign owner, got %v", err)
	}

	// Record must be untouched.
	got, err := svc.Get(context.Background(), "owner-1", created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Company != "Acme" {
		t.Fatalf("foreign update must not modify the record, company = %s", got.Company)
	}
}

func TestApplicationService_Update_ReplacesFields(t *testing.T) {
	svc, _ := newTestAppService()

	created, _ := svc.Create(context.Background(), "owner-1", sampleInput())

	input := sampleInput()
	input.Status = "Interviewing"
	input.Location = "Munich"
	if err := svc.Update(context.Background(), "owner-1", created.ID, input); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := svc.Get(context.Background(), "owner-1", created.ID)
	if got.Status != domain.StatusInterviewing || got.Location != "Munich" {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestApplicationService_Delete_RemovesRecord(t *testing.T) {
	svc, _ := newTestAppService()

	first, _ := svc.Create(context.Background(), "owner-1", sampleInput())
	second, _ := svc.Create(context.Background(), "owner-1", sampleInput())

	if err := svc.Delete(context.Background(), "owner-1", first.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	apps, _ := svc.List(context.Background(), "owner-1", "", ports.SortNone)
	if len(apps) != 1 {
		t.Fatalf("expected exactly 1 application after delete, got %d", len(apps))
	}
	if apps[0].ID != second.ID {
		t.Fatalf("wrong record deleted")
	}
}

func TestApplicationService_Delete_ForeignOwner(t *testing.T) {
	svc, _ := newTestAppService()

	created, _ := svc.Create(context.Background(), "owner-1", sampleInput())
	if err := svc.Delete(context.Background(), "owner-2", created.ID); err != domain.ErrApplicationNotFound {
		t.Fatalf("expected ErrApplicationNotFound for foreign delete, got %v", err)
	}

	apps, _ := svc.List(context.Background(), "owner-1", "", ports.SortNone)
	if len(apps) != 1 {
		t.Fatalf("foreign delete must not remove the record")
	}
}

func TestApplicationService_List_StatusFilter(t *testing.T) {
	svc, _ := newTestAppService()

	applied := sampleInput()
	interviewing := sampleInput()
	interviewing.Status = "Interviewing"
	_, _ = svc.Create(context.Background(), "owner-1", applied)
	_, _ = svc.Create(context.Background(), "owner-1", interviewing)

	apps, err := svc.List(context.Background(), "owner-1", "Interviewing", ports.SortNone)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(apps) != 1 || apps[0].Status != domain.StatusInterviewing {
		t.Fatalf("status filter not applied: %+v", apps)
	}

	if _, err := svc.List(context.Background(), "owner-1", "Ghosted", ports.SortNone); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown status filter, got %v", err)
	}
}

func TestApplicationService_List_SortOrder(t *testing.T) {
	svc, _ := newTestAppService()

	for _, date := range []string{"2024-01-10", "2024-01-02", "2024-01-06"} {
		input := sampleInput()
		input.AppliedDate = date
		_, _ = svc.Create(context.Background(), "owner-1", input)
	}

	asc, _ := svc.List(context.Background(), "owner-1", "", ports.SortAscending)
	if asc[0].AppliedDate != "2024-01-02" || asc[2].AppliedDate != "2024-01-10" {
		t.Fatalf("ascending order wrong: %s..%s", asc[0].AppliedDate, asc[2].AppliedDate)
	}

	// Default view is newest first.
	def, _ := svc.List(context.Background(), "owner-1", "", ports.SortNone)
	if def[0].AppliedDate != "2024-01-10" || def[2].AppliedDate != "2024-01-02" {
		t.Fatalf("default order wrong: %s..%s", def[0].AppliedDate, def[2].AppliedDate)
	}
}

func TestApplicationService_List_ScopedToOwner(t *testing.T) {
	svc, _ := newTestAppService()

	_, _ = svc.Create(context.Background(), "owner-1", sampleInput())
	_, _ = svc.Create(context.Background(), "owner-2", sampleInput())

	apps, _ := svc.List(context.Background(), "owner-1", "", ports.SortNone)
	if len(apps) != 1 {
		t.Fatalf("list leaked records across owners: %d", len(apps))
	}
}
