package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"messageboard/internal/models"
)

type stubRepo struct {
	messages  []models.Message
	findCalls int
	failNext  bool
}

func (r *stubRepo) ListMessages(ctx context.Context) ([]models.Message, error) {
	if r.failNext {
		r.failNext = false
		return nil, fmt.Errorf("simulated list failure")
	}
	return r.messages, nil
}

func (r *stubRepo) FindMessages(ctx context.Context, id primitive.ObjectID) ([]models.Message, error) {
	r.findCalls++
	var results []models.Message
	for _, m := range r.messages {
		if m.ID == id {
			results = append(results, m)
		}
	}
	return results, nil
}

func (r *stubRepo) InsertMessage(ctx context.Context, msg *models.Message) error {
	if r.failNext {
		r.failNext = false
		return fmt.Errorf("simulated insert failure")
	}
	r.messages = append(r.messages, *msg)
	return nil
}

type stubLedger struct {
	stored map[string]time.Time
	fail   bool
}

func (l *stubLedger) StoreSavedMessage(ctx context.Context, id string, createdAt time.Time) error {
	if l.fail {
		return fmt.Errorf("simulated ledger failure")
	}
	if l.stored == nil {
		l.stored = make(map[string]time.Time)
	}
	l.stored[id] = createdAt
	return nil
}

func strPtr(s string) *string { return &s }

func TestSaveThenGetMessage(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	ledger := &stubLedger{}
	service := NewMessageService(repo, ledger)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)
	service.now = func() time.Time { return fixed }

	saved, err := service.SaveMessage(ctx, models.SaveMessageRequest{Name: strPtr("Ann"), Message: strPtr("hi")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID.IsZero() {
		t.Fatalf("expected an id to be assigned")
	}
	if !saved.CreatedAt.Equal(fixed.Truncate(time.Millisecond)) || !saved.UpdatedAt.Equal(saved.CreatedAt) {
		t.Errorf("unexpected timestamps: created %v updated %v", saved.CreatedAt, saved.UpdatedAt)
	}
	if _, ok := ledger.stored[saved.ID.Hex()]; !ok {
		t.Errorf("expected id %s in ledger", saved.ID.Hex())
	}

	found, err := service.GetMessage(ctx, saved.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 message, got %d", len(found))
	}
	if *found[0].Name != "Ann" || *found[0].Text != "hi" || found[0].ID != saved.ID {
		t.Errorf("found message does not match saved one: %+v", found[0])
	}
}

func TestSaveMessageKeepsAbsentFieldsNil(t *testing.T) {
	repo := &stubRepo{}
	service := NewMessageService(repo, nil)

	saved, err := service.SaveMessage(context.Background(), models.SaveMessageRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Name != nil || saved.Text != nil {
		t.Errorf("expected nil name and message, got %v %v", saved.Name, saved.Text)
	}
	if len(repo.messages) != 1 {
		t.Errorf("expected 1 stored message, got %d", len(repo.messages))
	}
}

func TestSaveMessageFailures(t *testing.T) {
	repo := &stubRepo{failNext: true}
	ledger := &stubLedger{}
	service := NewMessageService(repo, ledger)

	if _, err := service.SaveMessage(context.Background(), models.SaveMessageRequest{Name: strPtr("x")}); err == nil {
		t.Fatalf("expected insert error")
	}
	if len(ledger.stored) != 0 {
		t.Errorf("expected 0 ledger entries on failure, got %d", len(ledger.stored))
	}

	// A failing ledger must not fail the save.
	service = NewMessageService(&stubRepo{}, &stubLedger{fail: true})
	if _, err := service.SaveMessage(context.Background(), models.SaveMessageRequest{Name: strPtr("x")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetMessageAbsentIsEmpty(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		wantFinds int
	}{
		{"malformed", "not-an-id", 0},
		{"short_hex", "abc123", 0},
		{"unknown", primitive.NewObjectID().Hex(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			service := NewMessageService(repo, nil)
			got, err := service.GetMessage(context.Background(), tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Errorf("expected empty non-nil slice, got %#v", got)
			}
			if repo.findCalls != tt.wantFinds {
				t.Errorf("expected %d store lookups, got %d", tt.wantFinds, repo.findCalls)
			}
		})
	}
}

func TestListMessages(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	service := NewMessageService(repo, nil)

	got, err := service.ListMessages(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}

	for i := 0; i < 3; i++ {
		if _, err := service.SaveMessage(ctx, models.SaveMessageRequest{Name: strPtr(fmt.Sprintf("n%d", i))}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	got, err = service.ListMessages(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
	for i, m := range got {
		if *m.Name != fmt.Sprintf("n%d", i) {
			t.Errorf("message %d out of insertion order: %s", i, *m.Name)
		}
	}

	repo.failNext = true
	if _, err := service.ListMessages(ctx); err == nil {
		t.Errorf("expected list error")
	}
}

func TestAboutIsFixed(t *testing.T) {
	want := []string{
		"Hi my name is Angelina Wu.",
		" I am from San Jose, California and I go to NYU. I study Computer Science and Economics and am currently a sophomore. I like drawing and painting in my free time, recently getting into pottery and crocheting. Art helps me relax when school gets stressful. It feels different from coding and lets me be more creative.",
		"I have done a bunch of random partime different jobs and projects that helped me learn how to work with people. I have skills in teamwork and organization. I like being part of clubs and meeting new people. I am in groups like GDG, MUn and SWE in school  and I enjoy being involved. I have a cat and I like spending time with her. I also like working on side projects. I want to travel to places like Japan and Korea in the future. I am always trying new things and learning as I go.",
		"I like rock climbing and am interested in new experiences.",
		"Nice to meet you .",
	}
	a := About()
	if a.Title != "About Angelina Wu" || a.ImageURL != "/public/angelina.jpg" {
		t.Fatalf("unexpected title or image: %+v", a)
	}
	if len(a.Paragraphs) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d", len(want), len(a.Paragraphs))
	}
	for i := range want {
		if a.Paragraphs[i] != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, a.Paragraphs[i], want[i])
		}
	}
	a.Paragraphs[0] = "changed"
	b := About()
	if b.Paragraphs[0] == "changed" {
		t.Errorf("About must return an independent paragraph slice")
	}
}
