package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobassist_backend/internal/feature/auth/domain/entity"
	authusecase "jobassist_backend/internal/feature/auth/usecase"
)

// mockUserFinder is a mock implementation of the UserFinder interface.
type mockUserFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserFinder) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, authusecase.ErrUserNotFound
}

// mockScorer is a mock implementation of the Scorer interface.
type mockScorer struct {
	ScoreFunc func(jobDescription, userData string) float64
}

func (m *mockScorer) Score(jobDescription, userData string) float64 {
	if m.ScoreFunc != nil {
		return m.ScoreFunc(jobDescription, userData)
	}
	return 0
}

func TestJobMatchUsecase_GenerateCV(t *testing.T) {
	t.Run("composes text from stored profile", func(t *testing.T) {
		finder := &mockUserFinder{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id, Username: "alice", UserData: "Go and SQL"}, nil
			},
		}
		scorer := &mockScorer{
			ScoreFunc: func(jobDescription, userData string) float64 {
				if userData != "Go and SQL" {
					t.Errorf("unexpected user data passed to scorer: %q", userData)
				}
				return 0.25
			},
		}

		uc := NewJobMatchUsecase(finder, scorer)
		cv, score, err := uc.GenerateCV(context.Background(), 1, "Backend Go developer")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score != 0.25 {
			t.Errorf("expected score 0.25, got %v", score)
		}
		expected := "Generated CV based on:\nJob Description: Backend Go developer\nUser Data: Go and SQL\nMatch Score: 0.25"
		if cv != expected {
			t.Errorf("unexpected cv text:\n got: %q\nwant: %q", cv, expected)
		}
	})

	t.Run("unknown user falls back to empty profile", func(t *testing.T) {
		uc := NewJobMatchUsecase(&mockUserFinder{}, &mockScorer{})

		cv, score, err := uc.GenerateCV(context.Background(), 42, "Backend Go developer")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score != 0 {
			t.Errorf("expected score 0, got %v", score)
		}
		if !strings.Contains(cv, "User Data: \n") {
			t.Errorf("expected empty user data in composed text, got: %q", cv)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		expectedErr := errors.New("database unavailable")
		finder := &mockUserFinder{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return nil, expectedErr
			},
		}

		uc := NewJobMatchUsecase(finder, &mockScorer{})
		_, _, err := uc.GenerateCV(context.Background(), 1, "job")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected wrapped %v, got: %v", expectedErr, err)
		}
	})
}

func TestJobMatchUsecase_GenerateCoverLetter(t *testing.T) {
	finder := &mockUserFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			return &entity.User{ID: id, UserData: "profile"}, nil
		},
	}
	scorer := &mockScorer{ScoreFunc: func(jd, ud string) float64 { return 0.5 }}

	uc := NewJobMatchUsecase(finder, scorer)
	letter, score, err := uc.GenerateCoverLetter(context.Background(), 1, "job text")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0.5 {
		t.Errorf("expected score 0.5, got %v", score)
	}
	expected := "Generated Cover Letter based on:\nJob Description: job text\nUser Data: profile\nMatch Score: 0.50"
	if letter != expected {
		t.Errorf("unexpected letter text:\n got: %q\nwant: %q", letter, expected)
	}
}

func TestJobMatchUsecase_PrepareInterview(t *testing.T) {
	finder := &mockUserFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			return &entity.User{ID: id, UserData: "profile"}, nil
		},
	}
	scorer := &mockScorer{ScoreFunc: func(jd, ud string) float64 { return 0.125 }}

	uc := NewJobMatchUsecase(finder, scorer)
	questions, score, err := uc.PrepareInterview(context.Background(), 1, "job text")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0.125 {
		t.Errorf("expected score 0.125, got %v", score)
	}
	if !strings.HasPrefix(questions, "Generated Interview Questions based on:") {
		t.Errorf("unexpected questions text: %q", questions)
	}
}
