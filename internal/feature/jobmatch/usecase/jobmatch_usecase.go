package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobassist_backend/internal/feature/auth/domain/entity"
	authusecase "jobassist_backend/internal/feature/auth/usecase"
)

// UserFinder は保存済みユーザーの参照を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type UserFinder interface {
	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// Scorer はマッチスコア計算を抽象化します。
type Scorer interface {
	// Score は求人票とプロフィールテキストのマッチスコアを返します。
	Score(jobDescription, userData string) float64
}

// jobmatchUsecase は求人票とプロフィールの突き合わせロジックを提供します。
type jobmatchUsecase struct {
	users  UserFinder
	scorer Scorer
}

// NewJobMatchUsecase はjobmatchUsecaseの新しいインスタンスを生成します。
func NewJobMatchUsecase(users UserFinder, scorer Scorer) *jobmatchUsecase {
	return &jobmatchUsecase{users: users, scorer: scorer}
}

// userData は対象ユーザーのプロフィールテキストを解決します。
// ユーザーが見つからない場合は空文字として扱います（スコアは0に近づくだけ）。
func (u *jobmatchUsecase) userData(ctx context.Context, userID uint) (string, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}
	return user.UserData, nil
}

// GenerateCV は保存済みプロフィールと求人票からCVサマリーテキストを合成します。
func (u *jobmatchUsecase) GenerateCV(ctx context.Context, userID uint, jobDescription string) (string, float64, error) {
	userData, err := u.userData(ctx, userID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to resolve user data: %w", err)
	}
	score := u.scorer.Score(jobDescription, userData)
	cv := fmt.Sprintf("Generated CV based on:\nJob Description: %s\nUser Data: %s\nMatch Score: %.2f",
		jobDescription, userData, score)
	return cv, score, nil
}

// GenerateCoverLetter は保存済みプロフィールと求人票からカバーレターサマリーを合成します。
func (u *jobmatchUsecase) GenerateCoverLetter(ctx context.Context, userID uint, jobDescription string) (string, float64, error) {
	userData, err := u.userData(ctx, userID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to resolve user data: %w", err)
	}
	score := u.scorer.Score(jobDescription, userData)
	letter := fmt.Sprintf("Generated Cover Letter based on:\nJob Description: %s\nUser Data: %s\nMatch Score: %.2f",
		jobDescription, userData, score)
	return letter, score, nil
}

// PrepareInterview は保存済みプロフィールと求人票から想定質問サマリーを合成します。
func (u *jobmatchUsecase) PrepareInterview(ctx context.Context, userID uint, jobDescription string) (string, float64, error) {
	userData, err := u.userData(ctx, userID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to resolve user data: %w", err)
	}
	score := u.scorer.Score(jobDescription, userData)
	questions := fmt.Sprintf("Generated Interview Questions based on:\nJob Description: %s\nUser Data: %s\nMatch Score: %.2f",
		jobDescription, userData, score)
	return questions, score, nil
}
