// Package usecase はassistantフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"jobassist_backend/internal/feature/assistant/domain/entity"
)

// TextGenerator は外部テキスト生成エンドポイントを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters/gemini）ではなく
// コンシューマー（usecase）が定義します。
type TextGenerator interface {
	// Generate はプロンプトを単発送信し、最初の補完テキストを返します。
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
}

// PDFRenderer はテキスト本文のPDFレイアウトを抽象化します。
type PDFRenderer interface {
	// Render はタイトルと本文から単一カラムのPDFバイト列を生成します。
	Render(title, body string) ([]byte, error)
}

// assistantUsecase は求人応募支援の生成ロジックを提供します。
// ステートレスな単発呼び出しのみで、会話履歴もプロンプトのキャッシュも持ちません。
type assistantUsecase struct {
	generator TextGenerator
	renderer  PDFRenderer
}

// NewAssistantUsecase はassistantUsecaseの新しいインスタンスを生成します。
// generatorがnilの場合、生成系の操作はErrGeneratorUnavailableを返します。
func NewAssistantUsecase(generator TextGenerator, renderer PDFRenderer) *assistantUsecase {
	return &assistantUsecase{generator: generator, renderer: renderer}
}

// generate は入力検証と単発生成呼び出しの共通処理です。
// プロバイダーエラーはリトライせず、説明的なメッセージでラップして返します。
func (u *assistantUsecase) generate(ctx context.Context, req entity.GenerationRequest, prompt string, params GenerationParams, task string) (string, error) {
	if u.generator == nil {
		return "", ErrGeneratorUnavailable
	}
	if req.JobDescription == "" || req.CV == "" {
		return "", ErrMissingInput
	}
	text, err := u.generator.Generate(ctx, prompt, params)
	if err != nil {
		return "", fmt.Errorf("%s generation failed: %w", task, err)
	}
	return text, nil
}

// GenerateCoverLetter は求人票とCVからカバーレターを生成します。
func (u *assistantUsecase) GenerateCoverLetter(ctx context.Context, req entity.GenerationRequest) (string, error) {
	return u.generate(ctx, req, buildCoverLetterPrompt(req.JobDescription, req.CV), coverLetterParams, "cover letter")
}

// GenerateInterviewQuestions は求人票とCVから想定面接質問を生成します。
func (u *assistantUsecase) GenerateInterviewQuestions(ctx context.Context, req entity.GenerationRequest) (string, error) {
	return u.generate(ctx, req, buildInterviewPrompt(req.JobDescription, req.CV), interviewParams, "interview questions")
}

// AnswerQuestion は応募フォームのカスタム質問への回答を生成します。
func (u *assistantUsecase) AnswerQuestion(ctx context.Context, req entity.GenerationRequest) (string, error) {
	if req.Question == "" {
		return "", ErrMissingQuestion
	}
	return u.generate(ctx, req, buildAnswerPrompt(req.JobDescription, req.CV, req.Question), answerParams, "answer")
}

// ExportPDF はタイトルと本文からダウンロード用PDFバイト列を生成します。
func (u *assistantUsecase) ExportPDF(title, content string) ([]byte, error) {
	data, err := u.renderer.Render(title, content)
	if err != nil {
		return nil, fmt.Errorf("PDF export failed: %w", err)
	}
	return data, nil
}
