// Package handler はassistantフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobassist_backend/internal/api"
	"jobassist_backend/internal/feature/assistant/domain/entity"
	"jobassist_backend/internal/feature/assistant/transport/http/dto"
	"jobassist_backend/internal/feature/assistant/usecase"
)

// AssistantUsecase は生成支援操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはコンシューマー（handler）が定義します。
type AssistantUsecase interface {
	// GenerateCoverLetter はカバーレターを生成します。
	GenerateCoverLetter(ctx context.Context, req entity.GenerationRequest) (string, error)
	// GenerateInterviewQuestions は想定面接質問を生成します。
	GenerateInterviewQuestions(ctx context.Context, req entity.GenerationRequest) (string, error)
	// AnswerQuestion はカスタム質問への回答を生成します。
	AnswerQuestion(ctx context.Context, req entity.GenerationRequest) (string, error)
	// ExportPDF はタイトルと本文からPDFバイト列を生成します。
	ExportPDF(title, content string) ([]byte, error)
}

// DocumentExtractor はアップロードされた成果物のテキスト正規化を抽象化します。
type DocumentExtractor interface {
	// Extract は宣言されたコンテンツタイプでディスパッチし、テキストを返します。
	Extract(data []byte, contentType, filename string) (string, error)
}

// AssistantHandler は生成支援エンドポイントのHTTPリクエストを処理します。
// 各入力フィールドはフォームテキストまたはファイルアップロードのどちらでも受け付けます。
type AssistantHandler struct {
	assistant AssistantUsecase
	extractor DocumentExtractor
}

// NewAssistantHandler はAssistantHandlerの新しいインスタンスを生成します。
func NewAssistantHandler(assistant AssistantUsecase, extractor DocumentExtractor) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, extractor: extractor}
}

// collectField はマルチパートフォームから1つの入力を収集します。
// "<field>_file" のアップロードがあれば抽出し、なければ "<field>" のテキスト値を返します。
func (h *AssistantHandler) collectField(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field + "_file")
	if err != nil {
		// アップロードなし。テキストフィールドにフォールバック
		return c.PostForm(field), nil
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return h.extractor.Extract(data, file.Header.Get("Content-Type"), file.Filename)
}

// collectRequest は求人票とCV（および任意の質問）をGenerationRequestへ正規化します。
func (h *AssistantHandler) collectRequest(c *gin.Context) (entity.GenerationRequest, error) {
	jobDescription, err := h.collectField(c, "job_description")
	if err != nil {
		return entity.GenerationRequest{}, err
	}
	cv, err := h.collectField(c, "cv")
	if err != nil {
		return entity.GenerationRequest{}, err
	}
	return entity.GenerationRequest{
		JobDescription: jobDescription,
		CV:             cv,
		Question:       c.PostForm("question"),
	}, nil
}

// isInputError は呼び出し側の入力に起因するエラーかどうかを判定します。
func isInputError(err error) bool {
	return errors.Is(err, usecase.ErrMissingInput) || errors.Is(err, usecase.ErrMissingQuestion)
}

// CoverLetter は/assistant/cover_letterエンドポイントを処理します。
func (h *AssistantHandler) CoverLetter(c *gin.Context) {
	req, err := h.collectRequest(c)
	if err != nil {
		slog.Warn("cover letter input rejected", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "could not read input documents"})
		return
	}
	letter, err := h.assistant.GenerateCoverLetter(c.Request.Context(), req)
	if err != nil {
		if isInputError(err) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		// 一時的か恒久的かは区別せず、汎用メッセージで返す
		slog.Error("cover letter generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "cover letter generation failed"})
		return
	}
	slog.Info("cover letter generated", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.CoverLetterResp{CoverLetter: letter})
}

// InterviewQuestions は/assistant/interview_questionsエンドポイントを処理します。
func (h *AssistantHandler) InterviewQuestions(c *gin.Context) {
	req, err := h.collectRequest(c)
	if err != nil {
		slog.Warn("interview questions input rejected", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "could not read input documents"})
		return
	}
	questions, err := h.assistant.GenerateInterviewQuestions(c.Request.Context(), req)
	if err != nil {
		if isInputError(err) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("interview questions generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "interview questions generation failed"})
		return
	}
	slog.Info("interview questions generated", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.InterviewQuestionsResp{InterviewQuestions: questions})
}

// Answer は/assistant/answerエンドポイントを処理します。
func (h *AssistantHandler) Answer(c *gin.Context) {
	req, err := h.collectRequest(c)
	if err != nil {
		slog.Warn("answer input rejected", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "could not read input documents"})
		return
	}
	answer, err := h.assistant.AnswerQuestion(c.Request.Context(), req)
	if err != nil {
		if isInputError(err) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("answer generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "answer generation failed"})
		return
	}
	slog.Info("answer generated", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AnswerResp{Answer: answer})
}

// ExportPDF は/assistant/export_pdfエンドポイントを処理します。
// 成功時はapplication/pdfの添付ファイルとしてバイト列を返します。
func (h *AssistantHandler) ExportPDF(c *gin.Context) {
	var req dto.ExportPDFReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("export pdf validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	data, err := h.assistant.ExportPDF(req.Title, req.Content)
	if err != nil {
		slog.Error("pdf export failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "PDF export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="document.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
