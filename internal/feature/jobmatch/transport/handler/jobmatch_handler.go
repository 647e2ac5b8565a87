// Package handler はjobmatchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobassist_backend/internal/api"
	"jobassist_backend/internal/feature/jobmatch/transport/http/dto"
	jwtmw "jobassist_backend/internal/infrastructure/jwt"
)

// JobMatchUsecase は求人マッチ操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはコンシューマー（handler）が定義します。
type JobMatchUsecase interface {
	// GenerateCV はCVサマリーテキストとマッチスコアを返します。
	GenerateCV(ctx context.Context, userID uint, jobDescription string) (string, float64, error)
	// GenerateCoverLetter はカバーレターサマリーとマッチスコアを返します。
	GenerateCoverLetter(ctx context.Context, userID uint, jobDescription string) (string, float64, error)
	// PrepareInterview は想定質問サマリーとマッチスコアを返します。
	PrepareInterview(ctx context.Context, userID uint, jobDescription string) (string, float64, error)
}

// JobMatchHandler は認証必須の求人マッチエンドポイントを処理します。
type JobMatchHandler struct {
	jobmatch JobMatchUsecase
}

// NewJobMatchHandler はJobMatchHandlerの新しいインスタンスを生成します。
func NewJobMatchHandler(jobmatch JobMatchUsecase) *JobMatchHandler {
	return &JobMatchHandler{jobmatch: jobmatch}
}

// bindGenerateReq は共通リクエストをバインドし、対象ユーザーIDを解決します。
func bindGenerateReq(c *gin.Context) (uint, string, bool) {
	var req dto.GenerateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("generate validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return 0, "", false
	}
	return c.GetUint(jwtmw.ContextUserID), req.JobDescription, true
}

// GenerateCV は/generate_cvエンドポイントを処理します。
func (h *JobMatchHandler) GenerateCV(c *gin.Context) {
	userID, jobDescription, ok := bindGenerateReq(c)
	if !ok {
		return
	}
	cv, score, err := h.jobmatch.GenerateCV(c.Request.Context(), userID, jobDescription)
	if err != nil {
		slog.Error("cv generation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "CV generation failed"})
		return
	}
	slog.Info("cv generated", "user_id", userID)
	c.JSON(http.StatusOK, api.CVResponse{CV: cv, MatchScore: score})
}

// GenerateCoverLetter は/generate_cover_letterエンドポイントを処理します。
func (h *JobMatchHandler) GenerateCoverLetter(c *gin.Context) {
	userID, jobDescription, ok := bindGenerateReq(c)
	if !ok {
		return
	}
	letter, score, err := h.jobmatch.GenerateCoverLetter(c.Request.Context(), userID, jobDescription)
	if err != nil {
		slog.Error("cover letter generation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Cover letter generation failed"})
		return
	}
	slog.Info("cover letter generated", "user_id", userID)
	c.JSON(http.StatusOK, api.CoverLetterResponse{CoverLetter: letter, MatchScore: score})
}

// PrepareInterview は/prepare_interviewエンドポイントを処理します。
func (h *JobMatchHandler) PrepareInterview(c *gin.Context) {
	userID, jobDescription, ok := bindGenerateReq(c)
	if !ok {
		return
	}
	questions, score, err := h.jobmatch.PrepareInterview(c.Request.Context(), userID, jobDescription)
	if err != nil {
		slog.Error("interview preparation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Interview preparation failed"})
		return
	}
	slog.Info("interview questions generated", "user_id", userID)
	c.JSON(http.StatusOK, api.InterviewResponse{InterviewQuestions: questions, MatchScore: score})
}
