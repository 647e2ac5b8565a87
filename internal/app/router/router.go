// Package router はアプリケーションのHTTPルートを定義します。
package router

import (
	"github.com/gin-gonic/gin"

	assistanthandler "jobassist_backend/internal/feature/assistant/transport/handler"
	authhandler "jobassist_backend/internal/feature/auth/transport/handler"
	jobmatchhandler "jobassist_backend/internal/feature/jobmatch/transport/handler"
	jwtmw "jobassist_backend/internal/infrastructure/jwt"
	"jobassist_backend/internal/platform/http/handler"
	"jobassist_backend/internal/shared/ratelimiter"
)

// NewRouter は全フィーチャーのハンドラーを束ねたGinエンジンを生成します。
// 認証サービスとアシスタントサービスは独立したルートグループで、相互に依存しません。
// corsMiddlewareはルート登録より前に適用する必要があります。
// Ginはハンドラーチェーンを登録時に確定するため、後からUseしても反映されません。
func NewRouter(authHandler *authhandler.AuthHandler, jobmatch *jobmatchhandler.JobMatchHandler,
	assistant *assistanthandler.AssistantHandler, loginLimiter *ratelimiter.RateLimiter,
	corsMiddleware gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// CORS（全ルート共通）
	r.Use(corsMiddleware)

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/register", authHandler.Register)
	// ログイン（JWT 発行）ブルートフォース対策のレートリミット付き
	r.POST("/login", loginLimiter.Middleware(), authHandler.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		auth.PUT("/update_profile", authHandler.UpdateProfile)
		auth.POST("/generate_cv", jobmatch.GenerateCV)
		auth.POST("/generate_cover_letter", jobmatch.GenerateCoverLetter)
		auth.POST("/prepare_interview", jobmatch.PrepareInterview)
	}

	// アシスタントサービス（ステートレス。認証サービスとは独立）
	assistantGroup := r.Group("/assistant")
	{
		assistantGroup.POST("/cover_letter", assistant.CoverLetter)
		assistantGroup.POST("/interview_questions", assistant.InterviewQuestions)
		assistantGroup.POST("/answer", assistant.Answer)
		assistantGroup.POST("/export_pdf", assistant.ExportPDF)
	}

	return r
}
