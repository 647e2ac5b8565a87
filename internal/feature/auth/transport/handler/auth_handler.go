// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobassist_backend/internal/api"
	"jobassist_backend/internal/feature/auth/transport/http/dto"
	"jobassist_backend/internal/feature/auth/usecase"
	jwtmw "jobassist_backend/internal/infrastructure/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたユーザー名・パスワード・メールアドレスで新規ユーザーを登録します。
	Register(ctx context.Context, username, password, email string) error
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, username, password string) (string, error)
	// UpdateProfile はリクエストに含まれるフィールドのみを更新します。
	UpdateProfile(ctx context.Context, userID uint, email, userData *string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時は理由付きで400を返却
// - ユーザー名・メール重複時は409を返却（どちらが重複したかは公開しない）
// - 成功時は201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	err := h.auth.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	switch {
	case err == nil:
		slog.Info("user registered", "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusCreated, api.MessageResponse{Message: "User created successfully"})
	case usecase.IsValidationError(err):
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("register conflict", "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "registration failed"})
	default:
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "registration failed"})
	}
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（ユーザー名・パスワードのどちらが誤りかは公開しない）
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid username or password"})
		return
	}
	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{AccessToken: token})
}

// UpdateProfile はプロフィール更新APIエンドポイントを処理します。
// 対象ユーザーはリクエストボディではなくJWTクレームから解決されます。
// - 対象ユーザーが存在しない場合は404を返却
// - 成功時は200を返却
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update profile bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.UpdateProfile(c.Request.Context(), userID, req.Email, req.UserData); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
			return
		}
		slog.Error("profile update failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "profile update failed"})
		return
	}
	slog.Info("profile updated", "user_id", userID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Profile updated successfully"})
}
