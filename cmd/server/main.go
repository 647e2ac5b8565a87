package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"

	"jobassist_backend/internal/app/router"
	"jobassist_backend/internal/feature/assistant/adapters/gemini"
	"jobassist_backend/internal/feature/assistant/adapters/pdfrender"
	assistanthandler "jobassist_backend/internal/feature/assistant/transport/handler"
	assistantusecase "jobassist_backend/internal/feature/assistant/usecase"
	authadapters "jobassist_backend/internal/feature/auth/adapters"
	authhandler "jobassist_backend/internal/feature/auth/transport/handler"
	authusecase "jobassist_backend/internal/feature/auth/usecase"
	"jobassist_backend/internal/feature/document/adapters/docxext"
	"jobassist_backend/internal/feature/document/adapters/pdfext"
	documentusecase "jobassist_backend/internal/feature/document/usecase"
	jobmatchhandler "jobassist_backend/internal/feature/jobmatch/transport/handler"
	jobmatchusecase "jobassist_backend/internal/feature/jobmatch/usecase"
	infradb "jobassist_backend/internal/infrastructure/db"
	jwtmw "jobassist_backend/internal/infrastructure/jwt"
	"jobassist_backend/internal/shared/ratelimiter"
)

// tokenExpiration は発行するアクセストークンの有効期限です。
const tokenExpiration = time.Hour

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Geminiクライアント（APIキー未設定なら生成系エンドポイントは無効のまま起動）
	var generator assistantusecase.TextGenerator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey == "" {
		log.Println("[WARN] GEMINI_API_KEY is not set. Assistant generation is disabled.")
	} else if client, err := gemini.NewClient(context.Background(), apiKey); err != nil {
		log.Println("[WARN] Failed to create Gemini client. Assistant generation is disabled:", err)
	} else {
		generator = client
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)

	// メモ化マッチスコアラー（容量100のLRU）
	scorer, err := jobmatchusecase.NewMemoizedScorer(jobmatchusecase.DefaultScorerCapacity, jobmatchusecase.MatchScore)
	if err != nil {
		log.Fatal(err)
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), tokenExpiration))
	jobmatchUC := jobmatchusecase.NewJobMatchUsecase(userRepo, scorer)
	extractUC := documentusecase.NewExtractUsecase(pdfext.New(), docxext.New())
	assistantUC := assistantusecase.NewAssistantUsecase(generator, pdfrender.New())

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	jobmatchH := jobmatchhandler.NewJobMatchHandler(jobmatchUC)
	assistantH := assistanthandler.NewAssistantHandler(assistantUC, extractUC)

	// ログイン試行のレートリミッタ（1分あたり30回）
	loginLimiter := ratelimiter.NewRateLimiter(30, time.Minute)

	// ルータ生成（CORSはルート登録前に適用される）
	router := router.NewRouter(authH, jobmatchH, assistantH, loginLimiter, cors.Default())

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
