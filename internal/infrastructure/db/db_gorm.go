package db

import (
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobassist_backend/internal/feature/auth/domain/entity"
)

// OpenDB はユーザーストアへのGORM接続を開きます。
// DATABASE_URL が設定されていればPostgreSQL、未設定ならローカルのSQLiteファイルを使います。
func OpenDB() *gorm.DB {
	var dialector gorm.Dialector
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open("./users.db")
		dbPath, _ := filepath.Abs("./users.db")
		log.Println("USING_SQLITE:", dbPath)
	}

	// TranslateError でユニーク制約違反を gorm.ErrDuplicatedKey に正規化する
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	// マイグレーション
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
