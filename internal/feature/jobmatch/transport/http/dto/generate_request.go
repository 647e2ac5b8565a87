// Package dto はjobmatchフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// GenerateReq は/generate_cv・/generate_cover_letter・/prepare_interviewの
// 共通リクエストボディを表します。
type GenerateReq struct {
	JobDescription string `json:"job_description" binding:"required"`
}
