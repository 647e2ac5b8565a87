// Package dto はassistantフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// ExportPDFReq は/assistant/export_pdfエンドポイントのリクエストボディを表します。
type ExportPDFReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CoverLetterResp は生成されたカバーレターを返します。
type CoverLetterResp struct {
	CoverLetter string `json:"cover_letter"`
}

// InterviewQuestionsResp は生成された想定面接質問を返します。
type InterviewQuestionsResp struct {
	InterviewQuestions string `json:"interview_questions"`
}

// AnswerResp はカスタム質問への回答を返します。
type AnswerResp struct {
	Answer string `json:"answer"`
}
