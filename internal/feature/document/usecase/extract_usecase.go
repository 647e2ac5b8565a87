// Package usecase はdocumentフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DOCXのMIMEタイプは長いため定数に切り出しておく。
const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// PDFExtractor はPDFからページごとのテキスト抽出を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type PDFExtractor interface {
	// ExtractPages はページ順のテキストスライスを返します。
	ExtractPages(data []byte) ([]string, error)
}

// DocxExtractor はDOCXから段落ごとのテキスト抽出を抽象化します。
type DocxExtractor interface {
	// ExtractParagraphs は文書順の段落テキストスライスを返します。
	ExtractParagraphs(data []byte) ([]string, error)
}

// extractUsecase はアップロードされた成果物を1つのテキストブロブに正規化します。
type extractUsecase struct {
	pdf  PDFExtractor
	docx DocxExtractor
}

// NewExtractUsecase はextractUsecaseの新しいインスタンスを生成します。
func NewExtractUsecase(pdf PDFExtractor, docx DocxExtractor) *extractUsecase {
	return &extractUsecase{pdf: pdf, docx: docx}
}

// Extract は宣言されたコンテンツタイプ（補助的にファイル拡張子）でディスパッチし、
// 成果物をテキストに正規化します。
// - PDF: ページ順に抽出テキストを連結
// - DOCX: 文書順の段落テキストをスペース区切りで連結
// - プレーンテキスト: UTF-8として検証しそのまま返却
// 解析に失敗した場合はエラーを伝播します。部分的な結果は返しません。
func (u *extractUsecase) Extract(data []byte, contentType, filename string) (string, error) {
	// "application/pdf; charset=..." のようなパラメータを除去
	mediaType := contentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case mediaType == "application/pdf" || ext == ".pdf":
		pages, err := u.pdf.ExtractPages(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract PDF text: %w", err)
		}
		return u.normalize(strings.Join(pages, "\n"))

	case mediaType == docxContentType || ext == ".docx":
		paragraphs, err := u.docx.ExtractParagraphs(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract DOCX text: %w", err)
		}
		return u.normalize(strings.Join(paragraphs, " "))

	case mediaType == "text/plain" || ext == ".txt":
		if !utf8.Valid(data) {
			return "", ErrInvalidEncoding
		}
		return u.normalize(string(data))

	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
}

// normalize は空の抽出結果をエラーとして扱います。
func (u *extractUsecase) normalize(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}
