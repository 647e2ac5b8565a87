// Package pdfext はledongthuc/pdfによるPDFテキスト抽出アダプタを提供します。
package pdfext

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"jobassist_backend/internal/feature/document/usecase"
)

// Extractor はPDFバイト列からページ順にテキストを抽出します。
type Extractor struct{}

// ExtractorがPDFExtractorを実装していることをコンパイル時に検証します。
var _ usecase.PDFExtractor = (*Extractor)(nil)

// New はExtractorの新しいインスタンスを生成します。
func New() *Extractor {
	return &Extractor{}
}

// ExtractPages はページ順のプレーンテキストスライスを返します。
// いずれかのページで抽出に失敗した場合はエラーを返します（部分結果なし）。
func (e *Extractor) ExtractPages(data []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageIndex, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
