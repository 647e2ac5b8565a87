// Package docxext はfumiama/go-docxによるDOCXテキスト抽出アダプタを提供します。
package docxext

import (
	"bytes"
	"fmt"
	"strings"

	docx "github.com/fumiama/go-docx"

	"jobassist_backend/internal/feature/document/usecase"
)

// Extractor はDOCXバイト列から文書順に段落テキストを抽出します。
type Extractor struct{}

// ExtractorがDocxExtractorを実装していることをコンパイル時に検証します。
var _ usecase.DocxExtractor = (*Extractor)(nil)

// New はExtractorの新しいインスタンスを生成します。
func New() *Extractor {
	return &Extractor{}
}

// ExtractParagraphs は文書順の段落テキストスライスを返します。
// 空の段落はスキップします。
func (e *Extractor) ExtractParagraphs(data []byte) ([]string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX: %w", err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		paragraph, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if text := strings.TrimSpace(paragraph.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs, nil
}
