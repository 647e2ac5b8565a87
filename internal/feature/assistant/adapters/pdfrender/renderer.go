// Package pdfrender はgo-pdf/fpdfによるPDFレンダリングアダプタを提供します。
package pdfrender

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"jobassist_backend/internal/feature/assistant/usecase"
)

// Renderer はテキスト本文を単一カラムのPDFにレイアウトします。
type Renderer struct{}

// RendererがPDFRendererを実装していることをコンパイル時に検証します。
var _ usecase.PDFRenderer = (*Renderer)(nil)

// New はRendererの新しいインスタンスを生成します。
func New() *Renderer {
	return &Renderer{}
}

// Render はタイトルと本文からPDFバイト列を生成します。
// タイトルの後、空でない行ごとに段落とスペーサーを配置します。
// ページ送りはレイアウトエンジンの自動処理に任せます。
func (r *Renderer) Render(title, body string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 10, title, "", "L", false)
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 11)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		doc.MultiCell(0, 6, line, "", "L", false)
		doc.Ln(2)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
