package usecase

import "fmt"

// GenerationParams はタスクごとに固定される生成パラメータです。
type GenerationParams struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// defaultModel は全タスク共通のGeminiモデルです。
const defaultModel = "gemini-2.5-flash"

// タスクごとの固定パラメータ。リクエストから変更する手段は提供しない。
var (
	coverLetterParams = GenerationParams{Model: defaultModel, Temperature: 0.7, MaxOutputTokens: 2048}
	interviewParams   = GenerationParams{Model: defaultModel, Temperature: 0.6, MaxOutputTokens: 1024}
	answerParams      = GenerationParams{Model: defaultModel, Temperature: 0.4, MaxOutputTokens: 1024}
)

// buildCoverLetterPrompt はカバーレター生成用の固定テンプレートを組み立てます。
func buildCoverLetterPrompt(jobDescription, cv string) string {
	return fmt.Sprintf(`You are a professional career assistant helping a candidate apply for a job.

JOB DESCRIPTION:
%s

CANDIDATE CV:
%s

Write a concise, convincing cover letter tailored to the job description above.
Highlight the candidate's most relevant skills and experience from the CV.
Keep it under 400 words and address it to the hiring manager.
Return only the cover letter text, no commentary.`, jobDescription, cv)
}

// buildInterviewPrompt は想定面接質問生成用の固定テンプレートを組み立てます。
func buildInterviewPrompt(jobDescription, cv string) string {
	return fmt.Sprintf(`You are an experienced technical interviewer preparing a candidate for a job interview.

JOB DESCRIPTION:
%s

CANDIDATE CV:
%s

List the 10 most likely interview questions for this position, covering both
technical topics from the job description and follow-ups on the candidate's CV.
For each question, add a one-sentence hint on how the candidate should answer.
Return only the numbered list.`, jobDescription, cv)
}

// buildAnswerPrompt はカスタム質問回答用の固定テンプレートを組み立てます。
func buildAnswerPrompt(jobDescription, cv, question string) string {
	return fmt.Sprintf(`You are a professional career assistant answering an application question on behalf of a candidate.

JOB DESCRIPTION:
%s

CANDIDATE CV:
%s

QUESTION:
%s

Answer the question in the candidate's voice, grounded in the CV and tailored
to the job description. Be specific and honest; do not invent experience.
Return only the answer text.`, jobDescription, cv, question)
}
