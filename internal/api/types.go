// Package api defines the shared request/response shapes of the HTTP surface.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for requests that only acknowledge success.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the bearer token issued on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// CVResponse carries the composed CV text and the heuristic match score.
type CVResponse struct {
	CV         string  `json:"cv"`
	MatchScore float64 `json:"match_score"`
}

// CoverLetterResponse carries the composed cover letter and the heuristic match score.
type CoverLetterResponse struct {
	CoverLetter string  `json:"cover_letter"`
	MatchScore  float64 `json:"match_score"`
}

// InterviewResponse carries the composed interview questions and the heuristic match score.
type InterviewResponse struct {
	InterviewQuestions string  `json:"interview_questions"`
	MatchScore         float64 `json:"match_score"`
}
