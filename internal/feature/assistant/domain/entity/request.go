// Package entity defines the domain entities for the assistant feature.
package entity

// GenerationRequest carries the inputs of one generation cycle.
// It is ephemeral: it exists only for the duration of a single request/response
// cycle and is never persisted.
type GenerationRequest struct {
	// JobDescription is the job posting text, pasted or extracted from an upload.
	JobDescription string

	// CV is the candidate's CV text, pasted or extracted from an upload.
	CV string

	// Question is an optional custom question to answer in the candidate's voice.
	Question string
}
