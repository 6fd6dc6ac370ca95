package internal

import (
	"time"

	"github.com/google/uuid"
)

// TranslationRequest lives for one submit. ID only correlates log lines.
type TranslationRequest struct {
	ID         string    `json:"id"`
	SourceText string    `json:"source_text"`
	SourceLang string    `json:"source_lang"`
	TargetLang string    `json:"target_lang"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewTranslationRequest(text, sourceLang, targetLang string) TranslationRequest {
	return TranslationRequest{
		ID:         uuid.NewString(),
		SourceText: text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Timestamp:  time.Now(),
	}
}
