// Package flow runs one submit of the translation form: validate the input,
// detect the source language when asked to, translate, and describe the
// outcome for display. It is shared by the terminal and web front-ends.
package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/valpere/aztran/internal"
	"github.com/valpere/aztran/internal/languages"
	"github.com/valpere/aztran/internal/logger"
	"github.com/valpere/aztran/internal/translator"
)

// User-facing messages. Failure causes are deliberately not distinguished
// here; the typed error is in Outcome.Err and in the log.
const (
	MsgEnterText           = "Please enter the text to translate."
	MsgUnsupportedLanguage = "The selected language is not supported."
	MsgDetectFailed        = "Could not detect the language. Please choose the source language manually."
	MsgTranslateFailed     = "Translation failed. Please check that your Azure credentials are configured correctly."
	MsgTranslated          = "Translation succeeded."
	MsgSetup               = "Azure credentials are missing. Create a .env file in the project root and set SUBSCRIPTION_KEY and SERVICE_REGION (see .env.example)."
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StatePrompt
	StateDetecting
	StateTranslating
	StateResult
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StatePrompt:
		return "prompt"
	case StateDetecting:
		return "detecting"
	case StateTranslating:
		return "translating"
	case StateResult:
		return "result"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Translator is the part of translator.TranslationService the flow needs.
type Translator interface {
	Translate(ctx context.Context, req translator.TranslateRequest) (string, error)
	Detect(ctx context.Context, text string) (string, error)
}

type Config struct {
	// Observer, if set, is called with every state the flow enters.
	Observer func(State)
}

type Submission struct {
	Text   string `json:"text" form:"text"`
	Source string `json:"source" form:"source"`
	Target string `json:"target" form:"target"`
}

type Outcome struct {
	State    State
	Request  internal.TranslationRequest
	Target   languages.Language
	Detected string
	Text     string
	Message  string
	Err      error
}

// DetectedMessage describes the detected source language, or "" when the
// source was chosen explicitly.
func (o Outcome) DetectedMessage() string {
	if o.Detected == "" {
		return ""
	}
	return fmt.Sprintf("Detected language: %s (%s)", languages.Describe(o.Detected), o.Detected)
}

// ResultLabel names the output area, including the target language.
func (o Outcome) ResultLabel() string {
	if o.Target.Code == "" {
		return "Translation"
	}
	return fmt.Sprintf("Translation (%s)", o.Target.Name)
}

type Flow struct {
	svc    Translator
	config Config
}

func New(svc Translator, config Config) *Flow {
	return &Flow{
		svc:    svc,
		config: config,
	}
}

// Submit handles one press of the translate action. It makes at most two
// sequential calls to the service and never retries.
func (f *Flow) Submit(ctx context.Context, sub Submission) Outcome {
	f.enter(StateValidating)

	if strings.TrimSpace(sub.Text) == "" {
		logger.Info("no text entered", "module", "flow")
		f.enter(StatePrompt)
		return Outcome{State: StatePrompt, Message: MsgEnterText}
	}

	src, err := languages.Source(sub.Source)
	if err != nil {
		return f.fail(Outcome{}, MsgUnsupportedLanguage, err)
	}
	tgt, err := languages.Target(sub.Target)
	if err != nil {
		return f.fail(Outcome{}, MsgUnsupportedLanguage, err)
	}

	out := Outcome{
		Request: internal.NewTranslationRequest(sub.Text, src.Code, tgt.Code),
		Target:  tgt,
	}

	logger.Info("translation requested",
		"module", "flow",
		"request_id", out.Request.ID,
		"source", src.Code,
		"target", tgt.Code,
		"chars", len([]rune(sub.Text)),
	)

	source := src.Code
	if src.IsAuto() {
		f.enter(StateDetecting)
		detected, err := f.svc.Detect(ctx, sub.Text)
		if err != nil {
			return f.fail(out, MsgDetectFailed, err)
		}
		logger.Info("language detected", "module", "flow", "request_id", out.Request.ID, "language", detected)
		out.Detected = detected
		source = detected
	}

	f.enter(StateTranslating)
	text, err := f.svc.Translate(ctx, translator.TranslateRequest{
		Text:       sub.Text,
		SourceLang: source,
		TargetLang: tgt.Code,
	})
	if err != nil {
		return f.fail(out, MsgTranslateFailed, err)
	}

	logger.Info("translation completed", "module", "flow", "request_id", out.Request.ID)
	f.enter(StateResult)
	out.State = StateResult
	out.Text = text
	out.Message = MsgTranslated
	return out
}

func (f *Flow) fail(out Outcome, msg string, err error) Outcome {
	logger.Error("translation flow failed",
		"module", "flow",
		"request_id", out.Request.ID,
		"kind", translator.KindOf(err).String(),
		"error", err,
	)
	f.enter(StateError)
	out.State = StateError
	out.Message = msg
	out.Err = err
	return out
}

func (f *Flow) enter(s State) {
	if f.config.Observer != nil {
		f.config.Observer(s)
	}
}
