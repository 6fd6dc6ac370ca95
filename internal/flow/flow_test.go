package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valpere/aztran/internal/flow"
	"github.com/valpere/aztran/internal/translator"
)

type translatorStub struct {
	detectResult string
	detectErr    error
	detectCalls  int

	translateResult string
	translateErr    error
	translateCalls  []translator.TranslateRequest
}

func (s *translatorStub) Detect(ctx context.Context, text string) (string, error) {
	s.detectCalls++
	return s.detectResult, s.detectErr
}

func (s *translatorStub) Translate(ctx context.Context, req translator.TranslateRequest) (string, error) {
	s.translateCalls = append(s.translateCalls, req)
	return s.translateResult, s.translateErr
}

func newFlow(stub *translatorStub) (*flow.Flow, *[]flow.State) {
	var states []flow.State
	f := flow.New(stub, flow.Config{
		Observer: func(s flow.State) { states = append(states, s) },
	})
	return f, &states
}

func TestSubmit_EmptyText_PromptsWithoutCalls(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		stub := &translatorStub{}
		f, states := newFlow(stub)

		out := f.Submit(context.Background(), flow.Submission{Text: text, Source: "auto", Target: "en"})

		require.Equal(t, flow.StatePrompt, out.State)
		require.Equal(t, flow.MsgEnterText, out.Message)
		require.NoError(t, out.Err)
		require.Zero(t, stub.detectCalls)
		require.Empty(t, stub.translateCalls)
		require.Equal(t, []flow.State{flow.StateValidating, flow.StatePrompt}, *states)
	}
}

func TestSubmit_AutoSource_UsesDetectedLanguage(t *testing.T) {
	stub := &translatorStub{detectResult: "en", translateResult: "Bonjour"}
	f, states := newFlow(stub)

	out := f.Submit(context.Background(), flow.Submission{Text: "Hello", Source: "auto", Target: "fr"})

	require.Equal(t, flow.StateResult, out.State)
	require.Equal(t, "Bonjour", out.Text)
	require.Equal(t, "en", out.Detected)
	require.Equal(t, 1, stub.detectCalls)
	require.Len(t, stub.translateCalls, 1)
	require.Equal(t, "en", stub.translateCalls[0].SourceLang, "detected code must be passed as source")
	require.Equal(t, "fr", stub.translateCalls[0].TargetLang)
	require.Equal(t, "Hello", stub.translateCalls[0].Text)
	require.Equal(t, []flow.State{
		flow.StateValidating,
		flow.StateDetecting,
		flow.StateTranslating,
		flow.StateResult,
	}, *states)
	require.Equal(t, "Translation (French)", out.ResultLabel())
	require.Equal(t, "Detected language: English (en)", out.DetectedMessage())
	require.NotEmpty(t, out.Request.ID)
}

func TestSubmit_EmptySourceMeansAuto(t *testing.T) {
	stub := &translatorStub{detectResult: "de", translateResult: "Hello"}
	f, _ := newFlow(stub)

	out := f.Submit(context.Background(), flow.Submission{Text: "Hallo"})

	require.Equal(t, flow.StateResult, out.State)
	require.Equal(t, 1, stub.detectCalls)
	require.Equal(t, "de", stub.translateCalls[0].SourceLang)
	require.Equal(t, "en", stub.translateCalls[0].TargetLang, "target defaults to English")
}

func TestSubmit_DetectFailure_SkipsTranslate(t *testing.T) {
	detectErr := &translator.Error{Kind: translator.KindTransport, Op: "detect", Detail: "request failed"}
	stub := &translatorStub{detectErr: detectErr}
	f, states := newFlow(stub)

	out := f.Submit(context.Background(), flow.Submission{Text: "Hello", Source: "auto", Target: "fr"})

	require.Equal(t, flow.StateError, out.State)
	require.Equal(t, flow.MsgDetectFailed, out.Message)
	require.ErrorIs(t, out.Err, translator.ErrTransport)
	require.Empty(t, stub.translateCalls)
	require.Equal(t, flow.StateError, (*states)[len(*states)-1])
	require.NotContains(t, *states, flow.StateTranslating)
}

func TestSubmit_ExplicitSource_SkipsDetect(t *testing.T) {
	stub := &translatorStub{translateResult: "こんにちは"}
	f, states := newFlow(stub)

	out := f.Submit(context.Background(), flow.Submission{Text: "Hello", Source: "en", Target: "ja"})

	require.Equal(t, flow.StateResult, out.State)
	require.Zero(t, stub.detectCalls)
	require.Equal(t, "en", stub.translateCalls[0].SourceLang)
	require.Empty(t, out.DetectedMessage())
	require.NotContains(t, *states, flow.StateDetecting)
}

func TestSubmit_TranslateFailure_GenericMessage(t *testing.T) {
	kinds := []translator.Kind{
		translator.KindConfiguration,
		translator.KindTransport,
		translator.KindRemote,
		translator.KindParse,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			stub := &translatorStub{translateErr: &translator.Error{Kind: kind, Op: "translate"}}
			f, _ := newFlow(stub)

			out := f.Submit(context.Background(), flow.Submission{Text: "Hello", Source: "en", Target: "fr"})

			require.Equal(t, flow.StateError, out.State)
			require.Equal(t, flow.MsgTranslateFailed, out.Message)
			require.Equal(t, kind, translator.KindOf(out.Err))
		})
	}
}

func TestSubmit_UnsupportedLanguage_NoCalls(t *testing.T) {
	tests := []flow.Submission{
		{Text: "Hello", Source: "xx", Target: "fr"},
		{Text: "Hello", Source: "en", Target: "auto"},
		{Text: "Hello", Source: "en", Target: "nl"},
	}

	for _, sub := range tests {
		stub := &translatorStub{translateResult: "x"}
		f, _ := newFlow(stub)

		out := f.Submit(context.Background(), sub)

		require.Equal(t, flow.StateError, out.State)
		require.Equal(t, flow.MsgUnsupportedLanguage, out.Message)
		require.Zero(t, stub.detectCalls)
		require.Empty(t, stub.translateCalls)
	}
}

func TestSubmit_NoObserver(t *testing.T) {
	stub := &translatorStub{translateResult: "Hola"}
	f := flow.New(stub, flow.Config{})

	out := f.Submit(context.Background(), flow.Submission{Text: "Hello", Source: "en", Target: "es"})
	require.Equal(t, "Hola", out.Text)
}

func TestState_String(t *testing.T) {
	require.Equal(t, "detecting", flow.StateDetecting.String())
	require.Equal(t, "state(42)", flow.State(42).String())
	require.True(t, errors.Is(&translator.Error{Kind: translator.KindRemote}, translator.ErrRemote))
}
