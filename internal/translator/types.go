package translator

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultEndpoint = "https://api.cognitive.microsofttranslator.com"
	DefaultTimeout  = 30 * time.Second

	// AutoDetect as a source language leaves detection to the remote service.
	AutoDetect = "auto"
)

// ServiceConfig is built once at startup and shared by reference with the
// service; nothing reads credentials from the environment after that.
type ServiceConfig struct {
	SubscriptionKey string        `mapstructure:"subscription_key" json:"-"`
	Region          string        `mapstructure:"service_region" json:"service_region"`
	Endpoint        string        `mapstructure:"endpoint" json:"endpoint"`
	Timeout         time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Missing returns the environment names of the credentials that are not set.
func (c *ServiceConfig) Missing() []string {
	var missing []string
	if strings.TrimSpace(c.SubscriptionKey) == "" {
		missing = append(missing, "SUBSCRIPTION_KEY")
	}
	if strings.TrimSpace(c.Region) == "" {
		missing = append(missing, "SERVICE_REGION")
	}
	return missing
}

// Check fails with a configuration error when either credential is absent.
func (c *ServiceConfig) Check() error {
	missing := c.Missing()
	if len(missing) == 0 {
		return nil
	}
	return &Error{
		Kind:   KindConfiguration,
		Detail: fmt.Sprintf("%s not set", strings.Join(missing, " and ")),
	}
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// LanguageInfo is one entry of the remote "translation" language scope.
type LanguageInfo struct {
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Dir        string `json:"dir"`
}

type TranslationService interface {
	Translate(ctx context.Context, req TranslateRequest) (string, error)
	Detect(ctx context.Context, text string) (string, error)
	Languages(ctx context.Context) (map[string]LanguageInfo, error)
}
