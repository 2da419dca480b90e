package ai

import (
	"context"
	"strings"
	"time"

	"hilla/internal/shared/errors"
	"hilla/internal/shared/logger"
)

const defaultInvokeTimeout = 30 * time.Second

type GenerateCommand struct {
	Text string
	Mode string
}

type GenerateResult struct {
	Text string
}

type GenerateExecutor interface {
	Execute(ctx context.Context, cmd GenerateCommand) (*GenerateResult, error)
}

// GenerateUseCase runs the gateway pipeline: validate, select
// provider, build prompt, invoke, classify.
type GenerateUseCase struct {
	registry *Registry
	timeout  time.Duration
	logger   logger.Interface
}

func NewGenerateUseCase(registry *Registry, timeout time.Duration, log logger.Interface) *GenerateUseCase {
	if timeout <= 0 {
		timeout = defaultInvokeTimeout
	}
	return &GenerateUseCase{
		registry: registry,
		timeout:  timeout,
		logger:   log,
	}
}

func (uc *GenerateUseCase) Execute(ctx context.Context, cmd GenerateCommand) (*GenerateResult, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return nil, errors.NewBadRequestError("text is required")
	}

	mode := Mode(cmd.Mode)
	if !mode.IsValid() {
		return nil, errors.NewBadRequestError("unknown mode: " + cmd.Mode)
	}

	provider, err := uc.registry.Select()
	if err != nil {
		uc.logger.Warnw("no AI provider available", "error", err)
		return nil, err
	}

	prompt := BuildPrompt(mode, text)

	// The provider call is the only externally blocking operation in
	// the request path; it is time-boxed and inherits cancellation
	// from the inbound request.
	invokeCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	generated, err := provider.Generate(invokeCtx, prompt)
	if err != nil {
		perr := &ProviderError{
			Provider: provider.Name(),
			Class:    Classify(err),
			Raw:      err.Error(),
		}
		uc.logger.Errorw("AI generation failed",
			"provider", perr.Provider,
			"class", perr.Class,
			"error", err)
		return nil, perr
	}

	uc.logger.Infow("AI generation succeeded",
		"provider", provider.Name(),
		"mode", string(mode))

	return &GenerateResult{Text: strings.TrimSpace(generated)}, nil
}
