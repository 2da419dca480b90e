package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_SummaryTemplate(t *testing.T) {
	prompt := BuildPrompt(ModeSummary, "the elevator in Hall B is stuck")

	assert.Contains(t, prompt, "three bullet points")
	assert.Contains(t, prompt, "the elevator in Hall B is stuck")
}

func TestBuildPrompt_RewriteTemplate(t *testing.T) {
	prompt := BuildPrompt(ModeRewrite, "fix wifi pls")

	assert.Contains(t, prompt, "at most 120 words")
	assert.Contains(t, prompt, "fix wifi pls")
}

func TestMode_IsValid(t *testing.T) {
	assert.True(t, Mode("summary").IsValid())
	assert.True(t, Mode("rewrite").IsValid())
	assert.False(t, Mode("translate").IsValid())
	assert.False(t, Mode("").IsValid())
}
