package ai

import "fmt"

// Mode selects the prompt template for a generation request.
type Mode string

const (
	ModeSummary Mode = "summary"
	ModeRewrite Mode = "rewrite"
)

func (m Mode) IsValid() bool {
	return m == ModeSummary || m == ModeRewrite
}

const summaryTemplate = `Summarize the following campus support issue in exactly three bullet points:
- What: what is broken or being asked
- Where: the location or system affected
- Impact: who is affected and how badly

Issue:
%s`

const rewriteTemplate = `Rewrite the following text as a clear campus support request of at most 120 words. Include the location, the impact, the urgency, and the desired fix.

Text:
%s`

// BuildPrompt interpolates the issue text into the fixed template for
// the mode. The text is inserted verbatim.
func BuildPrompt(mode Mode, text string) string {
	switch mode {
	case ModeRewrite:
		return fmt.Sprintf(rewriteTemplate, text)
	default:
		return fmt.Sprintf(summaryTemplate, text)
	}
}
