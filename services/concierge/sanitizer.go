package concierge

import (
	"regexp"
	"strings"
)

// Smaller models leak tool-call syntax into the natural-language channel.
// Sanitize strips every known leakage shape with one removal pass per shape.
// The passes only delete text, so re-running the full sequence on already
// clean input is a no-op. Best-effort: an unrecognized shape survives as
// noise rather than corrupting the response.

var toolNamePattern = strings.Join(ToolNames, "|")

type leakagePass struct {
	shape string
	re    *regexp.Regexp
}

var leakagePasses = []leakagePass{
	{"fenced tool_call block", regexp.MustCompile("(?s)```(?:tool_call|tool_code)\\s*.*?```")},
	{"xml tool tag block", regexp.MustCompile(`(?s)<(tool_call|function_call|tool)>.*?</(?:tool_call|function_call|tool)>`)},
	{"stray xml tool tag", regexp.MustCompile(`</?(?:tool_call|function_call|tool)>`)},
	{"bracketed call marker", regexp.MustCompile(`\[\s*(?i:tool_call|function_call)[^\]]*\]`)},
	{"call with parentheses", regexp.MustCompile(`\b(?:` + toolNamePattern + `)\s*\([^()]*\)`)},
	{"bolded tool mention", regexp.MustCompile(`\*\*(?:` + toolNamePattern + `)\*\*`)},
	{"tool boilerplate sentence", regexp.MustCompile(`(?i)\(?\s*(?:calling|using|executing|vou (?:usar|chamar|executar))\s+(?:the\s+)?(?:tool|function|a ferramenta|a função)\s+[\p{L}\d_]+\s*\)?\.?`)},
	{"bare json arguments", regexp.MustCompile(`\{\s*"(?:name|tool|args|arguments)"\s*:[^{}]*(?:\{[^{}]*\})?[^{}]*\}`)},
	// The line and trailing passes run last: the passes above can expose a
	// bare tool name that was glued to the syntax they removed.
	{"standalone tool-name line", regexp.MustCompile(`(?m)^[ \t]*(?:` + toolNamePattern + `)[ \t]*$`)},
	{"trailing tool names", regexp.MustCompile(`(?:(?:` + toolNamePattern + `)\s*)+$`)},
}

// Sanitize cleans model-emitted tool-call leakage out of free text. It never
// fails and it is idempotent.
func Sanitize(text string) string {
	for _, pass := range leakagePasses {
		text = pass.re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}
