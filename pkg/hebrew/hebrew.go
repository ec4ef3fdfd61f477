// Package hebrew provides detection of Hebrew text and prompt enhancement
// for Hebrew (RTL) language generation.
package hebrew

// Instructions is the fixed instruction block attached to prompts so the model
// answers in Hebrew and respects RTL directionality and Hebrew grammar.
const Instructions = "אנא השב בעברית בצורה ברורה ומדויקת.\nשים לב לכיווניות הטקסט (RTL) ולתקינות הדקדוק העברי."

// Hebrew Unicode block boundaries.
const (
	blockStart = '\u0590'
	blockEnd   = '\u05ff'
)

// Contains reports whether text contains at least one rune in the Hebrew
// Unicode block (U+0590 through U+05FF).
func Contains(text string) bool {
	for _, r := range text {
		if r >= blockStart && r <= blockEnd {
			return true
		}
	}
	return false
}

// Enhance attaches the Hebrew instruction block to a prompt. Prompts that
// already contain Hebrew get the instructions first so the model sees them
// before the RTL content; other prompts get them appended as a trailing
// response instruction. The original prompt is always preserved verbatim.
func Enhance(prompt string) string {
	if Contains(prompt) {
		return Instructions + "\n\n" + prompt
	}
	return prompt + "\n\n" + Instructions
}
