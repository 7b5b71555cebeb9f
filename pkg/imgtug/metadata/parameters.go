package metadata

import "strings"

const (
	PromptKey         = "Prompt"
	NegativePromptKey = "Negative prompt"
	DescriptionKey    = "Description"
)

const stepsMarker = "Steps"

// parseGenerationText splits generation text of the form
//
//	<prompt> [Negative prompt: <text>] Steps: 20, Sampler: Euler a, ...
//
// into the prompt and the comma separated "key: value" parameters.
// Text without a Steps marker is kept whole as a description.
func parseGenerationText(m *Metadata, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	stepsIndex := strings.Index(text, stepsMarker)
	if stepsIndex == -1 {
		m.add(DescriptionKey, text)
		return
	}
	prompt := strings.TrimSpace(text[:stepsIndex])
	if i := strings.Index(prompt, NegativePromptKey+":"); i != -1 {
		negative := prompt[i+len(NegativePromptKey)+1:]
		prompt = strings.TrimSpace(prompt[:i])
		m.add(PromptKey, prompt)
		m.add(NegativePromptKey, negative)
	} else {
		m.add(PromptKey, prompt)
	}
	for _, part := range strings.Split(text[stepsIndex:], ", ") {
		key, value, ok := strings.Cut(part, ": ")
		if !ok {
			continue
		}
		m.add(key, value)
	}
}
