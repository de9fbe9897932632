package gemini

import (
	"encoding/json"
	"strings"
)

// NormalizeSystemPrompt is the system instruction sent to Gemini for task
// title normalization.
const NormalizeSystemPrompt = `You are a task normalization assistant for a reminder app.

RULES:
1. Fix spelling and obvious typos in the task text. Keep the user's wording and language; do not rephrase.
2. NEVER change anything that looks like a URL, domain name, or email address. Copy such tokens exactly.
3. If candidate lists are provided, pick the list the task most likely belongs to and return its id as list_id. If none fits, omit list_id.
4. Infer priority from the text. It MUST be exactly one of: "now", "high", "low". Default to "low" when nothing suggests urgency.
5. Return ONLY a valid JSON object of the shape {"corrected_text": "...", "list_id": "...", "priority": "..."}. No markdown, no code blocks, no explanation text.

EXAMPLE INPUT:
task: "buy groseries for diner"
lists: [{"id":"l1","name":"Shopping"},{"id":"l2","name":"Work"}]

EXAMPLE OUTPUT:
{"corrected_text": "Buy groceries for dinner", "list_id": "l1", "priority": "low"}`

// BuildNormalizePrompt builds the full normalization prompt for one task
// title and the user's candidate lists.
func BuildNormalizePrompt(title string, lists []ListOption) string {
	var sb strings.Builder
	sb.WriteString(NormalizeSystemPrompt)
	sb.WriteString("\n\nNow normalize the following input and return ONLY the JSON object:\n")
	sb.WriteString("task: ")
	sb.WriteString(title)
	if len(lists) > 0 {
		raw, err := json.Marshal(lists)
		if err == nil {
			sb.WriteString("\nlists: ")
			sb.Write(raw)
		}
	}
	return sb.String()
}
