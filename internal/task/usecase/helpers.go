package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"remindly/internal/model"
	"remindly/pkg/gemini"
)

// tryNormalizeTitle asks the LLM to fix typos in the title and pick a list.
// Any failure is logged and swallowed; the raw title is good enough.
func (uc *implUseCase) tryNormalizeTitle(ctx context.Context, sc model.Scope, title string) *gemini.NormalizedTask {
	if uc.llm == nil {
		return nil
	}

	var listOptions []gemini.ListOption
	if uc.listRepo != nil {
		lists, err := uc.listRepo.ListLists(ctx, sc)
		if err != nil {
			uc.l.Warnf(ctx, "Create: list lookup failed (non-fatal): %v", err)
		}
		for _, l := range lists {
			listOptions = append(listOptions, gemini.ListOption{ID: l.ID, Name: l.Name})
		}
	}

	prompt := gemini.BuildNormalizePrompt(title, listOptions)

	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Parts: []gemini.Part{
					{Text: prompt},
				},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2, // Low temperature for deterministic JSON output
			MaxOutputTokens: 512,
		},
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "Create: LLM normalization failed (non-fatal): %v", err)
		return nil
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		uc.l.Warnf(ctx, "Create: empty LLM response (non-fatal)")
		return nil
	}

	responseText := resp.Candidates[0].Content.Parts[0].Text
	cleanedJSON := sanitizeJSONResponse(responseText)

	var normalized gemini.NormalizedTask
	if err := json.Unmarshal([]byte(cleanedJSON), &normalized); err != nil {
		uc.l.Warnf(ctx, "Create: failed to parse LLM response. Raw=%q Cleaned=%q", responseText, cleanedJSON)
		return nil
	}

	return &normalized
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	// Remove ```json ... ``` or ``` ... ``` blocks
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
