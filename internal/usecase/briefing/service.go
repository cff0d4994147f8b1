package briefing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/meetbrief-team/meetbrief/internal/domain/entities"
)

// ContentGenerator is the single-call LLM dependency. Satisfied by the Gemini
// client.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service turns flattened dialogue text into a structured meeting briefing.
// Briefings are strictly best-effort: any failure yields nil, never an error,
// so callers can persist the transcript regardless.
type Service struct {
	llm    ContentGenerator
	logger *zap.Logger
}

// NewService creates a new briefing service
func NewService(llm ContentGenerator, logger *zap.Logger) *Service {
	return &Service{
		llm:    llm,
		logger: logger,
	}
}

const promptTemplate = `Please create a detailed summary of this meeting transcript. The transcript may mix multiple languages. Please:

Title: Generate a concise, descriptive title for this meeting (3-8 words)

Description: Provide a brief description of the meeting's purpose and agenda. (1 sentence)

Executive Summary: Provide a 2-3 sentence overview of the main discussion

Key Points Discussed: Extract and organize the main topics covered

Important Numbers/Metrics: Highlight any significant figures, dates, or statistics mentioned

Action Items: If any next steps or follow-ups are mentioned, list them

Speaker Insights: Summarize the key insights or lessons shared by the speakers

Questions Raised: List any questions that were asked during the meeting by any participants.

Open Questions: If there are any unresolved questions or topics that need further discussion, list them.

Please translate any non-English portions to English and provide the summary in clear, professional English.

<transcript>
%s
</transcript>

Please structure your response as a JSON object with the following format:
{
    "title": "...",
    "description": "...",
    "executive_summary": "...",
    "key_points": ["point 1", "point 2", "..."],
    "important_numbers": ["metric 1", "metric 2", "..."],
    "action_items": ["action 1", "action 2", "..."],
    "speaker_insights": ["insight 1", "insight 2", "..."],
    "questions_raised": ["question 1", "question 2", "..."],
    "open_questions": ["open question 1", "open question 2", "..."]
}

IMPORTANT: Return ONLY the JSON object, no markdown formatting, no code blocks, just pure JSON.`

// BuildPrompt renders the fixed instruction template around the dialogue text
func BuildPrompt(transcriptText string) string {
	return fmt.Sprintf(promptTemplate, transcriptText)
}

// Summarize requests a structured briefing for the flattened transcript text.
// One call, no retry, no streaming. Returns nil on empty input or any failure.
func (s *Service) Summarize(ctx context.Context, transcriptText string) *entities.MeetingBriefing {
	if strings.TrimSpace(transcriptText) == "" {
		return nil
	}

	raw, err := s.llm.GenerateContent(ctx, BuildPrompt(transcriptText))
	if err != nil {
		s.logger.Warn("briefing generation failed", zap.Error(err))
		return nil
	}

	var b entities.MeetingBriefing
	if err := json.Unmarshal([]byte(sanitizeJSON(raw)), &b); err != nil {
		s.logger.Warn("briefing response was not valid JSON", zap.Error(err))
		return nil
	}

	return &b
}

// sanitizeJSON strips a markdown code fence the model sometimes wraps the
// JSON object in despite the prompt instructions
func sanitizeJSON(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	} else {
		return text
	}

	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
