package journey

import (
	"fmt"
	"strings"
	"time"
)

// systemPrompt sets the model's role for course generation.
const systemPrompt = "You are an expert in psychology and emotional well-being. Create detailed, educational emotional journeys in JSON format."

// userPromptTemplate embeds the emotion pair, the user's context, and the
// exact JSON shape the client consumes. Placeholders, in order: source
// emotion, target emotion, context, title-cased source, title-cased target,
// source, target, created date, source, target.
const userPromptTemplate = `Create a 5-step educational journey to help someone transition from feeling %s to %s.

Their context: "%s"

For each step, include:
1. A quiz question with 4 multiple-choice options (labeled A, B, C, D)
2. The correct answer with educational explanation
3. A guided interactive activity

Make sure to use the following JSON structure, especially for timing controls:

{
  "course": {
    "title": "From %s To %s Journey",
    "emotion_transition": {
      "from": "%s",
      "to": "%s"
    },
    "initial_prompt": {
      "text": "How are you feeling right now on a scale of 1-10?",
      "seconds_wait": 5,
      "input_type": "number_scale",
      "input_range": {
        "min": 1,
        "max": 10
      }
    },
    "steps": [
      {
        "step_number": 1,
        "quiz": {
          "question": "...",
          "options": [
            {"id": "A", "text": "..."},
            {"id": "B", "text": "..."},
            {"id": "C", "text": "..."},
            {"id": "D", "text": "..."}
          ],
          "correct_answer": "B",
          "seconds_wait": 10
        },
        "education": {
          "correct_text": "...",
          "correct_text_seconds_wait": 5,
          "explanation": "...",
          "explanation_seconds_wait": 8
        },
        "guided_activity": {
          "title": "...",
          "instructions": {
            "text": "...",
            "wait": 5
          },
          "steps": [
            {
              "text": "...",
              "countdown": 4,
              "wait": 4
            }
          ],
          "conclusion": {
            "text": "...",
            "wait": 3
          }
        }
      }
    ],
    "final_check": {
      "text": "How are you feeling now?",
      "seconds_wait": 8,
      "input_type": "number_scale",
      "input_range": {
        "min": 1,
        "max": 10
      },
      "reward_threshold": 5
    },
    "reward": {
      "medal_type": "color",
      "title": "Medal of Achievement",
      "description": "...",
      "seconds_wait": 10,
      "techniques_summary": [],
      "congratulations_text": "..."
    }
  },
  "metadata": {
    "version": "1.0",
    "created_date": "%s",
    "target_emotions": ["%s", "%s"],
    "estimated_completion_time_minutes": 15,
    "difficulty_level": "beginner"
  }
}

The "steps" array must contain exactly 5 steps. Return ONLY the JSON document, with no commentary before or after it.`

// buildUserPrompt renders the generation request for an emotion pair and the
// user's free-text context.
func buildUserPrompt(from, to, userContext string) string {
	return strings.TrimSpace(fmt.Sprintf(
		userPromptTemplate,
		from, to,
		userContext,
		titleCaser.String(from), titleCaser.String(to),
		from, to,
		time.Now().Format("2006-01-02"),
		from, to,
	))
}
