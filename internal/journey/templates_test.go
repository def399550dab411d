package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateAlwaysHasFiveCompleteSteps(t *testing.T) {
	pairs := [][2]string{
		{"sad", "happy"},
		{"anxious", "calm"},
		{"angry", "peaceful"},
		{"envy", "happy"},
		{"bored", "excited"},
		{"", "happy"},
	}

	for _, pair := range pairs {
		payload := Template(pair[0], pair[1])

		require.Len(t, payload.Course.Steps, 5, "pair %q -> %q", pair[0], pair[1])
		for i, step := range payload.Course.Steps {
			assert.Equal(t, i+1, step.StepNumber)
			require.Len(t, step.Quiz.Options, 4)

			ids := make([]string, 0, len(step.Quiz.Options))
			for _, opt := range step.Quiz.Options {
				ids = append(ids, opt.ID)
			}
			assert.Contains(t, ids, step.Quiz.CorrectAnswer)

			assert.NotEmpty(t, step.Quiz.Question)
			assert.NotEmpty(t, step.Education.Explanation)
			assert.NotEmpty(t, step.GuidedActivity.Steps)
		}

		assert.Equal(t, pair[0], payload.Course.EmotionTransition.From)
		assert.Equal(t, pair[1], payload.Course.EmotionTransition.To)
		assert.Equal(t, 5, payload.Course.FinalCheck.RewardThreshold)
		assert.Equal(t, []string{pair[0], pair[1]}, payload.Metadata.TargetEmotions)
	}
}

func TestTemplateSadToHappy(t *testing.T) {
	payload := Template("sad", "happy")

	assert.Equal(t, "From Sad To Happy Journey", payload.Course.Title)
	assert.Equal(t, "blue", payload.Course.Reward.MedalType)
	assert.Equal(t, "Blue Medal of Happy", payload.Course.Reward.Title)
	assert.Equal(t, "Body Awareness Scan", payload.Course.Steps[0].GuidedActivity.Title)
}

func TestMedalColors(t *testing.T) {
	cases := map[string]string{
		"sad":     "blue",
		"angry":   "orange",
		"anxious": "purple",
		"envy":    "green",
		"happy":   "gold",
		"bored":   "silver",
		"":        "silver",
	}
	for emotion, want := range cases {
		assert.Equal(t, want, medalColor(emotion), "emotion %q", emotion)
	}
}

func TestStubbedPairsPaddedWithGenericSteps(t *testing.T) {
	payload := Template("anxious", "calm")

	// First step is the authored breathing exercise, the rest come from the
	// generic journey, renumbered.
	assert.Equal(t, "Diaphragmatic Breathing", payload.Course.Steps[0].GuidedActivity.Title)
	assert.Equal(t, "Emotion as Messenger", payload.Course.Steps[1].GuidedActivity.Title)
	assert.Equal(t, 2, payload.Course.Steps[1].StepNumber)
	assert.Equal(t, 5, payload.Course.Steps[4].StepNumber)
}

func TestGenericJourneyInterpolatesEmotion(t *testing.T) {
	payload := Template("bored", "excited")

	assert.Contains(t, payload.Course.Steps[0].Quiz.Question, "bored")
	assert.Contains(t, payload.Course.InitialPrompt.Text, "excited")
	assert.Contains(t, payload.Course.FinalCheck.Text, "bored")
}
