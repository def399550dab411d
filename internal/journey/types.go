// Package journey produces emotional journey course payloads, either through
// a language model or from the built-in template library.
package journey

// Payload is the full generated course document. Field names mirror the wire
// format consumed by the mobile client.
type Payload struct {
	Course   CourseDoc `json:"course"`
	Metadata Metadata  `json:"metadata"`
}

type CourseDoc struct {
	Title             string      `json:"title"`
	EmotionTransition Transition  `json:"emotion_transition"`
	InitialPrompt     ScalePrompt `json:"initial_prompt"`
	Steps             []Step      `json:"steps"`
	FinalCheck        FinalCheck  `json:"final_check"`
	Reward            Reward      `json:"reward"`
}

type Transition struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type InputRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ScalePrompt asks the user for a 1-10 mood rating.
type ScalePrompt struct {
	Text        string     `json:"text"`
	SecondsWait int        `json:"seconds_wait"`
	InputType   string     `json:"input_type"`
	InputRange  InputRange `json:"input_range"`
}

// FinalCheck is the closing mood prompt; a rating at or above
// RewardThreshold earns the medal.
type FinalCheck struct {
	Text            string     `json:"text"`
	SecondsWait     int        `json:"seconds_wait"`
	InputType       string     `json:"input_type"`
	InputRange      InputRange `json:"input_range"`
	RewardThreshold int        `json:"reward_threshold"`
}

type Step struct {
	StepNumber     int            `json:"step_number"`
	Quiz           Quiz           `json:"quiz"`
	Education      Education      `json:"education"`
	GuidedActivity GuidedActivity `json:"guided_activity"`
}

type Quiz struct {
	Question      string   `json:"question"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	SecondsWait   int      `json:"seconds_wait"`
}

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Education struct {
	CorrectText            string `json:"correct_text"`
	CorrectTextSecondsWait int    `json:"correct_text_seconds_wait"`
	Explanation            string `json:"explanation"`
	ExplanationSecondsWait int    `json:"explanation_seconds_wait"`
}

type GuidedActivity struct {
	Title        string         `json:"title"`
	Instructions TimedText      `json:"instructions"`
	Steps        []ActivityStep `json:"steps"`
	Conclusion   TimedText      `json:"conclusion"`
}

type TimedText struct {
	Text string `json:"text"`
	Wait int    `json:"wait"`
}

type ActivityStep struct {
	Text      string `json:"text"`
	Countdown int    `json:"countdown"`
	Wait      int    `json:"wait"`
}

type Reward struct {
	MedalType           string   `json:"medal_type"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	SecondsWait         int      `json:"seconds_wait"`
	TechniquesSummary   []string `json:"techniques_summary"`
	CongratulationsText string   `json:"congratulations_text"`
}

type Metadata struct {
	Version                        string   `json:"version"`
	CreatedDate                    string   `json:"created_date"`
	TargetEmotions                 []string `json:"target_emotions"`
	EstimatedCompletionTimeMinutes int      `json:"estimated_completion_time_minutes"`
	DifficultyLevel                string   `json:"difficulty_level"`
}
