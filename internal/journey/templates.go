package journey

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// journeySteps is the fixed length of every template-sourced journey.
const journeySteps = 5

var titleCaser = cases.Title(language.English)

// medalColor maps a source emotion to its medal color. Unmapped emotions get
// a neutral silver medal.
func medalColor(emotion string) string {
	switch emotion {
	case "sad":
		return "blue"
	case "angry":
		return "orange"
	case "anxious":
		return "purple"
	case "envy":
		return "green"
	case "happy":
		return "gold"
	default:
		return "silver"
	}
}

// Template returns the pre-authored journey for the given emotion pair. It is
// a pure lookup with no failure modes: unmatched pairs get a generic journey
// whose prose interpolates the source emotion.
func Template(from, to string) Payload {
	color := medalColor(from)

	return Payload{
		Course: CourseDoc{
			Title:             fmt.Sprintf("From %s To %s Journey", titleCaser.String(from), titleCaser.String(to)),
			EmotionTransition: Transition{From: from, To: to},
			InitialPrompt: ScalePrompt{
				Text:        fmt.Sprintf("How are you feeling right now on a scale of 1-10? (10 being most %s)", to),
				SecondsWait: 5,
				InputType:   "number_scale",
				InputRange:  InputRange{Min: 1, Max: 10},
			},
			Steps: stepsFor(from, to),
			FinalCheck: FinalCheck{
				Text:            fmt.Sprintf("How are you feeling now compared to when we started? Has your %s decreased on a scale of 1-10?", from),
				SecondsWait:     8,
				InputType:       "number_scale",
				InputRange:      InputRange{Min: 1, Max: 10},
				RewardThreshold: 5,
			},
			Reward: Reward{
				MedalType:   color,
				Title:       fmt.Sprintf("%s Medal of %s", titleCaser.String(color), titleCaser.String(to)),
				Description: "This medal represents the neurological and physiological changes you've created through these practices.",
				SecondsWait: 10,
				TechniquesSummary: []string{
					"Emotional awareness",
					"Cognitive reframing",
					"Mindfulness practice",
					"Self-compassion",
					"Behavioral activation",
				},
				CongratulationsText: fmt.Sprintf("Each time you practice these skills, you strengthen the neural pathways that support %s!", to),
			},
		},
		Metadata: Metadata{
			Version:                        "1.0",
			CreatedDate:                    time.Now().Format("2006-01-02"),
			TargetEmotions:                 []string{from, to},
			EstimatedCompletionTimeMinutes: 15,
			DifficultyLevel:                "beginner",
		},
	}
}

// stepsFor selects the authored step sequence for the pair. Pairs whose
// authored content is shorter than the full journey are padded with generic
// steps and renumbered.
func stepsFor(from, to string) []Step {
	var steps []Step
	switch {
	case from == "sad" && to == "happy":
		steps = sadToHappySteps()
	case from == "anxious" && to == "calm":
		steps = anxiousToCalmSteps()
	case from == "angry" && to == "peaceful":
		steps = angryToPeacefulSteps()
	default:
		return genericSteps(from)
	}

	if len(steps) < journeySteps {
		fill := genericSteps(from)
		steps = append(steps, fill[len(steps):]...)
	}
	for i := range steps {
		steps[i].StepNumber = i + 1
	}
	return steps
}

func sadToHappySteps() []Step {
	return []Step{
		{
			StepNumber: 1,
			Quiz: Quiz{
				Question: "Which of these is NOT a common physiological effect of sadness?",
				Options: []Option{
					{ID: "A", Text: "Decreased energy levels"},
					{ID: "B", Text: "Increased heart rate"},
					{ID: "C", Text: "Changes in appetite"},
					{ID: "D", Text: "Disrupted sleep patterns"},
				},
				CorrectAnswer: "B",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! Sadness typically decreases heart rate, unlike anxiety or excitement.",
				CorrectTextSecondsWait: 5,
				Explanation:            "Sadness typically slows our physiological systems down. It decreases heart rate, can cause fatigue, and often leads to withdrawal behaviors. This is different from anxiety or fear, which activate our sympathetic nervous system and increase heart rate.",
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Body Awareness Scan",
				Instructions: TimedText{Text: "Let's do a quick body scan to notice how sadness feels in your body right now.", Wait: 5},
				Steps: []ActivityStep{
					{Text: "Close your eyes and take a deep breath", Countdown: 4, Wait: 4},
					{Text: "Notice any sensations in your chest", Countdown: 4, Wait: 4},
					{Text: "Notice any sensations in your shoulders and neck", Countdown: 4, Wait: 4},
					{Text: "Notice any sensations in your face", Countdown: 4, Wait: 4},
				},
				Conclusion: TimedText{Text: "By noticing these physical sensations, you've taken the first step toward managing your emotions.", Wait: 3},
			},
		},
		{
			StepNumber: 2,
			Quiz: Quiz{
				Question: "Which cognitive distortion often accompanies sadness?",
				Options: []Option{
					{ID: "A", Text: "Catastrophizing"},
					{ID: "B", Text: "Mind reading"},
					{ID: "C", Text: "Overgeneralization"},
					{ID: "D", Text: "All of the above"},
				},
				CorrectAnswer: "D",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! All of these cognitive distortions can accompany sadness.",
				CorrectTextSecondsWait: 5,
				Explanation:            "Sadness often brings cognitive distortions that reinforce negative feelings. Catastrophizing makes us imagine the worst outcomes. Mind reading assumes others think negatively of us. Overgeneralization takes one negative event and applies it broadly to life. Recognizing these patterns is the first step to challenging them.",
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Thought Challenge",
				Instructions: TimedText{Text: "Let's identify and challenge a negative thought you're having.", Wait: 5},
				Steps: []ActivityStep{
					{Text: "Identify a negative thought you've had today", Countdown: 5, Wait: 5},
					{Text: "What evidence supports this thought?", Countdown: 5, Wait: 5},
					{Text: "What evidence contradicts this thought?", Countdown: 5, Wait: 5},
					{Text: "What would you tell a friend with this thought?", Countdown: 5, Wait: 5},
				},
				Conclusion: TimedText{Text: "By examining your thoughts objectively, you can reduce their emotional impact.", Wait: 3},
			},
		},
		{
			StepNumber: 3,
			Quiz: Quiz{
				Question: "Which activity is most likely to boost mood according to research?",
				Options: []Option{
					{ID: "A", Text: "Scrolling social media"},
					{ID: "B", Text: "Watching TV alone"},
					{ID: "C", Text: "Light physical exercise"},
					{ID: "D", Text: "Online shopping"},
				},
				CorrectAnswer: "C",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! Light physical exercise has been consistently shown to improve mood.",
				CorrectTextSecondsWait: 5,
				Explanation:            "Exercise releases endorphins, natural mood elevators. Even light activity like walking can reduce sadness and anxiety. Physical movement also disrupts rumination cycles by shifting focus to the body. Regular exercise has been shown in studies to be as effective as medication for mild to moderate depression in some cases.",
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Mood-Boosting Movement",
				Instructions: TimedText{Text: "Let's do a brief movement exercise to activate your body's natural mood enhancers.", Wait: 5},
				Steps: []ActivityStep{
					{Text: "Stand up and gently stretch your arms overhead", Countdown: 5, Wait: 5},
					{Text: "Roll your shoulders backward 5 times", Countdown: 5, Wait: 5},
					{Text: "March in place, lifting your knees high", Countdown: 10, Wait: 10},
					{Text: "Take 3 deep breaths, feeling the energy in your body", Countdown: 5, Wait: 5},
				},
				Conclusion: TimedText{Text: "Even this brief activity can begin to shift your neurochemistry toward a more positive state.", Wait: 3},
			},
		},
		{
			StepNumber: 4,
			Quiz: Quiz{
				Question: "Which of these is a healthy way to process sadness?",
				Options: []Option{
					{ID: "A", Text: "Suppressing the emotion entirely"},
					{ID: "B", Text: "Distracting yourself until it passes"},
					{ID: "C", Text: "Expressing the emotion through creative outlets"},
					{ID: "D", Text: "Analyzing why you shouldn't feel sad"},
				},
				CorrectAnswer: "C",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! Expressing emotions through creative outlets is a healthy processing method.",
				CorrectTextSecondsWait: 5,
				Explanation:            "Creative expression gives form to emotions that can be difficult to verbalize. Activities like journaling, art, music, or dance allow us to process sadness without judgment. This approach acknowledges the emotion while providing a constructive channel for its energy. Research shows creative expression can reduce stress hormones and increase positive emotions.",
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Expressive Writing",
				Instructions: TimedText{Text: "Let's try a brief expressive writing exercise to process your feelings.", Wait: 5},
				Steps: []ActivityStep{
					{Text: "Take a moment to connect with how you're feeling", Countdown: 5, Wait: 5},
					{Text: "Write or mentally compose a letter to your emotion", Countdown: 15, Wait: 15},
					{Text: "What would you like to say to this feeling?", Countdown: 10, Wait: 10},
					{Text: "How might this emotion be trying to help you?", Countdown: 10, Wait: 10},
				},
				Conclusion: TimedText{Text: "By acknowledging and expressing your emotions, you reduce their power to overwhelm you.", Wait: 3},
			},
		},
		{
			StepNumber: 5,
			Quiz: Quiz{
				Question: "Which practice has been shown to increase positive emotions over time?",
				Options: []Option{
					{ID: "A", Text: "Gratitude practice"},
					{ID: "B", Text: "Comparing yourself to others"},
					{ID: "C", Text: "Setting extremely high standards"},
					{ID: "D", Text: "Focusing on future goals"},
				},
				CorrectAnswer: "A",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! Gratitude practice has been consistently shown to increase positive emotions.",
				CorrectTextSecondsWait: 5,
				Explanation:            "Gratitude practice trains the brain to notice positive aspects of life that we often overlook. Regular gratitude exercises have been shown to increase happiness, reduce depression, improve sleep, and even strengthen immune function. This practice works by shifting attention from what's lacking to what's present, creating new neural pathways that support positive emotional states.",
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Gratitude Practice",
				Instructions: TimedText{Text: "Let's practice gratitude to build positive emotional resources.", Wait: 5},
				Steps: []ActivityStep{
					{Text: "Think of something small you're grateful for today", Countdown: 5, Wait: 5},
					{Text: "Recall a person who has supported you recently", Countdown: 5, Wait: 5},
					{Text: "Notice something about your body you're thankful for", Countdown: 5, Wait: 5},
					{Text: "Identify a challenge that taught you something valuable", Countdown: 5, Wait: 5},
				},
				Conclusion: TimedText{Text: "Regular gratitude practice can gradually shift your emotional baseline toward greater happiness.", Wait: 3},
			},
		},
	}
}

func anxiousToCalmSteps() []Step {
	return []Step{
		{
			StepNumber: 1,
			Quiz: Quiz{
				Question: "Which physical symptom is commonly associated with anxiety?",
				Options: []Option{
					{ID: "A", Text: "Decreased heart rate"},
					{ID: "B", Text: "Muscle relaxation"},
					{ID: "C", Text: "Shallow breathing"},
					{ID: "D", Text: "Decreased blood pressure"},
				},
				CorrectAnswer: "C",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! Shallow breathing is a common physical symptom of anxiety.",
				CorrectTextSecondsWait: 5,
				Explanation:            "Anxiety activates our sympathetic nervous system (fight-or-flight response), which often leads to shallow, rapid breathing. This breathing pattern can actually increase feelings of anxiety by reducing carbon dioxide levels in the blood, causing lightheadedness and increased heart rate. Understanding this connection gives us a powerful intervention point: controlling our breath.",
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Diaphragmatic Breathing",
				Instructions: TimedText{Text: "Let's practice deep breathing to activate your parasympathetic nervous system.", Wait: 5},
				Steps: []ActivityStep{
					{Text: "Place one hand on your chest and one on your stomach", Countdown: 3, Wait: 3},
					{Text: "Breathe in slowly through your nose for 4 counts", Countdown: 4, Wait: 4},
					{Text: "Hold your breath for 2 counts", Countdown: 2, Wait: 2},
					{Text: "Exhale slowly through your mouth for 6 counts", Countdown: 6, Wait: 6},
					{Text: "Repeat this cycle 3 more times", Countdown: 36, Wait: 36},
				},
				Conclusion: TimedText{Text: "This breathing pattern activates your parasympathetic nervous system, which counteracts anxiety's effects.", Wait: 3},
			},
		},
	}
}

func angryToPeacefulSteps() []Step {
	return []Step{
		{
			StepNumber: 1,
			Quiz: Quiz{
				Question: "What happens in the brain when we experience anger?",
				Options: []Option{
					{ID: "A", Text: "The prefrontal cortex becomes more active"},
					{ID: "B", Text: "The amygdala becomes less active"},
					{ID: "C", Text: "The amygdala triggers the fight-or-flight response"},
					{ID: "D", Text: "Serotonin levels increase significantly"},
				},
				CorrectAnswer: "C",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! The amygdala triggers the fight-or-flight response during anger.",
				CorrectTextSecondsWait: 5,
				Explanation:            "When we feel angry, the amygdala (our brain's alarm system) activates the fight-or-flight response, flooding our body with stress hormones like adrenaline and cortisol. This physiological response prepares us for conflict by increasing heart rate, blood pressure, and muscle tension. At the same time, activity in the prefrontal cortex (responsible for rational thinking) often decreases, making it harder to think clearly.",
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Temperature Change",
				Instructions: TimedText{Text: "Let's try a physical technique to cool down anger quickly.", Wait: 5},
				Steps: []ActivityStep{
					{Text: "If possible, place your hands or face under cool water", Countdown: 5, Wait: 5},
					{Text: "Alternatively, place a cool object against your forehead or neck", Countdown: 5, Wait: 5},
					{Text: "Focus on the cooling sensation as it spreads", Countdown: 10, Wait: 10},
					{Text: "Take slow, deep breaths as you continue to focus on the sensation", Countdown: 10, Wait: 10},
				},
				Conclusion: TimedText{Text: "This technique works by activating the mammalian diving reflex, which naturally calms your nervous system.", Wait: 3},
			},
		},
	}
}

// genericSteps is the journey for emotion pairs with no authored content.
// Only the first step's prose depends on the source emotion.
func genericSteps(emotion string) []Step {
	return []Step{
		{
			StepNumber: 1,
			Quiz: Quiz{
				Question: fmt.Sprintf("Which of these is a healthy way to respond to feeling %s?", emotion),
				Options: []Option{
					{ID: "A", Text: "Ignore the feeling completely"},
					{ID: "B", Text: "Acknowledge the emotion without judgment"},
					{ID: "C", Text: "Distract yourself with social media"},
					{ID: "D", Text: "Tell yourself to just feel better"},
				},
				CorrectAnswer: "B",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! Acknowledging emotions without judgment is a key part of emotional intelligence.",
				CorrectTextSecondsWait: 5,
				Explanation:            fmt.Sprintf("When we feel %s, acknowledging the emotion without judgment allows us to process it in a healthy way. This is a fundamental principle of mindfulness and emotional intelligence.", emotion),
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Mindful Awareness",
				Instructions: TimedText{Text: fmt.Sprintf("Let's practice acknowledging your %s with mindfulness.", emotion), Wait: 5},
				Steps: []ActivityStep{
					{Text: "Take a deep breath in and out", Countdown: 4, Wait: 4},
					{Text: fmt.Sprintf("Say to yourself: 'I notice I'm feeling %s'", emotion), Countdown: 4, Wait: 4},
					{Text: "Observe any physical sensations without trying to change them", Countdown: 4, Wait: 4},
				},
				Conclusion: TimedText{Text: "By acknowledging your emotions, you've taken an important step toward emotional well-being.", Wait: 3},
			},
		},
		{
			StepNumber: 2,
			Quiz: Quiz{
				Question: "Which of these statements about emotions is true?",
				Options: []Option{
					{ID: "A", Text: "Emotions are either good or bad"},
					{ID: "B", Text: "We should always try to control our emotions"},
					{ID: "C", Text: "Emotions provide valuable information about our needs"},
					{ID: "D", Text: "Emotional reactions are always rational"},
				},
				CorrectAnswer: "C",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! Emotions provide valuable information about our needs and values.",
				CorrectTextSecondsWait: 5,
				Explanation:            "Emotions serve as messengers that help us understand what matters to us. Rather than being 'good' or 'bad,' emotions are signals that can guide our decisions and actions. Understanding the message behind an emotion helps us respond effectively to situations.",
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Emotion as Messenger",
				Instructions: TimedText{Text: "Let's explore what your current emotion might be telling you.", Wait: 5},
				Steps: []ActivityStep{
					{Text: "What need might this emotion be highlighting?", Countdown: 5, Wait: 5},
					{Text: "What value or boundary might this emotion be protecting?", Countdown: 5, Wait: 5},
					{Text: "What action might this emotion be suggesting?", Countdown: 5, Wait: 5},
				},
				Conclusion: TimedText{Text: "By listening to your emotions, you gain valuable insights that can guide your choices.", Wait: 3},
			},
		},
		{
			StepNumber: 3,
			Quiz: Quiz{
				Question: "Which technique can help regulate intense emotions?",
				Options: []Option{
					{ID: "A", Text: "Suppressing the emotion"},
					{ID: "B", Text: "Physical exercise"},
					{ID: "C", Text: "Ruminating on the cause"},
					{ID: "D", Text: "Consuming caffeine or sugar"},
				},
				CorrectAnswer: "B",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! Physical exercise is an effective way to regulate intense emotions.",
				CorrectTextSecondsWait: 5,
				Explanation:            "Exercise helps process emotions by metabolizing stress hormones, releasing endorphins, and shifting focus to physical sensations. Even brief movement can change your physiological state and create distance from overwhelming feelings.",
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Movement Reset",
				Instructions: TimedText{Text: "Let's use physical movement to shift your emotional state.", Wait: 5},
				Steps: []ActivityStep{
					{Text: "Stand up if possible and shake out your hands and arms", Countdown: 5, Wait: 5},
					{Text: "Roll your shoulders forward and backward", Countdown: 5, Wait: 5},
					{Text: "Gently twist your torso from side to side", Countdown: 5, Wait: 5},
					{Text: "Take three deep breaths with arms raising on inhale, lowering on exhale", Countdown: 10, Wait: 10},
				},
				Conclusion: TimedText{Text: "This brief movement break helps reset your nervous system and create emotional space.", Wait: 3},
			},
		},
		{
			StepNumber: 4,
			Quiz: Quiz{
				Question: "Which statement about thoughts and emotions is most accurate?",
				Options: []Option{
					{ID: "A", Text: "Our thoughts directly cause our emotions"},
					{ID: "B", Text: "We have no control over our thoughts"},
					{ID: "C", Text: "Thoughts and emotions influence each other"},
					{ID: "D", Text: "Emotions have no effect on thinking"},
				},
				CorrectAnswer: "C",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! Thoughts and emotions have a bidirectional relationship, influencing each other.",
				CorrectTextSecondsWait: 5,
				Explanation:            "Our thoughts can trigger or intensify emotions, while our emotions can shape the content and style of our thinking. This relationship creates feedback loops that can either escalate or de-escalate our emotional experiences. By recognizing this connection, we can intervene at either the thought or emotion level to create positive change.",
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Thought Reframing",
				Instructions: TimedText{Text: "Let's practice reframing a thought to shift your emotional experience.", Wait: 5},
				Steps: []ActivityStep{
					{Text: "Notice a thought that's contributing to your current emotion", Countdown: 5, Wait: 5},
					{Text: "Ask yourself: Is this thought helpful? Is it accurate?", Countdown: 5, Wait: 5},
					{Text: "Consider a more balanced or helpful perspective", Countdown: 5, Wait: 5},
					{Text: "Notice how this new perspective feels in your body", Countdown: 5, Wait: 5},
				},
				Conclusion: TimedText{Text: "By reframing unhelpful thoughts, you can shift your emotional experience.", Wait: 3},
			},
		},
		{
			StepNumber: 5,
			Quiz: Quiz{
				Question: "Which of these practices builds emotional resilience over time?",
				Options: []Option{
					{ID: "A", Text: "Avoiding all emotional triggers"},
					{ID: "B", Text: "Regular self-care and stress management"},
					{ID: "C", Text: "Keeping emotions private from others"},
					{ID: "D", Text: "Focusing only on positive emotions"},
				},
				CorrectAnswer: "B",
				SecondsWait:   10,
			},
			Education: Education{
				CorrectText:            "Correct! Regular self-care and stress management build emotional resilience.",
				CorrectTextSecondsWait: 5,
				Explanation:            "Emotional resilience is built through consistent practices that support overall well-being. Regular self-care activities like adequate sleep, nutrition, exercise, and stress management create a foundation that helps us navigate emotional challenges. Rather than avoiding emotions, resilience comes from developing the skills to process them effectively.",
				ExplanationSecondsWait: 8,
			},
			GuidedActivity: GuidedActivity{
				Title:        "Resilience Planning",
				Instructions: TimedText{Text: "Let's create a simple resilience plan for ongoing emotional well-being.", Wait: 5},
				Steps: []ActivityStep{
					{Text: "Identify one self-care activity you can practice daily", Countdown: 5, Wait: 5},
					{Text: "Think of a person you can reach out to when you need support", Countdown: 5, Wait: 5},
					{Text: "Consider a calming activity you can use when feeling overwhelmed", Countdown: 5, Wait: 5},
					{Text: "Imagine implementing this plan and notice how it feels", Countdown: 5, Wait: 5},
				},
				Conclusion: TimedText{Text: "Having a simple resilience plan helps you navigate emotional challenges more effectively.", Wait: 3},
			},
		},
	}
}
