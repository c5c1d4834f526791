package service

// componentOrder fija la secuencia logica de armado de una respuesta.
var componentOrder = []string{
	"acknowledgment", "validation", "support", "reassurance",
	"encouragement", "curiosity", "engagement", "guidance", "questions",
}

// responseTypes clasifica que tipo de respuesta pide cada emocion.
var responseTypes = map[string]string{
	"admiration":     "affirming",
	"amusement":      "lighthearted",
	"anger":          "validating",
	"annoyance":      "validating",
	"approval":       "affirming",
	"caring":         "appreciative",
	"confusion":      "clarifying",
	"curiosity":      "exploratory",
	"desire":         "encouraging",
	"disappointment": "comforting",
	"disapproval":    "understanding",
	"disgust":        "understanding",
	"embarrassment":  "normalizing",
	"excitement":     "celebratory",
	"fear":           "reassuring",
	"gratitude":      "appreciative",
	"grief":          "compassionate",
	"joy":            "celebratory",
	"love":           "affirming",
	"nervousness":    "reassuring",
	"optimism":       "encouraging",
	"pride":          "congratulatory",
	"realization":    "exploratory",
	"relief":         "affirming",
	"remorse":        "supportive",
	"sadness":        "supportive",
	"surprise":       "curious",
	"neutral":        "engaging",
}

// classifyResponseType devuelve el tipo de respuesta para una emocion,
// con "supportive" como respaldo para etiquetas fuera del mapa.
func classifyResponseType(emotion string) string {
	if t, ok := responseTypes[emotion]; ok {
		return t
	}
	return "supportive"
}

// followUpSuggestions propone continuaciones de conversacion por emocion.
var followUpSuggestions = map[string][]string{
	"joy": {
		"Tell me more about what made this so special",
		"How do you plan to build on this positive moment?",
		"What other good things have been happening lately?",
	},
	"sadness": {
		"Would you like to share more about what's troubling you?",
		"Is there anything specific that might help you feel better?",
		"How can I best support you right now?",
	},
	"anger": {
		"Would you like to talk through what happened?",
		"What do you think would help resolve this situation?",
		"How would you like to see this situation improve?",
	},
	"fear": {
		"What specific aspects concern you most?",
		"What might help you feel more prepared or confident?",
		"Would it help to break this down into smaller steps?",
	},
	"surprise": {
		"How are you processing this unexpected development?",
		"What do you think this means for you going forward?",
		"How has this changed your perspective?",
	},
	"neutral": {
		"What's been on your mind lately?",
		"Is there anything you'd like to explore or discuss?",
		"How has your day been going?",
	},
}

// suggestionsFor devuelve las sugerencias de la emocion o las neutrales.
func suggestionsFor(emotion string) []string {
	if s, ok := followUpSuggestions[emotion]; ok {
		return s
	}
	return followUpSuggestions["neutral"]
}

// componentDirectives guia al LLM por emocion y cultura. No todas las
// emociones tienen directivas propias: las que faltan usan el set generico.
var componentDirectives = map[string]map[string]map[string]string{
	"joy": {
		"western": {
			"acknowledgment": "Celebrate with the user using energetic, direct language, e.g. 'That's fantastic news!'",
			"encouragement":  "Encourage them to build on the positive moment and keep the momentum going.",
			"questions":      "Ask an upbeat question about what made the moment special.",
		},
		"eastern": {
			"acknowledgment": "Acknowledge their joy with warm but composed language that honors the moment.",
			"encouragement":  "Gently encourage gratitude and savoring of the good fortune.",
			"curiosity":      "Ask a respectful question about what this happiness means for them.",
		},
		"default": {
			"acknowledgment": "Acknowledge their happiness warmly and sincerely.",
			"engagement":     "Show genuine interest in the source of their joy.",
			"curiosity":      "Invite them to share more about what is going well.",
		},
	},
	"sadness": {
		"western": {
			"acknowledgment": "Acknowledge the sadness directly and empathetically, e.g. 'I'm really sorry you're going through this.'",
			"validation":     "Validate that feeling down in this situation is completely understandable.",
			"support":        "Offer presence and a listening ear without rushing to fix anything.",
		},
		"eastern": {
			"acknowledgment": "Acknowledge their sorrow with gentle, measured language that respects their composure.",
			"reassurance":    "Reassure them that difficult seasons pass, like weather over a mountain.",
			"support":        "Offer quiet companionship and patience rather than direct intervention.",
		},
		"default": {
			"acknowledgment": "Acknowledge that they are going through something painful.",
			"validation":     "Validate their feelings without judgment.",
			"support":        "Let them know you are here to listen whenever they want to share more.",
		},
	},
	"anger": {
		"western": {
			"acknowledgment": "Acknowledge the anger directly with strong validating language; never tell them to calm down.",
			"validation":     "Reinforce that their reaction is justified and anyone would feel the same.",
			"guidance":       "Only after validating, gently offer to talk through what happened.",
		},
		"eastern": {
			"acknowledgment": "Recognize their frustration respectfully, framing it as a disturbance of inner balance.",
			"validation":     "Validate the principles or sense of fairness that was violated.",
			"guidance":       "Guide them toward restoring harmony and a measured path forward.",
		},
		"default": {
			"acknowledgment": "Acknowledge the frustration without judgment.",
			"validation":     "Confirm that their anger makes sense given the circumstances.",
			"support":        "Offer space to vent and be heard before any advice.",
		},
	},
	"fear": {
		"western": {
			"acknowledgment": "Name the worry directly and let them know it is heard.",
			"reassurance":    "Offer grounded, practical reassurance without dismissing the concern.",
			"guidance":       "Suggest breaking the situation into smaller, manageable steps.",
		},
		"eastern": {
			"acknowledgment": "Acknowledge their unease with calm, steady language.",
			"reassurance":    "Reassure them that clarity and courage grow with patience.",
			"guidance":       "Gently point toward one small step that restores a sense of control.",
		},
		"default": {
			"acknowledgment": "Acknowledge that the situation feels uncertain and worrying.",
			"reassurance":    "Remind them they do not have to face it alone.",
			"questions":      "Ask what aspect concerns them the most.",
		},
	},
	"gratitude": {
		"western": {
			"acknowledgment": "Receive their thanks warmly and mirror the positive energy.",
			"engagement":     "Engage with what made the experience meaningful for them.",
		},
		"eastern": {
			"acknowledgment": "Receive their gratitude with humility and respect.",
			"engagement":     "Honor the relationship or effort that earned their thanks.",
		},
		"default": {
			"acknowledgment": "Acknowledge their appreciation sincerely.",
			"engagement":     "Show interest in what prompted their gratitude.",
		},
	},
	"confusion": {
		"western": {
			"acknowledgment": "Normalize the confusion; complicated situations are confusing.",
			"support":        "Offer to break the problem down together.",
			"guidance":       "Ask what part is least clear right now.",
		},
		"eastern": {
			"acknowledgment": "Acknowledge the lack of clarity with patience.",
			"reassurance":    "Reassure them that, like murky water settling, clarity comes with time.",
			"guidance":       "Suggest a quiet moment of reflection to let the path emerge.",
		},
		"default": {
			"acknowledgment": "Acknowledge that things feel unclear.",
			"support":        "Offer to be a sounding board.",
			"questions":      "Ask a clarifying question to help organize their thoughts.",
		},
	},
	"surprise": {
		"western": {
			"acknowledgment": "React to the unexpected turn with genuine interest.",
			"curiosity":      "Ask how they are processing the development.",
		},
		"eastern": {
			"acknowledgment": "Acknowledge the unexpected event with composed interest.",
			"curiosity":      "Gently ask what this change means for their path.",
		},
		"default": {
			"acknowledgment": "Acknowledge the surprise and its impact.",
			"curiosity":      "Invite them to share how it changed their perspective.",
		},
	},
	"neutral": {
		"default": {
			"acknowledgment": "Respond in a friendly, open way that keeps the conversation going.",
			"engagement":     "Show availability to explore whatever is on their mind.",
			"questions":      "Ask a light, open-ended question.",
		},
	},
}

// genericDirectives cubre emociones sin entrada propia en componentDirectives.
var genericDirectives = map[string]string{
	"acknowledgment": "Acknowledge the user's emotional state with warmth and without judgment.",
	"support":        "Offer empathetic support appropriate to the emotion expressed.",
	"engagement":     "Show genuine interest and invite them to share more if they wish.",
}

// directivesFor resuelve las directivas por emocion y cultura, cayendo a la
// variante default de la emocion y finalmente al set generico.
func directivesFor(emotion, culture string) map[string]string {
	byCulture, ok := componentDirectives[emotion]
	if !ok {
		return genericDirectives
	}
	if d, ok := byCulture[culture]; ok {
		return d
	}
	if d, ok := byCulture["default"]; ok {
		return d
	}
	return genericDirectives
}
