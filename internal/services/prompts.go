package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"quizlens-backend/internal/models"
)

// ProbePrompt is deliberately trivial: the point of the readiness probe is
// whether the QA endpoint answers at all, not what it says.
const ProbePrompt = "Describe this video in one short sentence."

const RoastPrompt = "Write a funny and gentle roast about the person, or the voice in this video. Reply in markdown format."

func BuildAnalysisPrompt() string {
	var b strings.Builder

	b.WriteString("Analyze this educational video and provide a comprehensive educational analysis.\n\n")
	b.WriteString("Please identify and return the following information in JSON format:\n\n")
	b.WriteString("1. Subject Area: the main academic subject (e.g., Mathematics, Science, History, Language Arts)\n")
	b.WriteString("2. Topic: the specific topic being taught (e.g., \"Quadratic Equations\", \"Photosynthesis\")\n")
	b.WriteString("3. Difficulty Level: beginner, intermediate, or advanced\n")
	b.WriteString("4. Key Concepts: 3-5 main concepts or strategies being taught\n")
	b.WriteString("5. Learning Objectives: what students should learn from this video\n")
	b.WriteString("6. Key Moments: important timestamps and the concept taught at each\n")
	b.WriteString("7. Educational Value: what makes this video educationally valuable\n")
	b.WriteString("8. Prerequisites: prior knowledge students might need\n\n")

	b.WriteString(`Return the response as a valid JSON object with these exact field names:
{
    "subject": "string",
    "topic": "string",
    "difficulty": "string",
    "key_concepts": ["concept1", "concept2", "concept3"],
    "learning_objectives": ["objective1", "objective2"],
    "key_moments": [
        {"timestamp": 120, "concept": "factoring", "description": "Shows how to factor quadratic equations"}
    ],
    "educational_value": "string",
    "prerequisites": ["prerequisite1", "prerequisite2"]
}
`)
	b.WriteString("\nFocus on identifying educational content that could be used to create meaningful quiz questions.\n")

	return b.String()
}

func BuildQuizPrompt(analysis map[string]any, difficulty string, questionTypes []string) string {
	subject := stringField(analysis, "subject", "educational")
	topic := stringField(analysis, "topic", "the topic")

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Based on this %s video about %s, create a comprehensive educational quiz.\n\n", subject, topic))

	b.WriteString("Video Analysis Summary:\n")
	b.WriteString(fmt.Sprintf("- Subject: %s\n", stringField(analysis, "subject", "Not specified")))
	b.WriteString(fmt.Sprintf("- Topic: %s\n", stringField(analysis, "topic", "Not specified")))
	b.WriteString(fmt.Sprintf("- Difficulty: %s\n", difficulty))
	b.WriteString(fmt.Sprintf("- Key Concepts: %s\n", strings.Join(listField(analysis, "key_concepts"), ", ")))
	b.WriteString(fmt.Sprintf("- Learning Objectives: %s\n\n", strings.Join(listField(analysis, "learning_objectives"), ", ")))

	if len(questionTypes) == 0 {
		questionTypes = []string{"multiple_choice", "short_answer"}
	}
	b.WriteString(fmt.Sprintf("Question types to use: %s\n", strings.Join(questionTypes, ", ")))
	b.WriteString(fmt.Sprintf("Target difficulty: %s. Keep every question at this level.\n\n", difficulty))

	b.WriteString("For each question, provide:\n")
	b.WriteString("- question_text: the question itself\n")
	b.WriteString("- question_type: \"multiple_choice\", \"true_false\", \"short_answer\", or \"fill_blank\"\n")
	b.WriteString("- options: array of choices (for multiple choice only)\n")
	b.WriteString("- correct_answer: the correct answer\n")
	b.WriteString("- explanation: why this answer is correct\n")
	b.WriteString("- difficulty_points: 1-5 scale\n")
	b.WriteString("- concept_tested: which key concept this tests\n\n")

	b.WriteString(`Return the response as a valid JSON object with this exact structure:
{
    "quiz_title": "Quiz based on [topic]",
    "quiz_description": "Test your understanding of [topic] concepts",
    "total_questions": 6,
    "estimated_time": "10-15 minutes",
    "questions": [
        {
            "question_id": 1,
            "question_text": "What is the main concept discussed?",
            "question_type": "multiple_choice",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": "Option B",
            "explanation": "This is correct because...",
            "difficulty_points": 3,
            "concept_tested": "main_concept"
        }
    ]
}
`)

	b.WriteString("\nMake sure questions are:\n")
	b.WriteString("- Directly related to the video content\n")
	b.WriteString("- Appropriate for the difficulty level\n")
	b.WriteString("- Testing actual understanding, not just memorization\n")
	b.WriteString("- Accompanied by clear explanations for learning\n")

	return b.String()
}

func BuildExplanationsPrompt(quizData map[string]any, userAnswers any, analysis map[string]any) string {
	quizJSON, _ := json.Marshal(quizData)
	answersJSON, _ := json.Marshal(userAnswers)

	var b strings.Builder

	b.WriteString("You are a patient tutor. A student just completed this quiz about ")
	b.WriteString(stringField(analysis, "topic", "the video content"))
	b.WriteString(". For every question, explain why the correct answer is right and, where the student answered incorrectly, why their answer misses.\n\n")

	b.WriteString("Quiz:\n")
	b.Write(quizJSON)
	b.WriteString("\n\nStudent answers:\n")
	b.Write(answersJSON)
	b.WriteString("\n\n")

	b.WriteString(`Return the response as a valid JSON object with this exact structure:
{
    "explanations": [
        {
            "question_id": 1,
            "correct": true,
            "explanation": "string",
            "concept_review": "string",
            "study_tip": "string"
        }
    ]
}
`)

	return b.String()
}

func BuildRecommendationsPrompt(perf *models.Performance, currentTopic string, analysis map[string]any) string {
	var b strings.Builder

	b.WriteString("You are a learning advisor. Based on the student's performance and the video they just studied, recommend what to learn next.\n\n")

	if perf != nil {
		b.WriteString(fmt.Sprintf("Performance: average score %.1f over %d quizzes, recent scores %v.\n", perf.AverageScore, perf.TotalQuizzes, perf.RecentScores))
	}
	if currentTopic != "" {
		b.WriteString(fmt.Sprintf("Current topic: %s\n", currentTopic))
	}
	b.WriteString(fmt.Sprintf("Subject: %s\n", stringField(analysis, "subject", "Not specified")))
	b.WriteString(fmt.Sprintf("Key concepts covered: %s\n", strings.Join(listField(analysis, "key_concepts"), ", ")))
	b.WriteString(fmt.Sprintf("Prerequisites: %s\n\n", strings.Join(listField(analysis, "prerequisites"), ", ")))

	b.WriteString(`Return the response as a valid JSON object with this exact structure:
{
    "recommendations": [
        {
            "title": "string",
            "reason": "string",
            "difficulty": "beginner|intermediate|advanced",
            "focus_concepts": ["concept1", "concept2"]
        }
    ]
}
`)

	return b.String()
}

func stringField(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func listField(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
