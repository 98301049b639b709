package aiquiz

import "fmt"

const (
	DefaultCount = 3
	MaxCount     = 10
)

const systemPrompt = `
You write multiple-choice practice questions for an introductory statistics textbook.

Questions must be clear, fair and genuinely educational.

General rules:
1. Only write questions about statistics and data analysis topics (variables, displays,
   center and spread, the normal model, correlation, regression, R basics, model building).
2. Every question has exactly one correct answer.
3. Difficulty is one of easy, medium or hard.
4. Every question has:
   - "question": the prompt shown to the student
   - "choices": 4 plausible options, one of them correct, without letter prefixes
   - "answer": the exact text of the correct choice
   - "explanation": a short, clear explanation of why the answer is correct
   - "hint": a nudge that does not give the answer away

Expected JSON format:

[
  {
    "topic": "<topic>",
    "difficulty": "<easy | medium | hard>",
    "question": "<question text>",
    "choices": ["...", "...", "...", "..."],
    "answer": "<exact text of the correct choice>",
    "explanation": "<why this choice is correct>",
    "hint": "<a nudge>"
  }
]

Quality guidelines:
- Do not make the correct answer obvious. Keep choices similar in length and structure.
- Use plausible distractors that reflect common student misconceptions.
- Easy: definitions and direct recall. Medium: applying or interpreting a concept.
  Hard: analysis, multi-step reasoning or calculations.
- Never reveal the answer in the question text.
- Always return pure, valid JSON with no text outside the JSON.
`

// ClampCount bounds the number of questions to request.
func ClampCount(n int) int {
	if n <= 0 {
		return DefaultCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

func BuildUserPrompt(req QuestionRequest) string {
	context := ""
	if req.Context != "" {
		context = fmt.Sprintf("Use the following context to frame the questions: %s. ", req.Context)
	}

	return fmt.Sprintf(
		"Write %d multiple-choice questions about %q with %q difficulty. %s"+
			"Follow the format from the system prompt, put the reasoning only in 'explanation', "+
			"and make every distractor plausible.",
		ClampCount(req.Count), req.Topic, req.Difficulty, context,
	)
}
