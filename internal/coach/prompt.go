package coach

import (
	"fmt"
	"strings"

	"flexicoach/fincoach/internal/models"
)

// systemPrompt defines the coach persona for the model.
const systemPrompt = `You are FlexiCoach, a friendly and practical AI money coach designed for young professionals and gig workers.

Your role:
- Help users understand their spending patterns and make better financial decisions
- Provide clear, actionable advice without using complex financial jargon
- Be empathetic and non-judgmental - everyone's financial journey is different
- Focus on small, achievable steps rather than overwhelming changes
- Encourage building emergency funds and financial buffers
- Understand the unique challenges of gig work (irregular income, no benefits, etc.)

Your tone:
- Warm, supportive, and conversational
- Use simple language that anyone can understand
- Be specific and concrete rather than vague
- Acknowledge both wins and areas for improvement
- Keep responses concise but helpful (3-5 short paragraphs max)

When giving advice:
- Reference the user's actual financial numbers when relevant
- Explain the "why" behind recommendations simply
- Offer 2-4 concrete action steps they can take this week
- Prioritize needs over wants, but don't shame discretionary spending
- Always suggest building a 3-6 month emergency fund as a foundation

Remember: Your goal is to empower users to take control of their money, not to lecture them.`

// maxPromptFlags limits how many budget flags the prompt carries.
const maxPromptFlags = 3

// buildUserPrompt renders the financial snapshot and the user's question
// into one prompt block.
func buildUserPrompt(question string, snapshot models.Report) string {
	var b strings.Builder
	b.WriteString("Here's my current financial snapshot:\n\n")
	fmt.Fprintf(&b, "Income: %.2f\n", snapshot.Summary.TotalIncome)
	fmt.Fprintf(&b, "Total Expenses: %.2f\n", snapshot.Summary.TotalExpenses)
	fmt.Fprintf(&b, "  - Needs: %.2f\n", snapshot.Summary.TotalNeeds)
	fmt.Fprintf(&b, "  - Wants: %.2f\n", snapshot.Summary.TotalWants)
	fmt.Fprintf(&b, "Savings Potential: %.2f\n", snapshot.Summary.SavingsPotential)
	fmt.Fprintf(&b, "Suggested Weekly Budget: %.2f\n", snapshot.Summary.SuggestedWeeklyBudget)

	if len(snapshot.Flags) > 0 {
		b.WriteString("\nKey Insights:\n")
		flags := snapshot.Flags
		if len(flags) > maxPromptFlags {
			flags = flags[:maxPromptFlags]
		}
		for _, flag := range flags {
			fmt.Fprintf(&b, "  - %s\n", flag)
		}
	}

	fmt.Fprintf(&b, "\nMy Question: %s", question)
	return b.String()
}
