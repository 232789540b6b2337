// Package coach provides the AI advice collaborator. It sits outside the
// deterministic pipeline: calls carry a timeout and every failure degrades
// to a canned response rather than an error.
package coach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flexicoach/fincoach/internal/logging"
	"flexicoach/fincoach/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// fallbackAdvice is returned whenever the model cannot be reached.
const fallbackAdvice = "I'm having trouble connecting to the AI coach right now. " +
	"Here's a basic rule of thumb: Try to keep your 'wants' spending below 30% of your income, " +
	"prioritize building an emergency fund covering at least 3 months of expenses, " +
	"and review your spending weekly to stay on track. " +
	"For irregular gig income, try to save during high-earning periods to buffer low-earning months."

// Advisor answers a financial question against a report snapshot.
type Advisor interface {
	Advise(ctx context.Context, question string, snapshot models.Report) (string, error)
}

// GeminiAdvisor implements Advisor against the Gemini API.
type GeminiAdvisor struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  logging.Logger
}

// NewGeminiAdvisor creates an advisor using the given API key and model name.
func NewGeminiAdvisor(ctx context.Context, apiKey, modelName string, timeout time.Duration, logger logging.Logger) (*GeminiAdvisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAdvisor{
		client:  client,
		model:   client.GenerativeModel(modelName),
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Close releases the underlying client.
func (a *GeminiAdvisor) Close() error {
	return a.client.Close()
}

// Advise asks the model for coaching advice. The call is bounded by the
// advisor's timeout.
func (a *GeminiAdvisor) Advise(ctx context.Context, question string, snapshot models.Report) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := systemPrompt + "\n\n" + buildUserPrompt(question, snapshot)
	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	answer := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	a.logger.Debug("Coach response received",
		logging.Field{Key: "length", Value: len(answer)})
	return answer, nil
}

// AdviseWithFallback wraps an Advisor call so the caller always gets usable
// text. A nil advisor or any error yields the canned fallback.
func AdviseWithFallback(ctx context.Context, advisor Advisor, question string, snapshot models.Report, logger logging.Logger) string {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if advisor == nil {
		logger.Debug("No advisor configured, using fallback advice")
		return fallbackAdvice
	}
	answer, err := advisor.Advise(ctx, question, snapshot)
	if err != nil {
		logger.WithError(err).Warn("Coach call failed, using fallback advice")
		return fallbackAdvice
	}
	if answer == "" {
		return fallbackAdvice
	}
	return answer
}
