package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	portssvc "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/utils"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/pkg/config"
	"google.golang.org/genai"
)

// adviceService implements AdviceSvcFacade by summarizing the user's
// derived P&L and budget position into a prompt for Gemini. The model
// only ever sees aggregates, never raw transactions.
type adviceService struct {
	BaseService
	cfg          *config.Config
	reportingSvc portssvc.ReportingSvcFacade
	budgetSvc    portssvc.BudgetSvcFacade
}

// NewAdviceService creates a new advice service.
func NewAdviceService(cfg *config.Config, reportingSvc portssvc.ReportingSvcFacade, budgetSvc portssvc.BudgetSvcFacade) portssvc.AdviceSvcFacade {
	return &adviceService{
		cfg:          cfg,
		reportingSvc: reportingSvc,
		budgetSvc:    budgetSvc,
	}
}

var _ portssvc.AdviceSvcFacade = (*adviceService)(nil)

func (s *adviceService) GenerateAdvice(ctx context.Context, userID string, from, to time.Time) (string, error) {
	prompt, err := s.buildPrompt(ctx, userID, from, to)
	if err != nil {
		return "", err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      s.cfg.GeminiAPIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create genai client")
		return "", fmt.Errorf("failed to create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, s.cfg.GeminiModelName, contents, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate advice", slog.String("user_id", userID))
		return "", fmt.Errorf("failed to generate advice: %w", err)
	}

	advice := strings.TrimSpace(resp.Text())
	if advice == "" {
		return "", fmt.Errorf("empty response from model")
	}

	s.LogInfo(ctx, "Advice generated", slog.String("user_id", userID), slog.Int("length", len(advice)))
	return advice, nil
}

// buildPrompt assembles the aggregate financial picture into instructions
// for the model.
func (s *adviceService) buildPrompt(ctx context.Context, userID string, from, to time.Time) (string, error) {
	report, err := s.reportingSvc.ProfitAndLoss(ctx, userID, from, to)
	if err != nil {
		return "", err
	}

	currency := s.cfg.DisplayCurrency

	var b strings.Builder
	b.WriteString("You are a personal finance advisor.\n\n")
	fmt.Fprintf(&b, "The user's profit and loss for %s to %s:\n", from.Format(dateLayout), to.Format(dateLayout))
	for _, item := range report.Items {
		fmt.Fprintf(&b, "- %s (%s): %s\n", item.Account, item.Category, utils.FormatAmount(item.Amount, currency))
	}
	fmt.Fprintf(&b, "Net income: %s\n\n", utils.FormatAmount(report.NetIncome, currency))

	usages, err := s.budgetSvc.ListBudgetUsage(ctx, userID, to.Format("2006-01"))
	if err == nil && len(usages) > 0 {
		b.WriteString("Monthly budgets:\n")
		for _, usage := range usages {
			fmt.Fprintf(&b, "- %s: budget %s, spent %s, remaining %s\n",
				usage.Budget.Account,
				utils.FormatAmount(usage.Budget.Amount, currency),
				utils.FormatAmount(usage.Spent, currency),
				utils.FormatAmount(usage.Remaining, currency))
		}
		b.WriteString("\n")
	}

	b.WriteString("Give concise, practical budgeting and saving advice based on the numbers above.\n")
	b.WriteString("Use plain prose, at most three short paragraphs.\n")
	b.WriteString("Do NOT use Markdown formatting.\n")

	return b.String(), nil
}
