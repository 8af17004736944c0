// Package usecase implements the business logic for the summary feature.
package usecase

import (
	"context"
	"fmt"
	"strings"

	issueentity "dashboard_backend/internal/feature/issue/domain/entity"
	"dashboard_backend/internal/feature/summary/domain/entity"
)

const (
	// MaxTimelineEntries bounds the prompt size; the newest issues win.
	MaxTimelineEntries = 30

	promptHeader = "다음은 %s 종목의 최근 이슈 타임라인입니다. " +
		"3문장 이내의 한국어 요약을 작성하고, 마지막 줄에 \"키워드: \"로 시작하는 핵심 키워드 목록(쉼표 구분)을 덧붙여 주세요.\n\n"

	keywordPrefix = "키워드:"
)

// TimelineGenerator produces a free-text completion for a prompt.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TimelineGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// IssueTimeline loads a stock's issues, newest first.
type IssueTimeline interface {
	ListByStock(ctx context.Context, stockID uint) ([]issueentity.Issue, error)
}

type summaryUsecase struct {
	generator TimelineGenerator
	issues    IssueTimeline
}

// NewSummaryUsecase creates a new summaryUsecase instance.
func NewSummaryUsecase(generator TimelineGenerator, issues IssueTimeline) *summaryUsecase {
	return &summaryUsecase{generator: generator, issues: issues}
}

// Summarize builds a prompt from the stock's issue timeline and returns the
// generated summary plus extracted keywords. Generator errors surface to the
// caller untouched; there is no retry or fallback.
func (u *summaryUsecase) Summarize(ctx context.Context, stockID uint, stockName string) (*entity.StockSummary, error) {
	if u.generator == nil {
		return nil, fmt.Errorf("summary generator is not configured")
	}
	if strings.TrimSpace(stockName) == "" {
		return nil, fmt.Errorf("stock name is required")
	}
	issues, err := u.issues.ListByStock(ctx, stockID)
	if err != nil {
		return nil, err
	}
	if len(issues) == 0 {
		return nil, fmt.Errorf("no issues to summarize for %q", stockName)
	}

	digests := make([]entity.IssueDigest, 0, len(issues))
	for _, issue := range issues {
		digests = append(digests, entity.IssueDigest{Date: issue.Date, Title: issue.Title, Content: issue.Content})
		if len(digests) == MaxTimelineEntries {
			break
		}
	}

	text, err := u.generator.Generate(ctx, BuildPrompt(stockName, digests))
	if err != nil {
		return nil, err
	}

	summary, keywords := ParseCompletion(text)
	return &entity.StockSummary{StockName: stockName, Summary: summary, Keywords: keywords}, nil
}

// BuildPrompt renders the timeline into the generator prompt.
func BuildPrompt(stockName string, digests []entity.IssueDigest) string {
	var b strings.Builder
	fmt.Fprintf(&b, promptHeader, stockName)
	for _, d := range digests {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", d.Date, d.Title, d.Content)
	}
	return b.String()
}

// ParseCompletion splits a completion into summary text and keyword list.
// The keyword line is the last line starting with the known prefix; a
// completion without one yields the whole text and an empty list.
func ParseCompletion(text string) (summary string, keywords []string) {
	keywords = []string{}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	keywordLine := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), keywordPrefix) {
			keywordLine = i
			break
		}
	}
	if keywordLine == -1 {
		return strings.TrimSpace(text), keywords
	}

	raw := strings.TrimPrefix(strings.TrimSpace(lines[keywordLine]), keywordPrefix)
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	summary = strings.TrimSpace(strings.Join(lines[:keywordLine], "\n"))
	return summary, keywords
}
