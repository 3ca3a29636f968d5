// Package intel is the offer analysis assistant. Today it is a mock: the
// analyzer accepts a contract PDF, pretends to read it for a configurable
// delay, and produces a canned summary and canned chat answers. The API is
// shaped so a real model can slot in behind Analyzer later.
package intel

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"tableflip.dev/crest/pkg/record"
)

// Summary is the structured read of an uploaded offer.
type Summary struct {
	Property             string           `json:"property"`
	PurchasePrice        string           `json:"purchasePrice"`
	EarnestMoney         string           `json:"earnestMoney"`
	ClosingDate          string           `json:"closingDate"`
	Financing            string           `json:"financing"`
	InspectionPeriod     string           `json:"inspectionPeriod"`
	AppraisalContingency string           `json:"appraisalContingency"`
	SellerRentBack       string           `json:"sellerRentBack"`
	Source               string           `json:"source"`
	AnalyzedAt           record.Timestamp `json:"analyzedAt"`
}

// Role identifies who said a chat line.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat line.
type Message struct {
	ID      string           `json:"id"`
	Role    Role             `json:"role"`
	Content string           `json:"content"`
	Sent    record.Timestamp `json:"sent"`
}

// Analyzer produces summaries and answers. Delay is how long Analyze
// pretends to work; zero means answer immediately.
type Analyzer struct {
	Delay time.Duration
}

// SuggestedQuestions returns prompts worth asking about a fresh summary.
func (a *Analyzer) SuggestedQuestions() []string {
	return []string{
		"What are the key deadlines I need to track?",
		"Explain the seller rent-back terms",
		"What happens if the buyer's financing falls through?",
		"Is the earnest money amount typical?",
		"What are the contingencies in this offer?",
	}
}

// Analyze reads an offer document. Only PDFs are accepted. The call blocks
// for the configured delay and honors cancellation; a cancelled analysis
// returns ctx.Err and no summary.
func (a *Analyzer) Analyze(ctx context.Context, filename string) (Summary, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return Summary{}, fmt.Errorf("intel: %q is not a PDF", filename)
	}

	if a.Delay > 0 {
		timer := time.NewTimer(a.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Summary{}, ctx.Err()
		case <-timer.C:
		}
	}

	return Summary{
		Property:             "123 Main St, Salt Lake City, UT 84101",
		PurchasePrice:        "$475,000",
		EarnestMoney:         "$5,000 (1.05%)",
		ClosingDate:          "March 15, 2025",
		Financing:            "Conventional loan, 20% down",
		InspectionPeriod:     "10 days",
		AppraisalContingency: "Yes, $475,000",
		SellerRentBack:       "30 days at $150/day",
		Source:               filepath.Base(filename),
		AnalyzedAt:           record.Now(),
	}, nil
}

// Ask answers a question about the analyzed offer. The mock returns the
// same earnest money walkthrough for every non-blank question.
func (a *Analyzer) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("intel: question required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "The $5,000 earnest money represents 1.05% of the purchase price. " +
		"In Utah, typical earnest money ranges from 1-2%, so this is on the " +
		"lower end but still within normal range. For a competitive market, " +
		"you might consider a higher amount to strengthen your offer...", nil
}

// Conversation is the chat transcript attached to one analysis.
type Conversation struct {
	messages []Message
}

// Messages returns the transcript oldest first.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Append records a line and returns it with an id and timestamp filled in.
func (c *Conversation) Append(role Role, content string) Message {
	m := Message{
		ID:      record.NewID(),
		Role:    role,
		Content: content,
		Sent:    record.Now(),
	}
	c.messages = append(c.messages, m)
	return m
}

// Exchange runs one question through the analyzer and records both sides.
func (c *Conversation) Exchange(ctx context.Context, a *Analyzer, question string) (Message, error) {
	question = strings.TrimSpace(question)
	answer, err := a.Ask(ctx, question)
	if err != nil {
		return Message{}, err
	}
	c.Append(RoleUser, question)
	return c.Append(RoleAssistant, answer), nil
}
