package extract

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoPurchaseRequest indicates the email body carries no recognizable
// purchase request.
var ErrNoPurchaseRequest = errors.New("no purchase request found in email")

var (
	budgetPattern   = regexp.MustCompile(`(?i)(?:budget(?:\s+is)?|bütçe(?:\s+sadece)?)[:\s]+([0-9]+(?:[.,][0-9]+)?)`)
	quantityPattern = regexp.MustCompile(`([0-9]+)\s+(?:adet\s+)?([\p{L}][\p{L}0-9 -]*)`)
)

// itemStopwords end the item phrase that follows the quantity. Covers the
// English mock inbox and the Turkish batch fixtures.
var itemStopwords = map[string]struct{}{
	"for": {}, "and": {}, "the": {}, "needed": {},
	"satın":      {},
	"alınacak":   {},
	"alınmasını": {},
	"gerekli":    {},
	"istiyoruz":  {},
	"almak":      {},
}

// RuleExtractor parses purchase requests with plain pattern matching. It
// stands in for the model-backed extractor so the demo pipeline runs without
// an inference backend.
type RuleExtractor struct{}

func NewRuleExtractor() *RuleExtractor {
	return &RuleExtractor{}
}

func (e *RuleExtractor) Extract(_ context.Context, emailBody string) (map[string]any, error) {
	budgetMatch := budgetPattern.FindStringSubmatchIndex(emailBody)
	if budgetMatch == nil {
		return nil, ErrNoPurchaseRequest
	}

	budget, err := strconv.ParseFloat(strings.ReplaceAll(emailBody[budgetMatch[2]:budgetMatch[3]], ",", "."), 64)
	if err != nil {
		return nil, ErrNoPurchaseRequest
	}

	quantity, item := findQuantityAndItem(emailBody, budgetMatch[2])
	if quantity == 0 || item == "" {
		return nil, ErrNoPurchaseRequest
	}

	return map[string]any{
		"item":     item,
		"quantity": quantity,
		"budget":   budget,
	}, nil
}

// findQuantityAndItem returns the first quantity-plus-item phrase in the
// body, skipping the number that stated the budget.
func findQuantityAndItem(body string, budgetStart int) (int, string) {
	for _, match := range quantityPattern.FindAllStringSubmatchIndex(body, -1) {
		if match[2] == budgetStart {
			continue
		}

		quantity, err := strconv.Atoi(body[match[2]:match[3]])
		if err != nil || quantity == 0 {
			continue
		}

		item := itemPhrase(body[match[4]:match[5]])
		if item == "" {
			continue
		}

		return quantity, item
	}

	return 0, ""
}

func itemPhrase(raw string) string {
	var words []string

	for _, word := range strings.Fields(raw) {
		if _, stop := itemStopwords[strings.ToLower(word)]; stop {
			break
		}

		words = append(words, word)
		if len(words) == 3 {
			break
		}
	}

	return strings.Join(words, " ")
}
