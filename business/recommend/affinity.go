package recommend

import (
	"context"

	"plateRank/domain"
)

const (
	ruleKindCategory = "category"
	ruleKindTag      = "tag"

	// affinityLift scales the best matching rule's confidence into the score.
	affinityLift = 0.5
)

// RuleRepository supplies the active association rules. In production these
// are mined offline from order logs; the engine only consumes them.
type RuleRepository interface {
	ActiveRules(ctx context.Context) ([]domain.AssociationRule, error)
}

// DefaultRules is the seeded fallback table used when the rule store is
// empty. Confidences are hand-tuned per the platform's order history.
func DefaultRules() []domain.AssociationRule {
	return []domain.AssociationRule{
		{AntecedentKind: ruleKindCategory, Antecedent: "main_course", ConsequentKind: ruleKindCategory, Consequent: "sides", Confidence: 0.6},
		{AntecedentKind: ruleKindCategory, Antecedent: "main_course", ConsequentKind: ruleKindCategory, Consequent: "beverage", Confidence: 0.5},
		{AntecedentKind: ruleKindCategory, Antecedent: "pizza", ConsequentKind: ruleKindCategory, Consequent: "beverage", Confidence: 0.55},
		{AntecedentKind: ruleKindCategory, Antecedent: "breakfast", ConsequentKind: ruleKindCategory, Consequent: "coffee", Confidence: 0.65},
		{AntecedentKind: ruleKindCategory, Antecedent: "dessert", ConsequentKind: ruleKindCategory, Consequent: "coffee", Confidence: 0.45},
		{AntecedentKind: ruleKindTag, Antecedent: "spicy", ConsequentKind: ruleKindTag, Consequent: "cooling", Confidence: 0.65},
		{AntecedentKind: ruleKindTag, Antecedent: "salty", ConsequentKind: ruleKindTag, Consequent: "sweet", Confidence: 0.4},
	}
}

// affinityScore applies association rules from cart items to the candidate.
// Empty cart returns the neutral 0.5 (nothing to infer from). Only rules at
// or above the profile's confidence threshold contribute; the strongest
// matching rule wins.
func affinityScore(
	item domain.CatalogItem,
	cart []uint64,
	rules []domain.AssociationRule,
	minConfidence float64,
	categories map[uint64]string,
	tags map[uint64][]string,
) float64 {
	if len(cart) == 0 {
		return neutralScore
	}

	best := 0.0
	for _, rule := range rules {
		if rule.Confidence < minConfidence {
			continue
		}
		if !ruleMatchesCandidate(rule, item) {
			continue
		}
		for _, cartID := range cart {
			if ruleMatchesCart(rule, cartID, categories, tags) && rule.Confidence > best {
				best = rule.Confidence
				break
			}
		}
	}

	return clip01(neutralScore + best*affinityLift)
}

func ruleMatchesCandidate(rule domain.AssociationRule, item domain.CatalogItem) bool {
	switch rule.ConsequentKind {
	case ruleKindCategory:
		return item.Category == rule.Consequent
	case ruleKindTag:
		return item.HasTag(rule.Consequent)
	}
	return false
}

func ruleMatchesCart(rule domain.AssociationRule, cartID uint64, categories map[uint64]string, tags map[uint64][]string) bool {
	switch rule.AntecedentKind {
	case ruleKindCategory:
		return categories[cartID] == rule.Antecedent
	case ruleKindTag:
		for _, t := range tags[cartID] {
			if t == rule.Antecedent {
				return true
			}
		}
	}
	return false
}
