package search

import (
	"context"
	"regexp"
	"sort"
	"strings"

	. "github.com/remote-scripting-protocol/go-rsp/src/rpc"

	"github.com/remote-scripting-protocol/go-rsp/src/registry"
)

// MethodSearchStrategy ranks rpc methods by keyword relevance against method
// names and descriptions. It only ever sees the supported view.
type MethodSearchStrategy struct {
	registry          *registry.Registry
	descriptionWeight float64
	wordRegex         *regexp.Regexp
	camelRegex        *regexp.Regexp
}

// NewMethodSearchStrategy creates a strategy over the given registry with the
// given description weight.
func NewMethodSearchStrategy(reg *registry.Registry, descriptionWeight float64) *MethodSearchStrategy {
	return &MethodSearchStrategy{
		registry:          reg,
		descriptionWeight: descriptionWeight,
		wordRegex:         regexp.MustCompile(`\w+`),
		camelRegex:        regexp.MustCompile(`[A-Z]?[a-z0-9]+`),
	}
}

// SearchMethods returns supported methods ordered by relevance to the query.
func (s *MethodSearchStrategy) SearchMethods(ctx context.Context, query string, limit int) ([]MethodDescriptor, error) {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	words := s.wordRegex.FindAllString(queryLower, -1)
	queryWordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		queryWordSet[w] = struct{}{}
	}

	type scoredMethod struct {
		method MethodDescriptor
		score  float64
	}
	var scored []scoredMethod

	for _, d := range s.registry.CollectSupportedMethodDescriptors() {
		var score float64

		nameLower := strings.ToLower(d.Name)
		if strings.Contains(queryLower, nameLower) {
			score += 1.0
		}
		for _, w := range s.camelRegex.FindAllString(d.Name, -1) {
			if _, ok := queryWordSet[strings.ToLower(w)]; ok {
				score += s.descriptionWeight
			}
		}

		if d.Description != "" {
			descWords := s.wordRegex.FindAllString(strings.ToLower(d.Description), -1)
			for _, w := range descWords {
				if len(w) > 2 {
					if _, ok := queryWordSet[w]; ok {
						score += s.descriptionWeight
					}
				}
			}
		}

		scored = append(scored, scoredMethod{method: d, score: score})
	}

	// Stable keeps index order among equal scores
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var result []MethodDescriptor
	for _, sm := range scored {
		if sm.score > 0 {
			result = append(result, sm.method)
			if len(result) >= limit {
				break
			}
		}
	}

	// If no matches, fall back to the top N for discoverability
	if len(result) == 0 && len(scored) > 0 {
		for i, sm := range scored {
			if i >= limit {
				break
			}
			result = append(result, sm.method)
		}
	}

	return result, nil
}
