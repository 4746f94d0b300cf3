package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// MaxRecommendedPaths caps the number of learning paths in a Result.
const MaxRecommendedPaths = 3

// weakSkillThreshold is the per-skill percentage below which a skill
// drives path recommendations.
const weakSkillThreshold = 70.0

// Result is the display-ready outcome of a completed assessment. It is
// produced once per successful submission and immutable thereafter.
type Result struct {
	Score            int
	CorrectAnswers   int
	TotalQuestions   int
	SkillBreakdown   map[string]float64
	RecommendedPaths []string
}

// Project transforms a raw score report into a Result. It is a pure
// function: skill names are normalized, the score is clamped to 0-100,
// and recommended paths are drawn from pathsBySkill for the weakest
// skills first, deduplicated, capped at MaxRecommendedPaths. The mapping
// table is data supplied by the caller, not owned here.
func Project(report *ScoreReport, pathsBySkill map[string][]string) (*Result, error) {
	if report == nil {
		return nil, fmt.Errorf("nil score report")
	}
	if report.TotalQuestions < 0 || report.CorrectAnswers < 0 {
		return nil, fmt.Errorf("negative counts in score report")
	}

	score := report.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	breakdown := make(map[string]float64, len(report.SkillBreakdown))
	for skill, pct := range report.SkillBreakdown {
		breakdown[NormalizeSkill(skill)] = pct
	}

	return &Result{
		Score:            score,
		CorrectAnswers:   report.CorrectAnswers,
		TotalQuestions:   report.TotalQuestions,
		SkillBreakdown:   breakdown,
		RecommendedPaths: recommendPaths(breakdown, pathsBySkill),
	}, nil
}

// NormalizeSkill canonicalizes a skill tag: trimmed, lower-cased, spaces
// collapsed to single dashes.
func NormalizeSkill(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	return strings.Join(strings.Fields(s), "-")
}

// recommendPaths picks paths for skills scoring under the threshold,
// weakest skill first. Skills at or above the threshold contribute
// nothing; with no weak skills the result has no recommendations.
func recommendPaths(breakdown map[string]float64, pathsBySkill map[string][]string) []string {
	type weak struct {
		skill string
		pct   float64
	}
	var weaks []weak
	for skill, pct := range breakdown {
		if pct < weakSkillThreshold {
			weaks = append(weaks, weak{skill: skill, pct: pct})
		}
	}
	sort.Slice(weaks, func(i, j int) bool {
		if weaks[i].pct != weaks[j].pct {
			return weaks[i].pct < weaks[j].pct
		}
		return weaks[i].skill < weaks[j].skill
	})

	seen := make(map[string]bool)
	var paths []string
	for _, w := range weaks {
		for _, p := range pathsBySkill[w.skill] {
			if seen[p] {
				continue
			}
			seen[p] = true
			paths = append(paths, p)
			if len(paths) == MaxRecommendedPaths {
				return paths
			}
		}
	}
	return paths
}
