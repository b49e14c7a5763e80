package prioritization

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/opscart/cicd-perf-suite/pkg/models"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

// ModelType is the label reported for the prioritization model
const ModelType = "Random Forest"

// Features are the commit attributes the model weighs
var Features = []string{
	"changed_files",
	"additions",
	"deletions",
	"author_experience",
	"is_bug_fix",
	"is_weekend",
	"commit_hour",
	"test_complexity",
}

// DisplayName turns a feature key into a label: "is_bug_fix" -> "Is Bug Fix"
func DisplayName(feature string) string {
	// Casers keep state, so each call gets its own
	return cases.Title(language.English).String(strings.ReplaceAll(feature, "_", " "))
}

// Summary fabricates feature importances, sorted most important first, with
// model statistics.
func Summary(src *synth.Source) models.PrioritizationData {
	importance := make([]models.FeatureImportance, 0, len(Features))
	for _, feature := range Features {
		importance = append(importance, models.FeatureImportance{
			Feature:    DisplayName(feature),
			Importance: src.UniformRound(0.05, 0.3, 3),
		})
	}

	sort.SliceStable(importance, func(i, j int) bool {
		return importance[i].Importance > importance[j].Importance
	})

	return models.PrioritizationData{
		APFDImprovement:      src.UniformRound(35, 48, 1),
		FeatureImportance:    importance,
		TotalCommitsAnalyzed: src.IntRange(100, 500),
		ModelType:            ModelType,
		TrainingSize:         src.IntRange(1000, 5000),
	}
}
