package oracle

import (
	"encoding/json"
	"regexp"

	"github.com/jmertens/haulsched/core/model"
)

// The oracle is asked for bare JSON but routinely wraps it in prose or
// markdown fences. recommendationBlock grabs the first JSON-shaped
// substring whose top level opens with the "truck" key; everything outside
// it is ignored.
var recommendationBlock = regexp.MustCompile(`(?s)\{\s*"truck".*\}`)

// ExtractRecommendation pulls the recommendation out of a raw oracle reply.
// It reports false when the reply holds no JSON-shaped block or the block
// does not decode. On success, SelectedJobs is nil if the decoded object had
// no recommended_jobs key at all; callers that care about the distinction
// (the planner does) must check before use.
func ExtractRecommendation(text string) (model.Recommendation, bool) {
	block := recommendationBlock.FindString(text)
	if block == "" {
		return model.Recommendation{}, false
	}
	var rec model.Recommendation
	if err := json.Unmarshal([]byte(block), &rec); err != nil {
		return model.Recommendation{}, false
	}
	return rec, true
}
