package classify

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	decisionTagRegex = regexp.MustCompile(`(?s)<decision>(.*?)</decision>`)
	codeBlockRegex   = regexp.MustCompile("(?s)```(?:json)?\n?(.*?)```")
)

// ParseVerdict extracts the routing verdict from a classifier reply.
// The JSON object may sit inside <decision> tags, inside a fenced code
// block, or bare in the surrounding prose; the first form found wins.
// Returns ErrNoVerdict when no JSON object can be recovered.
func ParseVerdict(reply string) (Verdict, error) {
	region := reply
	if m := decisionTagRegex.FindStringSubmatch(reply); m != nil {
		region = m[1]
	} else if m := codeBlockRegex.FindStringSubmatch(reply); m != nil {
		region = m[1]
	}

	start := strings.Index(region, "{")
	end := strings.LastIndex(region, "}")
	if start < 0 || end <= start {
		return Verdict{}, ErrNoVerdict
	}

	var v Verdict
	if err := json.Unmarshal([]byte(region[start:end+1]), &v); err != nil {
		return Verdict{}, fmt.Errorf("parse verdict: %w", err)
	}
	if v.Model == "" {
		return Verdict{}, fmt.Errorf("parse verdict: %w: missing model", ErrNoVerdict)
	}

	// Clamp self-reported confidence into [0,1].
	if v.Confidence < 0 {
		v.Confidence = 0
	}
	if v.Confidence > 1 {
		v.Confidence = 1
	}
	return v, nil
}
