package monitor

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/sabir1919/Hednet-node/internal/engine"
)

// pointsScript scans every element in document order and returns the
// leading digit run of the first one whose text matches the points
// pattern, or null. The scan is content-based on purpose: the dashboard's
// markup is not ours and selector-based extraction breaks whenever it
// changes.
const pointsScript = `() => {
	const els = Array.from(document.querySelectorAll('*'));
	for (const el of els) {
		if (/\d+\s*points?/i.test(el.innerText)) {
			return el.innerText.match(/\d+/)[0];
		}
	}
	return null;
}`

var pointsPattern = regexp.MustCompile(`(?i)(\d+)\s*points?`)

// ParsePoints extracts the metric from raw text: the digit run of the
// first "<digits> point(s)" match, case-insensitive. Returns false when
// no such text exists.
func ParsePoints(text string) (int, bool) {
	m := pointsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractPoints evaluates the points scan against a rendered page and
// returns the metric. Never fails: an absent page, an evaluation error,
// a timeout, or a non-numeric result all report not-found.
func ExtractPoints(ctx context.Context, page engine.Page, timeout time.Duration) (int, bool) {
	if page == nil {
		return 0, false
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := page.Evaluate(ctx, pointsScript)
	if err != nil {
		return 0, false
	}
	return convertPoints(result)
}

// convertPoints coerces an evaluation result into the metric. The script
// returns a digit string, but engines may hand back numbers directly, and
// a raw text result still goes through the pattern.
func convertPoints(result any) (int, bool) {
	switch v := result.(type) {
	case nil:
		return 0, false
	case int:
		return v, true
	case float64:
		return int(v), true
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
		return ParsePoints(v)
	default:
		return 0, false
	}
}
