// Package recurrence turns recurrence rule text into concrete occurrences.
//
// Nothing here returns an error to the caller: a missing rule, a malformed
// rule and an exhausted rule all mean "nothing scheduled" and come back as a
// false flag or an empty slice.
package recurrence

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"taskplanner/internal/core/ports"
)

const ruleMarker = "RRULE:"

// Rule is a parsed recurrence rule. Rules without an explicit DTSTART are
// anchored at the instant they are evaluated from.
type Rule struct {
	text   string
	option rrule.ROption
}

// String returns the normalized rule text, always carrying the RRULE: marker.
func (r Rule) String() string {
	return r.text
}

// Parse reads rule text with or without the RRULE: marker. ok is false for
// empty text and for any grammar rrule-go rejects.
func Parse(text string) (rule Rule, ok bool) {
	normalized := normalize(text)
	if normalized == "" {
		return Rule{}, false
	}

	defer func() {
		if r := recover(); r != nil {
			zap.L().Debug("recurrence rule parser panicked", zap.String("rule", text), zap.Any("panic", r))
			rule, ok = Rule{}, false
		}
	}()

	option, err := rrule.StrToROption(normalized[len(ruleMarker):])
	if err != nil {
		zap.L().Debug("invalid recurrence rule", zap.String("rule", text), zap.Error(err))
		return Rule{}, false
	}
	// Validate the full option set once so later anchoring cannot fail on grammar.
	if _, err := rrule.NewRRule(withStart(*option, time.Unix(0, 0).UTC())); err != nil {
		zap.L().Debug("invalid recurrence rule", zap.String("rule", text), zap.Error(err))
		return Rule{}, false
	}

	return Rule{text: normalized, option: *option}, true
}

// normalize upper-cases the rule so names and values match case-insensitively.
func normalize(text string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(text))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, ruleMarker) {
		trimmed = strings.TrimSpace(trimmed[len(ruleMarker):])
		if trimmed == "" {
			return ""
		}
	}
	return ruleMarker + trimmed
}

func withStart(option rrule.ROption, anchor time.Time) rrule.ROption {
	if option.Dtstart.IsZero() {
		option.Dtstart = anchor
	}
	return option
}

func (r Rule) anchored(anchor time.Time) (*rrule.RRule, error) {
	return rrule.NewRRule(withStart(r.option, anchor))
}

// After returns the earliest occurrence strictly after t. ok is false when the
// rule has no further occurrences.
func (r Rule) After(t time.Time) (next time.Time, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			zap.L().Debug("recurrence iteration panicked", zap.String("rule", r.text), zap.Any("panic", p))
			next, ok = time.Time{}, false
		}
	}()

	rr, err := r.anchored(t)
	if err != nil {
		return time.Time{}, false
	}
	next = rr.After(t, false)
	if next.IsZero() {
		return time.Time{}, false
	}
	return next, true
}

// Occurrences walks the rule lazily from start and collects occurrences that
// are not before start, stopping at the first one after end (when end is
// given) or once limit occurrences are collected.
func (r Rule) Occurrences(start time.Time, end *time.Time, limit int) (out []time.Time) {
	if limit <= 0 {
		return []time.Time{}
	}

	defer func() {
		if p := recover(); p != nil {
			zap.L().Debug("recurrence iteration panicked", zap.String("rule", r.text), zap.Any("panic", p))
			out = []time.Time{}
		}
	}()

	rr, err := r.anchored(start)
	if err != nil {
		return []time.Time{}
	}

	next := rr.Iterator()
	out = make([]time.Time, 0, min(limit, 64))
	for len(out) < limit {
		occurrence, more := next()
		if !more {
			break
		}
		if occurrence.Before(start) {
			continue
		}
		if end != nil && occurrence.After(*end) {
			break
		}
		out = append(out, occurrence)
	}
	return out
}

// NextOccurrence parses text and returns its first occurrence strictly after
// after. ok is false for empty, unparseable or exhausted rules.
func NextOccurrence(text string, after time.Time) (time.Time, bool) {
	rule, ok := Parse(text)
	if !ok {
		return time.Time{}, false
	}
	return rule.After(after)
}

// Expand parses text and returns at most limit occurrences within
// [start, end]. end may be nil for an open range; limit is then the only
// bound. Empty or unparseable text yields an empty slice.
func Expand(text string, start time.Time, end *time.Time, limit int) []time.Time {
	rule, ok := Parse(text)
	if !ok {
		return []time.Time{}
	}
	return rule.Occurrences(start, end, limit)
}

// Engine binds the package functions to a clock so callers can omit "after".
type Engine struct {
	clock ports.Clock
}

func NewEngine(clock ports.Clock) *Engine {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Engine{clock: clock}
}

// Next returns the first occurrence of text after *after, or after the
// clock's current instant when after is nil.
func (e *Engine) Next(text string, after *time.Time) (time.Time, bool) {
	from := e.clock.Now()
	if after != nil {
		from = *after
	}
	return NextOccurrence(text, from)
}

func (e *Engine) Expand(text string, start time.Time, end *time.Time, limit int) []time.Time {
	return Expand(text, start, end, limit)
}
