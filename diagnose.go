package main

import "strings"

// Diagnosis is an ordered rule cascade over the trailing 14-day window.
// The rules are a decision table evaluated in sequence — first match wins —
// so precedence is explicit: data-quality concerns outrank trend reasoning,
// and a deload week suppresses training conclusions entirely.

// Verdict strings. Exposed as constants so tests assert on identity, not
// substring luck.
const (
	verdictInsufficientHistory = "Need at least 14 days of records to separate trend from noise."
	verdictNoTrend             = "Need enough data for 7-day rolling averages."
	verdictAdherence           = "Likely adherence/data-quality issue first (plan not executed consistently)."
	verdictDeloadHold          = "Deload flagged. Weight not moving is acceptable; hold diet steady and reassess after deload."
	verdictDeloadReassess      = "Deload flagged. Avoid training conclusions; reassess next week."
	verdictOvershoot           = "Likely diet overshoot (gain too fast + waist rising). Reduce calories slightly."
	verdictUndershoot          = "Likely diet/recovery undershoot (not gaining + performance flat). Add calories or reduce cardio/stress."
	verdictDietAdequate        = "Diet likely adequate (weight trending right). Look at training variables and sleep."
	verdictLeanMassNoise       = "Weight up but estimated lean mass down (likely BIA noise or glycogen/hydration swing). Check hydration consistency + use 7-day averages."
	verdictNoRedFlags          = "No clear red flags. Keep running the plan; watch 7-day averages."
)

/* ─── Performance-note classification ────────────────────────────────── */

// noteClassifier decides whether a free-text performance note reads as
// negative. Behind an interface so the keyword heuristic can later give way
// to structured tags without touching the cascade.
type noteClassifier interface {
	Negative(note string) bool
}

// keywordClassifier flags notes containing any keyword, case-insensitive
// substring match. Empty or unmatched notes simply don't count.
type keywordClassifier struct {
	keywords []string
}

func (k keywordClassifier) Negative(note string) bool {
	lower := strings.ToLower(note)
	for _, w := range k.keywords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

var defaultNoteClassifier noteClassifier = keywordClassifier{
	keywords: []string{"flat", "tired", "stalled", "no progress", "weak"},
}

/* ─── Signals ────────────────────────────────────────────────────────── */

// diagnosisSignals are the windowed inputs the cascade evaluates, computed
// once up front. Waist and lean-mass changes are nil when fewer than 2
// non-missing points exist in the window — their rules are then skipped.
type diagnosisSignals struct {
	historyDays   int
	weeklyDelta   float64
	weeklyDeltaOK bool
	meanAdherence float64
	deload        bool
	waistChange   *float64
	leanChange    *float64
	negativeNotes int
}

// windowChange is last-available minus first-available non-missing value,
// not a strict endpoint difference. Nil with fewer than 2 points.
func windowChange(records []dailyRecord, value func(*dailyRecord) *float64) *float64 {
	var first, last *float64
	n := 0
	for i := range records {
		v := value(&records[i])
		if v == nil {
			continue
		}
		if first == nil {
			first = v
		}
		last = v
		n++
	}
	if n < 2 {
		return nil
	}
	change := *last - *first
	return &change
}

// collectDiagnosisSignals derives the cascade inputs from the full ordered
// series. The window is the trailing 14 records.
func collectDiagnosisSignals(records []dailyRecord, classify noteClassifier) diagnosisSignals {
	s := diagnosisSignals{historyDays: len(records)}
	if wd, ok := weeklyDelta(morningWeights(records)); ok {
		s.weeklyDelta = wd
		s.weeklyDeltaOK = true
	}

	window := lastN(records, 14)

	var adherenceSum float64
	for i := range window {
		r := &window[i]
		adherenceSum += r.Adherence
		if r.DeloadWeek != nil && *r.DeloadWeek {
			s.deload = true
		}
		if r.PerformanceNote != nil && classify.Negative(*r.PerformanceNote) {
			s.negativeNotes++
		}
	}
	if len(window) > 0 {
		s.meanAdherence = adherenceSum / float64(len(window))
	}

	s.waistChange = windowChange(window, func(r *dailyRecord) *float64 {
		return r.WaistIn
	})
	s.leanChange = windowChange(window, func(r *dailyRecord) *float64 {
		lm, ok := r.leanMassLB()
		if !ok {
			return nil
		}
		return &lm
	})
	return s
}

/* ─── Rule cascade ───────────────────────────────────────────────────── */

// diagnosisRule pairs a predicate with its verdict. The verdict is a
// function for the one rule (deload) whose message depends on the signals.
type diagnosisRule struct {
	name    string
	when    func(diagnosisSignals) bool
	verdict func(diagnosisSignals) string
}

func fixedVerdict(v string) func(diagnosisSignals) string {
	return func(diagnosisSignals) string { return v }
}

var diagnosisRules = []diagnosisRule{
	{
		name:    "insufficient history",
		when:    func(s diagnosisSignals) bool { return s.historyDays < 14 },
		verdict: fixedVerdict(verdictInsufficientHistory),
	},
	{
		name:    "no trend signal",
		when:    func(s diagnosisSignals) bool { return !s.weeklyDeltaOK },
		verdict: fixedVerdict(verdictNoTrend),
	},
	{
		name:    "adherence",
		when:    func(s diagnosisSignals) bool { return s.meanAdherence < 0.9 },
		verdict: fixedVerdict(verdictAdherence),
	},
	{
		name: "deload",
		when: func(s diagnosisSignals) bool { return s.deload },
		verdict: func(s diagnosisSignals) string {
			if s.weeklyDelta < 0.10 {
				return verdictDeloadHold
			}
			return verdictDeloadReassess
		},
	},
	{
		name: "overshoot",
		when: func(s diagnosisSignals) bool {
			return s.weeklyDelta > 0.75 && s.waistChange != nil && *s.waistChange > 0.25
		},
		verdict: fixedVerdict(verdictOvershoot),
	},
	{
		name: "undershoot",
		when: func(s diagnosisSignals) bool {
			return s.weeklyDelta < 0.10 && s.negativeNotes >= 2
		},
		verdict: fixedVerdict(verdictUndershoot),
	},
	{
		name: "diet adequate",
		when: func(s diagnosisSignals) bool {
			return s.weeklyDelta >= 0.25 && s.weeklyDelta <= 0.50 && s.negativeNotes >= 2
		},
		verdict: fixedVerdict(verdictDietAdequate),
	},
	{
		name: "lean mass noise",
		when: func(s diagnosisSignals) bool {
			return s.leanChange != nil && s.weeklyDelta > 0.25 && *s.leanChange < 0
		},
		verdict: fixedVerdict(verdictLeanMassNoise),
	},
	{
		name:    "no red flags",
		when:    func(diagnosisSignals) bool { return true },
		verdict: fixedVerdict(verdictNoRedFlags),
	},
}

// diagnose runs the cascade over the ordered record series.
func diagnose(records []dailyRecord, classify noteClassifier) string {
	s := collectDiagnosisSignals(records, classify)
	for _, rule := range diagnosisRules {
		if rule.when(s) {
			return rule.verdict(s)
		}
	}
	// The final rule always matches; this is unreachable.
	return verdictNoRedFlags
}
