package surface

import (
	"sort"

	"github.com/google/uuid"
)

// Mode selects which comparison was performed.
type Mode int

const (
	// ModeAudit compares all languages symmetrically against their union.
	ModeAudit Mode = iota
	// ModeCompat compares one target language against a canonical reference.
	ModeCompat
)

// String returns the report heading for the mode.
func (m Mode) String() string {
	if m == ModeCompat {
		return "compat"
	}
	return "audit"
}

// Mismatch records one arity disagreement between a reference declaration and
// a target declaration sharing the same key.
type Mismatch struct {
	Key           Key
	ExpectedArity int
	ActualArity   int
}

// LanguageCount pairs a language id with its extracted operation count,
// reported in configured order.
type LanguageCount struct {
	Language string
	Count    int
}

// Report is the outcome of one comparison run. It is built once, rendered
// once, and carries no further lifecycle.
type Report struct {
	RunID     string
	Mode      Mode
	Reference string // compat mode: the canonical language id
	Target    string // compat mode: the checked language id

	Expected   []Key            // sorted expected surface
	Languages  []LanguageCount  // configured order
	Missing    map[string][]Key // language id -> sorted missing keys
	Extra      []Key            // compat mode only, sorted, informational
	Mismatches []Mismatch
	Warnings   []string
}

// Failed reports the overall verdict. Extra keys never fail a run.
func (r *Report) Failed() bool {
	for _, missing := range r.Missing {
		if len(missing) > 0 {
			return true
		}
	}
	return len(r.Mismatches) > 0
}

// ExitCode derives the process exit status: 0 on PASS, 1 on FAIL.
func (r *Report) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}

// Audit compares all language surfaces symmetrically. The expected surface is
// the union of every language's keys; each language is then checked for keys
// it fails to declare. No language is privileged.
func Audit(surfaces []*Surface) *Report {
	report := newReport(ModeAudit)

	union := make(map[Key]bool)
	for _, s := range surfaces {
		report.Languages = append(report.Languages, LanguageCount{
			Language: s.Language,
			Count:    s.Len(),
		})
		for _, key := range s.Keys() {
			union[key] = true
		}
	}
	report.Expected = sortedKeys(union)

	for _, s := range surfaces {
		var missing []Key
		for key := range union {
			if !s.Has(key) {
				missing = append(missing, key)
			}
		}
		sortKeys(missing)
		report.Missing[s.Language] = missing
	}

	return report
}

// Compat checks a target surface against a canonical reference surface.
// Reference keys absent from the target are breaking removals. Target keys
// absent from the reference are recorded as informational extras. For keys
// both sides declare, every reference overload is compared against every
// target overload; any differing parameter count is a mismatch.
func Compat(reference, target *Surface) *Report {
	report := newReport(ModeCompat)
	report.Reference = reference.Language
	report.Target = target.Language
	report.Languages = []LanguageCount{
		{Language: reference.Language, Count: reference.Len()},
		{Language: target.Language, Count: target.Len()},
	}

	var missing []Key
	for _, key := range reference.Keys() {
		if !target.Has(key) {
			missing = append(missing, key)
		}
	}
	sortKeys(missing)
	report.Missing[target.Language] = missing

	var extra []Key
	for _, key := range target.Keys() {
		if !reference.Has(key) {
			extra = append(extra, key)
		}
	}
	sortKeys(extra)
	report.Extra = extra

	expected := make([]Key, len(reference.Keys()))
	copy(expected, reference.Keys())
	sortKeys(expected)
	report.Expected = expected

	for _, key := range expected {
		refOp, ok := reference.Lookup(key)
		if !ok {
			continue
		}
		tgtOp, ok := target.Lookup(key)
		if !ok {
			continue
		}
		for _, refParams := range refOp.Params {
			refArity := Arity(refParams)
			for _, tgtParams := range tgtOp.Params {
				tgtArity := Arity(tgtParams)
				if refArity != tgtArity {
					report.Mismatches = append(report.Mismatches, Mismatch{
						Key:           key,
						ExpectedArity: refArity,
						ActualArity:   tgtArity,
					})
				}
			}
		}
	}

	return report
}

func newReport(mode Mode) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Mode:    mode,
		Missing: make(map[string][]Key),
	}
}

func sortedKeys(set map[Key]bool) []Key {
	keys := make([]Key, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sortKeys(keys)
	return keys
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
}
