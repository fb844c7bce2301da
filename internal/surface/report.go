package surface

import (
	"fmt"
	"strings"
)

// displayLimit caps how many missing keys are listed per language. The full
// sets stay in the Report for programmatic consumers.
const displayLimit = 10

const rule = "======================================================================"
const thinRule = "----------------------------------------------------------------------"

// Render formats a report as the deterministic human-readable text the gate
// prints to stdout. It performs no I/O of its own.
func Render(r *Report) string {
	var b strings.Builder

	b.WriteString(rule + "\n")
	if r.Mode == ModeCompat {
		b.WriteString("API COMPATIBILITY CHECK\n")
	} else {
		b.WriteString("CROSS-LANGUAGE API SURFACE AUDIT\n")
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "run %s\n\n", r.RunID)

	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n")
	}

	if r.Mode == ModeCompat {
		renderCompat(&b, r)
	} else {
		renderAudit(&b, r)
	}

	b.WriteString(rule + "\n")
	if r.Failed() {
		fmt.Fprintf(&b, "RESULT: FAIL\n")
	} else {
		fmt.Fprintf(&b, "RESULT: PASS\n")
	}
	b.WriteString(rule + "\n")

	return b.String()
}

func renderAudit(b *strings.Builder, r *Report) {
	for _, lc := range r.Languages {
		fmt.Fprintf(b, "%-12s %3d public operations\n", lc.Language, lc.Count)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "Expected API surface: %d operations\n", len(r.Expected))
	b.WriteString(thinRule + "\n")

	for _, lc := range r.Languages {
		missing := r.Missing[lc.Language]
		if len(missing) == 0 {
			fmt.Fprintf(b, "ok   %s: complete (%d operations)\n", lc.Language, lc.Count)
			continue
		}
		fmt.Fprintf(b, "FAIL %s: missing %d operations\n", lc.Language, len(missing))
		renderKeyList(b, missing, "     - ", "     ")
	}
}

func renderCompat(b *strings.Builder, r *Report) {
	fmt.Fprintf(b, "reference: %-12s %3d operations\n", r.Reference, countFor(r, r.Reference))
	fmt.Fprintf(b, "target:    %-12s %3d operations\n", r.Target, countFor(r, r.Target))
	b.WriteString(thinRule + "\n")

	missing := r.Missing[r.Target]
	if len(missing) > 0 {
		fmt.Fprintf(b, "MISSING operations (in reference, not in target):\n")
		renderKeyList(b, missing, "   - ", "   ")
	}

	if len(r.Extra) > 0 {
		fmt.Fprintf(b, "extra operations (informational, target only):\n")
		renderKeyList(b, r.Extra, "   + ", "   ")
	}

	if len(r.Mismatches) > 0 {
		fmt.Fprintf(b, "SIGNATURE MISMATCHES:\n")
		for _, m := range r.Mismatches {
			fmt.Fprintf(b, "   ! %s: reference declares %d params, target declares %d\n",
				m.Key, m.ExpectedArity, m.ActualArity)
		}
	}

	if len(missing) == 0 && len(r.Mismatches) == 0 {
		fmt.Fprintf(b, "all reference operations present with compatible signatures\n")
	}
}

// renderKeyList prints up to displayLimit keys with the given bullet prefix.
// The continuation line carries indentation only, no bullet.
func renderKeyList(b *strings.Builder, keys []Key, prefix, indent string) {
	shown := keys
	if len(shown) > displayLimit {
		shown = shown[:displayLimit]
	}
	for _, key := range shown {
		fmt.Fprintf(b, "%s%s\n", prefix, key)
	}
	if extra := len(keys) - displayLimit; extra > 0 {
		fmt.Fprintf(b, "%s+%d more\n", indent, extra)
	}
}

func countFor(r *Report, language string) int {
	for _, lc := range r.Languages {
		if lc.Language == language {
			return lc.Count
		}
	}
	return 0
}
