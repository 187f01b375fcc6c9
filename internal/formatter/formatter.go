// package formatter renders seeding progress and journal history as human-readable text
package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/desertthunder/plseed/internal/models"
)

// Outcome renders one association result, e.g.
//
//	✓ added track T1 to playlist P1: {"status":"added"}
//	✗ failed to add track T1 to playlist P1: 404, {"error":"not found"}
func Outcome(o models.Outcome) string {
	body := strings.TrimSpace(string(o.Body))
	label := o.Kind.Label()

	if o.OK() {
		return fmt.Sprintf("%s added %s %s to playlist %s: %s", styles.ok.Render("✓"), label, o.Child, o.Parent, body)
	}
	return fmt.Sprintf("%s failed to add %s %s to playlist %s: %d, %s", styles.err.Render("✗"), label, o.Child, o.Parent, o.StatusCode, body)
}

// Outcomes renders one line per outcome.
func Outcomes(outcomes []models.Outcome) string {
	var sb strings.Builder
	for _, o := range outcomes {
		sb.WriteString(Outcome(o))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Header renders a boxed section title.
func Header(text string) string {
	rule := strings.Repeat("═", 39)
	return fmt.Sprintf("%s\n%s\n%s\n", rule, styles.title.Render(text), rule)
}

// Runs renders journaled runs as an aligned table.
func Runs(runs []*models.Run) string {
	if len(runs) == 0 {
		return "No runs recorded.\n"
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSTARTED\tSTATUS\tPLAYLISTS\tTRACKS\tCALLS\tOK\tTARGET")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			r.ID,
			r.StartedAt.Local().Format(time.DateTime),
			r.Status,
			r.PlaylistCount,
			r.TrackCount,
			r.Calls,
			r.Succeeded,
			r.BaseURL,
		)
	}
	w.Flush()

	return buf.String()
}
