package repository

import (
	"fmt"
	"strings"

	"github.com/siagakota/crimemap-api/internal/models"
)

// filterAll is the sentinel dropdown value meaning "no filter".
const filterAll = "all"

// searchLimit caps the filtered search endpoint.
const searchLimit = 100

// incidentOrder fixes result ordering for every incident listing.
const incidentOrder = "ORDER BY i.incident_date DESC, i.incident_time DESC NULLS LAST"

// condition is one predicate of the dynamic WHERE clause. The expr is
// a fmt template whose %d verbs receive placeholder indices assigned
// by buildWhere; args supplies one value per fresh placeholder. An
// expr may reference the same placeholder more than once via %[1]d.
type condition struct {
	expr string
	args []any
}

// incidentConditions turns the optional filters into an ordered
// predicate list. Evaluation order is fixed (search, district, crime
// type, severity) and parameter positions follow it.
func incidentConditions(f models.IncidentFilter) []condition {
	var conds []condition

	if f.Search != "" {
		// One shared placeholder for both columns, not two parameters.
		conds = append(conds, condition{
			expr: "(i.address ILIKE $%[1]d OR i.incident_code ILIKE $%[1]d)",
			args: []any{"%" + f.Search + "%"},
		})
	}
	if f.District != "" && f.District != filterAll {
		conds = append(conds, condition{expr: "d.name = $%d", args: []any{f.District}})
	}
	if f.CrimeType != "" && f.CrimeType != filterAll {
		conds = append(conds, condition{expr: "t.name = $%d", args: []any{f.CrimeType}})
	}
	if f.Severity != "" && f.Severity != filterAll {
		conds = append(conds, condition{expr: "i.severity = $%d", args: []any{f.Severity}})
	}

	return conds
}

// buildWhere folds a predicate list into parameterized SQL text and
// its positional argument slice. Pure: same input always yields the
// same text and argument order. It performs no I/O and cannot fail,
// nonsensical filter values just select zero rows.
func buildWhere(conds []condition) (string, []any) {
	var sb strings.Builder
	sb.WriteString("WHERE 1=1")

	args := make([]any, 0, len(conds))
	for _, c := range conds {
		idx := make([]any, len(c.args))
		for i := range c.args {
			idx[i] = len(args) + i + 1
		}
		sb.WriteString(" AND ")
		sb.WriteString(fmt.Sprintf(c.expr, idx...))
		args = append(args, c.args...)
	}

	return sb.String(), args
}

// BuildIncidentWhere builds the WHERE clause for an incident listing
// from the dashboard filters.
func BuildIncidentWhere(f models.IncidentFilter) (string, []any) {
	return buildWhere(incidentConditions(f))
}
