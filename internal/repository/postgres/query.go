package postgres

import (
	"fmt"
	"sort"

	"tourbooking/internal/domain"
)

// buildWhere renders a WHERE clause from allow-listed filters, using the
// repository's API-field-to-column map. Keys are iterated in sorted order so
// repeated requests produce identical statements. Unknown keys are skipped;
// the allow-list middleware should have removed them already.
func buildWhere(filter domain.Filter, cols map[string]string) (string, []any) {
	keys := make([]string, 0, len(filter))
	for k := range filter {
		if _, ok := cols[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	clause := ""
	args := make([]any, 0, len(keys))
	for i, k := range keys {
		if i == 0 {
			clause = fmt.Sprintf(" WHERE %s = $1", cols[k])
		} else {
			clause += fmt.Sprintf(" AND %s = $%d", cols[k], i+1)
		}
		args = append(args, filter[k])
	}
	return clause, args
}

// orderBy renders an ORDER BY clause. A sort field outside the column map
// falls back to the given column. Only ASC and DESC are ever emitted.
func orderBy(s domain.Sort, cols map[string]string, fallback string) string {
	col, ok := cols[s.Field]
	if !ok {
		col = fallback
	}
	dir := "DESC"
	if s.Order == domain.SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}
