package catalog

// Window returns the displayed prefix of filtered. Expanded windows show
// everything; a pageSize of zero or less means no limit.
func Window[T any](filtered []T, expanded bool, pageSize int) []T {
	if expanded || pageSize <= 0 || len(filtered) <= pageSize {
		return filtered
	}
	return filtered[:pageSize]
}

// ShowMore reports whether the expand control is offered. It is hidden once
// expanded and whenever either the whole catalog or the filtered set fits in
// one page.
func ShowMore(total, filtered, pageSize int, expanded bool) bool {
	if expanded || pageSize <= 0 {
		return false
	}
	return total > pageSize && filtered > pageSize
}
