package converter

import "github.com/google/uuid"

// idOrNew keeps a caller supplied id and generates one otherwise.
func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
