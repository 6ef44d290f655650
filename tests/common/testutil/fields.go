//go:build unit || e2e

package testutil

// Field sets key to value. A nil value removes the key.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Unknown adds a key the server does not declare.
func Unknown(key string) func(map[string]any) {
	return Field(key, "unexpected")
}
