package journal

// Pref keys the CLI persists between runs.
const (
	PrefUser          = "user"
	PrefActiveAccount = "active_account"
	PrefActiveClass   = "active_class"
)
