package access

// UserScoped reports whether an action targets one specific user's data,
// in which case the gate compares the caller with the owner.
func UserScoped(action Action) bool {
	switch action {
	case ActionReadUser, ActionDeleteUser, ActionReadPaymentHistory:
		return true
	default:
		return false
	}
}
