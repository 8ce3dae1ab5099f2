package domain

// Resolution is the result of a command resolver: either declined, so the
// next resolver is tried, or resolved to a command.
type Resolution struct {
	cmd Command
}

// Declined is the resolution of a resolver that does not apply.
func Declined() Resolution {
	return Resolution{}
}

// Resolved wraps a resolved command.
func Resolved(cmd Command) Resolution {
	return Resolution{cmd: cmd}
}

// Command returns the resolved command, or false when declined.
func (r Resolution) Command() (Command, bool) {
	return r.cmd, r.cmd != nil
}

// IsDeclined reports whether the resolver declined.
func (r Resolution) IsDeclined() bool {
	return r.cmd == nil
}
