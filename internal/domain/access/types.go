package access

// Action names an operation guarded by the gate.
type Action string

const (
	ActionReadUser           Action = "user:read"
	ActionCreateUser         Action = "user:create"
	ActionDeleteUser         Action = "user:delete"
	ActionUploadFile         Action = "user:upload"
	ActionProcessPayment     Action = "payment:process"
	ActionReadPaymentHistory Action = "payment:history"
)

const RoleAdmin = "admin"

// Capability travels alongside every service call. Subject is zero for
// anonymous callers.
type Capability struct {
	Subject uint
	Role    string
	Token   string
}

func Anonymous() Capability {
	return Capability{}
}

func (c Capability) Authenticated() bool {
	return c.Subject != 0
}
