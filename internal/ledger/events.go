package ledger

// TopicAudit carries AuditEvent values for every mutating ledger command.
const TopicAudit = "ledger:audit"

// AuditEvent describes a committed mutating command.
type AuditEvent struct {
	Action string
	Target string
	Detail string
}

// Bus is the subset of the event bus the ledger publishes on.
// github.com/asaskevich/EventBus satisfies it.
type Bus interface {
	Publish(topic string, args ...interface{})
}

func publishAudit(bus Bus, action, target, detail string) {
	if bus == nil {
		return
	}
	bus.Publish(TopicAudit, AuditEvent{Action: action, Target: target, Detail: detail})
}
