package finding

// Severity classifies a finding. Errors are misconfigurations that will likely break tooling;
// warnings are suboptimal but functional.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

func (s Severity) String() string {
	return string(s)
}

// Finding is a single reported issue.
type Finding struct {
	Severity Severity
	Message  string
}

// List accumulates findings in detection order.
type List struct {
	items []Finding
}

// Add appends a finding.
func (l *List) Add(sev Severity, msg string) {
	l.items = append(l.items, Finding{Severity: sev, Message: msg})
}

// All returns every finding in detection order.
func (l *List) All() []Finding {
	out := make([]Finding, len(l.items))
	copy(out, l.items)
	return out
}

// Errors returns the error findings in detection order.
func (l *List) Errors() []Finding {
	return l.filter(Error)
}

// Warnings returns the warning findings in detection order.
func (l *List) Warnings() []Finding {
	return l.filter(Warning)
}

// Len reports the number of findings of any severity.
func (l *List) Len() int {
	return len(l.items)
}

func (l *List) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range l.items {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}
