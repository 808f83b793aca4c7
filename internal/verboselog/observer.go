package verboselog

// CallKind identifies the entry point a call came through.
type CallKind string

const (
	KindLine  CallKind = "line"
	KindTable CallKind = "table"
)

// Outcome is what happened to a call.
type Outcome string

const (
	OutcomeEmitted           Outcome = "emitted"
	OutcomeSuppressedDisable Outcome = "suppressed_disabled"
	OutcomeSuppressedPolicy  Outcome = "suppressed_policy"
	OutcomeUnknownLevel      Outcome = "unknown_level"
)

// Observer receives one notification per call. It lets instrumentation live
// outside this package.
type Observer interface {
	ObserveClassification(env Environment)
	ObserveCall(kind CallKind, level Level, env Environment, outcome Outcome)
}

type nopObserver struct{}

func (nopObserver) ObserveClassification(Environment) {}

func (nopObserver) ObserveCall(CallKind, Level, Environment, Outcome) {}
