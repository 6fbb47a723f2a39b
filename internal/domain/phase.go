package domain

// Phase names the stages a session moves through. Transitions are linear:
// Validating → Discovering → Processing → Reporting → Done, with Aborted
// reachable from Validating (bad configuration) and Discovering (missing
// root). Per-file failures during Processing never abort the session.
type Phase string

const (
	PhaseValidating  Phase = "validating"
	PhaseDiscovering Phase = "discovering"
	PhaseProcessing  Phase = "processing"
	PhaseReporting   Phase = "reporting"
	PhaseDone        Phase = "done"
	PhaseAborted     Phase = "aborted"
)
