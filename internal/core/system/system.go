package system

// Phase defines execution ordering within a single flush.
type Phase int

const (
	PhaseInput     Phase = iota // 0: deliver buffered host events
	PhaseLogic                  // 1: domain reactions to delivered events
	PhaseStructure              // 2: node creation and attachment
	PhaseSync                   // 3: text, attribute, class reconciliation
	PhaseEvents                 // 4: listener wiring
	PhaseCleanup                // 5: detach destroyed nodes, purge indexes
)

// System is the interface every reconciliation system implements.
// Systems are constructed with their dependencies (world, externals,
// shared node index) and read the world's changeset during Update.
type System interface {
	Phase() Phase
	Update() error
}
