package game

// DebugState holds debug overlay flags that persist across session restarts
type DebugState struct {
	ShowHitboxes bool // Outline every collision rectangle
	ShowStats    bool // Print tick rate and entity counts
}

// Global debug state instance (survives session restarts)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
