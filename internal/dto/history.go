package dto

// HistoryResponse reports the current undo/redo state.
type HistoryResponse struct {
	Commands []string `json:"commands"`
	CanUndo  bool     `json:"canUndo"`
	CanRedo  bool     `json:"canRedo"`
}
