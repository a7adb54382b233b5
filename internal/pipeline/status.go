package pipeline

// Status identifies where a generation run currently is.
type Status string

const (
	StatusIdle                Status = "idle"
	StatusCheckingExisting    Status = "checking_existing_data"
	StatusFetchingCaptions    Status = "fetching_captions"
	StatusProcessingText      Status = "processing_text"
	StatusFetchingDefinitions Status = "fetching_definitions_and_examples"
	StatusSaving              Status = "saving_to_database"
	StatusCompleted           Status = "completed"
	StatusFailed              Status = "failed"
)

// Update is one status transition delivered to observers. Message is only
// populated for failures.
type Update struct {
	Status  Status
	Message string
}

// Observer receives status transitions. Calls arrive sequentially from the
// goroutine executing the run.
type Observer func(Update)

// Label returns a human-readable form for display.
func (s Status) Label() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusCheckingExisting:
		return "Checking existing data"
	case StatusFetchingCaptions:
		return "Fetching captions"
	case StatusProcessingText:
		return "Processing text"
	case StatusFetchingDefinitions:
		return "Fetching definitions and examples"
	case StatusSaving:
		return "Saving to database"
	case StatusCompleted:
		return "Completed"
	case StatusFailed:
		return "Failed"
	default:
		return string(s)
	}
}

// Terminal reports whether the status ends a run.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
