package domain

// MigrateLegacyStatus maps the pre-rename status vocabulary
// (not_started/in_progress/completed/overdue) onto the canonical one.
// "overdue" collapses into "incomplete": overdue-ness is re-derived from
// the due date and the clock, so the label carries no extra information.
// "completed" maps to "submitted" rather than "graded" because the legacy
// vocabulary never recorded whether a grade had come back; grade presence
// is tracked separately.
func MigrateLegacyStatus(raw string) DeliverableStatus {
	switch raw {
	case "not_started", "overdue":
		return StatusIncomplete
	case "in_progress":
		return StatusInProgress
	case "completed":
		return StatusSubmitted
	}
	if ValidDeliverableStatuses[raw] {
		return DeliverableStatus(raw)
	}
	return StatusIncomplete
}
