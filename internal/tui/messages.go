package tui

import "github.com/Veraticus/taxform/internal/model"

// submittedMsg reports that the sink accepted a submission.
type submittedMsg struct {
	submission model.TaxSubmission
}

// submitFailedMsg reports that the sink rejected a submission.
type submitFailedMsg struct {
	err error
}
