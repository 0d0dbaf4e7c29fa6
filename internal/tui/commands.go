package tui

import (
	"context"

	"github.com/Veraticus/taxform/internal/common"
	"github.com/Veraticus/taxform/internal/model"
	"github.com/Veraticus/taxform/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// submitCmd delivers sub to the sink off the update loop.
func submitCmd(ctx context.Context, s service.SubmissionSink, sub model.TaxSubmission) tea.Cmd {
	return func() tea.Msg {
		if err := s.Submit(ctx, sub); err != nil {
			common.LogError(err, "submission failed", common.Fields{"name": sub.Name})
			return submitFailedMsg{err: err}
		}
		common.LogDebug("submission accepted", common.Fields{
			"name":       sub.Name,
			"applied_to": sub.AppliedTo.String(),
			"items":      len(sub.ApplicableItems),
		})
		return submittedMsg{submission: sub}
	}
}
