package ui

import (
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
)

// hitFoundMsg reports one chart appearance found by a scan.
type hitFoundMsg struct {
	chart  models.Chart
	result models.FoundResult
}

// chartExhaustedMsg reports that a scan reached the chart's horizon.
type chartExhaustedMsg struct {
	chart models.Chart
}

// searchFailedMsg reports a scan aborted by a source or cache failure.
type searchFailedMsg struct {
	err error
}
