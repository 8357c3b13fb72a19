package utils

import (
	"fmt"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var (
	spinnerMu sync.Mutex
	spin      *spinner.Spinner
)

func DrawBanner() {
	figure.NewFigure("fabric doctor", "", true).Print()
	fmt.Println()
}

func StartSpinner() {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if spin != nil {
		return
	}

	spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	spin.Suffix = " auditing Fabric capacities..."
	spin.Start()
}

func StopSpinner() {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if spin == nil {
		return
	}

	spin.Stop()
	spin = nil
}
