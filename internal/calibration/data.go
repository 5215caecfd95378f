package calibration

import (
	"sync"
)

type data struct {
	mu         *sync.Mutex
	totalLines int
	sum        int
}

func newData() data {
	return data{
		mu:         &sync.Mutex{},
		totalLines: 0,
		sum:        0,
	}
}

func (d *data) processValue(value int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.totalLines++
	d.sum += value
}

// processEmpty accounts for a line without digits: it is counted but
// contributes nothing to the sum.
func (d *data) processEmpty() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.totalLines++
}
