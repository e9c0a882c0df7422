package gateway

import "time"

// pollUntil calls check up to attempts times, interval apart, until it
// reports done. It returns false when the budget is exhausted and
// propagates the first error check returns.
func pollUntil(attempts int, interval time.Duration, check func() (bool, error)) (bool, error) {
	for i := 0; i < attempts; i++ {
		time.Sleep(interval)

		done, err := check()
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
	return false, nil
}
