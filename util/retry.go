package util

import (
	"time"

	"github.com/dayzero-app/dayzero/util/errors"
	"golang.org/x/xerrors"
)

var StopRetryingError = errors.NewError("stop retrying")

// Retry calls callback until it returns nil; if max is 0, retries forever.
func Retry(max uint, interval time.Duration, callback func(int) error) error {
	var err error
	var tried int
	for {
		if max > 0 && uint(tried) == max {
			break
		}

		if err = callback(tried); err == nil {
			return nil
		} else if xerrors.Is(err, StopRetryingError) {
			return err
		}

		tried++

		if interval > 0 {
			<-time.After(interval)
		}
	}

	return err
}
