// Package src 通用容器库
package src

import (
	"strconv"
)

type statusErr int

func (e statusErr) Error() string {
	if 0 <= int(e) && int(e) < len(statusErrors) {
		s := statusErrors[e]
		if s != "" {
			return s
		}
	}
	return "errno " + strconv.Itoa(int(e))
}

var statusErrors = [...]string{
	0x01: "invalid input parameters",
	0x02: "memory allocation failed",
	0x03: "index out of bounds",
	0x04: "container is empty",
	0x05: "element not found",
	0x06: "container is full",
}

// StatusText maps a status returned by any container operation to a
// human-readable string. A nil status describes success.
func StatusText(err error) string {
	if err == nil {
		return "success"
	}
	return err.Error()
}

// checkCondition returns nil when the condition holds, err otherwise.
func checkCondition(condition bool, err statusErr) error {
	if condition {
		return nil
	}
	return err
}
