package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrIDRequired indicates no row id was provided.
var ErrIDRequired = errors.New("id required (use --id <n>)")

// parseID returns the row id from the --id flag or, when the flag is absent,
// from the first positional argument. Extra positional arguments are an
// error so that a mistyped invocation is not silently accepted.
func parseID(flag optionalInt, args []string) (int, error) {
	if flag.set {
		if len(args) > 0 {
			return 0, fmt.Errorf("unexpected argument: %s", args[0])
		}
		return flag.value, nil
	}
	if len(args) == 0 {
		return 0, ErrIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", args[0])
	}
	return n, nil
}
