package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const MsgNotNumbers = "You should enter numbers!"

// ParseCoordinates - reads "x y" from a line. Extra tokens after the first two are ignored.
func ParseCoordinates(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: expected two numbers, got %d tokens", apperror.ErrNotNumbers, len(fields))
	}

	x, err := parseNumber(fields[0])
	if err != nil {
		return 0, 0, err
	}

	y, err := parseNumber(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

func parseNumber(token string) (int, error) {
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", apperror.ErrNotNumbers, token)
		}
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		// only overflow gets here; 0 is never a valid coordinate
		return 0, nil //nolint: nilerr // out of range is reported by the engine
	}

	return n, nil
}
