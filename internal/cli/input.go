package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/othello-go/internal/model"
)

var ErrMalformedMove = errors.New("malformed move")

// ParseMove reads a move written as "<col>,<row>"
func ParseMove(s string) (model.Position, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return model.Position{}, fmt.Errorf("%w: enter both a column and a row as <col>,<row>, got %q", ErrMalformedMove, s)
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: couldn't convert column %q to an integer", ErrMalformedMove, parts[0])
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: couldn't convert row %q to an integer", ErrMalformedMove, parts[1])
	}

	return model.Position{Col: col, Row: row}, nil
}

// FormatMove writes a move in the form ParseMove accepts
func FormatMove(pos model.Position) string {
	return fmt.Sprintf("%d,%d", pos.Col, pos.Row)
}
