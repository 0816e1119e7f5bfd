package mines

import "errors"

var ErrTooManyMines = errors.New("mine count does not fit the board")
