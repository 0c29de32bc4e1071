package urlparser

import (
	"errors"
	"strconv"
	"strings"
)

// ProductId extracts the trailing product id from a two-segment path
// such as /product/{productId} or /add_to_cart/{productId}.
func ProductId(path string, prefix string) (int, error) {
	trimmed := strings.Trim(path, "/")
	parts := strings.Split(trimmed, "/")

	if len(parts) != 2 || parts[0] != prefix {
		return 0, errors.New("invalid path, expected /" + prefix + "/{productId}")
	}

	productId, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errors.New("invalid productId, must be int")
	}

	return productId, nil
}
