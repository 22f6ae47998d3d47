package service

import (
	"fmt"

	"shareit/internal/models"
)

// resolvePage turns raw from/size query values into a page. Both absent means
// the whole result set (nil page). The size is clamped so the last page never
// overruns the true result count.
func resolvePage(total int, from, size *int) (*models.Page, error) {
	if from == nil && size == nil {
		return nil, nil
	}
	if from == nil || size == nil {
		return nil, fmt.Errorf("%w: from and size must be passed together", ErrBadRequest)
	}
	if *from < 0 || *size <= 0 {
		return nil, fmt.Errorf("%w: invalid pagination parameters", ErrBadRequest)
	}

	offset, length := *from, *size
	if total < offset+length {
		length = total - offset
		if length < 0 {
			length = 0
		}
	}
	return &models.Page{Offset: offset, Size: length}, nil
}
