package shared

import "shareit/internal/pkg/errs"

func UserNotFound(id int64) error {
	return errs.NotFoundf("The specified user id=%d does not exist", id)
}

func ItemNotFound(id int64) error {
	return errs.NotFoundf("The specified item id=%d does not exist", id)
}

func BookingNotFound(id int64) error {
	return errs.NotFoundf("The specified booking id=%d does not exist", id)
}
