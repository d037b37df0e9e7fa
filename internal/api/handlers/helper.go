package handlers

import (
	"net/http"
	"strconv"

	"github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/utils/response"
)

// parseID pulls the {id} path value. On a malformed id it writes the error
// response itself and returns ok=false.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, errors.BadRequestError("Invalid id in path"))

		return 0, false
	}

	return id, true
}

// pageParams reads ?page= and ?page_size= with the same clamping the
// services apply, so the echoed values match what was actually queried.
func pageParams(r *http.Request) (int, int) {

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return page, pageSize
}

type pagedResponse struct {
	Items    any `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
