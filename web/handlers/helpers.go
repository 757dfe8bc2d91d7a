package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pulsehr.com/pulsehr/web/common"
)

func paramUint(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func queryUint(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func monthYearParams(c *gin.Context) (month, year int, ok bool) {
	month, err1 := strconv.Atoi(c.Query("month"))
	year, err2 := strconv.Atoi(c.Query("year"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 || year < 2000 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("month and year query params are required"))
		return 0, 0, false
	}
	return month, year, true
}
