package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const successMessage = "Operation successful"

type Envelope struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
}

type Page[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Message: successMessage, Status: "Ok", Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Message: successMessage, Status: "Created", Data: data})
}

// List always emits an array, never null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	OK(c, data)
}

func Paged[T any](c *gin.Context, items []T, page, limit int, total int64) {
	if items == nil {
		items = []T{}
	}
	OK(c, Page[T]{Items: items, Page: page, Limit: limit, Total: total})
}
