package handlers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPISpec []byte

type DocsHandler struct {
	document map[string]any
}

// NewDocsHandler decodes the embedded OpenAPI document once.
func NewDocsHandler() (*DocsHandler, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(openAPISpec, &doc); err != nil {
		return nil, fmt.Errorf("decode openapi document: %w", err)
	}
	return &DocsHandler{document: doc}, nil
}

func (h *DocsHandler) APIDocs(c *gin.Context) {
	c.JSON(http.StatusOK, h.document)
}

func (h *DocsHandler) SwaggerUI(c *gin.Context) {
	c.Redirect(http.StatusFound, "/v3/api-docs")
}
