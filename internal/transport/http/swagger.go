package http

import (
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

var DefaultSwaggerSpec = filepath.Join("docs", "swagger.yaml")

// RegisterSwagger serves the OpenAPI document at /swagger/doc.json and the UI
// under /swagger. The YAML is converted once, on first request.
func RegisterSwagger(e *echo.Echo, specPath ...string) {
	path := DefaultSwaggerSpec
	if len(specPath) > 0 && specPath[0] != "" {
		path = specPath[0]
	}

	var (
		once    sync.Once
		doc     []byte
		loadErr error
	)
	load := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = err
			return
		}
		doc, loadErr = yaml.YAMLToJSON(data)
	}

	e.GET("/swagger/doc.json", func(c echo.Context) error {
		once.Do(load)
		if loadErr != nil {
			c.Logger().Errorf("load swagger spec %s: %v", path, loadErr)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load swagger spec"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
