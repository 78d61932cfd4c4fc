package http

import (
	"log"
	"os"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// yamlDoc serves the OpenAPI document kept in YAML on disk as JSON.
type yamlDoc struct {
	path string
}

func (d yamlDoc) ReadDoc() string {
	data, err := os.ReadFile(d.path)
	if err != nil {
		log.Printf("load swagger spec: %v", err)
		return "{}"
	}
	jsonSpec, err := yaml.YAMLToJSON(data)
	if err != nil {
		log.Printf("convert swagger spec: %v", err)
		return "{}"
	}
	return string(jsonSpec)
}

// RegisterSwagger registers the Swagger UI handler under /swagger. The
// document is re-read on every request to doc.json.
func RegisterSwagger(e *echo.Echo, specPath string) {
	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, yamlDoc{path: specPath})
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
