package server

import (
	"fmt"
	"net/http"

	"github.com/financecrm/ai-service/docs"
	"github.com/financecrm/ai-service/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// renderedDoc is a swagger document rendered once and never modified.
// It satisfies swag.Swagger so gin-swagger can serve it by instance name.
type renderedDoc string

func (d renderedDoc) ReadDoc() string {
	return string(d)
}

// swaggerSpec returns the generated spec registered for the variant
func swaggerSpec(variant models.Variant) (*swag.Spec, error) {
	switch variant {
	case models.VariantPing:
		return docs.SwaggerInfoping, nil
	case models.VariantRoot:
		return docs.SwaggerInforoot, nil
	default:
		return nil, fmt.Errorf("no swagger spec for variant %q", variant)
	}
}

// renderDoc renders a copy of the variant's generated spec with meta applied.
// The generated spec itself is left untouched.
func renderDoc(variant models.Variant, meta models.ServiceMetadata) (renderedDoc, error) {
	generated, err := swaggerSpec(variant)
	if err != nil {
		return "", err
	}

	spec := *generated
	spec.Title = meta.Name
	spec.Description = meta.Description
	spec.Version = meta.Version

	return renderedDoc(spec.ReadDoc()), nil
}

// registerDocsRoutes mounts the Swagger UI at /docs and the raw document at /openapi.json.
// The document is Swagger 2.0 as produced by swag, not OpenAPI 3; the path keeps the
// name clients of the previous deployment already use.
func registerDocsRoutes(router gin.IRoutes, variant models.Variant, meta models.ServiceMetadata) error {
	doc, err := renderDoc(variant, meta)
	if err != nil {
		return err
	}

	// each server registers its own document so metadata never leaks between servers
	instance := variant.String() + "-" + uuid.NewString()
	swag.Register(instance, doc)

	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(instance),
		ginSwagger.URL("/docs/doc.json"),
	))
	router.GET("/openapi.json", openAPIHandler(doc))

	// preflight requests reach the CORS middleware instead of the 405 handler
	router.OPTIONS("/docs/*any", preflightHandler)
	router.OPTIONS("/openapi.json", preflightHandler)

	return nil
}

func openAPIHandler(doc renderedDoc) gin.HandlerFunc {
	body := []byte(doc)
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	}
}

func preflightHandler(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
