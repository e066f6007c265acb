package handlers_test

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/finca-nomina/nomina_backend/cmd/docs"
	"github.com/swaggo/swag"
)

var ginParam = regexp.MustCompile(`:(\w+)`)

// Every route the API serves must be described in the generated swagger document.
func (s *HandlersTestSuite) TestSwaggerDocCoversRoutes() {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	s.Require().NoError(err)

	var doc struct {
		BasePath    string                                `json:"basePath"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	s.Require().NoError(json.Unmarshal([]byte(raw), &doc))
	s.Equal("/api/v1", doc.BasePath)

	routes := s.router.Routes()
	s.Require().NotEmpty(routes)
	for _, route := range routes {
		path := strings.TrimPrefix(route.Path, doc.BasePath)
		path = ginParam.ReplaceAllString(path, "{$1}")
		ops, ok := doc.Paths[path]
		if !s.Truef(ok, "%s %s is not documented", route.Method, route.Path) {
			continue
		}
		s.Containsf(ops, strings.ToLower(route.Method), "%s %s is not documented", route.Method, route.Path)
	}

	for _, def := range []string{"dto.PayrollResponse", "dto.LoanResponse", "dto.RegisterPaymentRequest", "handlers.ErrorResponse", "domain.PayrollStatus"} {
		s.Contains(doc.Definitions, def)
	}
}
