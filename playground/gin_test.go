package playground_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexconsult/docval/playground"
)

type companyPayload struct {
	CNPJ string `json:"cnpj" binding:"required,br_tax_id"`
}

func bindJSON(t *testing.T, body string, out any) error {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(out)
}

func TestRegisterWithGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, playground.RegisterWithGin())

	t.Run("valid payload binds", func(t *testing.T) {
		var payload companyPayload
		err := bindJSON(t, `{"cnpj":"12.345.678/0001-95"}`, &payload)
		require.NoError(t, err)
		assert.Equal(t, "12.345.678/0001-95", payload.CNPJ)
	})

	t.Run("invalid document is rejected at binding", func(t *testing.T) {
		var payload companyPayload
		err := bindJSON(t, `{"cnpj":"12.345.678/0001-99"}`, &payload)
		assert.Error(t, err)
	})

	t.Run("degenerate document is rejected at binding", func(t *testing.T) {
		var payload companyPayload
		err := bindJSON(t, `{"cnpj":"00.000.000/0000-00"}`, &payload)
		assert.Error(t, err)
	})
}
