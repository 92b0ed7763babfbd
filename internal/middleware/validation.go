package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"larp-manager-server/internal/schemas"
	"larp-manager-server/internal/utils"
)

// ValidateAndSanitizeStruct binds the JSON body into a fresh instance from the
// factory, strips HTML from its string fields, validates it and stores the
// sanitized payload in the request context. Any failure aborts with 400.
func ValidateAndSanitizeStruct(factory func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := factory()

		if err := c.ShouldBindJSON(obj); err != nil {
			utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
			return
		}

		utils.SanitizeData(obj)

		if err := utils.GetValidator().Validate.Struct(obj); err != nil {
			utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
			return
		}

		c.Set(utils.SanitizedPayloadKey.String(), obj)
		c.Next()
	}
}
