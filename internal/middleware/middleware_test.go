package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larp-manager-server/internal/config"
	"larp-manager-server/internal/schemas"
	"larp-manager-server/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestInjectTraceSetsHeaderAndContext(t *testing.T) {
	router := gin.New()
	router.Use(InjectTrace())

	var contextTraceId string
	router.GET("/", func(c *gin.Context) {
		contextTraceId, _ = c.Value(utils.TraceIdKey.String()).(string)
		c.Status(http.StatusOK)
	})

	recorder := performRequest(router, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Trace-Id"))
	assert.Equal(t, recorder.Header().Get("X-Trace-Id"), contextTraceId)
}

func TestValidateAndSanitizeStruct(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		status int
	}{
		{
			"ValidPayload",
			`{"username": "testUser", "password": "test.Password123"}`,
			http.StatusOK,
		},
		{
			"MalformedJson",
			`{"username": `,
			http.StatusBadRequest,
		},
		{
			"FailsValidation",
			`{"username": "testUser", "password": "short"}`,
			http.StatusBadRequest,
		},
		{
			"MissingFields",
			`{}`,
			http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/login",
				ValidateAndSanitizeStruct(func() interface{} { return &schemas.LoginRequest{} }),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			recorder := performRequest(router, http.MethodPost, "/login", tc.body)
			assert.Equal(t, tc.status, recorder.Code)

			if tc.status == http.StatusBadRequest {
				assert.Contains(t, recorder.Body.String(), schemas.BadRequest.Code)
			}
		})
	}
}

func TestValidateAndSanitizeStructStoresSanitizedPayload(t *testing.T) {
	router := gin.New()

	var payload *schemas.LoginRequest
	router.POST("/login",
		ValidateAndSanitizeStruct(func() interface{} { return &schemas.LoginRequest{} }),
		func(c *gin.Context) {
			stored, ok := c.Get(utils.SanitizedPayloadKey.String())
			require.True(t, ok)
			payload = stored.(*schemas.LoginRequest)
			c.Status(http.StatusOK)
		},
	)

	body := `{"username": "testUser<script>alert(1)</script>", "password": "test.Password123"}`
	recorder := performRequest(router, http.MethodPost, "/login", body)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "testUser", payload.Username)
}

func TestRequireAuthAlwaysRejects(t *testing.T) {
	router := gin.New()
	router.Use(InjectTrace())
	router.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := performRequest(router, http.MethodGet, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), schemas.AuthenticationNotImplemented.Code)
}

func TestRequireRoleAlwaysRejects(t *testing.T) {
	router := gin.New()
	router.Use(InjectTrace())
	router.GET("/admin", RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := performRequest(router, http.MethodGet, "/admin", "")

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), schemas.AuthorizationNotImplemented.Code)
}

func TestRecoveryHidesDetailOutsideDebug(t *testing.T) {
	testCases := []struct {
		name         string
		debug        bool
		expectDetail bool
	}{
		{"DebugMode", true, true},
		{"ProductionMode", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := &config.Settings{Debug: tc.debug}

			router := gin.New()
			router.Use(Recovery(settings))
			router.GET("/boom", func(c *gin.Context) {
				panic("session factory exploded")
			})

			recorder := performRequest(router, http.MethodGet, "/boom", "")

			assert.Equal(t, http.StatusInternalServerError, recorder.Code)
			assert.Contains(t, recorder.Body.String(), schemas.InternalServerError.Code)

			if tc.expectDetail {
				assert.Contains(t, recorder.Body.String(), "session factory exploded")
			} else {
				assert.NotContains(t, recorder.Body.String(), "session factory exploded")
			}
		})
	}
}
