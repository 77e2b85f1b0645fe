package httpapi

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	jwtverifier "github.com/okta/okta-jwt-verifier-golang"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sharedcode/mwmregistry"
)

var toValidate = map[string]string{
	"aud": "api://default",
	"cid": os.Getenv("OKTA_CLIENT_ID"),
}

// verifyBearerToken reports whether the request carries a valid bearer token.
// MWMREG_ENV=DEV bypasses verification entirely, for local debugging.
func verifyBearerToken(c *gin.Context) bool {
	if os.Getenv("MWMREG_ENV") == "DEV" {
		return true
	}

	token := c.Request.Header.Get("Authorization")
	if !strings.HasPrefix(token, "Bearer ") {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return false
	}
	token = strings.TrimPrefix(token, "Bearer ")

	verifierSetup := jwtverifier.JwtVerifier{
		Issuer:           "https://" + os.Getenv("OKTA_DOMAIN") + "/oauth2/default",
		ClaimsToValidate: toValidate,
	}
	if _, err := verifierSetup.New().VerifyAccessToken(token); err != nil {
		c.String(http.StatusForbidden, err.Error())
		return false
	}
	return true
}

func requireBearerToken(h func(c *gin.Context)) func(c *gin.Context) {
	return func(c *gin.Context) {
		if verifyBearerToken(c) {
			h(c)
		}
	}
}

// NewRouter builds the gin router serving the admin REST surface against
// coordinator, plus a Swagger UI at /swagger/*any. RegisterMethod (or
// Register) must be called beforehand to populate the route table; callers
// that only need the built-in region routes can rely on init registering
// them automatically.
func NewRouter(coordinator *mwmregistry.Coordinator) *gin.Engine {
	Coordinator = coordinator

	router := gin.Default()
	v1 := router.Group("/api/v1")
	{
		for _, rm := range RestMethods() {
			switch rm.Verb {
			case GET:
				v1.GET(rm.Path, requireBearerToken(rm.Handler))
			case DELETE:
				v1.DELETE(rm.Path, requireBearerToken(rm.Handler))
			default:
				panic(fmt.Sprintf("httpapi: HTTP verb %d not supported", rm.Verb))
			}
		}
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	return router
}

func init() {
	RegisterMethod(GET, "/regions", GetRegions)
	RegisterMethod(GET, "/regions/:name", GetRegionByName)
	RegisterMethod(DELETE, "/regions/:name", DeregisterRegion)
}
