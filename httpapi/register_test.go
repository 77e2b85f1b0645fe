package httpapi

import (
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegister_RejectsDuplicateVerbAndPath(t *testing.T) {
	handler := func(c *gin.Context) {}

	if err := RegisterMethod(GET, "/widgets/:id", handler); err != nil {
		t.Fatalf("unexpected error on first registration: %v", err)
	}
	if err := RegisterMethod(GET, "/widgets/:id", handler); err == nil {
		t.Fatal("expected duplicate verb+path registration to fail")
	}
	// A different verb for the same path is not a duplicate.
	if err := RegisterMethod(DELETE, "/widgets/:id", handler); err != nil {
		t.Fatalf("unexpected error registering a distinct verb for the same path: %v", err)
	}
}

func TestRestMethods_IncludesBuiltInRegionRoutes(t *testing.T) {
	methods := RestMethods()
	if _, ok := methods["1_/regions"]; !ok {
		t.Fatal("expected the built-in GET /regions route to be registered by init")
	}
}
