package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Afzal-gif888/campus-cafe-mate/auth"
	"github.com/Afzal-gif888/campus-cafe-mate/router"
	"github.com/Afzal-gif888/campus-cafe-mate/storage"
	"github.com/Afzal-gif888/campus-cafe-mate/stores"
	"github.com/Afzal-gif888/campus-cafe-mate/utils"
)

func setupFullRouter(t *testing.T) *gin.Engine {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	kv := storage.NewMemory()
	catalog := stores.NewCatalog(kv)
	orders := stores.NewOrders(kv)

	verifier, err := auth.NewStaticVerifier("admin", "CBIT23")
	assert.NoError(t, err)

	return router.SetupRouter(catalog, orders, verifier)
}

func TestPing(t *testing.T) {
	r := setupFullRouter(t)
	w := doJSON(r, "GET", "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginAdmin(t *testing.T) {
	r := setupFullRouter(t)

	w := doJSON(r, "POST", "/login", "", map[string]interface{}{
		"role":     "admin",
		"username": "admin",
		"password": "CBIT23",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data, ok := decodeData(t, w).(map[string]interface{})
	assert.True(t, ok)
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["role"])

	// The token works against an admin route.
	w = doJSON(r, "GET", "/orders", data["token"].(string), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginAdminWrongPassword(t *testing.T) {
	r := setupFullRouter(t)

	w := doJSON(r, "POST", "/login", "", map[string]interface{}{
		"role":     "admin",
		"username": "admin",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginStudent(t *testing.T) {
	r := setupFullRouter(t)

	w := doJSON(r, "POST", "/login", "", map[string]interface{}{
		"role":       "student",
		"rollNumber": "S123",
		"password":   "secret",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data, _ := decodeData(t, w).(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "student", user["role"])
	assert.Equal(t, "S123", user["rollNumber"])

	// A student token is refused on admin routes.
	w = doJSON(r, "GET", "/orders", data["token"].(string), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginValidation(t *testing.T) {
	r := setupFullRouter(t)

	// Missing password fails binding.
	w := doJSON(r, "POST", "/login", "", map[string]interface{}{
		"role":     "admin",
		"username": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown role fails binding.
	w = doJSON(r, "POST", "/login", "", map[string]interface{}{
		"role":     "barista",
		"password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
