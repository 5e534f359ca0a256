package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/cart"
	"backend/entity"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCartRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.ItemCategory{}, &entity.Item{}))

	svc := services.NewCartService(cart.NewRegistry(), repository.NewItemRepository(db), 250)
	ctrl := NewCartController(svc)

	r := gin.New()
	ct := r.Group("/cart/:terminal")
	{
		ct.GET("", ctrl.Get)
		ct.DELETE("", ctrl.Clear)
		ct.POST("/items", ctrl.AddItem)
		ct.DELETE("/items/:itemId", ctrl.RemoveItem)
		ct.PATCH("/items/:itemId/increase", ctrl.Increase)
		ct.PATCH("/items/:itemId/decrease", ctrl.Decrease)
		ct.POST("/order", ctrl.BeginOrder)
		ct.PATCH("/order/table", ctrl.BindTable)
		ct.DELETE("/order", ctrl.ResetOrder)
	}
	return r, db
}

func seedItem(t *testing.T, db *gorm.DB, name string, price int64, available bool) uint {
	t.Helper()
	cat := entity.ItemCategory{Name: "Main Dishes " + name, Active: true}
	require.NoError(t, db.Create(&cat).Error)
	it := entity.Item{Name: name, Price: price, Available: available, ItemCategoryID: cat.ID}
	require.NoError(t, db.Create(&it).Error)
	return it.ID
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type cartEnvelope struct {
	OK   bool              `json:"ok"`
	Data services.CartView `json:"data"`
}

func decodeCart(t *testing.T, rr *httptest.ResponseRecorder) services.CartView {
	t.Helper()
	var env cartEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env.Data
}

func TestCartFlow(t *testing.T) {
	r, db := newCartRouter(t)
	pilau := seedItem(t, db, "Pilau", 10000, true)
	chai := seedItem(t, db, "Chai", 1000, true)

	// add twice, same item -> merged line
	body := fmt.Sprintf(`{"itemId":%d,"qty":2}`, pilau)
	rr := do(t, r, http.MethodPost, "/cart/counter-1/items", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	body = fmt.Sprintf(`{"itemId":%d,"qty":1}`, pilau)
	rr = do(t, r, http.MethodPost, "/cart/counter-1/items", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	v := decodeCart(t, rr)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, 3, v.Lines[0].Qty)
	assert.Equal(t, int64(30000), v.Lines[0].LineTotal)

	// second item, then derived totals: 31000 subtotal, 2.5% tax = 775
	body = fmt.Sprintf(`{"itemId":%d,"qty":1}`, chai)
	rr = do(t, r, http.MethodPost, "/cart/counter-1/items", body)
	require.Equal(t, http.StatusCreated, rr.Code)
	v = decodeCart(t, rr)
	assert.Equal(t, int64(31000), v.Totals.Subtotal)
	assert.Equal(t, int64(775), v.Totals.Tax)
	assert.Equal(t, int64(31775), v.Totals.GrandTotal)

	// decrease to the floor
	path := fmt.Sprintf("/cart/counter-1/items/%d/decrease", chai)
	rr = do(t, r, http.MethodPatch, path, "")
	require.Equal(t, http.StatusOK, rr.Code)
	v = decodeCart(t, rr)
	require.Len(t, v.Lines, 2)
	assert.Equal(t, 1, v.Lines[1].Qty, "decrease floors at 1")

	// remove deletes the line regardless of quantity
	path = fmt.Sprintf("/cart/counter-1/items/%d", pilau)
	rr = do(t, r, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, rr.Code)
	v = decodeCart(t, rr)
	require.Len(t, v.Lines, 1)
	assert.Equal(t, int64(1000), v.Totals.Subtotal)

	// clear resets fully
	rr = do(t, r, http.MethodDelete, "/cart/counter-1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	rr = do(t, r, http.MethodGet, "/cart/counter-1", "")
	v = decodeCart(t, rr)
	assert.Empty(t, v.Lines)
	assert.Equal(t, int64(0), v.Totals.GrandTotal)
}

func TestAddItem_UnknownAndUnavailable(t *testing.T) {
	r, db := newCartRouter(t)
	hidden := seedItem(t, db, "Ugali", 3000, false)

	rr := do(t, r, http.MethodPost, "/cart/counter-1/items", `{"itemId":9999,"qty":1}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	body := fmt.Sprintf(`{"itemId":%d,"qty":1}`, hidden)
	rr = do(t, r, http.MethodPost, "/cart/counter-1/items", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddItem_InvalidQtyRejected(t *testing.T) {
	r, db := newCartRouter(t)
	pilau := seedItem(t, db, "Pilau", 10000, true)

	for _, qty := range []int{0, -2} {
		body := fmt.Sprintf(`{"itemId":%d,"qty":%d}`, pilau, qty)
		rr := do(t, r, http.MethodPost, "/cart/counter-1/items", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), cart.ErrInvalidQty.Error())
	}

	// nothing landed in the cart
	rr := do(t, r, http.MethodGet, "/cart/counter-1", "")
	assert.Empty(t, decodeCart(t, rr).Lines)
}

func TestOrderContextEndpoints(t *testing.T) {
	r, db := newCartRouter(t)
	pilau := seedItem(t, db, "Pilau", 10000, true)

	// table can be bound before the order begins
	rr := do(t, r, http.MethodPatch, "/cart/counter-1/order/table", `{"tableNumber":"T5"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, r, http.MethodPost, "/cart/counter-1/order",
		`{"customerName":"Asha","customerAddress":"Kariakoo","customerContact":"0700000000"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var env struct {
		Data cart.OrderContext `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	assert.True(t, strings.HasPrefix(env.Data.OrderCode, "POS-"))
	assert.Equal(t, "T5", env.Data.TableNumber)

	// cart content survives an order reset
	body := fmt.Sprintf(`{"itemId":%d,"qty":1}`, pilau)
	rr = do(t, r, http.MethodPost, "/cart/counter-1/items", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, r, http.MethodDelete, "/cart/counter-1/order", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, r, http.MethodGet, "/cart/counter-1", "")
	v := decodeCart(t, rr)
	require.Len(t, v.Lines, 1)
	assert.Empty(t, v.Order.OrderCode)
}

func TestCarts_AreIsolatedPerTerminal(t *testing.T) {
	r, db := newCartRouter(t)
	pilau := seedItem(t, db, "Pilau", 10000, true)

	body := fmt.Sprintf(`{"itemId":%d,"qty":1}`, pilau)
	rr := do(t, r, http.MethodPost, "/cart/counter-1/items", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, r, http.MethodGet, "/cart/counter-2", "")
	v := decodeCart(t, rr)
	assert.Empty(t, v.Lines)
}
