package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"ets/src/boot"
	"ets/src/models"
	"ets/src/store"
	"ets/src/types"
	"ets/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"golang.org/x/crypto/bcrypt"
)

type TestSuite struct {
	suite.Suite
	User  *models.User
	Token *string
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("API_QRC_SECRET", "6368616e676520746869732070617373776f726420746f206120736563726574")
	os.Setenv("STORE_DRIVER", "memory")

	registerValidators()
	boot.InitStore()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	if err != nil {
		s.T().Fatalf("error hashing password: %s", err.Error())
	}
	user := models.User{
		Username: "suiteuser",
		Password: string(hashed),
		Email:    "suiteuser@example.com",
		FullName: "Suite User",
	}
	if err := store.Get().CreateUser(&user); err != nil {
		s.T().Fatalf("error creating user: %s", err.Error())
	}
	s.User = &user

	token, err := utils.GenerateJWT(user.Username, user.ID)
	if err != nil {
		s.T().Fatalf("error generating JWT token: %s", err.Error())
	}
	s.Token = &token
}

func newTestRouter() *gin.Engine {
	router := setupRouter()
	publicRoutes(router)
	guestAuthRoutes(router)
	privateRoutes(router)
	return router
}

func (s *TestSuite) get(router *gin.Engine, url, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", url, nil)
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) post(router *gin.Engine, url, token string, body any) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	rbytes, err := json.Marshal(body)
	assert.Nil(s.T(), err)
	req, _ := http.NewRequest("POST", url, strings.NewReader(string(rbytes)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	publicRoutes(router)

	w := s.get(router, "/api/v1/events", "")
	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestCatalogRoutes() {
	router := newTestRouter()

	s.Run("Should list all seeded events", func() {
		w := s.get(router, "/api/v1/events", "")
		assert.Equal(s.T(), 200, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		sjson := string(rbytes)
		assert.Equal(s.T(), int64(11), gjson.Get(sjson, "count").Int())
		assert.Equal(s.T(), "The Soundwaves Tour 2023", gjson.Get(sjson, "data.0.title").String())
	})

	s.Run("Should list featured events only", func() {
		w := s.get(router, "/api/v1/events/featured", "")
		assert.Equal(s.T(), 200, w.Code)
		sjson := w.Body.String()
		count := gjson.Get(sjson, "count").Int()
		assert.Greater(s.T(), count, int64(0))
		for _, e := range gjson.Get(sjson, "data").Array() {
			assert.True(s.T(), e.Get("is_featured").Bool())
		}
	})

	s.Run("Should list trending events only", func() {
		w := s.get(router, "/api/v1/events/trending", "")
		assert.Equal(s.T(), 200, w.Code)
		for _, e := range gjson.Get(w.Body.String(), "data").Array() {
			assert.True(s.T(), e.Get("is_trending").Bool())
		}
	})

	s.Run("Should filter events by category and city", func() {
		w := s.get(router, "/api/v1/events/category/1", "")
		assert.Equal(s.T(), 200, w.Code)
		for _, e := range gjson.Get(w.Body.String(), "data").Array() {
			assert.Equal(s.T(), int64(1), e.Get("category_id").Int())
		}

		w = s.get(router, "/api/v1/events/city/2", "")
		assert.Equal(s.T(), 200, w.Code)
		for _, e := range gjson.Get(w.Body.String(), "data").Array() {
			assert.Equal(s.T(), int64(2), e.Get("city_id").Int())
		}
	})

	s.Run("Should return a single event with 200 status", func() {
		w := s.get(router, "/api/v1/events/1", "")
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "the-soundwaves-tour-2023", gjson.Get(w.Body.String(), "data.slug").String())
	})

	s.Run("Should return 404 for an unknown event", func() {
		w := s.get(router, "/api/v1/events/999", "")
		assert.Equal(s.T(), 404, w.Code)
		assert.NotEmpty(s.T(), gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should list ticket types for an event", func() {
		w := s.get(router, "/api/v1/events/1/tickets", "")
		assert.Equal(s.T(), 200, w.Code)
		sjson := w.Body.String()
		assert.Equal(s.T(), int64(2), gjson.Get(sjson, "data.#").Int())
		assert.Equal(s.T(), "Standard", gjson.Get(sjson, "data.0.name").String())
		assert.Equal(s.T(), "59", gjson.Get(sjson, "data.0.price").String())
	})

	s.Run("Should list categories and cities", func() {
		w := s.get(router, "/api/v1/categories", "")
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), int64(4), gjson.Get(w.Body.String(), "count").Int())

		w = s.get(router, "/api/v1/cities", "")
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), int64(6), gjson.Get(w.Body.String(), "count").Int())
	})
}

func (s *TestSuite) TestOrdersRequireAuth() {
	router := newTestRouter()

	w := s.post(router, "/api/v1/orders", "", types.CreateOrderRequestBody{
		Items: []types.OrderItemRequest{{TicketTypeID: 1, Quantity: 1}},
	})
	assert.Equal(s.T(), 401, w.Code)

	w = s.get(router, "/api/v1/orders", "")
	assert.Equal(s.T(), 401, w.Code)

	w = s.get(router, "/api/v1/orders", "not-a-token")
	assert.Equal(s.T(), 401, w.Code)
}

func (s *TestSuite) TestAuthRoutes() {
	router := newTestRouter()

	s.Run("Should register a new user", func() {
		w := s.post(router, "/api/v1/auth/register", "", types.RegisterUserRequestBody{
			Username: "newuser",
			Password: "hunter2hunter2",
			Email:    "newuser@example.com",
			FullName: "New User",
		})
		assert.Equal(s.T(), 201, w.Code)
		assert.Greater(s.T(), gjson.Get(w.Body.String(), "id").Int(), int64(0))
	})

	s.Run("Should reject a duplicate username", func() {
		w := s.post(router, "/api/v1/auth/register", "", types.RegisterUserRequestBody{
			Username: "newuser",
			Password: "hunter2hunter2",
			Email:    "elsewhere@example.com",
			FullName: "New User",
		})
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should login with valid credentials", func() {
		w := s.post(router, "/api/v1/auth/login", "", types.LoginUserRequestBody{
			Username: "newuser",
			Password: "hunter2hunter2",
		})
		assert.Equal(s.T(), 200, w.Code)
		assert.NotEmpty(s.T(), gjson.Get(w.Body.String(), "token").String())
	})

	s.Run("Should reject a wrong password", func() {
		w := s.post(router, "/api/v1/auth/login", "", types.LoginUserRequestBody{
			Username: "newuser",
			Password: "wrong-password",
		})
		assert.Equal(s.T(), 401, w.Code)
	})
}

func (s *TestSuite) TestCheckoutFlow() {
	router := newTestRouter()
	token := *s.Token

	before := s.get(router, "/api/v1/events/1/tickets", "")
	assert.Equal(s.T(), 200, before.Code)
	stockBefore := gjson.Get(before.Body.String(), "data.0.available_quantity").Int()

	var orderID int64
	s.Run("Should create an order with computed totals", func() {
		w := s.post(router, "/api/v1/orders", token, types.CreateOrderRequestBody{
			// Client-sent totals are ignored by the server.
			TotalAmount: 1.00,
			ServiceFee:  0.00,
			Items:       []types.OrderItemRequest{{TicketTypeID: 4, Quantity: 2, PricePerItem: 1.00}},
		})
		assert.Equal(s.T(), 201, w.Code)
		sjson := w.Body.String()

		// 2 x 59.00 = 118.00, 12% fee = 14.16, total 132.16
		assert.Equal(s.T(), "14.16", gjson.Get(sjson, "order.service_fee").String())
		assert.Equal(s.T(), "132.16", gjson.Get(sjson, "order.total_amount").String())
		assert.Equal(s.T(), "completed", gjson.Get(sjson, "order.status").String())
		assert.NotEmpty(s.T(), gjson.Get(sjson, "order.reference").String())
		assert.Equal(s.T(), int64(1), gjson.Get(sjson, "items.#").Int())
		assert.Equal(s.T(), "59", gjson.Get(sjson, "items.0.price_per_item").String())
		orderID = gjson.Get(sjson, "order.id").Int()
	})

	s.Run("Should decrement inventory", func() {
		after := s.get(router, "/api/v1/events/1/tickets", "")
		assert.Equal(s.T(), 200, after.Code)
		stockAfter := gjson.Get(after.Body.String(), "data.0.available_quantity").Int()
		assert.Equal(s.T(), stockBefore-2, stockAfter)
	})

	s.Run("Should list own orders with items", func() {
		w := s.get(router, "/api/v1/orders", token)
		assert.Equal(s.T(), 200, w.Code)
		sjson := w.Body.String()
		assert.Greater(s.T(), gjson.Get(sjson, "count").Int(), int64(0))
		found := false
		for _, o := range gjson.Get(sjson, "data").Array() {
			if o.Get("id").Int() == orderID {
				found = true
				assert.Greater(s.T(), o.Get("items.#").Int(), int64(0))
			}
		}
		assert.True(s.T(), found)
	})

	s.Run("Should serve the order code as an attachment", func() {
		w := s.get(router, fmt.Sprintf("/api/v1/orders/%d/code", orderID), token)
		assert.Equal(s.T(), 200, w.Code)
		assert.Contains(s.T(), w.Header().Get("Content-Disposition"), "attachment")
	})

	s.Run("Should hide other users orders", func() {
		other := models.User{Username: "otheruser", Password: "x", Email: "other@example.com", FullName: "Other"}
		assert.NoError(s.T(), store.Get().CreateUser(&other))
		otherToken, err := utils.GenerateJWT(other.Username, other.ID)
		assert.Nil(s.T(), err)

		w := s.get(router, fmt.Sprintf("/api/v1/orders/%d/code", orderID), otherToken)
		assert.Equal(s.T(), 404, w.Code)
	})
}

func (s *TestSuite) TestOrderValidation() {
	router := newTestRouter()
	token := *s.Token

	s.Run("Should reject an empty order", func() {
		w := s.post(router, "/api/v1/orders", token, types.CreateOrderRequestBody{
			Items: []types.OrderItemRequest{},
		})
		assert.Equal(s.T(), 400, w.Code)
		assert.Equal(s.T(), "order must contain at least one item", gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should reject an unknown ticket type", func() {
		w := s.post(router, "/api/v1/orders", token, types.CreateOrderRequestBody{
			Items: []types.OrderItemRequest{{TicketTypeID: 999, Quantity: 1}},
		})
		assert.Equal(s.T(), 404, w.Code)
		assert.Equal(s.T(), "Ticket type with ID 999 not found", gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should enforce the per-order limit", func() {
		// Courtside is capped at 2 per order.
		w := s.post(router, "/api/v1/orders", token, types.CreateOrderRequestBody{
			Items: []types.OrderItemRequest{{TicketTypeID: 12, Quantity: 3}},
		})
		assert.Equal(s.T(), 400, w.Code)
		assert.Contains(s.T(), gjson.Get(w.Body.String(), "error").String(), "exceeds the limit")
	})

	s.Run("Should report remaining stock on shortfall", func() {
		scarce := models.TicketType{
			EventID:           1,
			Name:              "Last Row",
			Description:       "Nearly sold out",
			Price:             decimal.RequireFromString("10.00"),
			AvailableQuantity: 1,
			MaxPerOrder:       6,
		}
		assert.NoError(s.T(), store.Get().CreateTicketType(&scarce))

		w := s.post(router, "/api/v1/orders", token, types.CreateOrderRequestBody{
			Items: []types.OrderItemRequest{{TicketTypeID: scarce.ID, Quantity: 2}},
		})
		assert.Equal(s.T(), 400, w.Code)
		assert.Equal(s.T(), "Not enough tickets available for Last Row. Only 1 remaining.", gjson.Get(w.Body.String(), "error").String())
	})
}

func (s *TestSuite) TestEventCreation() {
	router := newTestRouter()
	token := *s.Token

	s.Run("Should reject an incomplete payload", func() {
		w := s.post(router, "/api/v1/events", token, map[string]any{"title": "test event"})
		assert.Equal(s.T(), 400, w.Code)
		assert.NotEmpty(s.T(), gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should reject an end date before the start date", func() {
		end := "2026-10-01 18:00:00 +00:00"
		w := s.post(router, "/api/v1/events", token, types.CreateEventRequestBody{
			Title:       "Backwards Gala",
			Description: "An event that ends before it starts",
			ImageURL:    "https://example.com/gala.jpg",
			Venue:       "Test Hall",
			Address:     "1 Test Way",
			CityID:      1,
			CategoryID:  1,
			StartDate:   "2026-10-02 18:00:00 +00:00",
			EndDate:     &end,
		})
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should create an event and its ticket types", func() {
		w := s.post(router, "/api/v1/events", token, types.CreateEventRequestBody{
			Title:       "Winter Jazz Night",
			Description: "A night of jazz standards",
			ImageURL:    "https://example.com/jazz.jpg",
			Venue:       "Blue Room",
			Address:     "12 Jazz St",
			CityID:      1,
			CategoryID:  2,
			StartDate:   "2026-12-12 20:00:00 +00:00",
		})
		assert.Equal(s.T(), 201, w.Code)
		eventID := gjson.Get(w.Body.String(), "id").Int()
		assert.Greater(s.T(), eventID, int64(0))

		w = s.post(router, fmt.Sprintf("/api/v1/events/%d/tickets", eventID), token, types.CreateTicketTypeRequestBody{
			Name:              "Table Seat",
			Description:       "Seated at a shared table",
			Price:             45.50,
			AvailableQuantity: 60,
		})
		assert.Equal(s.T(), 201, w.Code)

		resp := s.get(router, fmt.Sprintf("/api/v1/events/%d/tickets", eventID), "")
		assert.Equal(s.T(), 200, resp.Code)
		sjson := resp.Body.String()
		assert.Equal(s.T(), "Table Seat", gjson.Get(sjson, "data.0.name").String())
		assert.Equal(s.T(), int64(10), gjson.Get(sjson, "data.0.max_per_order").Int())

		event := s.get(router, fmt.Sprintf("/api/v1/events/%d", eventID), "")
		assert.Equal(s.T(), "winter-jazz-night", gjson.Get(event.Body.String(), "data.slug").String())
	})

	s.Run("Should 404 on ticket creation for an unknown event", func() {
		w := s.post(router, "/api/v1/events/999/tickets", token, types.CreateTicketTypeRequestBody{
			Name:              "Ghost Seat",
			Description:       "Nobody will sit here",
			Price:             1,
			AvailableQuantity: 1,
		})
		assert.Equal(s.T(), 404, w.Code)
	})
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
