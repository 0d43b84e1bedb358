package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"srms-backend/internal/domain"
	"srms-backend/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Auth            service.AuthServiceInterface
	Catalog         service.CatalogServiceInterface
	Orders          service.OrderServiceInterface
	Reservations    service.ReservationServiceInterface
	Recommendations service.RecommendationServiceInterface
	Analytics       service.AnalyticsServiceInterface
}

func NewHandler(
	auth service.AuthServiceInterface,
	catalog service.CatalogServiceInterface,
	orders service.OrderServiceInterface,
	reservations service.ReservationServiceInterface,
	recommendations service.RecommendationServiceInterface,
	analytics service.AnalyticsServiceInterface,
) *Handler {
	return &Handler{
		Auth:            auth,
		Catalog:         catalog,
		Orders:          orders,
		Reservations:    reservations,
		Recommendations: recommendations,
		Analytics:       analytics,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.root).Methods("GET")
	r.HandleFunc("/api/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT", "PATCH")

	r.HandleFunc("/api/inventory", h.getInventory).Methods("GET")
	r.HandleFunc("/api/inventory/{id}", h.updateInventoryItem).Methods("PUT", "PATCH")

	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations", h.listReservations).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/kitchen/queue", h.kitchenQueue).Methods("GET")
	r.HandleFunc("/api/recommendations", h.recommend).Methods("POST")
	r.HandleFunc("/api/analytics", h.analytics).Methods("GET")
}

// decodeBody fills v from the request body. A missing or malformed
// body is treated as an empty object so downstream defaults absorb it.
func decodeBody(r *http.Request, v any) {
	_ = json.NewDecoder(r.Body).Decode(v)
}

func respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("SRMS Backend is running. Try /api/health or /api/menu"))
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "srms-backend",
		"time":    time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	decodeBody(r, &req)

	user, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"role":     user.Role,
		"username": user.Username,
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"menu": h.Catalog.Menu()})
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	fields := map[string]any{}
	decodeBody(r, &fields)

	item, err := h.Catalog.UpdateMenuItem(id, fields)
	if err != nil {
		switch err {
		case service.ErrMenuItemNotFound:
			respondError(w, http.StatusNotFound, "Menu item not found")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	records, lowStock := h.Catalog.Inventory()
	respondJSON(w, http.StatusOK, map[string]any{
		"inventory": records,
		"low_stock": lowStock,
	})
}

func (h *Handler) updateInventoryItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	fields := map[string]any{}
	decodeBody(r, &fields)

	record, err := h.Catalog.UpdateInventoryItem(id, fields)
	if err != nil {
		switch err {
		case service.ErrInventoryItemNotFound:
			respondError(w, http.StatusNotFound, "Inventory item not found")
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name *string `json:"name"`
		Date string  `json:"date"`
		Time string  `json:"time"`
		Size *int    `json:"size"`
	}
	decodeBody(r, &req)

	res := domain.Reservation{Name: "Guest", Date: req.Date, Time: req.Time, PartySize: 1}
	if req.Name != nil {
		res.Name = *req.Name
	}
	if req.Size != nil {
		res.PartySize = *req.Size
	}

	respondJSON(w, http.StatusCreated, h.Reservations.Create(res))
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"reservations": h.Reservations.List()})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerName    string                  `json:"customer_name"`
		OrderType       string                  `json:"order_type"`
		Type            string                  `json:"type"`
		TableNo         string                  `json:"table_no"`
		TableNumber     string                  `json:"table_number"`
		DeliveryAddress string                  `json:"delivery_address"`
		Items           []domain.OrderItemInput `json:"items"`
	}
	decodeBody(r, &req)

	orderType := req.OrderType
	if orderType == "" {
		orderType = req.Type
	}
	if orderType == "" {
		orderType = string(domain.TypeWalkIn)
	}
	tableNo := req.TableNo
	if tableNo == "" {
		tableNo = req.TableNumber
	}
	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Guest"
	}

	order := h.Orders.Create(domain.OrderDraft{
		CustomerName:    customerName,
		Type:            domain.OrderType(orderType),
		TableNo:         tableNo,
		DeliveryAddress: req.DeliveryAddress,
		Items:           req.Items,
	})
	respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	orderType := r.URL.Query().Get("order_type")
	if orderType == "" {
		orderType = r.URL.Query().Get("type")
	}
	kitchenOnly := r.URL.Query().Get("for") == "kitchen"

	orders := h.Orders.List(status, orderType, kitchenOnly)
	respondJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		Status string `json:"status"`
	}
	decodeBody(r, &req)

	order, err := h.Orders.UpdateStatus(id, req.Status)
	if err != nil {
		switch err {
		case service.ErrInvalidStatus:
			respondError(w, http.StatusBadRequest, "Invalid status")
		case service.ErrOrderNotFound:
			respondError(w, http.StatusNotFound, "Order not found")
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	png, err := h.Orders.QRCode(id)
	if err != nil {
		if err == service.ErrOrderNotFound {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) kitchenQueue(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"orders": h.Orders.KitchenQueue()})
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemIDs []int `json:"item_ids"`
	}
	decodeBody(r, &req)

	recs := h.Recommendations.Recommend(req.ItemIDs)
	respondJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Analytics.Summary())
}
