package api

import (
	"net/http"
	"strconv"
	"time"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/services"

	"github.com/go-chi/chi/v5"
)

// CheckoutHandler handles GET /api/v1/payment/{name}/{total}/{amount}
//
// Mints a hosted checkout session and 303-redirects the browser to it.
// Total is in cents; amount is the passenger count.
func CheckoutHandler(payment *services.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		product := chi.URLParam(r, "name")

		total, err := strconv.ParseInt(chi.URLParam(r, "total"), 10, 64)
		if err != nil || total <= 0 {
			common.RespondError(w, initTime, nil, "Invalid payment amount", http.StatusBadRequest)
			return
		}

		quantity, err := strconv.Atoi(chi.URLParam(r, "amount"))
		if err != nil || quantity < 1 {
			common.RespondError(w, initTime, nil, "Invalid quantity", http.StatusBadRequest)
			return
		}

		checkout, err := payment.CreateCheckout(product, total, quantity)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create checkout session", http.StatusBadGateway)
			return
		}

		http.Redirect(w, r, checkout.CheckoutURL, http.StatusSeeOther)
	}
}

// PaymentSuccessHandler handles GET /payment/success, the hosted
// checkout return URL.
func PaymentSuccessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.RespondSuccess(w, time.Now(), "Thanks for your order!", nil)
	}
}

// PaymentCancelHandler handles GET /payment/cancel.
func PaymentCancelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.RespondSuccess(w, time.Now(), "Forgot to add something to your cart? Shop around then come back to pay!", nil)
	}
}
