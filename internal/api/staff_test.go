package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skyward/aerodesk/internal/auth"
	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/models/dtos"
	"skyward/aerodesk/internal/services"
)

func TestBoardTicketHandlerInvalidPayload(t *testing.T) {
	handler := BoardTicketHandler(&services.BoardingService{})

	req := httptest.NewRequest("POST", "/api/v1/staff/flights/x/board", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestBoardTicketHandlerMissingTicketNumber(t *testing.T) {
	handler := BoardTicketHandler(&services.BoardingService{})

	body, _ := json.Marshal(dtos.BoardRequest{})
	req := httptest.NewRequest("POST", "/api/v1/staff/flights/x/board", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != string(constants.APIStatusError) {
		t.Errorf("Expected error status, got %s", response.Status)
	}
}

func TestCabinetHandlerUnauthorized(t *testing.T) {
	handler := CabinetHandler(&services.CabinetService{})

	req := httptest.NewRequest("GET", "/api/v1/cabinet", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rr.Code)
	}
}

func TestStaffRedirectHandler(t *testing.T) {
	staffSvc := services.NewStaffService(nil, nil, nil)
	handler := StaffRedirectHandler(staffSvc)

	session := &common.SessionData{
		IsStaff: true,
		Groups:  []string{constants.GroupCheckInManagers.String()},
	}

	req := httptest.NewRequest("GET", "/api/v1/staff/redirect", nil)
	req = req.WithContext(auth.SetSession(req.Context(), session))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	data, _ := response.Data.(map[string]any)
	if data["redirect"] != "/staff/check-in-manager" {
		t.Errorf("Expected check-in manager landing, got %v", data["redirect"])
	}
}

func TestStaffRedirectHandlerNoLanding(t *testing.T) {
	handler := StaffRedirectHandler(services.NewStaffService(nil, nil, nil))

	session := &common.SessionData{IsStaff: true}
	req := httptest.NewRequest("GET", "/api/v1/staff/redirect", nil)
	req = req.WithContext(auth.SetSession(req.Context(), session))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", rr.Code)
	}
}
