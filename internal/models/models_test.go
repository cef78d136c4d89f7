package models

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestSuccessResponse(t *testing.T) {
	response := Success("test data")

	if !response.Success {
		t.Error("Expected success to be true")
	}
	if response.Data == nil || *response.Data != "test data" {
		t.Errorf("Expected data to be 'test data', got %v", response.Data)
	}
	if response.Error != "" {
		t.Errorf("Expected no error, got %q", response.Error)
	}
}

func TestErrorResponse(t *testing.T) {
	response := Error("something went wrong")

	if response.Success {
		t.Error("Expected success to be false")
	}
	if response.Data != nil {
		t.Errorf("Expected no data, got %v", response.Data)
	}
	if response.Error != "something went wrong" {
		t.Errorf("Expected error 'something went wrong', got %q", response.Error)
	}
}

func TestSuccessSerializationOmitsError(t *testing.T) {
	payload, err := json.Marshal(Success(NewHealthInfo("1.2.3")))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"success":true,"data":{"status":"healthy","version":"1.2.3"}}`
	if string(payload) != want {
		t.Errorf("Expected %s, got %s", want, payload)
	}
	if strings.Contains(string(payload), "error") {
		t.Errorf("Expected error key to be absent, got %s", payload)
	}
}

func TestErrorSerializationOmitsData(t *testing.T) {
	payload, err := json.Marshal(Error("Not found: /missing"))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"success":false,"error":"Not found: /missing"}`
	if string(payload) != want {
		t.Errorf("Expected %s, got %s", want, payload)
	}
	if strings.Contains(string(payload), "data") {
		t.Errorf("Expected data key to be absent, got %s", payload)
	}
	if strings.Contains(string(payload), "null") {
		t.Errorf("Expected no null literals, got %s", payload)
	}
}

func TestSuccessRoundTrip(t *testing.T) {
	original := Success(NewHealthInfo("0.1.0"))
	payload, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded APIResponse[HealthInfo]
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !decoded.Success {
		t.Error("Expected success to survive the round trip")
	}
	if decoded.Data == nil || *decoded.Data != *original.Data {
		t.Errorf("Expected data %v, got %v", original.Data, decoded.Data)
	}
}

func TestErrorRoundTrip(t *testing.T) {
	payload, err := json.Marshal(Error("boom"))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded APIResponse[struct{}]
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.Success {
		t.Error("Expected success to be false after round trip")
	}
	if decoded.Error != "boom" {
		t.Errorf("Expected error 'boom', got %q", decoded.Error)
	}
}

func TestAppErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{"not found", NotFound("/missing"), "Not found: /missing"},
		{"bad request", BadRequest("missing field"), "Bad request: missing field"},
		{"internal", Internal("db down"), "Internal error: db down"},
		{"unauthorized", Unauthorized(), "Unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAppErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound("x"), http.StatusNotFound},
		{"bad request", BadRequest("x"), http.StatusBadRequest},
		{"internal", Internal("x"), http.StatusInternalServerError},
		{"unauthorized", Unauthorized(), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, got)
			}
		})
	}
}
