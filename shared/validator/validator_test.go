package validator_test

import (
	"strings"
	"testing"

	"teammeet/shared/validator"
)

type bookingTestStruct struct {
	RoomID    int64  `validate:"required"                          json:"room_id"`
	Day       string `validate:"required,datetime=2006-01-02"      json:"day"`
	StartHour int    `validate:"gte=0,lte=23"                      json:"start_hour"`
	EndHour   int    `validate:"required,gte=1,lte=24,gtfield=StartHour" json:"end_hour"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingTestStruct
		expectError bool
	}{
		{
			name: "valid booking window",
			data: &bookingTestStruct{
				RoomID:    3,
				Day:       "2026-09-14",
				StartHour: 10,
				EndHour:   12,
			},
		},
		{
			name: "missing room",
			data: &bookingTestStruct{
				Day:       "2026-09-14",
				StartHour: 10,
				EndHour:   12,
			},
			expectError: true,
		},
		{
			name: "day in wrong format",
			data: &bookingTestStruct{
				RoomID:    3,
				Day:       "14-09-2026",
				StartHour: 10,
				EndHour:   12,
			},
			expectError: true,
		},
		{
			name: "start hour past midnight",
			data: &bookingTestStruct{
				RoomID:    3,
				Day:       "2026-09-14",
				StartHour: 24,
				EndHour:   25,
			},
			expectError: true,
		},
		{
			name: "end hour not after start hour",
			data: &bookingTestStruct{
				RoomID:    3,
				Day:       "2026-09-14",
				StartHour: 12,
				EndHour:   12,
			},
			expectError: true,
		},
		{
			name: "end hour before start hour",
			data: &bookingTestStruct{
				RoomID:    3,
				Day:       "2026-09-14",
				StartHour: 12,
				EndHour:   10,
			},
			expectError: true,
		},
		{
			name: "full day window",
			data: &bookingTestStruct{
				RoomID:    3,
				Day:       "2026-09-14",
				StartHour: 0,
				EndHour:   24,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:  "valid required string",
			field: "test",
			tag:   "required",
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:  "valid email",
			field: "test@example.com",
			tag:   "email",
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:  "valid meeting type name",
			field: "URGENT",
			tag:   "oneof=DAILY WEEKLY URGENT CLIENT CELEBRATION",
		},
		{
			name:        "invalid meeting type name",
			field:       "STANDUP",
			tag:         "oneof=DAILY WEEKLY URGENT CLIENT CELEBRATION",
			expectError: true,
		},
		{
			name:  "hour in range",
			field: 23,
			tag:   "gte=0,lte=23",
		},
		{
			name:        "hour out of range",
			field:       24,
			tag:         "gte=0,lte=23",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"room_id":3,"day":"2026-09-14","start_hour":10,"end_hour":12}`,
		},
		{
			name:        "invalid day",
			jsonBody:    `{"room_id":3,"day":"next tuesday","start_hour":10,"end_hour":12}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"room_id":3,"day":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)

			var data bookingTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &bookingTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
