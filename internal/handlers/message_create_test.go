package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-messenger/internal/middlewares"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMessageCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	sentAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		identity     string
		reqBody      CreateMessageRequest
		rawBody      string
		mockSetup    func(m *MockMessageCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name:     "success",
			identity: "alice",
			reqBody:  CreateMessageRequest{ToUsername: "bob", Body: "hi"},
			mockSetup: func(m *MockMessageCreator) {
				m.EXPECT().
					Create(gomock.Any(), "alice", "bob", "hi").
					Return(&models.MessageDB{
						MessageID:    msgID,
						FromUsername: "alice",
						ToUsername:   "bob",
						Body:         "hi",
						SentAt:       sentAt,
						ReadAt:       nil,
					}, nil)
			},
			expectedCode: 201,
			expectedBody: `{"message":{
				"id":"11111111-2222-3333-4444-555555555555",
				"from_username":"alice",
				"to_username":"bob",
				"body":"hi",
				"sent_at":"2026-08-01T10:00:00Z",
				"read_at":null
			}}`,
		},
		{
			name:     "missing body",
			identity: "alice",
			reqBody:  CreateMessageRequest{ToUsername: "bob", Body: ""},
			mockSetup: func(m *MockMessageCreator) {
				m.EXPECT().
					Create(gomock.Any(), "alice", "bob", "").
					Return(nil, services.ErrValidation)
			},
			expectedCode: 400,
			expectedBody: `{"error":"Recipient and body are required"}`,
		},
		{
			name:     "recipient not found",
			identity: "alice",
			reqBody:  CreateMessageRequest{ToUsername: "ghost", Body: "hi"},
			mockSetup: func(m *MockMessageCreator) {
				m.EXPECT().
					Create(gomock.Any(), "alice", "ghost", "hi").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedBody: `{"error":"Recipient not found"}`,
		},
		{
			name:     "internal server error",
			identity: "alice",
			reqBody:  CreateMessageRequest{ToUsername: "bob", Body: "hi"},
			mockSetup: func(m *MockMessageCreator) {
				m.EXPECT().
					Create(gomock.Any(), "alice", "bob", "hi").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "invalid json",
			identity:     "alice",
			rawBody:      "{broken",
			mockSetup:    func(m *MockMessageCreator) {},
			expectedCode: 400,
			expectedBody: `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMessageCreator(ctrl)
			tt.mockSetup(mockSvc)

			var body []byte
			if tt.rawBody != "" {
				body = []byte(tt.rawBody)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewReader(body))
			req = req.WithContext(middlewares.SetUsernameToContext(context.Background(), tt.identity))
			rr := httptest.NewRecorder()

			NewMessageCreateHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
