package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/sbilibin2017/gw-messenger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMessageGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msgID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	sentAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		identity     string
		rawID        string
		mockSetup    func(m *MockMessageGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name:     "success",
			identity: "alice",
			rawID:    msgID.String(),
			mockSetup: func(m *MockMessageGetter) {
				m.EXPECT().
					Get(gomock.Any(), msgID, "alice").
					Return(&models.Message{
						MessageID: msgID,
						FromUser: models.PublicUser{
							Username:  "alice",
							FirstName: "Alice",
							LastName:  "Smith",
							Phone:     "+15550000001",
						},
						ToUser: models.PublicUser{
							Username:  "bob",
							FirstName: "Bob",
							LastName:  "Jones",
							Phone:     "+15550000002",
						},
						Body:   "hi",
						SentAt: sentAt,
						ReadAt: nil,
					}, nil)
			},
			expectedCode: 200,
			expectedBody: `{"message":{
				"id":"11111111-2222-3333-4444-555555555555",
				"from_user":{"username":"alice","first_name":"Alice","last_name":"Smith","phone":"+15550000001"},
				"to_user":{"username":"bob","first_name":"Bob","last_name":"Jones","phone":"+15550000002"},
				"body":"hi",
				"sent_at":"2026-08-01T10:00:00Z",
				"read_at":null
			}}`,
		},
		{
			name:         "invalid id",
			identity:     "alice",
			rawID:        "not-a-uuid",
			mockSetup:    func(m *MockMessageGetter) {},
			expectedCode: 400,
			expectedBody: `{"error":"invalid message id"}`,
		},
		{
			name:     "not found",
			identity: "alice",
			rawID:    msgID.String(),
			mockSetup: func(m *MockMessageGetter) {
				m.EXPECT().
					Get(gomock.Any(), msgID, "alice").
					Return(nil, services.ErrMessageNotFound)
			},
			expectedCode: 404,
			expectedBody: `{"error":"Message not found"}`,
		},
		{
			name:     "third party is forbidden",
			identity: "carol",
			rawID:    msgID.String(),
			mockSetup: func(m *MockMessageGetter) {
				m.EXPECT().
					Get(gomock.Any(), msgID, "carol").
					Return(nil, services.ErrForbidden)
			},
			expectedCode: 403,
			expectedBody: `{"error":"Forbidden"}`,
		},
		{
			name:     "internal server error",
			identity: "alice",
			rawID:    msgID.String(),
			mockSetup: func(m *MockMessageGetter) {
				m.EXPECT().
					Get(gomock.Any(), msgID, "alice").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMessageGetter(ctrl)
			tt.mockSetup(mockSvc)

			req := newAuthedRequest(http.MethodGet, "/messages/"+tt.rawID, tt.identity, map[string]string{
				"id": tt.rawID,
			})
			rr := httptest.NewRecorder()

			NewMessageGetHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
