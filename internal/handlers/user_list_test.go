package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-messenger/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUserListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockUserLister)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().
					All(gomock.Any()).
					Return([]models.PublicUser{
						{Username: "alice", FirstName: "Alice", LastName: "Smith", Phone: "+15550000001"},
						{Username: "bob", FirstName: "Bob", LastName: "Jones", Phone: "+15550000002"},
					}, nil)
			},
			expectedCode: 200,
			expectedBody: `{"users":[
				{"username":"alice","first_name":"Alice","last_name":"Smith","phone":"+15550000001"},
				{"username":"bob","first_name":"Bob","last_name":"Jones","phone":"+15550000002"}
			]}`,
		},
		{
			name: "empty listing",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().
					All(gomock.Any()).
					Return([]models.PublicUser{}, nil)
			},
			expectedCode: 200,
			expectedBody: `{"users":[]}`,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().
					All(gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserLister(ctrl)
			tt.mockSetup(mockSvc)

			req := newAuthedRequest(http.MethodGet, "/users", "alice", nil)
			rr := httptest.NewRecorder()

			NewUserListHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
