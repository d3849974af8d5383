package handlers_test

import (
	"net/http"

	"github.com/SscSPs/fx_settlement/internal/apperrors"
	"github.com/SscSPs/fx_settlement/internal/core/domain"
	"github.com/SscSPs/fx_settlement/internal/dto"
)

func (suite *HandlerTestSuite) TestUpsertMe_UsesTokenSubject() {
	req := dto.UpsertUserRequest{Name: "Treasury Desk"}
	suite.mockUserService.On("UpsertUser", requestCtx, testActorID, req).
		Return(&domain.User{UserID: testActorID, Name: "Treasury Desk"}, nil).Once()

	w := suite.do(suite.router, http.MethodPut, "/api/v1/users/me", `{"name":"Treasury Desk"}`)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.UserResponse
	suite.decode(w, &res)
	suite.Equal(testActorID, res.UserID)
	suite.Equal("Treasury Desk", res.Name)
}

func (suite *HandlerTestSuite) TestUpsertMe_InvalidEmail() {
	w := suite.do(suite.router, http.MethodPut, "/api/v1/users/me", `{"name":"Desk","email":"not-an-email"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetMe_NotRecordedYet() {
	suite.mockUserService.On("GetUserByID", requestCtx, testActorID).
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/users/me", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListUsers_Defaults() {
	suite.mockUserService.On("ListUsers", requestCtx, 20, 0).
		Return([]domain.User{{UserID: "a", Name: "Ana"}, {UserID: "b", Name: "Bo"}}, nil).Once()

	w := suite.do(suite.router, http.MethodGet, "/api/v1/users", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListUsersResponse
	suite.decode(w, &res)
	suite.Len(res.Users, 2)
}
