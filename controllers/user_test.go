package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henriqueacribeiro/invenhelper/models"
)

type fakeUserService struct {
	users    map[string]*models.User
	response models.Response
}

func (f *fakeUserService) FindByUsername(_ context.Context, username string) (*models.User, bool) {
	user, ok := f.users[username]
	return user, ok
}

func (f *fakeUserService) CheckUserCanPerformAction(_ context.Context, _ models.Permission, _, _ string) error {
	return nil
}

func (f *fakeUserService) CreateNewUser(_ context.Context, _ models.CreateUserDocument) models.Response {
	return f.response
}

func (f *fakeUserService) UpdateUserInformation(_ context.Context, _ models.UpdateUserDocument) models.Response {
	return f.response
}

func (f *fakeUserService) DeleteUser(_ context.Context, _ models.DeleteUserDocument) models.Response {
	return f.response
}

func userRouter(svc *fakeUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewUserController(svc).Register(r)
	return r
}

func sampleUser(t *testing.T) *models.User {
	t.Helper()
	user, err := models.NewUserFromDocument(models.CreateUserDocument{
		Username: "jdoe",
		Name:     "John Doe",
	})
	require.NoError(t, err)
	return user
}

func TestCreateUserEndpoint(t *testing.T) {
	user := sampleUser(t)
	svc := &fakeUserService{response: models.NewResponseWithObject(true, "Success creating the user", user)}
	router := userRouter(svc)

	payload := `{"requiring_user":"admin","username":"jdoe","name":"John Doe"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/user/create", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])

	object, ok := body["object"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "jdoe", object["username"])
	assert.NotContains(t, object, "permissions", "permissions never leave the service")
}

func TestCreateUserEndpointDenied(t *testing.T) {
	svc := &fakeUserService{response: models.NewResponseWithInformation(false, "The user viewer does not have permissions to create user")}
	router := userRouter(svc)

	payload := `{"requiring_user":"viewer","username":"jdoe","name":"John Doe"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/user/create", strings.NewReader(payload)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateUserEndpointMalformedBody(t *testing.T) {
	router := userRouter(&fakeUserService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/user/create", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Error on JSON body. Check the information", body["information"])
}

func TestUpdateUserEndpoint(t *testing.T) {
	user := sampleUser(t)
	svc := &fakeUserService{response: models.NewResponseWithObject(true, "User updated", user)}
	router := userRouter(svc)

	payload := `{"requiring_user":"admin","username":"jdoe","name":"Jane Doe"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/user/updateUser", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDeleteUserEndpoint(t *testing.T) {
	svc := &fakeUserService{response: models.NewResponse(true)}
	router := userRouter(svc)

	payload := `{"requiring_user":"admin","user_to_delete":"jdoe"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/user/deleteUser", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, map[string]any{"success": true}, body, "deletion reports only the success flag")
}

func TestDeleteUserEndpointFailure(t *testing.T) {
	svc := &fakeUserService{response: models.NewResponseWithInformation(false, "Username to delete not found: jdoe")}
	router := userRouter(svc)

	payload := `{"requiring_user":"admin","user_to_delete":"jdoe"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/user/deleteUser", strings.NewReader(payload)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Username to delete not found: jdoe", body["information"])
}
