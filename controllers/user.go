package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/henriqueacribeiro/invenhelper/models"
	"github.com/henriqueacribeiro/invenhelper/service"
)

type userController struct {
	users service.UserService
}

func NewUserController(users service.UserService) Controller {
	return &userController{users: users}
}

func (u *userController) Register(r *gin.Engine) {
	group := r.Group("/user")
	group.POST("/create", u.Create)
	group.PUT("/updateUser", u.Update)
	group.DELETE("/deleteUser", u.Delete)
}

func (u *userController) Create(c *gin.Context) {
	var doc models.CreateUserDocument
	if err := c.ShouldBindBodyWithJSON(&doc); err != nil {
		writeBadBody(c)
		return
	}
	writeResponse(c, u.users.CreateNewUser(c, doc))
}

func (u *userController) Update(c *gin.Context) {
	var doc models.UpdateUserDocument
	if err := c.ShouldBindBodyWithJSON(&doc); err != nil {
		writeBadBody(c)
		return
	}
	writeResponse(c, u.users.UpdateUserInformation(c, doc))
}

func (u *userController) Delete(c *gin.Context) {
	var doc models.DeleteUserDocument
	if err := c.ShouldBindBodyWithJSON(&doc); err != nil {
		writeBadBody(c)
		return
	}

	response := u.users.DeleteUser(c, doc)
	if response.Success() {
		c.JSON(http.StatusOK, response.JSONWithSuccess())
		return
	}
	c.JSON(http.StatusBadRequest, response.JSONWithInformation())
}
