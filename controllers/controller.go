package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/henriqueacribeiro/invenhelper/models"
)

type Controller interface {
	Register(r *gin.Engine)
}

// writeResponse serializes a service Response: the full projection on
// success, the information projection on business failures.
func writeResponse(c *gin.Context, response models.Response) {
	if response.Success() {
		c.JSON(http.StatusOK, response.JSONWithObject())
		return
	}
	c.JSON(http.StatusBadRequest, response.JSONWithInformation())
}

// writeBadBody reports a malformed request body without leaking the parser
// error.
func writeBadBody(c *gin.Context) {
	response := models.NewResponseWithInformation(false, "Error on JSON body. Check the information")
	c.JSON(http.StatusBadRequest, response.JSONWithInformation())
}
