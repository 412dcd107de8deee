package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/henriqueacribeiro/invenhelper/models"
	"github.com/henriqueacribeiro/invenhelper/service"
)

type productController struct {
	products service.ProductService
}

func NewProductController(products service.ProductService) Controller {
	return &productController{products: products}
}

func (p *productController) Register(r *gin.Engine) {
	group := r.Group("/product")
	group.GET("/getAllIdentifiers", p.GetAllIdentifiers)
	group.GET("/getByID", p.GetByID)
	group.POST("/create", p.Create)
	group.PUT("/updateProduct", p.Update)
	group.PUT("/increaseQuantity", p.IncreaseQuantity)
	group.PUT("/decreaseQuantity", p.DecreaseQuantity)
}

func (p *productController) GetAllIdentifiers(c *gin.Context) {
	c.JSON(http.StatusOK, p.products.ListIdentifiers(c))
}

func (p *productController) GetByID(c *gin.Context) {
	product, ok := p.products.FindByBusinessKey(c, c.Query("identifier"))
	if !ok {
		response := models.NewResponseWithInformation(false, "Product not found")
		c.JSON(http.StatusBadRequest, response.JSONWithInformation())
		return
	}
	c.JSON(http.StatusOK, product.ConvertToJSON())
}

func (p *productController) Create(c *gin.Context) {
	var doc models.CreateProductDocument
	if err := c.ShouldBindBodyWithJSON(&doc); err != nil {
		writeBadBody(c)
		return
	}
	writeResponse(c, p.products.CreateNewProduct(c, doc))
}

func (p *productController) Update(c *gin.Context) {
	var doc models.UpdateProductDocument
	if err := c.ShouldBindBodyWithJSON(&doc); err != nil {
		writeBadBody(c)
		return
	}
	writeResponse(c, p.products.UpdateProductInformation(c, doc))
}

func (p *productController) IncreaseQuantity(c *gin.Context) {
	p.changeQuantity(c, p.products.IncreaseQuantity)
}

func (p *productController) DecreaseQuantity(c *gin.Context) {
	p.changeQuantity(c, p.products.DecreaseQuantity)
}

func (p *productController) changeQuantity(c *gin.Context,
	operation func(ctx context.Context, businessKey string, quantity int, requiringUser string) models.Response) {

	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		response := models.NewResponseWithInformation(false, "Invalid quantity. Check the request")
		c.JSON(http.StatusBadRequest, response.JSONWithInformation())
		return
	}
	writeResponse(c, operation(c, c.Query("identifier"), quantity, c.Query("requiring_user")))
}
