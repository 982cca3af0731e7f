package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/dto"
	"github.com/BruksfildServices01/beauty-booking/internal/httperr"
	"github.com/BruksfildServices01/beauty-booking/internal/httpresp"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
	ucCatalog "github.com/BruksfildServices01/beauty-booking/internal/usecase/catalog"
)

type ServiceHandler struct {
	list     *ucCatalog.ListServices
	get      *ucCatalog.GetService
	create   *ucCatalog.CreateService
	setImage *ucCatalog.SetServiceImage
}

func NewServiceHandler(
	list *ucCatalog.ListServices,
	get *ucCatalog.GetService,
	create *ucCatalog.CreateService,
	setImage *ucCatalog.SetServiceImage,
) *ServiceHandler {
	return &ServiceHandler{
		list:     list,
		get:      get,
		create:   create,
		setImage: setImage,
	}
}

// List accepts an optional ?category= filter.
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context(), c.Query("category"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromServices(services))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "service")
	if !ok {
		return
	}

	s, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromService(s))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !httperr.BindJSON(c, &req) {
		return
	}

	s, err := h.create.Execute(c.Request.Context(), ucCatalog.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Duration:    time.Duration(req.DurationMinutes) * time.Minute,
		Cost:        req.Cost,
		Category:    models.ServiceCategory(req.Category),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.FromService(s))
}

// UploadImage expects a multipart form with an "image" file.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	id, ok := idParam(c, "service")
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.FromError(c, apperr.Invalid("image", "required"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.FromError(c, apperr.Invalid("image", "unreadable upload"))
		return
	}
	defer f.Close()

	s, err := h.setImage.Execute(c.Request.Context(), id, f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromService(s))
}
