package catalog

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	domain "github.com/BruksfildServices01/beauty-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/beauty-booking/internal/logger"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

type CreateServiceInput struct {
	Name        string
	Description string
	Duration    time.Duration
	Cost        decimal.Decimal
	Category    models.ServiceCategory
}

type CreateService struct {
	repo domain.Repository
}

func NewCreateService(repo domain.Repository) *CreateService {
	return &CreateService{repo: repo}
}

func (uc *CreateService) Execute(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	s := &models.Service{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Duration:    in.Duration,
		Cost:        in.Cost.Round(2),
		Category:    models.ServiceCategory(strings.ToUpper(string(in.Category))),
	}
	if err := domain.Validate(s); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	logger.L().Info("service created",
		zap.Uint("service_id", s.ID),
		zap.String("category", string(s.Category)),
	)
	return s, nil
}

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute lists the catalog, optionally restricted to one category.
func (uc *ListServices) Execute(ctx context.Context, category string) ([]models.Service, error) {
	c := models.ServiceCategory(strings.ToUpper(strings.TrimSpace(category)))
	if c != "" && !c.Valid() {
		return nil, apperr.Invalid("category", "must be one of LASHES, NAILS, BROWS")
	}
	return uc.repo.List(ctx, c)
}

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, id uint) (*models.Service, error) {
	return uc.repo.GetByID(ctx, id)
}

// ImageSaver persists an uploaded image and returns its public URL.
type ImageSaver interface {
	Save(ctx context.Context, prefix string, r io.Reader) (string, error)
}

type SetServiceImage struct {
	repo   domain.Repository
	images ImageSaver
}

func NewSetServiceImage(repo domain.Repository, images ImageSaver) *SetServiceImage {
	return &SetServiceImage{repo: repo, images: images}
}

func (uc *SetServiceImage) Execute(ctx context.Context, id uint, r io.Reader) (*models.Service, error) {
	if uc.images == nil {
		return nil, apperr.New(apperr.CodeUnavailable, "image storage is not configured")
	}

	// 404 before doing any image work
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	url, err := uc.images.Save(ctx, "services/"+strconv.FormatUint(uint64(id), 10), r)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SetImageURL(ctx, id, url); err != nil {
		return nil, err
	}

	return uc.repo.GetByID(ctx, id)
}
