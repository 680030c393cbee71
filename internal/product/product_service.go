package product

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/BaoDuy1703/Ecommerce/internal/cloudinary"
	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"
)

type CommerceAPI interface {
	ListProducts(ctx context.Context) ([]commerce.Product, error)
	GetProduct(ctx context.Context, id string) (commerce.Product, error)
	CreateProduct(ctx context.Context, input commerce.ProductInput) (commerce.Product, error)
	UpdateProduct(ctx context.Context, id string, input commerce.ProductInput) (commerce.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type Service interface {
	// List and Detail serve the storefront catalog from the cache;
	// concurrent readers share one upstream fetch per key.
	List(ctx context.Context) ([]ProductResponse, error)
	Detail(ctx context.Context, productID string) (ProductResponse, error)

	// Admin mutations invalidate the affected keys so the next read
	// refetches.
	Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	Update(ctx context.Context, productID string, req UpdateProductRequest) (ProductResponse, error)
	Delete(ctx context.Context, productID string) error

	UploadImage(ctx context.Context, file multipart.File, filename string) (string, error)
}

type service struct {
	api    CommerceAPI
	store  *syncstore.Store
	images cloudinary.Service
	logger *zap.Logger
}

func NewService(api CommerceAPI, store *syncstore.Store, images cloudinary.Service, logger *zap.Logger) Service {
	if api == nil {
		panic("product: commerce api is required")
	}
	if store == nil {
		panic("product: sync store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		api:    api,
		store:  store,
		images: images,
		logger: logger.Named("product.service"),
	}
}

func (s *service) List(ctx context.Context) ([]ProductResponse, error) {
	v, err := s.store.Get(ctx, syncstore.ProductsKey(), func(ctx context.Context) (any, error) {
		return s.api.ListProducts(ctx)
	})
	if err != nil {
		return nil, err
	}

	products := v.([]commerce.Product)
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toResponse(p))
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, productID string) (ProductResponse, error) {
	if productID == "" {
		return ProductResponse{}, ErrInvalidProductID
	}

	v, err := s.store.Get(ctx, syncstore.ProductKey(productID), func(ctx context.Context) (any, error) {
		return s.api.GetProduct(ctx, productID)
	})
	if err != nil {
		return ProductResponse{}, err
	}
	return toResponse(v.(commerce.Product)), nil
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error) {
	p, err := s.api.CreateProduct(ctx, commerce.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return ProductResponse{}, err
	}

	s.store.Invalidate(syncstore.ProductsKey())
	s.logger.Info("product created", zap.String("product_id", p.ID))
	return toResponse(p), nil
}

func (s *service) Update(ctx context.Context, productID string, req UpdateProductRequest) (ProductResponse, error) {
	if productID == "" {
		return ProductResponse{}, ErrInvalidProductID
	}

	p, err := s.api.UpdateProduct(ctx, productID, commerce.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return ProductResponse{}, err
	}

	s.store.Invalidate(syncstore.ProductsKey(), syncstore.ProductKey(productID))
	return toResponse(p), nil
}

func (s *service) Delete(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrInvalidProductID
	}

	// read the image URL before the product is gone upstream
	var imageURL string
	if p, err := s.api.GetProduct(ctx, productID); err == nil {
		imageURL = p.ImageURL
	}

	if err := s.api.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	s.store.Invalidate(syncstore.ProductsKey(), syncstore.ProductKey(productID))
	s.cleanupImage(ctx, productID, imageURL)
	s.logger.Info("product deleted", zap.String("product_id", productID))
	return nil
}

// cleanupImage is best effort: the product is already deleted upstream,
// an orphaned image is not worth failing the request over.
func (s *service) cleanupImage(ctx context.Context, productID, imageURL string) {
	if s.images == nil || imageURL == "" {
		return
	}
	publicID := cloudinary.ExtractPublicID(imageURL)
	if publicID == "" {
		return
	}
	if err := s.images.DeleteImage(ctx, publicID); err != nil {
		s.logger.Warn("failed to delete product image",
			zap.String("product_id", productID),
			zap.String("public_id", publicID),
			zap.Error(err),
		)
	}
}

func (s *service) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	if s.images == nil {
		return "", ErrImageRequired
	}
	return s.images.UploadImage(ctx, file, filename)
}

func toResponse(p commerce.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
	}
}
