package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shopsphere/internal/domain/entity"
	"shopsphere/internal/domain/repository"
	"shopsphere/pkg/errors"
)

const productsCollection = "products"

type FirestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &FirestoreProductRepository{client: client}
}

func (r *FirestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = r.client.Collection(productsCollection).NewDoc().ID
	}
	_, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}
	return nil
}

func (r *FirestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}
	return &product, nil
}

func (r *FirestoreProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection(productsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	return r.collect(iter)
}

func (r *FirestoreProductRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	iter := r.client.Collection(productsCollection).Where("sellerId", "==", sellerID).Documents(ctx)
	return r.collect(iter)
}

func (r *FirestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	_, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}
	return nil
}

func (r *FirestoreProductRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := r.client.Collection(productsCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete product", err)
	}
	return nil
}

func (r *FirestoreProductRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Product, error) {
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}
	return products, nil
}
