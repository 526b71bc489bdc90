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

const (
	buyersCollection  = "buyers"
	sellersCollection = "sellers"
	adminsCollection  = "admins"
)

type FirestoreAccountRepository struct {
	client *firestore.Client
}

func NewFirestoreAccountRepository(client *firestore.Client) repository.AccountRepository {
	return &FirestoreAccountRepository{client: client}
}

func (r *FirestoreAccountRepository) CreateBuyer(ctx context.Context, buyer *entity.Buyer) error {
	_, err := r.client.Collection(buyersCollection).Doc(buyer.ID).Set(ctx, buyer)
	if err != nil {
		return errors.Internal("Failed to create buyer", err)
	}
	return nil
}

func (r *FirestoreAccountRepository) GetBuyer(ctx context.Context, id string) (*entity.Buyer, error) {
	doc, err := r.client.Collection(buyersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Buyer", err)
		}
		return nil, errors.Internal("Failed to get buyer", err)
	}

	var buyer entity.Buyer
	if err := doc.DataTo(&buyer); err != nil {
		return nil, errors.Internal("Failed to parse buyer data", err)
	}
	return &buyer, nil
}

func (r *FirestoreAccountRepository) GetBuyerByEmail(ctx context.Context, email string) (*entity.Buyer, error) {
	var buyer entity.Buyer
	if err := r.getByField(ctx, buyersCollection, "email", email, "Buyer", &buyer); err != nil {
		return nil, err
	}
	return &buyer, nil
}

func (r *FirestoreAccountRepository) ListBuyers(ctx context.Context) ([]*entity.Buyer, error) {
	iter := r.client.Collection(buyersCollection).Documents(ctx)
	defer iter.Stop()

	var buyers []*entity.Buyer
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list buyers", err)
		}

		var buyer entity.Buyer
		if err := doc.DataTo(&buyer); err != nil {
			return nil, errors.Internal("Failed to parse buyer data", err)
		}
		buyers = append(buyers, &buyer)
	}
	return buyers, nil
}

func (r *FirestoreAccountRepository) DeleteBuyer(ctx context.Context, id string) error {
	if _, err := r.GetBuyer(ctx, id); err != nil {
		return err
	}
	if _, err := r.client.Collection(buyersCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete buyer", err)
	}
	return nil
}

func (r *FirestoreAccountRepository) CreateSeller(ctx context.Context, seller *entity.Seller) error {
	_, err := r.client.Collection(sellersCollection).Doc(seller.ID).Set(ctx, seller)
	if err != nil {
		return errors.Internal("Failed to create seller", err)
	}
	return nil
}

func (r *FirestoreAccountRepository) GetSeller(ctx context.Context, id string) (*entity.Seller, error) {
	doc, err := r.client.Collection(sellersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Seller", err)
		}
		return nil, errors.Internal("Failed to get seller", err)
	}

	var seller entity.Seller
	if err := doc.DataTo(&seller); err != nil {
		return nil, errors.Internal("Failed to parse seller data", err)
	}
	return &seller, nil
}

func (r *FirestoreAccountRepository) GetSellerByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	var seller entity.Seller
	if err := r.getByField(ctx, sellersCollection, "email", email, "Seller", &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *FirestoreAccountRepository) GetSellerByMobile(ctx context.Context, mobile string) (*entity.Seller, error) {
	var seller entity.Seller
	if err := r.getByField(ctx, sellersCollection, "mobileNumber", mobile, "Seller", &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *FirestoreAccountRepository) GetSellerByShopName(ctx context.Context, shopName string) (*entity.Seller, error) {
	var seller entity.Seller
	if err := r.getByField(ctx, sellersCollection, "shopName", shopName, "Seller", &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *FirestoreAccountRepository) GetSellerByGSTNumber(ctx context.Context, gstNumber string) (*entity.Seller, error) {
	var seller entity.Seller
	if err := r.getByField(ctx, sellersCollection, "gstNumber", gstNumber, "Seller", &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *FirestoreAccountRepository) ListSellers(ctx context.Context, approved *bool) ([]*entity.Seller, error) {
	query := r.client.Collection(sellersCollection).Query
	if approved != nil {
		query = query.Where("isApproved", "==", *approved)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var sellers []*entity.Seller
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list sellers", err)
		}

		var seller entity.Seller
		if err := doc.DataTo(&seller); err != nil {
			return nil, errors.Internal("Failed to parse seller data", err)
		}
		sellers = append(sellers, &seller)
	}
	return sellers, nil
}

func (r *FirestoreAccountRepository) UpdateSeller(ctx context.Context, seller *entity.Seller) error {
	_, err := r.client.Collection(sellersCollection).Doc(seller.ID).Set(ctx, seller)
	if err != nil {
		return errors.Internal("Failed to update seller", err)
	}
	return nil
}

func (r *FirestoreAccountRepository) DeleteSeller(ctx context.Context, id string) error {
	if _, err := r.GetSeller(ctx, id); err != nil {
		return err
	}
	if _, err := r.client.Collection(sellersCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete seller", err)
	}
	return nil
}

func (r *FirestoreAccountRepository) CreateAdmin(ctx context.Context, admin *entity.Admin) error {
	_, err := r.client.Collection(adminsCollection).Doc(admin.ID).Set(ctx, admin)
	if err != nil {
		return errors.Internal("Failed to create admin", err)
	}
	return nil
}

func (r *FirestoreAccountRepository) GetAdmin(ctx context.Context, id string) (*entity.Admin, error) {
	doc, err := r.client.Collection(adminsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Admin", err)
		}
		return nil, errors.Internal("Failed to get admin", err)
	}

	var admin entity.Admin
	if err := doc.DataTo(&admin); err != nil {
		return nil, errors.Internal("Failed to parse admin data", err)
	}
	return &admin, nil
}

func (r *FirestoreAccountRepository) GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.getByField(ctx, adminsCollection, "email", email, "Admin", &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *FirestoreAccountRepository) ListAdmins(ctx context.Context) ([]*entity.Admin, error) {
	iter := r.client.Collection(adminsCollection).Documents(ctx)
	defer iter.Stop()

	var admins []*entity.Admin
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list admins", err)
		}

		var admin entity.Admin
		if err := doc.DataTo(&admin); err != nil {
			return nil, errors.Internal("Failed to parse admin data", err)
		}
		admins = append(admins, &admin)
	}
	return admins, nil
}

func (r *FirestoreAccountRepository) UpdateAdmin(ctx context.Context, admin *entity.Admin) error {
	_, err := r.client.Collection(adminsCollection).Doc(admin.ID).Set(ctx, admin)
	if err != nil {
		return errors.Internal("Failed to update admin", err)
	}
	return nil
}

func (r *FirestoreAccountRepository) DeleteAdmin(ctx context.Context, id string) error {
	if _, err := r.GetAdmin(ctx, id); err != nil {
		return err
	}
	if _, err := r.client.Collection(adminsCollection).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete admin", err)
	}
	return nil
}

// FindByEmail scans buyers, sellers, then admins and stops at the first hit.
// The scan order is also the uniqueness check order at registration time.
func (r *FirestoreAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if buyer, err := r.GetBuyerByEmail(ctx, email); err == nil {
		return buyer.Account(), nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if seller, err := r.GetSellerByEmail(ctx, email); err == nil {
		return seller.Account(), nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if admin, err := r.GetAdminByEmail(ctx, email); err == nil {
		return admin.Account(), nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	return nil, errors.NotFound("Account", nil)
}

func (r *FirestoreAccountRepository) Resolve(ctx context.Context, id string, role entity.Role) (*entity.Account, error) {
	switch role {
	case entity.RoleBuyer:
		buyer, err := r.GetBuyer(ctx, id)
		if err != nil {
			return nil, err
		}
		return buyer.Account(), nil
	case entity.RoleSeller:
		seller, err := r.GetSeller(ctx, id)
		if err != nil {
			return nil, err
		}
		return seller.Account(), nil
	case entity.RoleAdmin, entity.RoleSuperAdmin:
		admin, err := r.GetAdmin(ctx, id)
		if err != nil {
			return nil, err
		}
		return admin.Account(), nil
	default:
		return nil, errors.BadRequest("Unknown account role", nil)
	}
}

func (r *FirestoreAccountRepository) getByField(ctx context.Context, collection, field, value, resource string, dst interface{}) error {
	iter := r.client.Collection(collection).Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return errors.NotFound(resource, nil)
	}
	if err != nil {
		return errors.Internal("Failed to query "+collection, err)
	}
	if err := doc.DataTo(dst); err != nil {
		return errors.Internal("Failed to parse "+collection+" data", err)
	}
	return nil
}
