package usecase

import (
	"context"
	"sort"
	"sync"

	"shopsphere/internal/domain/entity"
	"shopsphere/pkg/errors"
)

type fakeAccountRepo struct {
	buyers  map[string]*entity.Buyer
	sellers map[string]*entity.Seller
	admins  map[string]*entity.Admin
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		buyers:  make(map[string]*entity.Buyer),
		sellers: make(map[string]*entity.Seller),
		admins:  make(map[string]*entity.Admin),
	}
}

func (r *fakeAccountRepo) CreateBuyer(_ context.Context, buyer *entity.Buyer) error {
	r.buyers[buyer.ID] = buyer
	return nil
}

func (r *fakeAccountRepo) GetBuyer(_ context.Context, id string) (*entity.Buyer, error) {
	if buyer, ok := r.buyers[id]; ok {
		return buyer, nil
	}
	return nil, errors.NotFound("Buyer", nil)
}

func (r *fakeAccountRepo) GetBuyerByEmail(_ context.Context, email string) (*entity.Buyer, error) {
	for _, buyer := range r.buyers {
		if buyer.Email == email {
			return buyer, nil
		}
	}
	return nil, errors.NotFound("Buyer", nil)
}

func (r *fakeAccountRepo) ListBuyers(_ context.Context) ([]*entity.Buyer, error) {
	var buyers []*entity.Buyer
	for _, buyer := range r.buyers {
		buyers = append(buyers, buyer)
	}
	return buyers, nil
}

func (r *fakeAccountRepo) DeleteBuyer(_ context.Context, id string) error {
	if _, ok := r.buyers[id]; !ok {
		return errors.NotFound("Buyer", nil)
	}
	delete(r.buyers, id)
	return nil
}

func (r *fakeAccountRepo) CreateSeller(_ context.Context, seller *entity.Seller) error {
	r.sellers[seller.ID] = seller
	return nil
}

func (r *fakeAccountRepo) GetSeller(_ context.Context, id string) (*entity.Seller, error) {
	if seller, ok := r.sellers[id]; ok {
		return seller, nil
	}
	return nil, errors.NotFound("Seller", nil)
}

func (r *fakeAccountRepo) GetSellerByEmail(_ context.Context, email string) (*entity.Seller, error) {
	return r.findSeller(func(s *entity.Seller) bool { return s.Email == email })
}

func (r *fakeAccountRepo) GetSellerByMobile(_ context.Context, mobile string) (*entity.Seller, error) {
	return r.findSeller(func(s *entity.Seller) bool { return s.MobileNumber == mobile })
}

func (r *fakeAccountRepo) GetSellerByShopName(_ context.Context, shopName string) (*entity.Seller, error) {
	return r.findSeller(func(s *entity.Seller) bool { return s.ShopName == shopName })
}

func (r *fakeAccountRepo) GetSellerByGSTNumber(_ context.Context, gstNumber string) (*entity.Seller, error) {
	return r.findSeller(func(s *entity.Seller) bool { return s.GSTNumber == gstNumber })
}

func (r *fakeAccountRepo) findSeller(match func(*entity.Seller) bool) (*entity.Seller, error) {
	for _, seller := range r.sellers {
		if match(seller) {
			return seller, nil
		}
	}
	return nil, errors.NotFound("Seller", nil)
}

func (r *fakeAccountRepo) ListSellers(_ context.Context, approved *bool) ([]*entity.Seller, error) {
	var sellers []*entity.Seller
	for _, seller := range r.sellers {
		if approved == nil || seller.IsApproved == *approved {
			sellers = append(sellers, seller)
		}
	}
	return sellers, nil
}

func (r *fakeAccountRepo) UpdateSeller(_ context.Context, seller *entity.Seller) error {
	r.sellers[seller.ID] = seller
	return nil
}

func (r *fakeAccountRepo) DeleteSeller(_ context.Context, id string) error {
	if _, ok := r.sellers[id]; !ok {
		return errors.NotFound("Seller", nil)
	}
	delete(r.sellers, id)
	return nil
}

func (r *fakeAccountRepo) CreateAdmin(_ context.Context, admin *entity.Admin) error {
	r.admins[admin.ID] = admin
	return nil
}

func (r *fakeAccountRepo) GetAdmin(_ context.Context, id string) (*entity.Admin, error) {
	if admin, ok := r.admins[id]; ok {
		return admin, nil
	}
	return nil, errors.NotFound("Admin", nil)
}

func (r *fakeAccountRepo) GetAdminByEmail(_ context.Context, email string) (*entity.Admin, error) {
	for _, admin := range r.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, errors.NotFound("Admin", nil)
}

func (r *fakeAccountRepo) ListAdmins(_ context.Context) ([]*entity.Admin, error) {
	var admins []*entity.Admin
	for _, admin := range r.admins {
		admins = append(admins, admin)
	}
	return admins, nil
}

func (r *fakeAccountRepo) UpdateAdmin(_ context.Context, admin *entity.Admin) error {
	r.admins[admin.ID] = admin
	return nil
}

func (r *fakeAccountRepo) DeleteAdmin(_ context.Context, id string) error {
	if _, ok := r.admins[id]; !ok {
		return errors.NotFound("Admin", nil)
	}
	delete(r.admins, id)
	return nil
}

func (r *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if buyer, err := r.GetBuyerByEmail(ctx, email); err == nil {
		return buyer.Account(), nil
	}
	if seller, err := r.GetSellerByEmail(ctx, email); err == nil {
		return seller.Account(), nil
	}
	if admin, err := r.GetAdminByEmail(ctx, email); err == nil {
		return admin.Account(), nil
	}
	return nil, errors.NotFound("Account", nil)
}

func (r *fakeAccountRepo) Resolve(ctx context.Context, id string, role entity.Role) (*entity.Account, error) {
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
	default:
		admin, err := r.GetAdmin(ctx, id)
		if err != nil {
			return nil, err
		}
		return admin.Account(), nil
	}
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == "" {
		r.nextID++
		product.ID = "product-" + string(rune('a'+r.nextID))
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if product, ok := r.products[id]; ok {
		return product, nil
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

func (r *fakeProductRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, product := range r.products {
		if product.SellerID == sellerID {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

// fakeChatRepo hands out copies of rooms, like a document store decoding into
// fresh structs, so tests catch read-modify-write races that shared pointers
// would hide.
type fakeChatRepo struct {
	mu       sync.Mutex
	rooms    map[string]*entity.ChatRoom
	messages []*entity.Message

	failRecordMessage bool
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{rooms: make(map[string]*entity.ChatRoom)}
}

func copyRoom(room *entity.ChatRoom) *entity.ChatRoom {
	c := *room
	c.Participants = append([]string(nil), room.Participants...)
	return &c
}

func (r *fakeChatRepo) CreateRoom(_ context.Context, room *entity.ChatRoom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.ID] = copyRoom(room)
	return nil
}

func (r *fakeChatRepo) GetRoom(_ context.Context, id string) (*entity.ChatRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if room, ok := r.rooms[id]; ok {
		return copyRoom(room), nil
	}
	return nil, errors.NotFound("Chat room", nil)
}

func (r *fakeChatRepo) GetRoomByPairKey(_ context.Context, pairKey string) (*entity.ChatRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, room := range r.rooms {
		if room.PairKey == pairKey {
			return copyRoom(room), nil
		}
	}
	return nil, errors.NotFound("Chat room", nil)
}

func (r *fakeChatRepo) ListRoomsByUser(_ context.Context, userID string) ([]*entity.ChatRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rooms []*entity.ChatRoom
	for _, room := range r.rooms {
		if room.HasParticipant(userID) {
			rooms = append(rooms, copyRoom(room))
		}
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].UpdatedAt.After(rooms[j].UpdatedAt)
	})
	return rooms, nil
}

func (r *fakeChatRepo) UpdateRoom(_ context.Context, room *entity.ChatRoom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.ID] = copyRoom(room)
	return nil
}

func (r *fakeChatRepo) RecordMessage(_ context.Context, message *entity.Message, recipientRole entity.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failRecordMessage {
		return errors.Internal("Failed to record message", nil)
	}
	room, ok := r.rooms[message.ChatRoomID]
	if !ok {
		return errors.NotFound("Chat room", nil)
	}

	r.messages = append(r.messages, message)
	room.LastMessageText = message.Text
	room.LastMessageSender = message.SenderID
	room.LastMessageAt = message.CreatedAt
	if recipientRole == entity.RoleSeller {
		room.SellerUnreadCount++
	} else {
		room.BuyerUnreadCount++
	}
	room.UpdatedAt = message.CreatedAt
	return nil
}

func (r *fakeChatRepo) ListMessages(_ context.Context, chatRoomID string) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var messages []*entity.Message
	for _, message := range r.messages {
		if message.ChatRoomID == chatRoomID {
			messages = append(messages, message)
		}
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (r *fakeChatRepo) messageCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []broadcastEvent
}

type broadcastEvent struct {
	roomID    string
	eventType string
	data      interface{}
}

func (b *fakeBroadcaster) BroadcastToRoom(roomID, eventType string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, broadcastEvent{roomID: roomID, eventType: eventType, data: data})
}
