package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey("b", "a"), PairKey("a", "b"))
	assert.Equal(t, "a_b", PairKey("b", "a"))
}

func TestSellerDisplayNameFallsBackToPersonalName(t *testing.T) {
	withShop := &Seller{FirstName: "Ravi", LastName: "Kumar", ShopName: "Ravi Electronics"}
	assert.Equal(t, "Ravi Electronics", withShop.Account().DisplayName)

	noShop := &Seller{FirstName: "Ravi", LastName: "Kumar"}
	assert.Equal(t, "Ravi Kumar", noShop.Account().DisplayName)
}

func TestUnreadFor(t *testing.T) {
	room := &ChatRoom{BuyerUnreadCount: 2, SellerUnreadCount: 5}
	assert.Equal(t, 2, room.UnreadFor(RoleBuyer))
	assert.Equal(t, 5, room.UnreadFor(RoleSeller))
}
