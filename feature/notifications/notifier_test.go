package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/GiyoMoon/WitchTrade-BE/core/database/dbtest"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	alice = "6f1c1f7e-2f0b-4d36-9b1e-5a0c6a3b0001"
	bob   = "6f1c1f7e-2f0b-4d36-9b1e-5a0c6a3b0002"
	carol = "6f1c1f7e-2f0b-4d36-9b1e-5a0c6a3b0003"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendNotification(ctx context.Context, targetUserID string, source *models.User, item *models.Item) error {
	args := m.Called(ctx, targetUserID, source, item)
	return args.Error(0)
}

type fixture struct {
	db      *gorm.DB
	repo    *repository.Repository
	users   map[string]*models.User
	markets map[string]uint
}

func setup(t *testing.T) *fixture {
	db := dbtest.New(t)
	f := &fixture{db: db, repo: repository.New(db), users: map[string]*models.User{}, markets: map[string]uint{}}

	require.NoError(t, db.Create(&[]models.Item{
		{ID: "hat", Tradeable: true},
		{ID: "broom", Tradeable: true},
	}).Error)

	for name, id := range map[string]string{"alice": alice, "bob": bob, "carol": carol} {
		u := &models.User{ID: id, Username: name, Market: &models.Market{}}
		require.NoError(t, db.Create(u).Error)
		f.users[name] = u
		f.markets[name] = u.Market.ID
	}
	return f
}

func (f *fixture) wish(t *testing.T, user, itemID string) {
	require.NoError(t, f.repo.CreateWish(context.Background(), &models.Wish{MarketID: f.markets[user], ItemID: itemID}))
}

func (f *fixture) offer(user, itemID string, quantity int) models.Offer {
	return models.Offer{MarketID: f.markets[user], ItemID: itemID, Quantity: quantity}
}

func TestNotifyFor(t *testing.T) {
	f := setup(t)
	f.wish(t, "alice", "hat")
	f.wish(t, "bob", "hat")
	f.wish(t, "bob", "broom")
	f.wish(t, "carol", "hat")

	sender := new(mockSender)
	sender.On("SendNotification", mock.Anything, mock.Anything, f.users["alice"], mock.Anything).Return(nil)
	n := NewNotifier(f.repo, sender, zap.NewNop())

	offers := []models.Offer{f.offer("alice", "hat", 2), f.offer("alice", "broom", 0)}
	sent := n.NotifyFor(context.Background(), offers, f.users["alice"])

	assert.Equal(t, 2, sent)
	sender.AssertNumberOfCalls(t, "SendNotification", 2)
	sender.AssertCalled(t, "SendNotification", mock.Anything, bob, f.users["alice"], mock.MatchedBy(func(i *models.Item) bool { return i.ID == "hat" }))
	sender.AssertCalled(t, "SendNotification", mock.Anything, carol, f.users["alice"], mock.MatchedBy(func(i *models.Item) bool { return i.ID == "hat" }))
	sender.AssertNotCalled(t, "SendNotification", mock.Anything, alice, mock.Anything, mock.Anything)
}

func TestNotifyFor_OncePerWish(t *testing.T) {
	f := setup(t)
	f.wish(t, "bob", "hat")

	sender := new(mockSender)
	sender.On("SendNotification", mock.Anything, bob, mock.Anything, mock.Anything).Return(nil)
	n := NewNotifier(f.repo, sender, zap.NewNop())

	hat := f.offer("alice", "hat", 1)
	ctx := context.Background()
	assert.Equal(t, 1, n.NotifyFor(ctx, []models.Offer{hat, hat}, f.users["alice"]))
	assert.Equal(t, 1, n.NotifyFor(ctx, []models.Offer{hat}, f.users["alice"]))

	sender.AssertNumberOfCalls(t, "SendNotification", 2)
}

func TestNotifyFor_NothingInStock(t *testing.T) {
	f := setup(t)
	f.wish(t, "bob", "hat")

	sender := new(mockSender)
	n := NewNotifier(f.repo, sender, zap.NewNop())

	assert.Zero(t, n.NotifyFor(context.Background(), []models.Offer{f.offer("alice", "hat", 0)}, f.users["alice"]))
	assert.Zero(t, n.NotifyFor(context.Background(), nil, f.users["alice"]))
	sender.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyFor_SendErrorIsSwallowed(t *testing.T) {
	f := setup(t)
	f.wish(t, "bob", "hat")
	f.wish(t, "carol", "hat")

	sender := new(mockSender)
	sender.On("SendNotification", mock.Anything, bob, mock.Anything, mock.Anything).Return(errors.New("mailbox full"))
	sender.On("SendNotification", mock.Anything, carol, mock.Anything, mock.Anything).Return(nil)
	n := NewNotifier(f.repo, sender, zap.NewNop())

	sent := n.NotifyFor(context.Background(), []models.Offer{f.offer("alice", "hat", 3)}, f.users["alice"])

	assert.Equal(t, 2, sent)
	sender.AssertExpectations(t)
}

func TestRecordSender(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sender := NewRecordSender(f.repo)
	hat := &models.Item{ID: "hat"}

	require.NoError(t, sender.SendNotification(ctx, bob, f.users["alice"], hat))
	require.NoError(t, sender.SendNotification(ctx, bob, f.users["alice"], hat))
	require.NoError(t, sender.SendNotification(ctx, carol, f.users["alice"], hat))

	var count int64
	require.NoError(t, f.db.Model(&models.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestRetractFor(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sender := NewRecordSender(f.repo)
	require.NoError(t, sender.SendNotification(ctx, alice, f.users["bob"], &models.Item{ID: "hat"}))
	require.NoError(t, sender.SendNotification(ctx, alice, f.users["bob"], &models.Item{ID: "broom"}))
	require.NoError(t, sender.SendNotification(ctx, carol, f.users["bob"], &models.Item{ID: "hat"}))

	n := NewNotifier(f.repo, new(mockSender), zap.NewNop())

	removed := n.RetractFor(ctx, []models.Offer{f.offer("alice", "hat", 0), f.offer("alice", "hat", 0)}, alice)
	assert.Equal(t, int64(1), removed)

	assert.Zero(t, n.RetractFor(ctx, []models.Offer{f.offer("alice", "hat", 0)}, alice))
	assert.Zero(t, n.RetractFor(ctx, nil, alice))

	left, err := f.repo.ListNotifications(ctx, alice)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "broom", left[0].TargetItemID)

	other, err := f.repo.ListNotifications(ctx, carol)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
