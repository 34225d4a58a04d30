package offers

import (
	"context"
	"testing"
	"time"

	"github.com/GiyoMoon/WitchTrade-BE/core/database/dbtest"
	"github.com/GiyoMoon/WitchTrade-BE/core/models"
	"github.com/GiyoMoon/WitchTrade-BE/core/reconcile"
	"github.com/GiyoMoon/WitchTrade-BE/core/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	alice = "2d6b3c1a-8f4e-4b8a-a0c4-1f0e6c0f0001"
	bob   = "2d6b3c1a-8f4e-4b8a-a0c4-1f0e6c0f0002"
	carol = "2d6b3c1a-8f4e-4b8a-a0c4-1f0e6c0f0003"
	dave  = "2d6b3c1a-8f4e-4b8a-a0c4-1f0e6c0f0004"
)

const (
	priceCommon uint = iota + 1
	priceUncommon
	priceRare
	priceVeryRare
	priceWhimsical
	priceDynamicRarity
	priceGold
	priceCandy
	priceWishOnly
	priceDynamicEvent
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyFor(ctx context.Context, offers []models.Offer, source *models.User) int {
	args := m.Called(ctx, offers, source)
	return args.Int(0)
}

func (m *mockNotifier) RetractFor(ctx context.Context, offers []models.Offer, userID string) int64 {
	args := m.Called(ctx, offers, userID)
	return int64(args.Int(0))
}

// permissive returns a notifier accepting any call.
func permissive() *mockNotifier {
	n := new(mockNotifier)
	n.On("NotifyFor", mock.Anything, mock.Anything, mock.Anything).Return(0)
	n.On("RetractFor", mock.Anything, mock.Anything, mock.Anything).Return(0)
	return n
}

type fixture struct {
	db      *gorm.DB
	repo    *repository.Repository
	markets map[string]uint
}

func setup(t *testing.T) *fixture {
	db := dbtest.New(t)
	f := &fixture{db: db, repo: repository.New(db), markets: map[string]uint{}}

	withAmount := func(id uint, key string) models.Price {
		return models.Price{ID: id, PriceKey: key, WithAmount: true, ForOffers: true, ForWishes: true, CanBeMain: true}
	}
	prices := []models.Price{
		withAmount(priceCommon, models.RarityCommon),
		withAmount(priceUncommon, models.RarityUncommon),
		withAmount(priceRare, models.RarityRare),
		withAmount(priceVeryRare, models.RarityVeryRare),
		withAmount(priceWhimsical, models.RarityWhimsical),
		{ID: priceDynamicRarity, PriceKey: models.PriceKeyDynamicRarity, ForOffers: true, CanBeMain: true},
		{ID: priceGold, PriceKey: "gold", ForOffers: true},
		withAmount(priceCandy, "candy"),
		{ID: priceWishOnly, PriceKey: "wishonly", ForWishes: true, CanBeMain: true},
		{ID: priceDynamicEvent, PriceKey: models.PriceKeyDynamicEvent, ForOffers: true, CanBeMain: true},
	}
	require.NoError(t, db.Create(&prices).Error)

	items := []models.Item{
		{ID: "hat", Tradeable: true, TagRarity: models.RarityCommon, TagSlot: models.SlotHat},
		{ID: "broom", Tradeable: true, TagRarity: models.RarityRare, TagSlot: models.SlotBroom},
		{ID: "cape", Tradeable: true, TagRarity: models.RarityCommon, TagSlot: models.SlotBody},
		{ID: "scroll", Tradeable: true, TagRarity: models.RarityCommon, TagSlot: models.SlotRecipe},
		{ID: "herb", Tradeable: true, TagRarity: models.RarityCommon, TagSlot: models.SlotIngredient},
		{ID: "bound", Tradeable: false, TagRarity: models.RarityCommon, TagSlot: models.SlotHat},
		{ID: "pumpkin", Tradeable: true, TagRarity: models.RarityUncommon, TagSlot: models.SlotHead, TagEvent: "halloween2019"},
	}
	require.NoError(t, db.Create(&items).Error)

	for name, id := range map[string]string{"alice": alice, "bob": bob, "carol": carol} {
		u := &models.User{ID: id, Username: name, Market: &models.Market{}}
		require.NoError(t, db.Create(u).Error)
		f.markets[id] = u.Market.ID
	}
	require.NoError(t, db.Create(&models.User{ID: dave, Username: "dave"}).Error)

	return f
}

// stock gives alice an inventory and two existing offers: broom (5) which she
// still owns once, and cape (2) which she no longer owns.
func (f *fixture) stock(t *testing.T) {
	ctx := context.Background()
	_, err := f.repo.ReplaceInventory(ctx, alice, []models.InventoryItem{
		{ItemID: "hat", Amount: 10},
		{ItemID: "broom", Amount: 1},
		{ItemID: "scroll", Amount: 4},
		{ItemID: "herb", Amount: 20},
		{ItemID: "bound", Amount: 5},
		{ItemID: "pumpkin", Amount: 2},
	}, fixedNow.Add(-time.Hour))
	require.NoError(t, err)

	require.NoError(t, f.repo.CreateOffers(ctx, []models.Offer{
		{MarketID: f.markets[alice], ItemID: "broom", Quantity: 5, MainPriceID: priceRare, MainPriceAmount: intPtr(1)},
		{MarketID: f.markets[alice], ItemID: "cape", Quantity: 2, MainPriceID: priceCommon, MainPriceAmount: intPtr(1)},
	}))
}

func (f *fixture) service(n Notifier) *Service {
	cache := reconcile.NewCatalogCache(0, f.repo.ListPrices)
	svc := NewService(f.repo, cache, n, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func (f *fixture) offers(t *testing.T, userID string) map[string]models.Offer {
	list, err := f.repo.ListOffers(context.Background(), f.markets[userID])
	require.NoError(t, err)
	byItem := map[string]models.Offer{}
	for _, o := range list {
		byItem[o.ItemID] = o
	}
	return byItem
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }
func boolPtr(v bool) *bool { return &v }

func offersOf(items ...string) any {
	return mock.MatchedBy(func(offers []models.Offer) bool {
		if len(offers) != len(items) {
			return false
		}
		want := map[string]int{}
		for _, id := range items {
			want[id]++
		}
		for _, o := range offers {
			want[o.ItemID]--
		}
		for _, n := range want {
			if n != 0 {
				return false
			}
		}
		return true
	})
}
