package command

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-information/internal/inventory/cache"
	"github.com/tair/inventory-information/internal/inventory/domain"
)

type fakeItemRepo struct {
	mu     sync.Mutex
	items  map[uint]domain.Item
	nextID uint
}

func newFakeItemRepo(items ...domain.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[uint]domain.Item), nextID: 100}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeItemRepo) Create(_ context.Context, item domain.Item) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uint) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	return item, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, id uint, item domain.Item) (domain.Item, error) {
	if _, err := r.FindByID(ctx, id); err != nil {
		return domain.Item{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = id
	r.items[id] = item
	return item, nil
}

func (r *fakeItemRepo) Upsert(_ context.Context, item domain.Item) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.items[item.ID]; ok {
		item = existing.WithDetails(item.Name, item.Quantity, item.Price)
	}
	r.items[item.ID] = item
	return item, nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id uint) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeLevelRepo struct {
	mu   sync.Mutex
	rows map[domain.LevelKey]domain.InventoryLevel
}

func (r *fakeLevelRepo) FindByKey(_ context.Context, key domain.LevelKey) (domain.InventoryLevel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.rows[key]
	if !ok {
		return domain.InventoryLevel{}, domain.ErrNotFound
	}
	return l, nil
}

func (r *fakeLevelRepo) Save(_ context.Context, l domain.InventoryLevel) (domain.InventoryLevel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[l.Key()] = l
	return l, nil
}

type recordingPublisher struct {
	events []domain.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.Event) error {
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type())
	}
	return out
}

type stubValidator struct {
	exists bool
	err    error
}

func (v stubValidator) Exists(context.Context, uint) (bool, error) { return v.exists, v.err }

func newLevelCache(pub domain.EventPublisher) *cache.CacheAsideStore {
	repo := &fakeLevelRepo{rows: make(map[domain.LevelKey]domain.InventoryLevel)}
	return cache.NewCacheAsideStore(cache.NewMemoryStore(10), repo, pub)
}

func bolt() domain.Item {
	return domain.Item{ID: 1, Name: "Bolt", Quantity: 10, Price: decimal.NewFromInt(2)}.
		WithWeight(domain.Weight{Value: 0.5})
}

func TestCreateItem(t *testing.T) {
	repo := newFakeItemRepo()
	pub := &recordingPublisher{}
	h := NewCreateItemHandler(repo, pub)

	created, err := h.Handle(context.Background(), CreateItemCommand{
		Name:     "Pallet",
		Quantity: 3,
		Price:    decimal.NewFromInt(25),
		Weight:   &domain.Weight{Value: 20},
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "kg", created.Weight.Unit)
	assert.Equal(t, []string{domain.EventTypeItemCreated}, pub.types())
}

func TestCreateItem_Invalid(t *testing.T) {
	pub := &recordingPublisher{}
	h := NewCreateItemHandler(newFakeItemRepo(), pub)

	_, err := h.Handle(context.Background(), CreateItemCommand{Name: "", Quantity: 1})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, pub.events)
}

func TestCreateItem_PublishFailureIsIgnored(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	h := NewCreateItemHandler(newFakeItemRepo(), pub)

	_, err := h.Handle(context.Background(), CreateItemCommand{Name: "Pallet", Quantity: 1, Price: decimal.NewFromInt(1)})

	assert.NoError(t, err)
}

func TestUpdateItem_KeepsAttributes(t *testing.T) {
	repo := newFakeItemRepo(bolt())
	pub := &recordingPublisher{}
	h := NewUpdateItemHandler(repo, pub)

	updated, err := h.Handle(context.Background(), UpdateItemCommand{ID: 1, Name: "Hex bolt", Quantity: 12, Price: decimal.NewFromInt(3)})

	require.NoError(t, err)
	assert.Equal(t, "Hex bolt", updated.Name)
	require.NotNil(t, updated.Weight)
	assert.Equal(t, 0.5, updated.Weight.Value)
	assert.Equal(t, []string{domain.EventTypeItemUpdated}, pub.types())
}

func TestUpdateItem_NotFound(t *testing.T) {
	pub := &recordingPublisher{}
	h := NewUpdateItemHandler(newFakeItemRepo(), pub)

	_, err := h.Handle(context.Background(), UpdateItemCommand{ID: 5, Name: "x"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, pub.events)
}

func TestDeleteItem(t *testing.T) {
	repo := newFakeItemRepo(bolt())
	pub := &recordingPublisher{}
	h := NewDeleteItemHandler(repo, pub)
	ctx := context.Background()

	require.NoError(t, h.Handle(ctx, DeleteItemCommand{ID: 1}))
	assert.Equal(t, []string{domain.EventTypeItemRemoved}, pub.types())

	assert.ErrorIs(t, h.Handle(ctx, DeleteItemCommand{ID: 1}), domain.ErrNotFound)
	assert.ErrorIs(t, h.Handle(ctx, DeleteItemCommand{}), domain.ErrInvalidArgument)
}

func TestSetAttributes(t *testing.T) {
	repo := newFakeItemRepo(bolt())
	pub := &recordingPublisher{}
	ctx := context.Background()

	dims, err := NewSetDimensionsHandler(repo, pub).Handle(ctx, SetDimensionsCommand{
		ItemID:     1,
		Dimensions: domain.Dimensions{Length: 1, Width: 2, Height: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 6.0, dims.Volume())

	weight, err := NewSetWeightHandler(repo, pub).Handle(ctx, SetWeightCommand{ItemID: 1, Weight: domain.Weight{Value: 4}})
	require.NoError(t, err)
	assert.Equal(t, domain.Weight{Value: 4, Unit: "kg"}, weight)

	pkg, err := NewSetPackagingHandler(repo, pub).Handle(ctx, SetPackagingCommand{
		ItemID:    1,
		Packaging: domain.Packaging{IsSensitive: true, PackagingType: "crate"},
	})
	require.NoError(t, err)
	assert.True(t, pkg.IsSensitive)

	stored, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bolt", stored.Name)
	assert.Equal(t, 4.0, stored.UnitWeight())
	assert.True(t, stored.IsSensitive())
	assert.Len(t, pub.events, 3)
}

func TestSetAttributes_Errors(t *testing.T) {
	repo := newFakeItemRepo(bolt())
	ctx := context.Background()

	_, err := NewSetDimensionsHandler(repo, nil).Handle(ctx, SetDimensionsCommand{ItemID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = NewSetWeightHandler(repo, nil).Handle(ctx, SetWeightCommand{ItemID: 1, Weight: domain.Weight{Value: -1}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = NewSetPackagingHandler(repo, nil).Handle(ctx, SetPackagingCommand{ItemID: 9})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSyncItem(t *testing.T) {
	repo := newFakeItemRepo(bolt())
	h := NewSyncItemHandler(repo)
	ctx := context.Background()

	require.NoError(t, h.Handle(ctx, domain.Item{ID: 1, Name: "Bolt M8", Quantity: 50, Price: decimal.NewFromInt(2)}))
	require.NoError(t, h.Handle(ctx, domain.Item{ID: 2, Name: "Washer", Quantity: 5, Price: decimal.NewFromInt(1)}))

	updated, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Quantity)
	assert.Equal(t, 0.5, updated.UnitWeight())

	_, err = repo.FindByID(ctx, 2)
	assert.NoError(t, err)

	assert.ErrorIs(t, h.Handle(ctx, domain.Item{Name: "no id"}), domain.ErrInvalidArgument)
}

func TestSaveLevel(t *testing.T) {
	levels := newLevelCache(nil)
	ctx := context.Background()

	saved, err := NewSaveLevelHandler(levels, nil).Handle(ctx, SaveLevelCommand{ItemID: 1, LocationCode: "WH1", AvailableQuantity: 5})
	require.NoError(t, err)
	assert.False(t, saved.LastUpdated.IsZero())

	got, err := levels.Get(ctx, domain.LevelKey{ItemID: 1, LocationCode: "WH1"})
	require.NoError(t, err)
	assert.Equal(t, 5, got.AvailableQuantity)
}

func TestSaveLevel_ProductValidation(t *testing.T) {
	ctx := context.Background()
	cmd := SaveLevelCommand{ItemID: 1, LocationCode: "WH1", AvailableQuantity: 5}

	_, err := NewSaveLevelHandler(newLevelCache(nil), stubValidator{exists: false}).Handle(ctx, cmd)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = NewSaveLevelHandler(newLevelCache(nil), stubValidator{err: domain.ErrProductService}).Handle(ctx, cmd)
	assert.ErrorIs(t, err, domain.ErrProductService)

	_, err = NewSaveLevelHandler(newLevelCache(nil), stubValidator{exists: true}).Handle(ctx, cmd)
	assert.NoError(t, err)
}

func TestSaveLevel_Invalid(t *testing.T) {
	h := NewSaveLevelHandler(newLevelCache(nil), nil)

	_, err := h.Handle(context.Background(), SaveLevelCommand{ItemID: 1, LocationCode: "WH1", AvailableQuantity: -1})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestUpdateQuantities(t *testing.T) {
	pub := &recordingPublisher{}
	levels := newLevelCache(pub)
	ctx := context.Background()
	_, err := NewSaveLevelHandler(levels, nil).Handle(ctx, SaveLevelCommand{ItemID: 1, LocationCode: "WH1", AvailableQuantity: 5})
	require.NoError(t, err)

	got, err := NewUpdateAvailableQuantityHandler(levels).Handle(ctx, UpdateAvailableQuantityCommand{ItemID: 1, LocationCode: "WH1", Quantity: 9})
	require.NoError(t, err)
	assert.Equal(t, 9, got.AvailableQuantity)
	assert.Equal(t, []string{domain.EventTypeQuantityChanged}, pub.types())

	got, err = NewUpdateReservedQuantityHandler(levels).Handle(ctx, UpdateReservedQuantityCommand{ItemID: 1, LocationCode: "WH1", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, got.ReservedQuantity)

	_, err = NewUpdateAvailableQuantityHandler(levels).Handle(ctx, UpdateAvailableQuantityCommand{ItemID: 2, LocationCode: "WH1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = NewUpdateReservedQuantityHandler(levels).Handle(ctx, UpdateReservedQuantityCommand{ItemID: 1, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestUpdateMultipleQuantities(t *testing.T) {
	levels := newLevelCache(nil)
	ctx := context.Background()
	_, err := NewSaveLevelHandler(levels, nil).Handle(ctx, SaveLevelCommand{ItemID: 1, LocationCode: "WH1", AvailableQuantity: 5})
	require.NoError(t, err)
	h := NewUpdateMultipleQuantitiesHandler(levels)

	got, err := h.Handle(ctx, []domain.QuantityUpdate{
		{ItemID: 1, LocationCode: "WH1", NewQuantity: 7},
		{ItemID: 3, LocationCode: "WH1", NewQuantity: 7},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].AvailableQuantity)

	_, err = h.Handle(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = h.Handle(ctx, []domain.QuantityUpdate{{ItemID: 1, LocationCode: "WH1", NewQuantity: -2}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDeleteLevel(t *testing.T) {
	levels := newLevelCache(nil)
	ctx := context.Background()
	_, err := NewSaveLevelHandler(levels, nil).Handle(ctx, SaveLevelCommand{ItemID: 1, LocationCode: "WH1", AvailableQuantity: 5})
	require.NoError(t, err)

	require.NoError(t, NewDeleteLevelHandler(levels).Handle(ctx, DeleteLevelCommand{ItemID: 1, LocationCode: "WH1"}))

	list, err := levels.ListForLocation(ctx, "WH1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecordChange(t *testing.T) {
	levels := newLevelCache(nil)
	ctx := context.Background()
	h := NewRecordChangeHandler(levels)

	change, err := h.Handle(ctx, RecordChangeCommand{ItemID: 1, LocationCode: "WH1", OldQuantity: 5, NewQuantity: 3, Reason: "damaged"})
	require.NoError(t, err)
	assert.False(t, change.Timestamp.IsZero())

	history, err := levels.Changes(ctx, domain.LevelKey{ItemID: 1, LocationCode: "WH1"})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "damaged", history[0].Reason)

	_, err = h.Handle(ctx, RecordChangeCommand{LocationCode: "WH1"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
