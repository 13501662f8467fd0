// Package cloudsync implements the synchronization engine that keeps the
// local entity store consistent with the remote record store.
package cloudsync

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/valueobject"
)

// fakeItemRepo is an in-memory ItemRepository for engine tests.
type fakeItemRepo struct {
	mu         sync.Mutex
	items      map[uuid.UUID]*entity.Item
	findAllErr error
	saveErr    error
	creates    int
	updates    int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*entity.Item)}
}

func (f *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.creates++
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, domainerror.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeItemRepo) FindAll(ctx context.Context) ([]*entity.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	out := make([]*entity.Item, 0, len(f.items))
	for _, item := range f.items {
		copied := *item
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeItemRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Item
	for _, item := range f.items {
		if item.CategoryID != nil && *item.CategoryID == categoryID {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Item
	for _, item := range f.items {
		if item.LocationID != nil && *item.LocationID == locationID {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.updates++
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemRepo) UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, update := range updates {
		if item, ok := f.items[update.ID]; ok {
			item.SortOrder = update.SortOrder
			item.Touch()
		}
	}
	return nil
}

func (f *fakeItemRepo) MaxSortOrder(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	max := -1
	for _, item := range f.items {
		if item.SortOrder > max {
			max = item.SortOrder
		}
	}
	return max, nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	items, _ := f.FindByCategory(ctx, categoryID)
	return int64(len(items)), nil
}

func (f *fakeItemRepo) CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	items, _ := f.FindByLocation(ctx, locationID)
	return int64(len(items)), nil
}

func (f *fakeItemRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *fakeItemRepo) get(id uuid.UUID) *entity.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil
	}
	copied := *item
	return &copied
}

// fakeCategoryRepo is an in-memory CategoryRepository for engine tests.
type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.Category
	findAllErr error
	saveErr    error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	category, ok := f.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, category := range f.categories {
		if category.Name == name {
			copied := *category
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	out := make([]*entity.Category, 0, len(f.categories))
	for _, category := range f.categories {
		copied := *category
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, update := range updates {
		if category, ok := f.categories[update.ID]; ok {
			category.SortOrder = update.SortOrder
			category.UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

func (f *fakeCategoryRepo) MaxSortOrder(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	max := -1
	for _, category := range f.categories {
		if category.SortOrder > max {
			max = category.SortOrder
		}
	}
	return max, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.categories)
}

// fakeLocationRepo is an in-memory LocationRepository for engine tests.
type fakeLocationRepo struct {
	mu         sync.Mutex
	locations  map[uuid.UUID]*entity.Location
	findAllErr error
	saveErr    error
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[uuid.UUID]*entity.Location)}
}

func (f *fakeLocationRepo) Create(ctx context.Context, location *entity.Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *location
	f.locations[location.ID] = &copied
	return nil
}

func (f *fakeLocationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	location, ok := f.locations[id]
	if !ok {
		return nil, domainerror.ErrLocationNotFound
	}
	copied := *location
	return &copied, nil
}

func (f *fakeLocationRepo) FindByName(ctx context.Context, name string) (*entity.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, location := range f.locations {
		if location.Name == name {
			copied := *location
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeLocationRepo) FindAll(ctx context.Context) ([]*entity.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	out := make([]*entity.Location, 0, len(f.locations))
	for _, location := range f.locations {
		copied := *location
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeLocationRepo) Update(ctx context.Context, location *entity.Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *location
	f.locations[location.ID] = &copied
	return nil
}

func (f *fakeLocationRepo) UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, update := range updates {
		if location, ok := f.locations[update.ID]; ok {
			location.SortOrder = update.SortOrder
			location.UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

func (f *fakeLocationRepo) MaxSortOrder(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	max := -1
	for _, location := range f.locations {
		if location.SortOrder > max {
			max = location.SortOrder
		}
	}
	return max, nil
}

func (f *fakeLocationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.locations, id)
	return nil
}

func (f *fakeLocationRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.locations)
}

func (f *fakeLocationRepo) get(id uuid.UUID) *entity.Location {
	f.mu.Lock()
	defer f.mu.Unlock()
	location, ok := f.locations[id]
	if !ok {
		return nil
	}
	copied := *location
	return &copied
}

// fakeSettingsRepo is an in-memory SettingsRepository. It starts enrolled so
// account checks pass unless a test clears the device token.
type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *entity.Settings
	getErr   error
	saveErr  error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	settings := entity.DefaultSettings()
	settings.DeviceID = "device-1"
	settings.DeviceName = "Test Device"
	settings.DeviceToken = "device-token"
	return &fakeSettingsRepo{settings: settings}
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.settings
	return &copied, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, settings *entity.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *settings
	f.settings = &copied
	return nil
}

func (f *fakeSettingsRepo) set(mutate func(*entity.Settings)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mutate(f.settings)
}

// fakeTokenService accepts every token unless validateErr is set.
type fakeTokenService struct {
	validateErr error
}

func (f *fakeTokenService) GenerateDeviceToken(ctx context.Context, deviceID, deviceName string) (string, error) {
	return "device-token", nil
}

func (f *fakeTokenService) ValidateDeviceToken(ctx context.Context, token string) (*adapter.DeviceTokenClaims, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	return &adapter.DeviceTokenClaims{DeviceID: "device-1", DeviceName: "Test Device"}, nil
}

// fakeRecordStore is an in-memory RecordStore. It records the order of
// query and save calls and can inject per-zone failures. When block is set,
// QueryAll waits on it before returning, which lets tests hold a sync cycle
// in flight.
type fakeRecordStore struct {
	mu       sync.Mutex
	zones    map[string]map[string]*valueobject.Record
	calls    []string
	ensured  []string
	pingErr  error
	queryErr map[string]error
	saveErr  map[string]error
	block    chan struct{}
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{
		zones:    make(map[string]map[string]*valueobject.Record),
		queryErr: make(map[string]error),
		saveErr:  make(map[string]error),
	}
}

func (f *fakeRecordStore) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

func (f *fakeRecordStore) EnsureZones(ctx context.Context, zones []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, zone := range zones {
		if f.zones[zone] == nil {
			f.zones[zone] = make(map[string]*valueobject.Record)
		}
		f.ensured = append(f.ensured, zone)
	}
	return nil
}

func (f *fakeRecordStore) QueryAll(ctx context.Context, zone string) ([]*valueobject.Record, error) {
	f.mu.Lock()
	f.calls = append(f.calls, "query:"+zone)
	block := f.block
	err := f.queryErr[zone]
	var out []*valueobject.Record
	if err == nil {
		for _, rec := range f.zones[zone] {
			out = append(out, copyRecord(rec))
		}
	}
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return out, err
}

func (f *fakeRecordStore) QueryByID(ctx context.Context, zone, id string) (*valueobject.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.zones[zone] {
		if rec.Fields[valueobject.FieldID] == id {
			return copyRecord(rec), nil
		}
	}
	return nil, domainerror.ErrRecordNotFound
}

func (f *fakeRecordStore) SaveBatch(ctx context.Context, zone string, records []*valueobject.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "save:"+zone)
	if err := f.saveErr[zone]; err != nil {
		return err
	}
	if f.zones[zone] == nil {
		f.zones[zone] = make(map[string]*valueobject.Record)
	}
	for _, rec := range records {
		existing := f.zones[zone][rec.Name]
		if existing == nil {
			f.zones[zone][rec.Name] = copyRecord(rec)
			continue
		}
		// Changed-keys policy: only fields present on the incoming record
		// overwrite stored fields.
		for k, v := range rec.Fields {
			existing.Fields[k] = v
		}
	}
	return nil
}

func (f *fakeRecordStore) seed(zone string, rec *valueobject.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.zones[zone] == nil {
		f.zones[zone] = make(map[string]*valueobject.Record)
	}
	f.zones[zone][rec.Name] = copyRecord(rec)
}

func (f *fakeRecordStore) zoneRecords(zone string) []*valueobject.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*valueobject.Record
	for _, rec := range f.zones[zone] {
		out = append(out, copyRecord(rec))
	}
	return out
}

func (f *fakeRecordStore) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRecordStore) zoneCalls(prefix, zone string) int {
	count := 0
	for _, call := range f.callLog() {
		if call == prefix+":"+zone {
			count++
		}
	}
	return count
}

func (f *fakeRecordStore) networkCalls() int {
	count := 0
	for _, call := range f.callLog() {
		if strings.HasPrefix(call, "query:") || strings.HasPrefix(call, "save:") {
			count++
		}
	}
	return count
}

func copyRecord(rec *valueobject.Record) *valueobject.Record {
	copied := valueobject.NewRecord(rec.Name)
	for k, v := range rec.Fields {
		copied.Fields[k] = v
	}
	return copied
}

// engineFixture wires an engine to fresh fakes with the account available.
type engineFixture struct {
	engine     *Engine
	items      *fakeItemRepo
	categories *fakeCategoryRepo
	locations  *fakeLocationRepo
	settings   *fakeSettingsRepo
	records    *fakeRecordStore
	tokens     *fakeTokenService
}

func newEngineFixture() *engineFixture {
	fix := &engineFixture{
		items:      newFakeItemRepo(),
		categories: newFakeCategoryRepo(),
		locations:  newFakeLocationRepo(),
		settings:   newFakeSettingsRepo(),
		records:    newFakeRecordStore(),
		tokens:     &fakeTokenService{},
	}
	fix.engine = NewEngine(
		LocalStore{Items: fix.items, Categories: fix.categories, Locations: fix.locations},
		fix.records,
		fix.settings,
		fix.tokens,
		EngineConfig{Container: "test-container", TickInterval: entity.DefaultSyncInterval},
	)
	fix.engine.RefreshAccount(context.Background())
	return fix
}

func (fix *engineFixture) localStoreHandle() LocalStore {
	return LocalStore{Items: fix.items, Categories: fix.categories, Locations: fix.locations}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
