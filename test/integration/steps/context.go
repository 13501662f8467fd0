// Package steps provides step definitions for BDD integration tests.
//
// The suite runs one real HTTP server for all scenarios, wired through the
// production injector against the shared in-memory SQLite database and a
// miniredis-backed record store. Scenario isolation comes from clearing
// both stores before each scenario, not from restarting the server.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/Somebud0180/rInventory-sub001/config"
	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/cloudsync"
	"github.com/Somebud0180/rInventory-sub001/internal/infra/dependency"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/persistence/model"
	"github.com/Somebud0180/rInventory-sub001/test/integration/mock"
)

const (
	testPassphrase     = "correct-horse-battery-staple"
	testTokenSecret    = "test-device-token-secret-for-testing-purposes"
	testCloudContainer = "iCloud.com.somebud.rInventory.test"
)

type testContext struct {
	uri          string
	headers      map[string]string
	client       *http.Client
	response     *response
	db           *mock.Db
	redis        *redis.Client
	serverPort   int
	deviceToken  string
	placeholders map[string]string
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testRedis *redis.Client
var testEngine *cloudsync.Engine
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"items":      &model.ItemModel{},
			"categories": &model.CategoryModel{},
			"locations":  &model.LocationModel{},
			"settings":   &model.SettingsModel{},
		}),
		redis: mock.NewRedis(),
	}

	testDB = test.db
	testRedis = test.redis

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Device setup steps
	ctx.Given(`^the device is enrolled$`, test.theDeviceIsEnrolled)
	ctx.Given(`^the cloud account is available$`, test.theCloudAccountIsAvailable)

	// Local store setup steps
	ctx.Given(`^an item named "([^"]*)" exists$`, test.anItemNamedExists)
	ctx.Given(`^an item named "([^"]*)" references a category that no longer exists$`, test.anItemNamedReferencesAMissingCategory)
	ctx.Given(`^a ghost item row exists$`, test.aGhostItemRowExists)
	ctx.Given(`^a category named "([^"]*)" exists with no items$`, test.aCategoryNamedExistsWithNoItems)
	ctx.Given(`^a location named "([^"]*)" exists with no items$`, test.aLocationNamedExistsWithNoItems)

	// Cloud store setup steps
	ctx.Given(`^the cloud zone "([^"]*)" contains a record named "([^"]*)" with fields:$`, test.theCloudZoneContainsARecordWithFields)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I store the response field "([^"]*)" as "([^"]*)"$`, test.iStoreTheResponseFieldAs)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Cloud store assertion steps
	ctx.Then(`^the cloud zone "([^"]*)" should contain (\d+) records?$`, test.theCloudZoneShouldContainRecords)
	ctx.Then(`^the cloud record "([^"]*)" in zone "([^"]*)" should have field "([^"]*)" with value "([^"]*)"$`, test.theCloudRecordShouldHaveFieldWithValue)
}

// before resets per-scenario state. The sync engine outlives scenarios, so
// its account availability is re-derived from the freshly cleared stores.
func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.placeholders = make(map[string]string)
	t.deviceToken = ""
	t.response = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if t.redis != nil {
		_ = mock.ClearRedis(t.redis)
	}
	if testEngine != nil {
		testEngine.RefreshAccount(context.Background())
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			injector := dependency.NewInjector(testConfig(), testDB.DbConn, testRedis)
			testEngine = injector.Engine

			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// testConfig builds the configuration for the test server. The sync worker
// stays disabled so cloud traffic only happens when a scenario drives it.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         testServerPort,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			Environment:  "test",
		},
		Cloud: config.CloudConfig{
			Container: testCloudContainer,
		},
		Device: config.DeviceConfig{
			TokenSecret:    testTokenSecret,
			TokenExpiry:    24 * time.Hour,
			PassphraseHash: hashPassphrase(testPassphrase),
		},
		Sync: config.SyncConfig{
			Interval:      30 * time.Second,
			WorkerEnabled: false,
		},
	}
}

func hashPassphrase(passphrase string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash passphrase: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

// zonesKey returns the Redis key holding the set of provisioned zones,
// matching the record store's key scheme.
func zonesKey() string {
	return fmt.Sprintf("ck:%s:zones", testCloudContainer)
}

// zoneIDsKey returns the Redis key holding a zone's record names.
func zoneIDsKey(zone string) string {
	return fmt.Sprintf("ck:%s:zone:%s:ids", testCloudContainer, zone)
}

// zoneRecordKey returns the Redis key holding one record's fields.
func zoneRecordKey(zone, name string) string {
	return fmt.Sprintf("ck:%s:zone:%s:rec:%s", testCloudContainer, zone, name)
}
