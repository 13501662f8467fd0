package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Somebud0180/rInventory-sub001/internal/integration/persistence/model"
)

// theDeviceIsEnrolled enrolls a device through the real endpoint and keeps
// the issued token for subsequent authenticated requests.
func (t *testContext) theDeviceIsEnrolled() error {
	body := fmt.Sprintf(`{"passphrase": %q, "device_name": "Integration Test Device"}`, testPassphrase)
	if err := t.executeRequest(http.MethodPost, "/api/v1/devices/enroll", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("enrollment failed with status %d (body: %v)", t.response.status, t.response.body)
	}
	if t.deviceToken == "" {
		return errors.New("enrollment response carried no device token")
	}
	return nil
}

// theCloudAccountIsAvailable re-runs the account check so the engine sees
// the enrolled device and the reachable record store, provisioning the
// record zones as a side effect.
func (t *testContext) theCloudAccountIsAvailable() error {
	if err := t.executeRequest(http.MethodPost, "/api/v1/sync/account/refresh", nil); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("account refresh failed with status %d (body: %v)", t.response.status, t.response.body)
	}
	body, ok := t.response.body.(map[string]any)
	if !ok || body["account_available"] != true {
		return fmt.Errorf("cloud account is not available: %v", t.response.body)
	}
	return nil
}

func (t *testContext) anItemNamedExists(name string) error {
	return t.createItemRow(&model.ItemModel{Name: name})
}

func (t *testContext) anItemNamedReferencesAMissingCategory(name string) error {
	missingID := uuid.New()
	return t.createItemRow(&model.ItemModel{
		Name:       name,
		CategoryID: &missingID,
	})
}

func (t *testContext) aGhostItemRowExists() error {
	return t.createItemRow(&model.ItemModel{})
}

func (t *testContext) createItemRow(itemModel *model.ItemModel) error {
	now := time.Now().UTC()
	itemModel.ID = uuid.New()
	itemModel.CreatedAt = now
	itemModel.ModifiedAt = now

	if err := t.db.DbConn.Create(itemModel).Error; err != nil {
		return err
	}
	t.placeholders["item_id"] = itemModel.ID.String()
	return nil
}

func (t *testContext) aCategoryNamedExistsWithNoItems(name string) error {
	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:           uuid.New(),
		Name:         name,
		DisplayInRow: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := t.db.DbConn.Create(categoryModel).Error; err != nil {
		return err
	}
	t.placeholders["category_id"] = categoryModel.ID.String()
	return nil
}

func (t *testContext) aLocationNamedExistsWithNoItems(name string) error {
	now := time.Now().UTC()
	locationModel := &model.LocationModel{
		ID:           uuid.New(),
		Name:         name,
		ColorData:    []byte{0xFF, 0xFF, 0xFF, 0xFF},
		DisplayInRow: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := t.db.DbConn.Create(locationModel).Error; err != nil {
		return err
	}
	t.placeholders["location_id"] = locationModel.ID.String()
	return nil
}

// theCloudZoneContainsARecordWithFields seeds a remote record directly into
// the record store's key scheme. Field values are written as strings, the
// encoding every record field uses.
func (t *testContext) theCloudZoneContainsARecordWithFields(zone, name string, fields *godog.DocString) error {
	content := t.replacePlaceholders(fields.Content)

	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return fmt.Errorf("failed to parse record fields: %w", err)
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		values[key] = fmt.Sprintf("%v", value)
	}

	ctx := context.Background()
	name = t.replacePlaceholders(name)
	if err := t.redis.SAdd(ctx, zonesKey(), zone).Err(); err != nil {
		return err
	}
	if err := t.redis.SAdd(ctx, zoneIDsKey(zone), name).Err(); err != nil {
		return err
	}
	return t.redis.HSet(ctx, zoneRecordKey(zone, name), values).Err()
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.deviceToken = "" // Clear device token to simulate an unenrolled client
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

// iStoreTheResponseFieldAs captures a response field for later {{name}}
// placeholder substitution in paths, bodies, and headers.
func (t *testContext) iStoreTheResponseFieldAs(field, name string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	t.placeholders[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	for name, value := range t.placeholders {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.deviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.deviceToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture well-known fields so later steps can reference them
	if id, ok := responseBody["id"].(string); ok && id != "" {
		t.placeholders["last_id"] = id
	}
	if token, ok := responseBody["device_token"].(string); ok && token != "" {
		t.deviceToken = token
		t.placeholders["device_token"] = token
	}
	if deviceID, ok := responseBody["device_id"].(string); ok && deviceID != "" {
		t.placeholders["device_id"] = deviceID
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			if value == nil {
				query = query.Where(fmt.Sprintf("%s IS NULL", key))
				continue
			}
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theCloudZoneShouldContainRecords(zone string, quantity int) error {
	count, err := t.redis.SCard(context.Background(), zoneIDsKey(zone)).Result()
	if err != nil {
		return err
	}
	if int(count) != quantity {
		return fmt.Errorf("expected %d records in zone '%s', got %d", quantity, zone, count)
	}
	return nil
}

func (t *testContext) theCloudRecordShouldHaveFieldWithValue(name, zone, field, expectedValue string) error {
	name = t.replacePlaceholders(name)
	expectedValue = t.replacePlaceholders(expectedValue)

	value, err := t.redis.HGet(context.Background(), zoneRecordKey(zone, name), field).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("record '%s' in zone '%s' has no field '%s'", name, zone, field)
		}
		return err
	}
	if value != expectedValue {
		return fmt.Errorf("record '%s' field '%s' expected '%s', got '%s'", name, field, expectedValue, value)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
