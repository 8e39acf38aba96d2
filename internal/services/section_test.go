package services

import (
	"encoding/json"
	"testing"

	"github.com/petrobase/sitecms/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.ContentSection{},
		&models.Product{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestSectionService_CreateAndGetForm(t *testing.T) {
	svc := NewSectionService(newTestDB(t))

	section, err := svc.Create(&CreateSectionRequest{
		Page:       "footer",
		SectionKey: "quick_links",
		Title:      "Quick Links",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	form, err := svc.GetForm(section.ID)
	if err != nil {
		t.Fatalf("GetForm returned error: %v", err)
	}

	if form.Kind != "quick_links" {
		t.Errorf("Kind = %q, expected %q", form.Kind, "quick_links")
	}
	if form.SectionKey != "quick_links" {
		t.Errorf("SectionKey = %q, expected %q", form.SectionKey, "quick_links")
	}
}

func TestSectionService_DuplicateKeyRejected(t *testing.T) {
	svc := NewSectionService(newTestDB(t))

	req := &CreateSectionRequest{Page: "footer", SectionKey: "services"}
	if _, err := svc.Create(req); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	if _, err := svc.Create(req); err == nil {
		t.Error("duplicate section key on same page should be rejected")
	}

	// Same key on a different page is fine
	if _, err := svc.Create(&CreateSectionRequest{Page: "home", SectionKey: "services"}); err != nil {
		t.Errorf("same key on another page should be allowed, got %v", err)
	}
}

func TestSectionService_UpdateFormFiltersIncompleteRows(t *testing.T) {
	svc := NewSectionService(newTestDB(t))

	section, err := svc.Create(&CreateSectionRequest{
		Page:       "footer",
		SectionKey: "quick_links",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	body := []byte(`{"links":[
		{"label":"Products","url":"/products"},
		{"label":"","url":""},
		{"label":"Careers","url":""}
	]}`)

	updated, err := svc.UpdateForm(section.ID, body)
	if err != nil {
		t.Fatalf("UpdateForm returned error: %v", err)
	}

	var stored struct {
		Links []struct {
			Label string `json:"label"`
			URL   string `json:"url"`
		} `json:"links"`
	}
	if err := json.Unmarshal(updated.Content, &stored); err != nil {
		t.Fatalf("stored content is not valid JSON: %v", err)
	}

	if len(stored.Links) != 1 {
		t.Fatalf("stored %d links, expected 1 (incomplete rows dropped)", len(stored.Links))
	}
	if stored.Links[0].Label != "Products" || stored.Links[0].URL != "/products" {
		t.Errorf("unexpected stored link: %+v", stored.Links[0])
	}
}

func TestSectionService_UpdateFormStrictDecode(t *testing.T) {
	svc := NewSectionService(newTestDB(t))

	section, err := svc.Create(&CreateSectionRequest{
		Page:       "footer",
		SectionKey: "services",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.UpdateForm(section.ID, []byte(`{"services": "not a list"}`)); err == nil {
		t.Error("malformed form body should be rejected")
	}

	// Bad submission must not have touched the stored payload
	reloaded, err := svc.Get(section.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	var content struct {
		Services []string `json:"services"`
	}
	if err := json.Unmarshal(reloaded.Content, &content); err != nil {
		t.Fatalf("stored content is not valid JSON: %v", err)
	}
	if len(content.Services) != 0 {
		t.Errorf("stored services = %v, expected empty", content.Services)
	}
}

func TestSectionService_UpdateRawRejectsInvalidJSON(t *testing.T) {
	svc := NewSectionService(newTestDB(t))

	section, err := svc.Create(&CreateSectionRequest{
		Page:       "home",
		SectionKey: "hero_banner",
		Content:    json.RawMessage(`{"headline":"Moving energy forward"}`),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.UpdateRaw(section.ID, json.RawMessage(`{not json`)); err == nil {
		t.Error("invalid raw JSON should be rejected")
	}

	reloaded, err := svc.Get(section.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	var payload map[string]string
	if err := json.Unmarshal(reloaded.Content, &payload); err != nil {
		t.Fatalf("stored content corrupted: %v", err)
	}
	if payload["headline"] != "Moving energy forward" {
		t.Errorf("stored payload changed after rejected update: %v", payload)
	}
}

func TestSectionService_MalformedStoredContentStillEditable(t *testing.T) {
	db := newTestDB(t)
	svc := NewSectionService(db)

	section, err := svc.Create(&CreateSectionRequest{
		Page:       "footer",
		SectionKey: "company_info",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Simulate hand-edited legacy data with the wrong shape
	if err := db.Model(&models.ContentSection{}).Where("id = ?", section.ID).
		Update("content", `{"description": 42, "social_links": "oops"}`).Error; err != nil {
		t.Fatalf("failed to corrupt content: %v", err)
	}

	form, err := svc.GetForm(section.ID)
	if err != nil {
		t.Fatalf("GetForm should not fail on malformed content, got %v", err)
	}
	if form.Kind != "company_info" {
		t.Errorf("Kind = %q, expected %q", form.Kind, "company_info")
	}
}

func TestSectionService_ListPublicOnlyActive(t *testing.T) {
	svc := NewSectionService(newTestDB(t))

	inactive := false
	if _, err := svc.Create(&CreateSectionRequest{
		Page: "footer", SectionKey: "quick_links", SortOrder: 2,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(&CreateSectionRequest{
		Page: "footer", SectionKey: "legal_links", IsActive: &inactive, SortOrder: 1,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(&CreateSectionRequest{
		Page: "footer", SectionKey: "contact_info", SortOrder: 1,
	}); err != nil {
		t.Fatal(err)
	}

	items, err := svc.ListPublic("footer")
	if err != nil {
		t.Fatalf("ListPublic returned error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d public sections, expected 2", len(items))
	}
	if items[0].SectionKey != "contact_info" || items[1].SectionKey != "quick_links" {
		t.Errorf("unexpected ordering: %s, %s", items[0].SectionKey, items[1].SectionKey)
	}
}

func TestSectionService_UpdateRawPersistsValidJSON(t *testing.T) {
	svc := NewSectionService(newTestDB(t))

	section, err := svc.Create(&CreateSectionRequest{
		Page:       "home",
		SectionKey: "hero_banner",
		Content:    json.RawMessage(`{"headline":"Moving energy forward"}`),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.UpdateRaw(section.ID, json.RawMessage(`{"headline":"Fueling progress","cta":"Contact us"}`)); err != nil {
		t.Fatalf("UpdateRaw returned error: %v", err)
	}

	reloaded, err := svc.Get(section.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	var payload map[string]string
	if err := json.Unmarshal(reloaded.Content, &payload); err != nil {
		t.Fatalf("stored content is not valid JSON: %v", err)
	}
	if payload["headline"] != "Fueling progress" {
		t.Errorf("headline = %q, expected %q", payload["headline"], "Fueling progress")
	}
	if payload["cta"] != "Contact us" {
		t.Errorf("cta = %q, expected %q", payload["cta"], "Contact us")
	}
}

func TestSectionService_DeleteRemovesFromLists(t *testing.T) {
	svc := NewSectionService(newTestDB(t))

	kept, err := svc.Create(&CreateSectionRequest{
		Page: "footer", SectionKey: "quick_links",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	removed, err := svc.Create(&CreateSectionRequest{
		Page: "footer", SectionKey: "legal_links",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(removed.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	admin, err := svc.List("footer")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(admin) != 1 || admin[0].ID != kept.ID {
		t.Errorf("admin list still contains deleted section: %v", admin)
	}

	public, err := svc.ListPublic("footer")
	if err != nil {
		t.Fatalf("ListPublic returned error: %v", err)
	}
	if len(public) != 1 || public[0].ID != kept.ID {
		t.Errorf("public list still contains deleted section: %v", public)
	}

	if _, err := svc.Get(removed.ID); err == nil {
		t.Error("Get should fail for a deleted section")
	}
}

func TestProductService_SpecificationRowsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db)

	product, err := svc.Create(&ProductRequest{
		Name:           "Pipeline Valve DN200",
		Category:       "valves",
		Specifications: json.RawMessage(`{"Material":"Carbon steel","Pressure":"PN40","Diameter":"200mm"}`),
	}, 1)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	rows, err := svc.GetSpecificationRows(product.ID)
	if err != nil {
		t.Fatalf("GetSpecificationRows returned error: %v", err)
	}

	// Rows come back sorted by key for a stable editor order
	wantKeys := []string{"Diameter", "Material", "Pressure"}
	if len(rows) != len(wantKeys) {
		t.Fatalf("got %d rows, expected %d", len(rows), len(wantKeys))
	}
	for i, key := range wantKeys {
		if rows[i].Key != key {
			t.Errorf("row %d key = %q, expected %q", i, rows[i].Key, key)
		}
	}

	// Remove the middle row and save; the rest must survive unchanged
	rows = append(rows[:1], rows[2:]...)
	updated, err := svc.UpdateSpecificationRows(product.ID, rows)
	if err != nil {
		t.Fatalf("UpdateSpecificationRows returned error: %v", err)
	}

	var specs map[string]string
	if err := json.Unmarshal(updated.Specifications, &specs); err != nil {
		t.Fatalf("stored specifications invalid: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("stored %d specs, expected 2", len(specs))
	}
	if specs["Diameter"] != "200mm" || specs["Pressure"] != "PN40" {
		t.Errorf("unexpected specs after removal: %v", specs)
	}
	if _, ok := specs["Material"]; ok {
		t.Error("removed key should be gone")
	}
}

func TestProductService_SlugConflict(t *testing.T) {
	svc := NewProductService(newTestDB(t))

	if _, err := svc.Create(&ProductRequest{Name: "Gate Valve"}, 1); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(&ProductRequest{Name: "Gate Valve"}, 1); err == nil {
		t.Error("duplicate slug should be rejected")
	}
}

func TestProductService_VideoTypeInference(t *testing.T) {
	svc := NewProductService(newTestDB(t))

	product, err := svc.Create(&ProductRequest{Name: "Centrifugal Pump"}, 1)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.AddVideo(product.ID, "https://www.youtube.com/watch?v=abc123", "demo", false); err != nil {
		t.Fatalf("AddVideo returned error: %v", err)
	}
	updated, err := svc.AddVideo(product.ID, "/uploads/videos/pump.mp4", "walkthrough", true)
	if err != nil {
		t.Fatalf("AddVideo returned error: %v", err)
	}

	var videos []struct {
		URL  string `json:"url"`
		Type string `json:"type"`
	}
	if err := json.Unmarshal(updated.Videos, &videos); err != nil {
		t.Fatalf("stored videos invalid: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("got %d videos, expected 2", len(videos))
	}
	if videos[0].Type != "youtube" {
		t.Errorf("video 0 type = %q, expected %q", videos[0].Type, "youtube")
	}
	if videos[1].Type != "video" {
		t.Errorf("video 1 type = %q, expected %q (uploads are always plain video)", videos[1].Type, "video")
	}
}
