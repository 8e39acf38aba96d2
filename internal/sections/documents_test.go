package sections

import (
	"encoding/json"
	"testing"
)

func TestSerializeDocuments_FiltersIncomplete(t *testing.T) {
	docs := []Document{
		{Name: "Datasheet DN200", Type: "pdf", URL: "/uploads/ds-dn200.pdf"},
		{Name: "", Type: "pdf", URL: "/uploads/orphan.pdf"},
		{Name: "Certificate", Type: "pdf", URL: ""},
	}

	out, err := SerializeDocuments(docs)
	if err != nil {
		t.Fatalf("SerializeDocuments() error = %v", err)
	}

	var stored []Document
	if err := json.Unmarshal(out, &stored); err != nil {
		t.Fatalf("invalid serialized payload: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("serialized %d documents, expected 1", len(stored))
	}
	if stored[0].Name != "Datasheet DN200" {
		t.Errorf("surviving document = %+v", stored[0])
	}
}

func TestParseDocuments_Malformed(t *testing.T) {
	for _, raw := range []string{`{"not":"a list"}`, ``, `"x"`} {
		if docs := ParseDocuments([]byte(raw)); len(docs) != 0 {
			t.Errorf("ParseDocuments(%q) = %v, expected empty", raw, docs)
		}
	}
}

func TestDocumentsRoundTrip(t *testing.T) {
	raw := `[{"name":"Manual","type":"pdf","url":"/uploads/manual.pdf"}]`

	docs := ParseDocuments([]byte(raw))
	out, err := SerializeDocuments(docs)
	if err != nil {
		t.Fatalf("SerializeDocuments() error = %v", err)
	}
	if string(out) != raw {
		t.Errorf("round trip changed payload:\n in: %s\nout: %s", raw, out)
	}
}

func TestSerializeGallery_FiltersMissingURL(t *testing.T) {
	images := []GalleryImage{
		{URL: "/uploads/tank-farm.jpg", Alt: "Tank farm at dusk"},
		{URL: "", Alt: "no image yet"},
		{URL: "/uploads/jetty.jpg"},
	}

	out, err := SerializeGallery(images)
	if err != nil {
		t.Fatalf("SerializeGallery() error = %v", err)
	}

	var stored []GalleryImage
	if err := json.Unmarshal(out, &stored); err != nil {
		t.Fatalf("invalid serialized payload: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("serialized %d images, expected 2", len(stored))
	}
	// Alt text alone does not make an entry; missing alt does not drop one.
	if stored[1].URL != "/uploads/jetty.jpg" || stored[1].Alt != "" {
		t.Errorf("stored[1] = %+v", stored[1])
	}
}

func TestParseGallery_Malformed(t *testing.T) {
	for _, raw := range []string{`{}`, ``, `1`} {
		if images := ParseGallery([]byte(raw)); len(images) != 0 {
			t.Errorf("ParseGallery(%q) = %v, expected empty", raw, images)
		}
	}
}
