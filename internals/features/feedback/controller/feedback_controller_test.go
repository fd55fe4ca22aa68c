package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "eventhub_backend/internals/databases"
	"eventhub_backend/internals/features/feedback/model"
)

func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("mongo unavailable: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("mongo unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})
	return client.Database("EventsDB_test")
}

func feedbackApp(db *mongo.Database) *fiber.App {
	app := fiber.New()
	ctrl := NewFeedbackController(db)
	app.Post("/feedback", ctrl.CreateFeedback)
	app.Get("/feedback", ctrl.GetFeedbacks)
	app.Patch("/feedback/:id", ctrl.UpdateFeedback)
	app.Delete("/feedback/:id", ctrl.DeleteFeedback)
	app.Get("/testimonial", ctrl.GetTestimonials)
	return app
}

func dropFeedback(t *testing.T, db *mongo.Database) {
	t.Helper()
	if err := db.Collection(database.FeedbacksCollection).Drop(context.Background()); err != nil {
		t.Fatalf("drop feedbacks: %v", err)
	}
}

func postFeedback(t *testing.T, app *fiber.App, name string) model.Feedback {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":"fan@example.com","rating":5,"feedback":"great events"}`, name)
	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test POST /feedback: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create feedback: expected 201, got %d: %s", resp.StatusCode, raw)
	}
	var envelope struct {
		Data model.Feedback `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return envelope.Data
}

func listTestimonials(t *testing.T, app *fiber.App) []model.Feedback {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/testimonial", nil), -1)
	if err != nil {
		t.Fatalf("app.Test GET /testimonial: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("testimonials: expected 200, got %d", resp.StatusCode)
	}
	var envelope struct {
		Data []model.Feedback `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode testimonials: %v", err)
	}
	return envelope.Data
}

func TestCreateFeedbackStartsPending(t *testing.T) {
	db := testDB(t)
	dropFeedback(t, db)
	app := feedbackApp(db)

	created := postFeedback(t, app, "Alice")
	if created.Status != model.StatusPending {
		t.Fatalf("new feedback status = %q, want pending", created.Status)
	}
}

// Publishing is an admin status change; the public testimonial list must show
// published entries only.
func TestTestimonialsExcludePending(t *testing.T) {
	db := testDB(t)
	dropFeedback(t, db)
	app := feedbackApp(db)

	postFeedback(t, app, "Alice")
	postFeedback(t, app, "Bob")
	published := postFeedback(t, app, "Carol")

	if got := listTestimonials(t, app); len(got) != 0 {
		t.Fatalf("expected no testimonials before publishing, got %d", len(got))
	}

	req := httptest.NewRequest(http.MethodPatch, "/feedback/"+published.ID.Hex(),
		strings.NewReader(`{"status":"published"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test publish: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("publish: expected 200, got %d", resp.StatusCode)
	}

	got := listTestimonials(t, app)
	if len(got) != 1 {
		t.Fatalf("expected 1 testimonial after publishing, got %d", len(got))
	}
	if got[0].Name != "Carol" || got[0].Status != model.StatusPublished {
		t.Fatalf("wrong testimonial returned: %+v", got[0])
	}

	count, err := db.Collection(database.FeedbacksCollection).
		CountDocuments(context.Background(), bson.M{"status": model.StatusPending})
	if err != nil {
		t.Fatalf("count pending: %v", err)
	}
	if count != 2 {
		t.Fatalf("publishing one entry touched others: %d pending left", count)
	}
}

func TestDeleteFeedbackUnknownID(t *testing.T) {
	db := testDB(t)
	dropFeedback(t, db)
	app := feedbackApp(db)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/feedback/65f000000000000000000000", nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
