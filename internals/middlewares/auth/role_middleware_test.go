package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventhub_backend/internals/configs"
	database "eventhub_backend/internals/databases"
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

func seedRoles(t *testing.T, db *mongo.Database, roles map[string]string) {
	t.Helper()
	ctx := context.Background()
	users := db.Collection(database.UsersCollection)
	if err := users.Drop(ctx); err != nil {
		t.Fatalf("drop users: %v", err)
	}
	for email, role := range roles {
		if _, err := users.InsertOne(ctx, bson.M{"email": email, "role": role}); err != nil {
			t.Fatalf("seed user %s: %v", email, err)
		}
	}
}

func guardedApp(db *mongo.Database) *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/admin-only", AuthMiddleware(), OnlyAdmin(db, "the admin panel"), ok)
	app.Get("/organizer-only", AuthMiddleware(), OnlyOrganizer(db, "event tools"), ok)
	return app
}

func bearerFor(t *testing.T, email string) string {
	t.Helper()
	return "Bearer " + signToken(t, configs.JWTSecret, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
}

func getAs(t *testing.T, app *fiber.App, target, email string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", bearerFor(t, email))
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s: %v", target, err)
	}
	return resp.StatusCode
}

func TestOnlyAdminAllowsAdmin(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := testDB(t)
	seedRoles(t, db, map[string]string{"root@example.com": "admin"})
	app := guardedApp(db)

	if status := getAs(t, app, "/admin-only", "root@example.com"); status != http.StatusOK {
		t.Fatalf("admin on admin route: expected 200, got %d", status)
	}
}

func TestOnlyAdminRejectsAttendee(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := testDB(t)
	seedRoles(t, db, map[string]string{"bob@example.com": "attendee"})
	app := guardedApp(db)

	if status := getAs(t, app, "/admin-only", "bob@example.com"); status != http.StatusForbidden {
		t.Fatalf("attendee on admin route: expected 403, got %d", status)
	}
	if status := getAs(t, app, "/organizer-only", "bob@example.com"); status != http.StatusForbidden {
		t.Fatalf("attendee on organizer route: expected 403, got %d", status)
	}
}

func TestOnlyRolesUnknownUser(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := testDB(t)
	seedRoles(t, db, nil)
	app := guardedApp(db)

	if status := getAs(t, app, "/admin-only", "ghost@example.com"); status != http.StatusForbidden {
		t.Fatalf("unknown user: expected 403, got %d", status)
	}
}

// A demotion takes effect on the very next request, with the same token: the
// guard reads the stored role, not a claim minted at login time.
func TestRoleChangeAppliesWithoutNewToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := testDB(t)
	seedRoles(t, db, map[string]string{"root@example.com": "admin"})
	app := guardedApp(db)

	if status := getAs(t, app, "/admin-only", "root@example.com"); status != http.StatusOK {
		t.Fatalf("before demotion: expected 200, got %d", status)
	}

	_, err := db.Collection(database.UsersCollection).UpdateOne(context.Background(),
		bson.M{"email": "root@example.com"},
		bson.M{"$set": bson.M{"role": "attendee"}})
	if err != nil {
		t.Fatalf("demote user: %v", err)
	}

	if status := getAs(t, app, "/admin-only", "root@example.com"); status != http.StatusForbidden {
		t.Fatalf("after demotion: expected 403, got %d", status)
	}
}
