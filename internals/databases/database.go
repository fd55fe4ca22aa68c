package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"eventhub_backend/internals/configs"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Collection names used across the app.
const (
	EventsCollection      = "events"
	UsersCollection       = "users"
	MessagesCollection    = "messages"
	LikedEventsCollection = "likedEvents"
	PaymentsCollection    = "payments"
	FeedbacksCollection   = "feedbacks"
)

func ConnectDB() {
	log.Println("[INFO] Connecting to MongoDB...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(configs.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetMaxPoolSize(50)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("[ERROR] Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("[ERROR] Failed to ping MongoDB: %v", err)
	}

	Client = client
	DB = client.Database(configs.DBName)
	log.Printf("[SUCCESS] Connected to MongoDB, database=%s", configs.DBName)
}

// EnsureIndexes creates the unique indexes the handlers rely on. The user
// email and favorites username indexes close the read-then-write races on
// registration and liked-list upserts; the transaction id index guarantees a
// payment record cannot be duplicated by a replayed gateway callback.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := DB.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = DB.Collection(LikedEventsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = DB.Collection(PaymentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionId", Value: 1}},
		Options: unique,
	})
	return err
}

func CloseDB(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("[ERROR] Failed to disconnect MongoDB: %v", err)
	}
}
